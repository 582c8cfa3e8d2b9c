// internal/saju/daeun.go
// Ten-year major cycles (대운) and their synergy between two charts

package saju

import "fmt"

// DaeunLength is the span of one major cycle in years
const DaeunLength = 10

// daeunScanDecades is how many cycles, current included, are compared
const daeunScanDecades = 5

var daeunThemes = [10]string{
	"foundation and learning",
	"identity and first ventures",
	"building and commitment",
	"expansion and recognition",
	"mastery and responsibility",
	"harvest and reassessment",
	"mentorship and legacy",
	"reflection and simplification",
	"wisdom and release",
	"completion and renewal",
}

// DaeunPeriod is the active ten-year window for an age
type DaeunPeriod struct {
	Index    int     `json:"index"`
	StartAge int     `json:"startAge"`
	EndAge   int     `json:"endAge"`
	Stem     Stem    `json:"stem"`
	Branch   Branch  `json:"branch"`
	Element  Element `json:"element"`
	Theme    string  `json:"theme"`
}

// CurrentDaeun resolves the cycle active at age.
// Cycles advance from the month pillar, forward for a yang year stem and backward for a yin one.
func CurrentDaeun(p Profile, age int) (DaeunPeriod, bool) {
	if age < 0 || !p.Pillars.Month.Valid() {
		return DaeunPeriod{}, false
	}
	index := age / DaeunLength
	dir := 1
	if p.Pillars.Year.Stem.Index() >= 0 && p.Pillars.Year.Stem.YinYang() == Yin {
		dir = -1
	}
	pl := p.Pillars.Month.Advance(dir * (index + 1))

	phase := "inner consolidation"
	if pl.Stem.YinYang() == Yang {
		phase = "outward expansion"
	}
	return DaeunPeriod{
		Index:    index,
		StartAge: index * DaeunLength,
		EndAge:   index*DaeunLength + DaeunLength,
		Stem:     pl.Stem,
		Branch:   pl.Branch,
		Element:  pl.Stem.Element(),
		Theme:    fmt.Sprintf("%s, %s", daeunThemes[index%len(daeunThemes)], phase),
	}, true
}

// TimingWindow pairs both persons' cycles at the same offset from now
type TimingWindow struct {
	YearsFromNow int         `json:"yearsFromNow"`
	Person1      DaeunPeriod `json:"person1"`
	Person2      DaeunPeriod `json:"person2"`
	Synergy      int         `json:"synergy"`
	Harmonic     bool        `json:"harmonic"`
	Description  string      `json:"description"`
}

// DaeunCompatibility summarises how two charts' major cycles interact
type DaeunCompatibility struct {
	CurrentSynergy     int            `json:"currentSynergy"`
	Current            TimingWindow   `json:"current"`
	HarmonicPeriods    []TimingWindow `json:"harmonicPeriods"`
	ChallengingPeriods []TimingWindow `json:"challengingPeriods"`
	FutureOutlook      string         `json:"futureOutlook"`
}

// cycleSynergy scores two cycle elements against each other's yongsin
func cycleSynergy(e1, e2, y1, y2 Element) (int, bool) {
	rel := RelationBetween(e1, e2)
	var score int
	switch {
	case rel == RelationSame:
		score = 80
	case rel.IsGeneration():
		score = 85
	case rel.IsControl():
		score = 45
	default:
		score = 60
	}
	harmonic := false
	if e1 == y2 {
		score += 10
		harmonic = true
	}
	if e2 == y1 {
		score += 10
		harmonic = true
	}
	return clampInt(score, 0, 100), harmonic
}

func describeWindow(w TimingWindow) string {
	rel := RelationBetween(w.Person1.Element, w.Person2.Element)
	switch {
	case w.Harmonic:
		return fmt.Sprintf("Harmonic period: %s and %s cycles feed each other's needs", w.Person1.Element, w.Person2.Element)
	case rel == RelationSame:
		return fmt.Sprintf("Shared %s cycle brings aligned priorities", w.Person1.Element)
	case rel.IsGeneration():
		return fmt.Sprintf("%s and %s cycles support one another", w.Person1.Element, w.Person2.Element)
	case rel.IsControl():
		return fmt.Sprintf("%s and %s cycles pull in different directions", w.Person1.Element, w.Person2.Element)
	}
	return "Cycles run independently"
}

// AnalyzeDaeunCompatibility compares the active and upcoming major cycles of two charts.
// ok is false when either chart lacks a month pillar or day master.
func AnalyzeDaeunCompatibility(p1, p2 Profile, age1, age2 int) (*DaeunCompatibility, bool) {
	y1, ok1 := ResolvedYongsin(p1)
	y2, ok2 := ResolvedYongsin(p2)
	if !ok1 || !ok2 {
		return nil, false
	}

	res := &DaeunCompatibility{
		HarmonicPeriods:    []TimingWindow{},
		ChallengingPeriods: []TimingWindow{},
	}
	futureSum, futureN := 0, 0
	for k := 0; k < daeunScanDecades; k++ {
		d1, ok1 := CurrentDaeun(p1, age1+k*DaeunLength)
		d2, ok2 := CurrentDaeun(p2, age2+k*DaeunLength)
		if !ok1 || !ok2 {
			return nil, false
		}
		w := TimingWindow{YearsFromNow: k * DaeunLength, Person1: d1, Person2: d2}
		w.Synergy, w.Harmonic = cycleSynergy(d1.Element, d2.Element, y1, y2)
		w.Description = describeWindow(w)

		if k == 0 {
			res.Current = w
			res.CurrentSynergy = w.Synergy
		} else {
			futureSum += w.Synergy
			futureN++
		}
		if w.Synergy >= 75 {
			res.HarmonicPeriods = append(res.HarmonicPeriods, w)
		}
		if w.Synergy <= 45 {
			res.ChallengingPeriods = append(res.ChallengingPeriods, w)
		}
	}

	futureMean := float64(futureSum) / float64(futureN)
	switch diff := futureMean - float64(res.CurrentSynergy); {
	case diff >= 5:
		res.FutureOutlook = "improving: the coming decades bring stronger shared momentum"
	case diff <= -5:
		res.FutureOutlook = "declining: the present cycle is the most supportive stretch, invest in it"
	default:
		res.FutureOutlook = "stable: the relationship keeps a steady rhythm across cycles"
	}
	return res, true
}
