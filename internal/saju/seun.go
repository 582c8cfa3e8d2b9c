// internal/saju/seun.go
// Annual cycle (세운) resolution and impact on two charts

package saju

// seunEpoch is a 甲子 year; the cycle repeats every 60 years from it
const seunEpoch = 1984

// Impact is the ordered effect of a year on a chart
type Impact string

const (
	VeryFavorable   Impact = "very_favorable"
	Favorable       Impact = "favorable"
	NeutralImpact   Impact = "neutral"
	Challenging     Impact = "challenging"
	VeryChallenging Impact = "very_challenging"
)

var zodiacAnimals = [12]string{"rat", "ox", "tiger", "rabbit", "dragon", "snake", "horse", "goat", "monkey", "rooster", "dog", "pig"}

// YearPillar returns the stem/branch of a calendar year
func YearPillar(year int) Pillar {
	return PillarAt(year - seunEpoch)
}

// Animal returns the zodiac animal of a branch
func (b Branch) Animal() string {
	if i := b.Index(); i >= 0 {
		return zodiacAnimals[i]
	}
	return ""
}

// SeunCompatibility describes one calendar year for both charts
type SeunCompatibility struct {
	Year          int     `json:"year"`
	Stem          Stem    `json:"stem"`
	Branch        Branch  `json:"branch"`
	Element       Element `json:"element"`
	Animal        string  `json:"animal"`
	Person1Impact Impact  `json:"person1Impact"`
	Person2Impact Impact  `json:"person2Impact"`
	Person1Score  int     `json:"person1Score"`
	Person2Score  int     `json:"person2Score"`
	CombinedScore int     `json:"combinedScore"`
	Advice        string  `json:"advice"`
}

// yearImpact scores the year element against the day master and yongsin, in [-2, 2]
func yearImpact(year Element, p Profile) int {
	dm := p.DayMaster.Element
	y, _ := ResolvedYongsin(p)
	score := 0
	if year == y {
		score += 2
	} else if year == CalculateHuisin(p, y) {
		score++
	}
	if year.Generates() == dm {
		score++
	}
	if year.Controls() == dm {
		score--
	}
	if year.Controls() == y {
		score -= 2
	}
	return clampInt(score, -2, 2)
}

// ImpactBand maps an impact score onto the five ordered bands
func ImpactBand(score int) Impact {
	switch {
	case score >= 2:
		return VeryFavorable
	case score == 1:
		return Favorable
	case score == 0:
		return NeutralImpact
	case score == -1:
		return Challenging
	}
	return VeryChallenging
}

// AnalyzeSeunCompatibility resolves year's pillar and classifies its effect on both charts.
// ok is false when either chart lacks a day master.
func AnalyzeSeunCompatibility(p1, p2 Profile, year int) (*SeunCompatibility, bool) {
	if !p1.HasDayMaster() || !p2.HasDayMaster() {
		return nil, false
	}
	pl := YearPillar(year)
	el := pl.Stem.Element()
	s1, s2 := yearImpact(el, p1), yearImpact(el, p2)

	res := &SeunCompatibility{
		Year:          year,
		Stem:          pl.Stem,
		Branch:        pl.Branch,
		Element:       el,
		Animal:        pl.Branch.Animal(),
		Person1Impact: ImpactBand(s1),
		Person2Impact: ImpactBand(s2),
		Person1Score:  s1,
		Person2Score:  s2,
		CombinedScore: clampInt(50+12*(s1+s2), 0, 100),
	}
	switch {
	case res.CombinedScore >= 74:
		res.Advice = "A year to launch shared plans; both charts are carried by it"
	case res.CombinedScore >= 50:
		res.Advice = "A workable year; lean on whoever the year favours"
	case res.CombinedScore >= 26:
		res.Advice = "Pace commitments and keep communication explicit"
	default:
		res.Advice = "Consolidate rather than expand; the year strains both charts"
	}
	return res, true
}
