// internal/compat/scorer.go
package compat

import (
	"math"

	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

const (
	surplusCount = 3

	// completeness when no western sub-score could be computed
	sajuOnlyCompleteness = 60
)

// Calculate scores two people. Western sub-scores are dropped when either natal chart is absent.
func Calculate(p1, p2 Person) *Result {
	s1, s2 := p1.Saju, p2.Saju

	// 1. Saju side
	sa := SajuAnalysis{
		DayMasterHarmony: DayMasterHarmony(s1.DayMaster.Element, s2.DayMaster.Element),
		YinYangBalance:   YinYangBalance(s1.DayMaster.YinYang, s2.DayMaster.YinYang),
		PillarSynergy:    PillarSynergy(s1.Pillars, s2.Pillars),
		ElementBalance:   ElementBalance(s1.ResolvedElements(), s2.ResolvedElements()),
	}
	sajuScore := float64(sa.DayMasterHarmony*35+sa.YinYangBalance*20+sa.PillarSynergy*15+sa.ElementBalance*30) / 100

	// 2. Western side, each sub-score skipped independently
	aa, astroScore, coverage := analyzeAstrology(p1.Astro, p2.Astro)

	// 3. Cross-domain element alignment
	harmony := sa.ElementBalance + crossDomainBonus(s1, p2.Astro) + crossDomainBonus(s2, p1.Astro)

	res := &Result{
		Breakdown: Breakdown{
			Saju:             score(sajuScore),
			ElementalHarmony: clamp(harmony),
			YinYangBalance:   sa.YinYangBalance,
		},
		Details: Details{SajuAnalysis: sa},
	}

	// weights in whole percent
	var total float64
	if coverage > 0 {
		res.Breakdown.Astrology = score(astroScore)
		res.Details.AstrologyAnalysis = aa
		total = (sajuScore*40 + astroScore*30 +
			float64(res.Breakdown.ElementalHarmony*20+sa.YinYangBalance*10)) / 100
		res.DataCompleteness = clamp(sajuOnlyCompleteness + coverage*(100-sajuOnlyCompleteness)/100)
	} else {
		total = (sajuScore*60 + float64(res.Breakdown.ElementalHarmony*25+sa.YinYangBalance*15)) / 100
		res.DataCompleteness = sajuOnlyCompleteness
	}
	res.OverallScore = score(total)

	res.Strengths, res.Challenges = observations(sa, aa, res.Breakdown)
	res.Advice = Advice(res.OverallScore)
	return res
}

// DayMasterHarmony is 90 for generation either way, 70 for the same element and 40 for control.
// Tags outside the five elements fall back to 60.
func DayMasterHarmony(a, b saju.Element) int {
	rel := saju.RelationBetween(a, b)
	switch {
	case rel.IsGeneration():
		return 90
	case rel == saju.RelationSame:
		return 70
	case rel.IsControl():
		return 40
	}
	return 60
}

// YinYangBalance rewards opposite polarity. An unknown polarity never counts as opposite.
func YinYangBalance(a, b saju.YinYang) int {
	if a.Valid() && b == a.Opposite() {
		return 100
	}
	return 60
}

// PillarSynergy is the share of pillar positions whose branches match
func PillarSynergy(a, b saju.Pillars) int {
	pa, pb := a.All(), b.All()
	matches := 0
	for i := range pa {
		if pa[i].Branch != "" && pa[i].Branch == pb[i].Branch {
			matches++
		}
	}
	return matches * 100 / len(pa)
}

// ElementBalance starts at 50, adds 15 for every element one chart lacks and the other holds
// in surplus, and takes 10 for every element both hold in surplus.
func ElementBalance(a, b saju.ElementCounts) int {
	s := 50
	for _, e := range saju.Elements {
		ca, cb := a.Count(e), b.Count(e)
		switch {
		case ca == 0 && cb >= surplusCount, cb == 0 && ca >= surplusCount:
			s += 15
		case ca >= surplusCount && cb >= surplusCount:
			s -= 10
		}
	}
	return clamp(s)
}

// WesternAnalogue maps a Saju element onto its nearest western element
func WesternAnalogue(e saju.Element) astro.Element {
	switch e {
	case saju.Wood, saju.Metal:
		return astro.Air
	case saju.Fire:
		return astro.Fire
	case saju.Earth:
		return astro.Earth
	case saju.Water:
		return astro.Water
	}
	return ""
}

func crossDomainBonus(s saju.Profile, other *astro.Profile) int {
	if other == nil {
		return 0
	}
	dominant, ok := other.DominantElement()
	if !ok {
		return 0
	}
	if analogue := WesternAnalogue(s.DayMaster.Element); analogue != "" && analogue == dominant {
		return 10
	}
	return 0
}

// analyzeAstrology returns the western sub-scores, their weighted mean and the percentage of
// the western weight that could be computed.
func analyzeAstrology(a, b *astro.Profile) (*AstrologyAnalysis, float64, int) {
	if a == nil || b == nil {
		return nil, 0, 0
	}
	aa := &AstrologyAnalysis{}
	sum, weight := 0, 0
	add := func(v, w int) *int {
		sum += v * w
		weight += w
		return &v
	}

	sun1, moon1 := a.Sun.ResolvedElement(), a.Moon.ResolvedElement()
	sun2, moon2 := b.Sun.ResolvedElement(), b.Moon.ResolvedElement()
	if valid(sun1, moon1, sun2, moon2) {
		aa.SunMoonHarmony = add(mean(astro.Harmony(sun1, moon2), astro.Harmony(moon1, sun2)), 40)
	}

	venus1, mars1 := a.Venus.ResolvedElement(), a.Mars.ResolvedElement()
	venus2, mars2 := b.Venus.ResolvedElement(), b.Mars.ResolvedElement()
	if valid(venus1, mars1, venus2, mars2) {
		aa.VenusMarsSynergy = add(mean(astro.Harmony(venus1, mars2), astro.Harmony(mars1, venus2)), 35)
	}

	d1, ok1 := a.DominantElement()
	d2, ok2 := b.DominantElement()
	if ok1 && ok2 {
		aa.ElementalAlignment = add(astro.Harmony(d1, d2), 25)
	}

	if weight == 0 {
		return nil, 0, 0
	}
	return aa, float64(sum) / float64(weight), weight
}

func valid(es ...astro.Element) bool {
	for _, e := range es {
		if !e.Valid() {
			return false
		}
	}
	return true
}

func mean(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}

func score(v float64) int {
	return clamp(int(math.Round(v)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
