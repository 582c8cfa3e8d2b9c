package compat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

func woodPerson() Person {
	return Person{Saju: saju.Profile{
		DayMaster: saju.DayMaster{Name: saju.Gap, Element: saju.Wood, YinYang: saju.Yang},
		Pillars: saju.Pillars{
			Year:  saju.Pillar{Stem: saju.Gap, Branch: saju.Ja},
			Month: saju.Pillar{Stem: saju.Byeong, Branch: saju.In},
			Day:   saju.Pillar{Stem: saju.Gap, Branch: saju.Jin},
			Time:  saju.Pillar{Stem: saju.Gyeong, Branch: saju.O},
		},
		Elements: saju.ElementCounts{Wood: 3, Fire: 2, Earth: 1, Metal: 1, Water: 1},
	}}
}

func waterPerson() Person {
	return Person{Saju: saju.Profile{
		DayMaster: saju.DayMaster{Name: saju.Gye, Element: saju.Water, YinYang: saju.Yin},
		Pillars: saju.Pillars{
			Year:  saju.Pillar{Stem: saju.Gye, Branch: saju.Yu},
			Month: saju.Pillar{Stem: saju.Gap, Branch: saju.In},
			Day:   saju.Pillar{Stem: saju.Gye, Branch: saju.Hae},
			Time:  saju.Pillar{Stem: saju.Mu, Branch: saju.O},
		},
		Elements: saju.ElementCounts{Water: 3, Metal: 3, Wood: 1, Earth: 1},
	}}
}

func natal(sun, moon, venus, mars astro.Sign) *astro.Profile {
	return &astro.Profile{
		Sun:   astro.Placement{Sign: sun},
		Moon:  astro.Placement{Sign: moon},
		Venus: astro.Placement{Sign: venus},
		Mars:  astro.Placement{Sign: mars},
	}
}

func TestDayMasterHarmony(t *testing.T) {
	assert.Equal(t, 90, DayMasterHarmony(saju.Wood, saju.Fire))
	assert.Equal(t, 90, DayMasterHarmony(saju.Fire, saju.Wood))
	assert.Equal(t, 70, DayMasterHarmony(saju.Metal, saju.Metal))
	assert.Equal(t, 40, DayMasterHarmony(saju.Wood, saju.Earth))
	assert.Equal(t, 40, DayMasterHarmony(saju.Earth, saju.Wood))
	assert.Equal(t, 60, DayMasterHarmony(saju.Wood, "aether"))

	for _, a := range saju.Elements {
		for _, b := range saju.Elements {
			assert.Contains(t, []int{90, 70, 40}, DayMasterHarmony(a, b), "%s/%s", a, b)
		}
	}
}

func TestElementBalance(t *testing.T) {
	assert.Equal(t, 50, ElementBalance(saju.ElementCounts{Wood: 2, Fire: 2}, saju.ElementCounts{Wood: 2, Fire: 2}))
	assert.Equal(t, 40, ElementBalance(saju.ElementCounts{Wood: 3}, saju.ElementCounts{Wood: 4}))
	assert.Equal(t, 80, ElementBalance(saju.ElementCounts{Wood: 3, Metal: 1, Water: 1}, saju.ElementCounts{Fire: 4, Earth: 1, Metal: 1, Water: 1}))
	assert.Equal(t, 0, ElementBalance(
		saju.ElementCounts{Wood: 3, Fire: 3, Earth: 3, Metal: 3, Water: 3},
		saju.ElementCounts{Wood: 3, Fire: 3, Earth: 3, Metal: 3, Water: 3},
	))
}

func TestYinYangBalance(t *testing.T) {
	tests := []struct {
		a, b saju.YinYang
		want int
	}{
		{saju.Yang, saju.Yin, 100},
		{saju.Yin, saju.Yang, 100},
		{saju.Yang, saju.Yang, 60},
		{saju.Yin, saju.Yin, 60},
		{"", saju.Yang, 60},
		{saju.Yin, "", 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, YinYangBalance(tt.a, tt.b), "%q/%q", tt.a, tt.b)
	}
}

func TestPillarSynergyScalesWithMatches(t *testing.T) {
	base := woodPerson().Saju.Pillars
	other := saju.Pillars{
		Year:  saju.Pillar{Stem: saju.Gye, Branch: saju.Yu},
		Month: saju.Pillar{Stem: saju.Jeong, Branch: saju.Myo},
		Day:   saju.Pillar{Stem: saju.Gye, Branch: saju.Hae},
		Time:  saju.Pillar{Stem: saju.Gyeong, Branch: saju.Shin},
	}
	assert.Equal(t, 0, PillarSynergy(base, other))

	mixed := other
	want := []int{25, 50, 75, 100}
	for i, pos := range []*saju.Pillar{&mixed.Year, &mixed.Month, &mixed.Day, &mixed.Time} {
		*pos = base.All()[i]
		assert.Equal(t, want[i], PillarSynergy(base, mixed), "%d matching positions", i+1)
		assert.Equal(t, want[i], PillarSynergy(mixed, base))
	}

	// branches matching at different positions do not count
	shifted := base
	shifted.Year, shifted.Month = base.Month, base.Year
	assert.Equal(t, 50, PillarSynergy(base, shifted))
}

func TestCalculateCountsPillarsWithoutDistribution(t *testing.T) {
	p1, p2 := woodPerson(), waterPerson()
	p1.Saju.Elements = saju.CountPillars(p1.Saju.Pillars)
	explicit := Calculate(p1, p2)

	p1.Saju.Elements = saju.ElementCounts{}
	derived := Calculate(p1, p2)
	assert.Equal(t, explicit.Details.SajuAnalysis.ElementBalance, derived.Details.SajuAnalysis.ElementBalance)
	assert.Equal(t, explicit.OverallScore, derived.OverallScore)
}

func TestCalculateIdenticalProfiles(t *testing.T) {
	p := woodPerson()
	res := Calculate(p, p)

	assert.Equal(t, 100, res.Details.SajuAnalysis.PillarSynergy)
	assert.Equal(t, 60, res.Details.SajuAnalysis.YinYangBalance)
	assert.Equal(t, 70, res.Details.SajuAnalysis.DayMasterHarmony)
	assert.Equal(t, 40, res.Details.SajuAnalysis.ElementBalance)
	assert.Equal(t, 64, res.Breakdown.Saju)
	assert.Equal(t, 40, res.Breakdown.ElementalHarmony)
	assert.Equal(t, 57, res.OverallScore)
	assert.Equal(t, 60, res.DataCompleteness)
	assert.Nil(t, res.Details.AstrologyAnalysis)
	assert.Equal(t, Advice(55), res.Advice)
	assert.Len(t, res.Strengths, 2)
	assert.Len(t, res.Challenges, 2)
}

func TestCalculateWithAstrology(t *testing.T) {
	p := woodPerson()
	p.Astro = natal(astro.Leo, astro.Cancer, astro.Aries, astro.Pisces)

	res := Calculate(p, p)
	require.NotNil(t, res.Details.AstrologyAnalysis)
	aa := res.Details.AstrologyAnalysis
	require.NotNil(t, aa.SunMoonHarmony)
	assert.Equal(t, 35, *aa.SunMoonHarmony)
	assert.Equal(t, 35, *aa.VenusMarsSynergy)
	assert.Equal(t, 90, *aa.ElementalAlignment)
	assert.Equal(t, 49, res.Breakdown.Astrology)
	assert.Equal(t, 54, res.OverallScore)
	assert.Equal(t, 100, res.DataCompleteness)
}

func TestCalculatePartialAstrology(t *testing.T) {
	p1 := woodPerson()
	p1.Astro = natal(astro.Leo, astro.Cancer, "", "")
	p2 := waterPerson()
	p2.Astro = natal(astro.Aries, astro.Libra, astro.Aries, astro.Pisces)

	res := Calculate(p1, p2)
	require.NotNil(t, res.Details.AstrologyAnalysis)
	assert.NotNil(t, res.Details.AstrologyAnalysis.SunMoonHarmony)
	assert.Nil(t, res.Details.AstrologyAnalysis.VenusMarsSynergy)
	assert.Greater(t, res.DataCompleteness, 60)
	assert.Less(t, res.DataCompleteness, 100)

	p2.Astro = nil
	res = Calculate(p1, p2)
	assert.Equal(t, 60, res.DataCompleteness)
	assert.Zero(t, res.Breakdown.Astrology)
}

func TestCalculateCrossDomainBonus(t *testing.T) {
	p1 := woodPerson()
	p1.Saju.DayMaster.Element = saju.Fire
	p1.Astro = natal(astro.Taurus, astro.Virgo, astro.Capricorn, astro.Cancer)
	p2 := woodPerson()
	p2.Astro = natal(astro.Leo, astro.Aries, astro.Sagittarius, astro.Gemini)

	res := Calculate(p1, p2)
	assert.Equal(t, res.Details.SajuAnalysis.ElementBalance+10, res.Breakdown.ElementalHarmony)
}

func TestCalculateSymmetric(t *testing.T) {
	p1 := woodPerson()
	p1.Astro = natal(astro.Leo, astro.Cancer, astro.Aries, astro.Pisces)
	p2 := waterPerson()
	p2.Astro = natal(astro.Gemini, astro.Taurus, astro.Libra, astro.Scorpio)

	if diff := cmp.Diff(Calculate(p1, p2), Calculate(p2, p1)); diff != "" {
		t.Errorf("result not symmetric (-p1p2 +p2p1):\n%s", diff)
	}
}

func TestCalculateScoresInRange(t *testing.T) {
	people := []Person{woodPerson(), waterPerson()}
	people[1].Astro = natal(astro.Gemini, astro.Taurus, astro.Libra, astro.Scorpio)
	for _, a := range people {
		for _, b := range people {
			res := Calculate(a, b)
			for _, v := range []int{
				res.OverallScore, res.Breakdown.Saju, res.Breakdown.Astrology,
				res.Breakdown.ElementalHarmony, res.Breakdown.YinYangBalance, res.DataCompleteness,
			} {
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
			assert.NotEmpty(t, res.Advice)
		}
	}
}

func TestAdviceTiers(t *testing.T) {
	assert.Contains(t, Advice(90), "exceptional")
	assert.Contains(t, Advice(70), "strong")
	assert.Contains(t, Advice(55), "workable")
	assert.Contains(t, Advice(10), "challenging")
}
