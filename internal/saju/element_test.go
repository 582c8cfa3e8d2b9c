package saju

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProfile builds a profile from "甲子"-style pillar strings and an element distribution
func newProfile(t *testing.T, year, month, day, hour string, counts ElementCounts) Profile {
	t.Helper()
	parse := func(s string) Pillar {
		r := []rune(s)
		require.Len(t, r, 2, "pillar %q", s)
		st, ok := ParseStem(string(r[0]))
		require.True(t, ok, "stem %q", string(r[0]))
		br, ok := ParseBranch(string(r[1]))
		require.True(t, ok, "branch %q", string(r[1]))
		return Pillar{Stem: st, Branch: br}
	}
	p := Profile{
		Pillars: Pillars{
			Year:  parse(year),
			Month: parse(month),
			Day:   parse(day),
			Time:  parse(hour),
		},
		Elements: counts,
	}
	dm := p.Pillars.Day.Stem
	p.DayMaster = DayMaster{Name: dm, Element: dm.Element(), YinYang: dm.YinYang()}
	return p
}

func TestCyclesAreDisjointFiveCycles(t *testing.T) {
	for _, e := range Elements {
		seen := map[Element]bool{}
		cur := e
		for i := 0; i < 5; i++ {
			seen[cur] = true
			cur = cur.Generates()
		}
		assert.Equal(t, e, cur, "generation cycle from %s", e)
		assert.Len(t, seen, 5)

		assert.NotEqual(t, e.Generates(), e.Controls())
		assert.Equal(t, e, e.Generates().GeneratedBy())
		assert.Equal(t, e, e.Controls().ControlledBy())
	}
}

func TestRelationCoversEveryPair(t *testing.T) {
	for _, a := range Elements {
		for _, b := range Elements {
			rel := RelationBetween(a, b)
			if a == b {
				assert.Equal(t, RelationSame, rel)
				continue
			}
			assert.True(t, rel.IsGeneration() || rel.IsControl(), "%s→%s got %s", a, b, rel)
		}
	}
	assert.Equal(t, RelationNone, RelationBetween("aether", Wood))
}

func TestStemAndBranchTables(t *testing.T) {
	assert.Equal(t, Wood, Gap.Element())
	assert.Equal(t, Yang, Gap.YinYang())
	assert.Equal(t, Water, Gye.Element())
	assert.Equal(t, Yin, Gye.YinYang())
	assert.Equal(t, Water, Ja.Element())
	assert.Equal(t, Earth, Sul.Element())

	st, ok := ParseStem("경")
	require.True(t, ok)
	assert.Equal(t, Gyeong, st)
	_, ok = ParseBranch("x")
	assert.False(t, ok)

	assert.Equal(t, Hae, Ja.Offset(-1))
	assert.Equal(t, Gap, Gye.Offset(1))
}

func TestSexagenaryCycle(t *testing.T) {
	assert.Equal(t, Pillar{Stem: Gap, Branch: Ja}, PillarAt(0))
	assert.Equal(t, Pillar{Stem: Gye, Branch: Hae}, PillarAt(59))
	assert.Equal(t, PillarAt(0), PillarAt(60))
	assert.Equal(t, PillarAt(59), PillarAt(-1))

	for i := 0; i < 60; i++ {
		assert.Equal(t, i, PillarAt(i).SexagenaryIndex())
	}
	assert.Equal(t, -1, Pillar{Stem: Gap, Branch: Chuk}.SexagenaryIndex())
	assert.Equal(t, PillarAt(5), PillarAt(3).Advance(2))
}

func TestElementCounts(t *testing.T) {
	c := ElementCounts{Wood: 1, Fire: 3, Earth: 0, Metal: 3, Water: 1}
	d, ok := c.Dominant()
	require.True(t, ok)
	assert.Equal(t, Fire, d)
	assert.Equal(t, 8, c.Total())

	_, ok = ElementCounts{}.Dominant()
	assert.False(t, ok)

	p := newProfile(t, "甲子", "丙寅", "戊辰", "庚申", ElementCounts{})
	counted := ElementCounts{Wood: 2, Fire: 1, Earth: 2, Metal: 2, Water: 1}
	assert.Equal(t, counted, CountPillars(p.Pillars))
	assert.Equal(t, counted, p.ResolvedElements())

	p.Elements = ElementCounts{Water: 4}
	assert.Equal(t, ElementCounts{Water: 4}, p.ResolvedElements())
}
