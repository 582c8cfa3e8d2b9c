// internal/matrix/facts.go
package matrix

import (
	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

// pillar position to the house it is read against in layer 6
var pillarHouses = [4]int{4, 10, 7, 5}

// SajuFacts are the Saju-side values the matrix addresses. Empty fields skip their layers.
type SajuFacts struct {
	DayMaster      saju.Element          `json:"dayMaster,omitempty"`
	DominantTenGod saju.TenGod           `json:"dominantTenGod,omitempty"`
	Geokguk        saju.Geokguk          `json:"geokguk,omitempty"`
	Yongsin        saju.Element          `json:"yongsin,omitempty"`
	Shinsal        []saju.Shinsal        `json:"shinsal,omitempty"`
	Relations      []saju.BranchRelation `json:"relations,omitempty"`
	PillarStages   [4]saju.Stage         `json:"pillarStages"`
	Cycles         []Cycle               `json:"cycles,omitempty"`
}

// AstroFacts are the western values the matrix addresses
type AstroFacts struct {
	Dominant     astro.Element            `json:"dominant,omitempty"`
	Planets      []astro.PlanetPosition   `json:"planets,omitempty"`
	Aspects      []astro.AspectType       `json:"aspects,omitempty"`
	Transits     []astro.TransitState     `json:"transits,omitempty"`
	Progressions []astro.ProgressionType  `json:"progressions,omitempty"`
	Harmonics    []int                    `json:"harmonics,omitempty"`
	Asteroids    []astro.AsteroidPosition `json:"asteroids,omitempty"`
	Points       []astro.PointPosition    `json:"points,omitempty"`
}

// SajuFactsFrom derives matrix facts from a chart, filling what the caller left out
func SajuFactsFrom(p saju.Profile) SajuFacts {
	f := SajuFacts{
		Shinsal:   saju.ResolvedShinsal(p),
		Relations: saju.ResolvedRelations(p),
		Cycles:    []Cycle{CycleDaeun, CycleSeun},
	}
	if !p.HasDayMaster() {
		return f
	}
	f.DayMaster = p.DayMaster.Element
	f.PillarStages = saju.PillarStages(p)
	if g, ok := saju.DominantTenGod(saju.ResolvedTenGods(p)); ok {
		f.DominantTenGod = g
	}
	f.Geokguk = p.Geokguk
	if !f.Geokguk.Valid() {
		f.Geokguk = geokgukFor(f.DominantTenGod)
	}
	if y, ok := saju.ResolvedYongsin(p); ok {
		f.Yongsin = y
	}
	return f
}

// geokgukFor names the pattern a dominant ten god suggests. Companions form none.
func geokgukFor(g saju.TenGod) saju.Geokguk {
	switch g {
	case saju.Bigyeon, saju.Geopjae, "":
		return ""
	}
	k := saju.Geokguk(g)
	if !k.Valid() {
		return ""
	}
	return k
}

// AstroFactsFrom derives matrix facts from a natal chart. A nil chart yields empty facts.
func AstroFactsFrom(p *astro.Profile) AstroFacts {
	if p == nil {
		return AstroFacts{}
	}
	f := AstroFacts{
		Planets:      p.PlanetInfo(),
		Progressions: p.Progressions,
		Harmonics:    p.Harmonics,
		Asteroids:    p.Asteroids,
		Points:       p.ExtraPoints,
	}
	if d, ok := p.DominantElement(); ok {
		f.Dominant = d
	}

	seenAspect := make(map[astro.AspectType]bool)
	for _, a := range p.Aspects {
		if !seenAspect[a.Type] {
			seenAspect[a.Type] = true
			f.Aspects = append(f.Aspects, a.Type)
		}
	}

	seenTransit := make(map[astro.TransitState]bool)
	addTransit := func(t astro.TransitState) {
		if !seenTransit[t] {
			seenTransit[t] = true
			f.Transits = append(f.Transits, t)
		}
	}
	for _, t := range p.Transits {
		addTransit(t)
	}
	for _, pl := range p.Planets {
		if !pl.Retrograde {
			continue
		}
		if t, ok := astro.RetrogradeState(pl.Name); ok {
			addTransit(t)
		}
	}
	return f
}

func (f AstroFacts) planetHouse(name astro.Planet) int {
	for _, pl := range f.Planets {
		if pl.Name == name {
			return pl.House
		}
	}
	return 0
}
