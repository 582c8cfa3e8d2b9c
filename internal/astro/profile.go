// internal/astro/profile.go

package astro

// Placement is a body's sign and that sign's element
type Placement struct {
	Sign    Sign    `json:"sign" validate:"required,oneof=aries taurus gemini cancer leo virgo libra scorpio sagittarius capricorn aquarius pisces"`
	Element Element `json:"element,omitempty" validate:"omitempty,oneof=fire earth air water"`
}

// ResolvedElement returns the given element or derives it from the sign
func (p Placement) ResolvedElement() Element {
	if p.Element.Valid() {
		return p.Element
	}
	return p.Sign.Element()
}

// PlanetPosition is one planet of the natal chart
type PlanetPosition struct {
	Name       Planet `json:"name" validate:"required"`
	Sign       Sign   `json:"sign" validate:"required"`
	House      int    `json:"house,omitempty" validate:"omitempty,min=1,max=12"`
	Retrograde bool   `json:"retrograde,omitempty"`
}

// HouseCusp is the sign on a house cusp
type HouseCusp struct {
	Index int  `json:"index" validate:"min=1,max=12"`
	Sign  Sign `json:"sign" validate:"required"`
}

// Aspect is an angular relation between two bodies
type Aspect struct {
	Type    AspectType `json:"type" validate:"required"`
	PlanetA string     `json:"planetA,omitempty"`
	PlanetB string     `json:"planetB,omitempty"`
	Orb     float64    `json:"orb,omitempty"`
}

// AsteroidPosition places a minor body
type AsteroidPosition struct {
	Name  Asteroid `json:"name" validate:"required"`
	Sign  Sign     `json:"sign,omitempty"`
	House int      `json:"house,omitempty" validate:"omitempty,min=1,max=12"`
}

// PointPosition places a sensitive point
type PointPosition struct {
	Name  Point `json:"name" validate:"required"`
	Sign  Sign  `json:"sign,omitempty"`
	House int   `json:"house,omitempty" validate:"omitempty,min=1,max=12"`
}

// Profile is a resolved natal chart. Everything past the four core placements is optional.
type Profile struct {
	Sun   Placement `json:"sun" validate:"required"`
	Moon  Placement `json:"moon" validate:"required"`
	Venus Placement `json:"venus" validate:"required"`
	Mars  Placement `json:"mars" validate:"required"`

	Planets      []PlanetPosition   `json:"planets,omitempty" validate:"omitempty,dive"`
	Houses       []HouseCusp        `json:"houses,omitempty" validate:"omitempty,dive"`
	Ascendant    Sign               `json:"ascendant,omitempty"`
	Midheaven    Sign               `json:"midheaven,omitempty"`
	Aspects      []Aspect           `json:"aspects,omitempty" validate:"omitempty,dive"`
	Progressions []ProgressionType  `json:"progressions,omitempty"`
	Transits     []TransitState     `json:"transits,omitempty"`
	Asteroids    []AsteroidPosition `json:"asteroids,omitempty" validate:"omitempty,dive"`
	ExtraPoints  []PointPosition    `json:"extraPoints,omitempty" validate:"omitempty,dive"`
	Harmonics    []int              `json:"harmonics,omitempty"`
}

// Core returns the four required placements keyed by planet
func (p Profile) Core() map[Planet]Placement {
	return map[Planet]Placement{Sun: p.Sun, Moon: p.Moon, Venus: p.Venus, Mars: p.Mars}
}

// ElementCounts tallies western elements over the core placements, the ascendant and any
// additional planets not already counted.
func (p Profile) ElementCounts() map[Element]int {
	counts := make(map[Element]int, 4)
	for _, pl := range []Placement{p.Sun, p.Moon, p.Venus, p.Mars} {
		if e := pl.ResolvedElement(); e.Valid() {
			counts[e]++
		}
	}
	if e := p.Ascendant.Element(); e.Valid() {
		counts[e]++
	}
	for _, pl := range p.Planets {
		switch pl.Name {
		case Sun, Moon, Venus, Mars:
			continue
		}
		if e := pl.Sign.Element(); e.Valid() {
			counts[e]++
		}
	}
	return counts
}

// DominantElement returns the most represented element, ties in table order
func (p Profile) DominantElement() (Element, bool) {
	counts := p.ElementCounts()
	best, bestCount := Element(""), 0
	for _, e := range Elements {
		if counts[e] > bestCount {
			best, bestCount = e, counts[e]
		}
	}
	return best, bestCount > 0
}

// PlanetInfo returns every known planet with its house, core placements first.
// Core planets take their house from the planets list when present.
func (p Profile) PlanetInfo() []PlanetPosition {
	byName := make(map[Planet]PlanetPosition, len(p.Planets))
	for _, pl := range p.Planets {
		if pl.Name.Valid() {
			byName[pl.Name] = pl
		}
	}
	out := make([]PlanetPosition, 0, len(Planets))
	for _, name := range Planets {
		if pos, ok := byName[name]; ok {
			out = append(out, pos)
			continue
		}
		if core, ok := p.Core()[name]; ok && core.Sign.Index() >= 0 {
			out = append(out, PlanetPosition{Name: name, Sign: core.Sign})
		}
	}
	return out
}

// Harmony scores two western elements: same 90, complementary 80, neutral 55, opposed 35
func Harmony(a, b Element) int {
	if !a.Valid() || !b.Valid() {
		return 50
	}
	if a == b {
		return 90
	}
	switch pair(a, b) {
	case pair(Fire, Air), pair(Earth, Water):
		return 80
	case pair(Fire, Water), pair(Earth, Air):
		return 35
	}
	return 55
}

func pair(a, b Element) [2]Element {
	if a > b {
		a, b = b, a
	}
	return [2]Element{a, b}
}
