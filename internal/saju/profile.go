// internal/saju/profile.go
// Resolved Four Pillars profile handed to the engine by the calendar collaborator

package saju

// DayMaster is the heavenly stem of the day pillar
type DayMaster struct {
	Name    Stem    `json:"name" validate:"required,stem"`
	Element Element `json:"element" validate:"required,oneof=wood fire earth metal water"`
	YinYang YinYang `json:"yinYang" validate:"required,oneof=yang yin"`
}

// Pillars holds the four stem/branch pairs
type Pillars struct {
	Year  Pillar `json:"year" validate:"required"`
	Month Pillar `json:"month" validate:"required"`
	Day   Pillar `json:"day" validate:"required"`
	Time  Pillar `json:"time" validate:"required"`
}

// All returns the pillars in year, month, day, time order
func (p Pillars) All() [4]Pillar {
	return [4]Pillar{p.Year, p.Month, p.Day, p.Time}
}

// ElementCounts is the five-element distribution of a chart
type ElementCounts struct {
	Wood  int `json:"wood" validate:"min=0"`
	Fire  int `json:"fire" validate:"min=0"`
	Earth int `json:"earth" validate:"min=0"`
	Metal int `json:"metal" validate:"min=0"`
	Water int `json:"water" validate:"min=0"`
}

// Count returns the count for e
func (c ElementCounts) Count(e Element) int {
	switch e {
	case Wood:
		return c.Wood
	case Fire:
		return c.Fire
	case Earth:
		return c.Earth
	case Metal:
		return c.Metal
	case Water:
		return c.Water
	}
	return 0
}

// Total sums all five counts
func (c ElementCounts) Total() int {
	return c.Wood + c.Fire + c.Earth + c.Metal + c.Water
}

// Dominant returns the element with the highest count.
// Ties resolve in generation order; an empty distribution has no dominant element.
func (c ElementCounts) Dominant() (Element, bool) {
	best, bestCount := Element(""), 0
	for _, e := range Elements {
		if n := c.Count(e); n > bestCount {
			best, bestCount = e, n
		}
	}
	return best, bestCount > 0
}

// CountPillars derives an element distribution from the eight stems and branches
func CountPillars(p Pillars) ElementCounts {
	var c ElementCounts
	add := func(e Element) {
		switch e {
		case Wood:
			c.Wood++
		case Fire:
			c.Fire++
		case Earth:
			c.Earth++
		case Metal:
			c.Metal++
		case Water:
			c.Water++
		}
	}
	for _, pl := range p.All() {
		add(pl.Stem.Element())
		add(pl.Branch.Element())
	}
	return c
}

// Profile is a fully resolved Saju chart.
// The optional fields are filled by the upstream calculator when it has them.
type Profile struct {
	DayMaster DayMaster     `json:"dayMaster" validate:"required"`
	Pillars   Pillars       `json:"pillars" validate:"required"`
	Elements  ElementCounts `json:"elements"`

	TenGods   map[TenGod]int   `json:"tenGods,omitempty"`
	Geokguk   Geokguk          `json:"geokguk,omitempty"`
	Yongsin   Element          `json:"yongsin,omitempty" validate:"omitempty,oneof=wood fire earth metal water"`
	Shinsal   []Shinsal        `json:"shinsal,omitempty"`
	Relations []BranchRelation `json:"relations,omitempty"`
}

// HasDayMaster reports whether the day master was resolved
func (p Profile) HasDayMaster() bool {
	return p.DayMaster.Element.Valid()
}

// DominantElement returns the strongest element of the distribution
func (p Profile) DominantElement() (Element, bool) {
	return p.ResolvedElements().Dominant()
}

// ResolvedElements returns the supplied distribution, or counts the pillars when none was supplied
func (p Profile) ResolvedElements() ElementCounts {
	if p.Elements.Total() > 0 {
		return p.Elements
	}
	return CountPillars(p.Pillars)
}
