// internal/saju/yongsin.go
// Yongsin (balancing element) and Huisin (its supporter)

package saju

import "fmt"

const (
	// WeakThreshold and below marks a weak day master
	WeakThreshold = 2
	// StrongThreshold and above marks a strong day master. Counts in between resolve as weak.
	StrongThreshold = 4
)

// Strength classifies the day-master element count
type Strength string

const (
	Weak   Strength = "weak"
	Strong Strength = "strong"
)

// Yongsin is the resolved balancing element of a chart
type Yongsin struct {
	Element        Element  `json:"element"`
	Strength       Strength `json:"strength"`
	DayMasterCount int      `json:"dayMasterCount"`
}

// ClassifyStrength applies the fixed thresholds to a day-master count
func ClassifyStrength(count int) Strength {
	if count >= StrongThreshold {
		return Strong
	}
	return Weak
}

// CalculateYongsin resolves the element a chart needs.
// A weak day master is supported by the element generating it; a strong one is restrained by the
// element controlling it. ok is false when the profile has no day master.
func CalculateYongsin(p Profile) (Yongsin, bool) {
	dm := p.DayMaster.Element
	if !dm.Valid() {
		return Yongsin{}, false
	}
	count := p.ResolvedElements().Count(dm)
	y := Yongsin{Strength: ClassifyStrength(count), DayMasterCount: count}
	if y.Strength == Strong {
		y.Element = dm.ControlledBy()
	} else {
		y.Element = dm.GeneratedBy()
	}
	return y, true
}

// CalculateHuisin returns the element that generates yongsin, or earth for an unknown tag
func CalculateHuisin(_ Profile, yongsin Element) Element {
	if !yongsin.Valid() {
		return Earth
	}
	return yongsin.GeneratedBy()
}

// ResolvedYongsin prefers the caller-provided yongsin and falls back to the computed one
func ResolvedYongsin(p Profile) (Element, bool) {
	if p.Yongsin.Valid() {
		return p.Yongsin, true
	}
	y, ok := CalculateYongsin(p)
	return y.Element, ok
}

// YongsinCompatibility compares each person's needs against the other's dominant element
type YongsinCompatibility struct {
	Person1Yongsin  Element `json:"person1Yongsin"`
	Person1Huisin   Element `json:"person1Huisin"`
	Person2Yongsin  Element `json:"person2Yongsin"`
	Person2Huisin   Element `json:"person2Huisin"`
	Person1Dominant Element `json:"person1Dominant,omitempty"`
	Person2Dominant Element `json:"person2Dominant,omitempty"`
	Compatibility   int     `json:"compatibility"`
	MutualSupport   bool    `json:"mutualSupport"`
	Description     string  `json:"description"`
}

// AnalyzeYongsinCompatibility scores how well each chart supplies what the other needs.
// ok is false when either profile lacks a day master.
func AnalyzeYongsinCompatibility(p1, p2 Profile) (*YongsinCompatibility, bool) {
	y1, ok1 := ResolvedYongsin(p1)
	y2, ok2 := ResolvedYongsin(p2)
	if !ok1 || !ok2 {
		return nil, false
	}

	res := &YongsinCompatibility{
		Person1Yongsin: y1,
		Person1Huisin:  CalculateHuisin(p1, y1),
		Person2Yongsin: y2,
		Person2Huisin:  CalculateHuisin(p2, y2),
	}
	d1, _ := p1.DominantElement()
	d2, _ := p2.DominantElement()
	res.Person1Dominant, res.Person2Dominant = d1, d2

	score := 50
	gives1 := d2 == res.Person1Yongsin
	gives2 := d1 == res.Person2Yongsin
	if gives1 {
		score += 25
	}
	if gives2 {
		score += 25
	}
	if d2 != "" && d2 == res.Person1Huisin {
		score += 10
	}
	if d1 != "" && d1 == res.Person2Huisin {
		score += 10
	}
	res.Compatibility = clampInt(score, 0, 100)
	res.MutualSupport = gives1 && gives2

	switch {
	case res.MutualSupport:
		res.Description = fmt.Sprintf("Each chart supplies the other's needed element (%s and %s)", y1, y2)
	case gives1:
		res.Description = fmt.Sprintf("Person 2's strong %s supplies what person 1 needs", d2)
	case gives2:
		res.Description = fmt.Sprintf("Person 1's strong %s supplies what person 2 needs", d1)
	default:
		res.Description = "Balancing needs are met independently rather than through each other"
	}
	return res, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
