// internal/saju/element.go
// Five elements and their generation/control cycles

package saju

// Element is one of the five Saju elements
type Element string

const (
	Wood  Element = "wood"
	Fire  Element = "fire"
	Earth Element = "earth"
	Metal Element = "metal"
	Water Element = "water"
)

// Elements lists the five elements in generation order
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

// ElementRelation describes how one element acts on another
type ElementRelation string

const (
	RelationSame         ElementRelation = "same"
	RelationGenerates    ElementRelation = "generates"
	RelationGeneratedBy  ElementRelation = "generated_by"
	RelationControls     ElementRelation = "controls"
	RelationControlledBy ElementRelation = "controlled_by"
	RelationNone         ElementRelation = "none"
)

var generates = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

var controls = map[Element]Element{
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
	Metal: Wood,
}

var generatedBy = invert(generates)
var controlledBy = invert(controls)

func invert(m map[Element]Element) map[Element]Element {
	out := make(map[Element]Element, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Valid reports whether e is one of the five elements
func (e Element) Valid() bool {
	_, ok := generates[e]
	return ok
}

// Index returns the position of e in generation order, or -1
func (e Element) Index() int {
	for i, el := range Elements {
		if el == e {
			return i
		}
	}
	return -1
}

// Generates returns the element e feeds
func (e Element) Generates() Element { return generates[e] }

// Controls returns the element e restrains
func (e Element) Controls() Element { return controls[e] }

// GeneratedBy returns the element that feeds e
func (e Element) GeneratedBy() Element { return generatedBy[e] }

// ControlledBy returns the element that restrains e
func (e Element) ControlledBy() Element { return controlledBy[e] }

// RelationBetween reports how a acts on b.
// Unknown tags yield RelationNone.
func RelationBetween(a, b Element) ElementRelation {
	if !a.Valid() || !b.Valid() {
		return RelationNone
	}
	switch {
	case a == b:
		return RelationSame
	case a.Generates() == b:
		return RelationGenerates
	case b.Generates() == a:
		return RelationGeneratedBy
	case a.Controls() == b:
		return RelationControls
	case b.Controls() == a:
		return RelationControlledBy
	}
	return RelationNone
}

// IsGeneration reports a generation relation in either direction
func (r ElementRelation) IsGeneration() bool {
	return r == RelationGenerates || r == RelationGeneratedBy
}

// IsControl reports a control relation in either direction
func (r ElementRelation) IsControl() bool {
	return r == RelationControls || r == RelationControlledBy
}

// YinYang is the polarity of a stem or branch
type YinYang string

const (
	Yang YinYang = "yang"
	Yin  YinYang = "yin"
)

// Valid reports whether y is a known polarity
func (y YinYang) Valid() bool {
	return y == Yang || y == Yin
}

// Opposite returns the other polarity
func (y YinYang) Opposite() YinYang {
	if y == Yang {
		return Yin
	}
	return Yang
}
