// internal/astro/chart.go
// Western natal chart primitives handed to the engine by the ephemeris collaborator

package astro

// Element is one of the four western elements
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Elements in table order
var Elements = []Element{Fire, Earth, Air, Water}

// Valid reports whether e is a known western element
func (e Element) Valid() bool {
	switch e {
	case Fire, Earth, Air, Water:
		return true
	}
	return false
}

// Sign is a zodiac sign
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs in zodiac order
var Signs = []Sign{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}

// Index returns the zodiac position of s, or -1
func (s Sign) Index() int {
	for i, sg := range Signs {
		if sg == s {
			return i
		}
	}
	return -1
}

// Element cycles fire, earth, air, water through the zodiac
func (s Sign) Element() Element {
	i := s.Index()
	if i < 0 {
		return ""
	}
	return Elements[i%4]
}

// Planet is one of the ten classical and modern bodies
type Planet string

const (
	Sun     Planet = "sun"
	Moon    Planet = "moon"
	Mercury Planet = "mercury"
	Venus   Planet = "venus"
	Mars    Planet = "mars"
	Jupiter Planet = "jupiter"
	Saturn  Planet = "saturn"
	Uranus  Planet = "uranus"
	Neptune Planet = "neptune"
	Pluto   Planet = "pluto"
)

// Planets in table order
var Planets = []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// Valid reports whether p is a known planet
func (p Planet) Valid() bool {
	for _, pl := range Planets {
		if pl == p {
			return true
		}
	}
	return false
}

// AspectType is a planetary angular relation
type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Sextile     AspectType = "sextile"
	Square      AspectType = "square"
	Trine       AspectType = "trine"
	Opposition  AspectType = "opposition"
	Quincunx    AspectType = "quincunx"
	Semisextile AspectType = "semisextile"
)

// AspectTypes in table order
var AspectTypes = []AspectType{Conjunction, Sextile, Square, Trine, Opposition, Quincunx, Semisextile}

// ProgressionType is a predictive technique summarised by the upstream calculator
type ProgressionType string

const (
	SecondaryProgression ProgressionType = "secondary"
	SolarArc             ProgressionType = "solar_arc"
	SolarReturn          ProgressionType = "solar_return"
	LunarReturn          ProgressionType = "lunar_return"
	ProgressedMoon       ProgressionType = "progressed_moon"
)

// ProgressionTypes in table order
var ProgressionTypes = []ProgressionType{SecondaryProgression, SolarArc, SolarReturn, LunarReturn, ProgressedMoon}

// TransitState is an active transit condition
type TransitState string

const (
	JupiterReturn     TransitState = "jupiter_return"
	SaturnReturn      TransitState = "saturn_return"
	MercuryRetrograde TransitState = "mercury_retrograde"
	VenusRetrograde   TransitState = "venus_retrograde"
	MarsRetrograde    TransitState = "mars_retrograde"
	Eclipse           TransitState = "eclipse"
	Direct            TransitState = "direct"
)

// TransitStates in table order
var TransitStates = []TransitState{JupiterReturn, SaturnReturn, MercuryRetrograde, VenusRetrograde, MarsRetrograde, Eclipse, Direct}

// RetrogradeState maps a natal retrograde planet to its transit state
func RetrogradeState(p Planet) (TransitState, bool) {
	switch p {
	case Mercury:
		return MercuryRetrograde, true
	case Venus:
		return VenusRetrograde, true
	case Mars:
		return MarsRetrograde, true
	}
	return "", false
}

// Asteroid is one of the four minor bodies
type Asteroid string

const (
	Ceres  Asteroid = "ceres"
	Pallas Asteroid = "pallas"
	Juno   Asteroid = "juno"
	Vesta  Asteroid = "vesta"
)

// Asteroids in table order
var Asteroids = []Asteroid{Ceres, Pallas, Juno, Vesta}

// Point is a calculated sensitive point
type Point string

const (
	Chiron        Point = "chiron"
	Lilith        Point = "lilith"
	PartOfFortune Point = "part_of_fortune"
	Vertex        Point = "vertex"
	NorthNode     Point = "north_node"
	SouthNode     Point = "south_node"
)

// Points in table order
var Points = []Point{Chiron, Lilith, PartOfFortune, Vertex, NorthNode, SouthNode}
