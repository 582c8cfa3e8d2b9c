// internal/matrix/cell.go
package matrix

import "fmt"

// Level is the qualitative strength of an interaction
type Level string

const (
	Conflict Level = "conflict"
	Tension  Level = "tension"
	Neutral  Level = "neutral"
	Harmony  Level = "harmony"
	Synergy  Level = "synergy"
)

// Levels in ascending order
var Levels = []Level{Conflict, Tension, Neutral, Harmony, Synergy}

// Rank orders levels from conflict (0) to synergy (4)
func (l Level) Rank() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// LevelBand is the score range a level covers
type LevelBand struct {
	Level Level `json:"level"`
	Min   int   `json:"min"`
	Max   int   `json:"max"`
}

// Bands overlap at their edges: a score of 4 or 6 sits in two bands
var bands = []LevelBand{
	{Conflict, 0, 2},
	{Tension, 2, 4},
	{Neutral, 4, 6},
	{Harmony, 6, 8},
	{Synergy, 9, 10},
}

// Bands returns the published score band of every level
func Bands() []LevelBand {
	out := make([]LevelBand, len(bands))
	copy(out, bands)
	return out
}

func bandOf(l Level) LevelBand {
	for _, b := range bands {
		if b.Level == l {
			return b
		}
	}
	return LevelBand{}
}

var icons = map[Level]string{
	Synergy:  "🌟",
	Harmony:  "✨",
	Neutral:  "⚖️",
	Tension:  "⚡",
	Conflict: "🔥",
}

var levelWords = map[Level][2]string{
	Synergy:  {"시너지", "powerful synergy"},
	Harmony:  {"조화", "natural harmony"},
	Neutral:  {"균형", "steady balance"},
	Tension:  {"긴장", "creative tension"},
	Conflict: {"충돌", "open conflict"},
}

// interactionCell is the full table record. It never leaves the package as is.
type interactionCell struct {
	level     Level
	score     int
	icon      string
	keyword   string
	keywordEn string
}

// grid codes: upper case is the band's middle, lower case its edge
var codes = map[rune]struct {
	level Level
	score int
}{
	'S': {Synergy, 9}, 's': {Synergy, 10},
	'H': {Harmony, 7}, 'h': {Harmony, 8},
	'N': {Neutral, 5}, 'n': {Neutral, 6},
	'T': {Tension, 3}, 't': {Tension, 2},
	'C': {Conflict, 1}, 'c': {Conflict, 0},
}

func decodeCell(code rune, row, col axisValue) (interactionCell, error) {
	c, ok := codes[code]
	if !ok {
		return interactionCell{}, fmt.Errorf("unknown cell code %q at %s/%s", code, row.key, col.key)
	}
	words := levelWords[c.level]
	return interactionCell{
		level:     c.level,
		score:     c.score,
		icon:      icons[c.level],
		keyword:   fmt.Sprintf("%s × %s %s", row.ko, col.ko, words[0]),
		keywordEn: fmt.Sprintf("%s with %s: %s", row.en, col.en, words[1]),
	}, nil
}
