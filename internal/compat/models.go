// internal/compat/models.go
package compat

import (
	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

// Person pairs a Saju chart with an optional natal chart
type Person struct {
	Saju  saju.Profile   `json:"saju" validate:"required"`
	Astro *astro.Profile `json:"astro,omitempty" validate:"omitempty"`
}

// Result is the combined compatibility report for a pair
type Result struct {
	OverallScore     int       `json:"overallScore"`
	Breakdown        Breakdown `json:"breakdown"`
	Strengths        []string  `json:"strengths"`
	Challenges       []string  `json:"challenges"`
	Advice           string    `json:"advice"`
	Details          Details   `json:"details"`
	DataCompleteness int       `json:"dataCompleteness"`
}

// Breakdown holds the headline sub-scores, each 0..100
type Breakdown struct {
	Saju             int `json:"saju"`
	Astrology        int `json:"astrology"`
	ElementalHarmony int `json:"elementalHarmony"`
	YinYangBalance   int `json:"yinYangBalance"`
}

// Details carries the per-tradition sub-scores
type Details struct {
	SajuAnalysis      SajuAnalysis       `json:"sajuAnalysis"`
	AstrologyAnalysis *AstrologyAnalysis `json:"astrologyAnalysis,omitempty"`
}

// SajuAnalysis holds the eastern sub-scores
type SajuAnalysis struct {
	DayMasterHarmony int `json:"dayMasterHarmony"`
	YinYangBalance   int `json:"yinYangBalance"`
	PillarSynergy    int `json:"pillarSynergy"`
	ElementBalance   int `json:"elementBalance"`
}

// AstrologyAnalysis holds the western sub-scores. A nil pointer marks a sub-score
// that could not be computed from the supplied placements.
type AstrologyAnalysis struct {
	SunMoonHarmony     *int `json:"sunMoonHarmony,omitempty"`
	VenusMarsSynergy   *int `json:"venusMarsSynergy,omitempty"`
	ElementalAlignment *int `json:"elementalAlignment,omitempty"`
}
