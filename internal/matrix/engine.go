// internal/matrix/engine.go
package matrix

import (
	"math"
	"sort"
	"strconv"

	"github.com/imadgeboyega/destiny-fusion/internal/astro"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

const (
	DefaultTopInsights = 5
	MaxTopInsights     = 100
)

// Options tunes how much of the report is returned
type Options struct {
	TopInsights int `json:"topInsights,omitempty" validate:"omitempty,min=1,max=100"`
}

// Insight is one addressed cell as it may be shown to a caller
type Insight struct {
	Layer     int    `json:"layer"`
	LayerName string `json:"layerName"`
	Level     Level  `json:"level"`
	Score     int    `json:"score"`
	Icon      string `json:"icon"`
	Keyword   string `json:"keyword"`
	KeywordEn string `json:"keywordEn"`
	Domain    Domain `json:"domain"`
}

// DomainScore is the mean score of the cells that fall in one life domain
type DomainScore struct {
	Domain Domain `json:"domain"`
	Score  int    `json:"score"`
	Cells  int    `json:"cells"`
}

// Report is the outcome of addressing every layer for one subject
type Report struct {
	OverallScore     int           `json:"overallScore"`
	TopInsights      []Insight     `json:"topInsights"`
	DomainAnalysis   []DomainScore `json:"domainAnalysis"`
	DataCompleteness int           `json:"dataCompleteness"`
	LayersEvaluated  []int         `json:"layersEvaluated"`
	CellsAddressed   int           `json:"cellsAddressed"`
}

type addressed struct {
	layer  *layer
	table  int
	row    int
	col    int
	cell   interactionCell
	domain Domain
}

type collector struct {
	layer *layer
	cells []addressed
	seen  map[[4]int]bool
}

func (c *collector) add(tableName, row, col string) {
	for ti, t := range c.layer.tables {
		if t.name != tableName {
			continue
		}
		cell, r, k, ok := t.lookup(row, col)
		if !ok {
			return
		}
		key := [4]int{c.layer.id, ti, r, k}
		if c.seen[key] {
			return
		}
		c.seen[key] = true
		d := t.rows[r].domain
		if d == "" {
			d = t.cols[k].domain
		}
		if d == "" {
			d = c.layer.domain
		}
		c.cells = append(c.cells, addressed{layer: c.layer, table: ti, row: r, col: k, cell: cell, domain: d})
		return
	}
}

type addresser func(c *collector, s SajuFacts, a AstroFacts)

var addressers = map[int]addresser{
	1: func(c *collector, s SajuFacts, a AstroFacts) {
		c.add("elements", string(s.DayMaster), string(a.Dominant))
	},
	2: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, pl := range a.Planets {
			if isCore(pl.Name) {
				c.add("tengod-planet", string(s.DominantTenGod), string(pl.Name))
			}
		}
	},
	3: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, pl := range a.Planets {
			if pl.House > 0 {
				c.add("tengod-house", string(s.DominantTenGod), strconv.Itoa(pl.House))
			}
		}
	},
	4: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, cy := range s.Cycles {
			for _, t := range a.Transits {
				c.add("cycle-transit", string(cy), string(t))
			}
		}
	},
	5: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, r := range s.Relations {
			for _, asp := range a.Aspects {
				c.add("relation-aspect", string(r), string(asp))
			}
		}
	},
	6: func(c *collector, s SajuFacts, a AstroFacts) {
		for i, st := range s.PillarStages {
			if st != "" {
				c.add("stage-house", string(st), strconv.Itoa(pillarHouses[i]))
			}
		}
		if day := s.PillarStages[2]; day != "" {
			if h := a.planetHouse(astro.Sun); h > 0 {
				c.add("stage-house", string(day), strconv.Itoa(h))
			}
		}
	},
	7: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, pr := range a.Progressions {
			c.add("pattern-progression", string(s.Geokguk), string(pr))
			if s.Yongsin.Valid() {
				c.add("pattern-progression", yongsinKey(s.Yongsin), string(pr))
			}
		}
		if h, ok := patternHarmonic[s.Geokguk]; ok {
			c.add("harmonic", "harmonic", strconv.Itoa(h))
		}
		for _, h := range a.Harmonics {
			c.add("harmonic", "harmonic", strconv.Itoa(h))
		}
	},
	8: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, sh := range s.Shinsal {
			for _, pl := range a.Planets {
				if isCore(pl.Name) || isAngular(pl.House) {
					c.add("shinsal-planet", string(sh), string(pl.Name))
				}
			}
		}
	},
	9: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, as := range a.Asteroids {
			if as.House > 0 {
				c.add("asteroid-house", string(as.Name), strconv.Itoa(as.House))
			}
			c.add("asteroid-element", string(as.Name), string(s.DayMaster))
		}
	},
	10: func(c *collector, s SajuFacts, a AstroFacts) {
		for _, pt := range a.Points {
			c.add("point-element", string(pt.Name), string(s.DayMaster))
			c.add("point-tengod", string(pt.Name), string(s.DominantTenGod))
		}
	},
}

func isCore(p astro.Planet) bool {
	switch p {
	case astro.Sun, astro.Moon, astro.Venus, astro.Mars:
		return true
	}
	return false
}

func isAngular(house int) bool {
	return house == 1 || house == 4 || house == 7 || house == 10
}

// Calculate addresses every layer with the subject's actual values and composes the report.
// Layers whose facts are missing are skipped and lower the completeness.
func Calculate(s SajuFacts, a AstroFacts, opts Options) *Report {
	top := opts.TopInsights
	if top <= 0 {
		top = DefaultTopInsights
	}
	if top > MaxTopInsights {
		top = MaxTopInsights
	}

	var all []addressed
	var layerMeans []float64
	report := &Report{LayersEvaluated: []int{}}
	for _, l := range layers {
		c := &collector{layer: l, seen: make(map[[4]int]bool)}
		addressers[l.id](c, s, a)
		if len(c.cells) == 0 {
			continue
		}
		sum := 0
		for _, ad := range c.cells {
			sum += ad.cell.score
		}
		layerMeans = append(layerMeans, float64(sum)/float64(len(c.cells)))
		report.LayersEvaluated = append(report.LayersEvaluated, l.id)
		all = append(all, c.cells...)
	}

	report.CellsAddressed = len(all)
	report.DataCompleteness = len(report.LayersEvaluated) * 100 / len(layers)
	if len(layerMeans) > 0 {
		total := 0.0
		for _, m := range layerMeans {
			total += m
		}
		report.OverallScore = clampScore(int(math.Round(total / float64(len(layerMeans)) * 10)))
	}

	sort.Slice(all, func(i, j int) bool {
		x, y := all[i], all[j]
		if x.cell.score != y.cell.score {
			return x.cell.score > y.cell.score
		}
		if x.layer.id != y.layer.id {
			return x.layer.id < y.layer.id
		}
		if x.table != y.table {
			return x.table < y.table
		}
		if x.row != y.row {
			return x.row < y.row
		}
		return x.col < y.col
	})

	if top > len(all) {
		top = len(all)
	}
	report.TopInsights = make([]Insight, 0, top)
	for _, ad := range all {
		if len(report.TopInsights) == top {
			break
		}
		report.TopInsights = append(report.TopInsights, Insight{
			Layer:     ad.layer.id,
			LayerName: ad.layer.name,
			Level:     ad.cell.level,
			Score:     ad.cell.score,
			Icon:      ad.cell.icon,
			Keyword:   ad.cell.keyword,
			KeywordEn: ad.cell.keywordEn,
			Domain:    ad.domain,
		})
	}

	report.DomainAnalysis = domainAnalysis(all)
	return report
}

func domainAnalysis(cells []addressed) []DomainScore {
	sums := make(map[Domain]int)
	counts := make(map[Domain]int)
	for _, ad := range cells {
		sums[ad.domain] += ad.cell.score
		counts[ad.domain]++
	}
	out := []DomainScore{}
	for _, d := range Domains {
		n := counts[d]
		if n == 0 {
			continue
		}
		out = append(out, DomainScore{
			Domain: d,
			Score:  clampScore(int(math.Round(float64(sums[d]) * 10 / float64(n)))),
			Cells:  n,
		})
	}
	return out
}

// CalculateFromProfiles derives facts from both charts and runs Calculate
func CalculateFromProfiles(p saju.Profile, natal *astro.Profile, opts Options) *Report {
	return Calculate(SajuFactsFrom(p), AstroFactsFrom(natal), opts)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
