// internal/matrix/layers.go
// Statically authored interaction grids. Each row string holds one code per column.

package matrix

import "fmt"

type table struct {
	name  string
	rows  []axisValue
	cols  []axisValue
	cells [][]interactionCell
	index map[[2]string][2]int
}

type layer struct {
	id     int
	name   string
	domain Domain
	tables []*table
}

// lookup returns the cell for a row/col key pair
func (t *table) lookup(row, col string) (interactionCell, int, int, bool) {
	pos, ok := t.index[[2]string{row, col}]
	if !ok {
		return interactionCell{}, 0, 0, false
	}
	return t.cells[pos[0]][pos[1]], pos[0], pos[1], true
}

func (t *table) size() int { return len(t.rows) * len(t.cols) }

func (l *layer) size() int {
	n := 0
	for _, t := range l.tables {
		n += t.size()
	}
	return n
}

func newTable(name string, rows, cols []axisValue, grid []string) (*table, error) {
	if len(grid) != len(rows) {
		return nil, fmt.Errorf("table %s: %d grid rows for %d axis values", name, len(grid), len(rows))
	}
	t := &table{
		name:  name,
		rows:  rows,
		cols:  cols,
		cells: make([][]interactionCell, len(rows)),
		index: make(map[[2]string][2]int, len(rows)*len(cols)),
	}
	for i, line := range grid {
		codes := []rune(line)
		if len(codes) != len(cols) {
			return nil, fmt.Errorf("table %s row %s: %d codes for %d columns", name, rows[i].key, len(codes), len(cols))
		}
		t.cells[i] = make([]interactionCell, len(cols))
		for j, code := range codes {
			cell, err := decodeCell(code, rows[i], cols[j])
			if err != nil {
				return nil, fmt.Errorf("table %s: %w", name, err)
			}
			t.cells[i][j] = cell
			t.index[[2]string{rows[i].key, cols[j].key}] = [2]int{i, j}
		}
	}
	return t, nil
}

type tableSpec struct {
	name       string
	rows, cols []axisValue
	grid       []string
}

type layerSpec struct {
	id     int
	name   string
	domain Domain
	tables []tableSpec
}

var layerSpecs = []layerSpec{
	{1, "Element Core", Personality, []tableSpec{{"elements", sajuElementAxis, westernElementAxis, []string{
		"hTSH", // wood
		"sHHc", // fire
		"HsTN", // earth
		"tHSH", // metal
		"CTNs", // water
	}}}},
	{2, "Ten Gods and Planets", Career, []tableSpec{{"tengod-planet", tenGodAxis, planetAxis, []string{
		"SNHNHHTnNT",
		"TNNTsNCHNh",
		"HnShNSTHHN",
		"TNsNhNcSNH",
		"HNHSHsTHTN",
		"NHHhNSHTTN",
		"HTNCsNSTNh",
		"sNHHNHStNN",
		"NHHNTNHSsH",
		"HSNHNSHNHN",
	}}}},
	{3, "Ten Gods and Houses", Career, []tableSpec{{"tengod-house", tenGodAxis, houseAxis, []string{
		"SNHNNNHTNNHN",
		"HtNNTNCsNNHT",
		"HNSNsHNNHNNH",
		"NNsNHTTNHTSN",
		"NsNNHNHSNHhN",
		"NSNhNHHHNHNN",
		"HNNTNTNHNsNT",
		"NHNHNHHNHsHN",
		"NNHNNNTHSNHs",
		"HNHSNHNNSHNH",
	}}}},
	{4, "Timing and Transits", Growth, []tableSpec{{"cycle-transit", cycleAxis, transitAxis, []string{
		"sTNNTtH",
		"STNtTCN",
		"HNTtNTN",
		"HNTNNTn",
	}}}},
	{5, "Branch Relations and Aspects", Love, []tableSpec{{"relation-aspect", relationAxis, aspectAxis, []string{
		"sHTSNNH",
		"SHNSThH",
		"SNTHTNH",
		"TNcNCtN",
		"TNCNtTN",
		"NNTNTTN",
		"NNtNTCN",
	}}}},
	{6, "Life Stages and Houses", Health, []tableSpec{{"stage-house", stageAxis, houseAxis, []string{
		"SHNHsNNHSNHN",
		"HNNNSNHNHNNT",
		"sNHNHNNNHHNN",
		"HsNNNHNHNsHN",
		"sHNNHNNHNSHN",
		"NNNHNHNNHNNH",
		"TNNNNtNNNNNT",
		"TNNTNTNhNNNH",
		"NHNHNNNsNNNH",
		"CNTTNTTNNTNN",
		"NNHNHNNNHNHH",
		"HNNsNHHNNNNN",
	}}}},
	{7, "Patterns and Progressions", Career, []tableSpec{
		{"pattern-progression", patternAxis, progressionAxis, []string{
			"HSHNN",
			"TsNTH",
			"NHSHN",
			"HNsNT",
			"SNHHH",
			"NTHNS",
			"HHNSh",
			"NSTHH",
			"HNSNH", // yongsin wood
			"SHHNN",
			"NHHHN",
			"NSNHT",
			"HNNSH",
		}},
		{"harmonic", harmonicRowAxis, harmonicAxis, []string{
			"sHSNHTHNSNHs",
		}},
	}},
	{8, "Spirits and Planets", Growth, []tableSpec{{"shinsal-planet", shinsalAxis, planetAxis, []string{
		"SHHHNSHNHN",
		"HNsHNHNHHN",
		"NHHNSHTsNN",
		"HhNsHNTHHN",
		"NHHNTNHHsH",
		"TNNTcNCNNT",
		"HTNNsNTHNt",
		"TNNTCNTNNC",
		"NHNSsNNHHT",
		"NTHNTNTHSt",
		"TNNTtNCNNT",
		"TTNtNNTNNN",
	}}}},
	{9, "Asteroids", Health, []tableSpec{
		{"asteroid-house", asteroidAxis, houseAxis, []string{
			"HNNSNsHNNNNH",
			"NNHNNHNHSsHN",
			"NNNNSNsHNNNN",
			"sNNHNHNNHNNS",
		}},
		{"asteroid-element", asteroidAxis, sajuElementAxis, []string{
			"HNSNH",
			"NHNSH",
			"HSNNH",
			"NsHNN",
		}},
	}},
	{10, "Sensitive Points", Growth, []tableSpec{
		{"point-element", pointAxis, sajuElementAxis, []string{
			"HNNTH",
			"TsNHT",
			"HNSHN",
			"NHNNS",
			"SHNHH",
			"NNHNT",
		}},
		{"point-tengod", pointAxis, tenGodAxis, []string{
			"NNHTNNTNSH",
			"THNsNNTNHT",
			"NNHNSsNHNN",
			"HNNNHNNSNH",
			"HNSNNHNHHS",
			"sTNNTNHNNN",
		}},
	}},
}

func buildLayers(specs []layerSpec) ([]*layer, error) {
	out := make([]*layer, 0, len(specs))
	for _, ls := range specs {
		l := &layer{id: ls.id, name: ls.name, domain: ls.domain}
		for _, ts := range ls.tables {
			t, err := newTable(ts.name, ts.rows, ts.cols, ts.grid)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", ls.id, err)
			}
			l.tables = append(l.tables, t)
		}
		out = append(out, l)
	}
	return out, nil
}

// layers is decoded once; a malformed grid is a programming error
var layers = func() []*layer {
	ls, err := buildLayers(layerSpecs)
	if err != nil {
		panic(err)
	}
	return ls
}()

func (l *layer) table(name string) *table {
	for _, t := range l.tables {
		if t.name == name {
			return t
		}
	}
	return nil
}
