// internal/matrix/summary.go
package matrix

// LayerInfo is the public metadata of one layer
type LayerInfo struct {
	Layer int    `json:"layer"`
	Name  string `json:"name"`
	Cells int    `json:"cells"`
}

// Summary describes the matrix without any cell content
type Summary struct {
	Layers            []LayerInfo `json:"layers"`
	TotalCells        int         `json:"totalCells"`
	InteractionLevels []LevelBand `json:"interactionLevels"`
}

// Summarize returns layer metadata only
func Summarize() Summary {
	s := Summary{Layers: make([]LayerInfo, 0, len(layers)), InteractionLevels: Bands()}
	for _, l := range layers {
		n := l.size()
		s.Layers = append(s.Layers, LayerInfo{Layer: l.id, Name: l.name, Cells: n})
		s.TotalCells += n
	}
	return s
}

// LayerCount is the number of configured layers
func LayerCount() int { return len(layers) }
