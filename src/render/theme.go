package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/CropEfficiencyChart/src/types"
)

// Theme is the full presentation configuration handed to Render. Nothing in this
// package reads global plotting state.
type Theme struct {
	Width, Height int
	TitleHeight   int // band above the grid holding the figure title

	// Font is used for every string; nil selects go-chart's bundled font.
	Font *truetype.Font

	TitleFontSize float64
	PanelFontSize float64
	LabelFontSize float64

	Background drawing.Color
	Grid       drawing.Color
	Text       drawing.Color

	SweepColors map[string]drawing.Color
	StackColors []drawing.Color
	GrowthColor drawing.Color
	BaseColor   drawing.Color
	TotalColor  drawing.Color
	GainColor   drawing.Color
	LossColor   drawing.Color

	Labels Labels
}

// DefaultTheme returns the 2000x1200 layout with English labels.
func DefaultTheme() Theme {
	return Theme{
		Width:         2000,
		Height:        1200,
		TitleHeight:   70,
		TitleFontSize: 26,
		PanelFontSize: 15,
		LabelFontSize: 10,
		Background:    drawing.ColorWhite,
		Grid:          drawing.ColorFromHex("DDDDDD"),
		Text:          drawing.ColorFromHex("222222"),
		SweepColors: map[string]drawing.Color{
			types.TypeVanilla:  drawing.ColorFromHex("555555"),
			types.TypeGeneR50:  drawing.ColorFromHex("E74C3C"),
			types.TypeGeneR100: drawing.ColorFromHex("F1C40F"),
			types.TypeGeneR300: drawing.ColorFromHex("2ECC71"),
		},
		// base, fertility, resistance, growth, biome, spirit
		StackColors: []drawing.Color{
			drawing.ColorFromHex("7F8C8D"),
			drawing.ColorFromHex("95A5A6"),
			drawing.ColorFromHex("2ECC71"),
			drawing.ColorFromHex("9B59B6"),
			drawing.ColorFromHex("3498DB"),
			drawing.ColorFromHex("E67E22"),
		},
		GrowthColor: drawing.ColorFromHex("9B59B6"),
		BaseColor:   drawing.ColorFromHex("95A5A6"),
		TotalColor:  drawing.ColorFromHex("2ECC71"),
		GainColor:   drawing.ColorFromHex("2ECC71"),
		LossColor:   drawing.ColorFromHex("E74C3C"),
		Labels:      EnglishLabels(),
	}
}

// LoadFont parses a TrueType file for use as Theme.Font.
func LoadFont(path string) (*truetype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

// font resolves the theme font, falling back to go-chart's default.
func (t Theme) font() (*truetype.Font, error) {
	if t.Font != nil {
		return t.Font, nil
	}
	return chart.GetDefaultFont()
}

// cell returns the pixel size of one grid panel.
func (t Theme) cell() (int, int) {
	return t.Width / 2, (t.Height - t.TitleHeight) / 2
}
