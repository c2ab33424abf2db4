// Package render turns the efficiency table into the four-panel figure.
//
// Each panel is an independent go-chart chart rendered to PNG and pasted into its grid
// cell; the figure title is drawn on the composite afterwards.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/CropEfficiencyChart/src/logging"
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

// PanelStatus reports whether a panel had data to plot.
type PanelStatus struct {
	Title    string
	Rendered bool
}

// Render draws the full figure. Panels without data keep an empty cell with their title.
func Render(tbl types.Table, t Theme) (image.Image, []PanelStatus, error) {
	defer logging.TimeTrack(time.Now(), "render figure")
	f, err := t.font()
	if err != nil {
		return nil, nil, fmt.Errorf("load font: %w", err)
	}
	panels := []panel{
		sweepPanel(t, tbl, f),
		stackPanel(t, tbl, f),
		growthPanel(t, tbl, f),
		breakdownPanel(t, tbl, f),
	}

	canvas := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(t.Background), image.Point{}, draw.Src)

	cw, chh := t.cell()
	status := make([]PanelStatus, len(panels))
	for i, p := range panels {
		origin := image.Pt((i%2)*cw, t.TitleHeight+(i/2)*chh)
		cell := image.Rect(origin.X, origin.Y, origin.X+cw, origin.Y+chh)
		status[i] = PanelStatus{Title: p.title, Rendered: p.chart != nil}
		if p.chart == nil {
			logging.Infof("panel %q skipped: no data", p.title)
			drawPlaceholder(canvas, cell, p.title, t, f)
			continue
		}
		img, err := renderChart(p.chart)
		if err != nil {
			return nil, status, fmt.Errorf("render %q: %w", p.title, err)
		}
		draw.Draw(canvas, cell, img, img.Bounds().Min, draw.Over)
	}
	drawCentered(canvas, image.Rect(0, 0, t.Width, t.TitleHeight), t.Labels.Figure, face(f, t.TitleFontSize), t.Text, true)
	return canvas, status, nil
}

func renderChart(ch *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// WritePNG encodes img in memory first so a failed encode never leaves a partial file.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// drawPlaceholder keeps an empty panel recognizable: its title on top and a small note.
func drawPlaceholder(dst *image.RGBA, cell image.Rectangle, title string, t Theme, f *truetype.Font) {
	head := image.Rect(cell.Min.X, cell.Min.Y, cell.Max.X, cell.Min.Y+48)
	drawCentered(dst, head, title, face(f, t.PanelFontSize), t.Text, false)
	drawCentered(dst, cell, t.Labels.NoData, basicfont.Face7x13, color.RGBA{R: 136, G: 136, B: 136, A: 255}, false)
}

// drawCentered writes text centered in r. bold overstrikes the text one pixel to the right.
func drawCentered(dst *image.RGBA, r image.Rectangle, text string, fc font.Face, col color.Color, bold bool) {
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: fc}
	tw := dr.MeasureString(text).Ceil()
	m := fc.Metrics()
	x := r.Min.X + (r.Dx()-tw)/2
	y := r.Min.Y + (r.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	if bold {
		dr.Dot = fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y)}
		dr.DrawString(text)
	}
}
