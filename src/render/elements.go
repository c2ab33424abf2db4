package render

import (
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type legendSwatch int

const (
	swatchLine legendSwatch = iota
	swatchFill
)

type legendEntry struct {
	label  string
	swatch legendSwatch
	color  drawing.Color
	dash   []float64
	width  float64
}

type corner int

const (
	cornerTopRight corner = iota
	cornerBottomLeft
)

// legendElement draws a framed legend inside the canvas box. go-chart's built-in legend
// lists every series, including the label and marker helpers, so entries are explicit.
func legendElement(entries []legendEntry, at corner, font *truetype.Font, fontSize float64) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		r.SetFont(chart.Style{Font: font}.GetFont(defaults.Font))
		r.SetFontSize(fontSize)
		const pad, swatchW, gap = 8, 28, 6
		lineH := 0
		textW := 0
		for _, e := range entries {
			tb := r.MeasureText(e.label)
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
			if tb.Width() > textW {
				textW = tb.Width()
			}
		}
		lineH += gap
		w := pad*2 + swatchW + gap + textW
		h := pad*2 + lineH*len(entries) - gap

		var left, top int
		switch at {
		case cornerBottomLeft:
			left, top = cb.Left+10, cb.Bottom-10-h
		default:
			left, top = cb.Right-10-w, cb.Top+10
		}

		fillRect(r, left, top, left+w, top+h, drawing.ColorWhite.WithAlpha(220), drawing.ColorFromHex("BBBBBB"))

		for i, e := range entries {
			y := top + pad + i*lineH
			mid := y + (lineH-gap)/2
			sx := left + pad
			switch e.swatch {
			case swatchFill:
				fillRect(r, sx, y, sx+swatchW, y+lineH-gap, e.color, e.color)
			default:
				r.SetStrokeColor(e.color)
				width := e.width
				if width <= 0 {
					width = 2
				}
				r.SetStrokeWidth(width)
				r.SetStrokeDashArray(e.dash)
				r.MoveTo(sx, mid)
				r.LineTo(sx+swatchW, mid)
				r.Stroke()
				r.SetStrokeDashArray(nil)
			}
			r.SetFontColor(drawing.ColorFromHex("222222"))
			r.Text(e.label, sx+swatchW+gap, y+lineH-gap)
		}
	}
}

// textBoxElement draws lines of text in a framed box anchored at a fraction of the
// canvas box measured from its top-left corner.
func textBoxElement(lines []string, fx, fy float64, font *truetype.Font, fontSize float64) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(lines) == 0 {
			return
		}
		r.SetFont(chart.Style{Font: font}.GetFont(defaults.Font))
		r.SetFontSize(fontSize)
		const pad, gap = 8, 5
		lineH, textW := 0, 0
		for _, l := range lines {
			tb := r.MeasureText(l)
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
			if tb.Width() > textW {
				textW = tb.Width()
			}
		}
		left := cb.Left + int(float64(cb.Width())*fx)
		top := cb.Top + int(float64(cb.Height())*fy)
		w := textW + pad*2
		h := len(lines)*(lineH+gap) - gap + pad*2
		fillRect(r, left, top, left+w, top+h, drawing.ColorWhite.WithAlpha(205), drawing.ColorFromHex("888888"))
		r.SetFontColor(drawing.ColorFromHex("222222"))
		for i, l := range lines {
			r.Text(l, left+pad, top+pad+lineH+i*(lineH+gap))
		}
	}
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, fill, stroke drawing.Color) {
	r.SetFillColor(fill)
	r.SetStrokeColor(stroke)
	r.SetStrokeWidth(1)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.FillStroke()
}
