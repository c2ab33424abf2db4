package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type pathKind int

const (
	pathLine pathKind = iota
	pathPolygon
	pathMarkers
)

// pathSeries draws a polyline, a closed filled polygon or point markers, clipped to the
// visible ranges. go-chart's own line fill always runs down to the axis, which cannot
// express floating bars or a fill between two curves.
type pathSeries struct {
	name  string
	kind  pathKind
	xs    []float64
	ys    []float64
	style chart.Style
}

var _ chart.Series = pathSeries{}
var _ chart.ValuesProvider = pathSeries{}

func lineSeries(name string, xs, ys []float64, col drawing.Color, width float64, dash []float64) pathSeries {
	return pathSeries{name: name, kind: pathLine, xs: xs, ys: ys, style: chart.Style{
		StrokeColor:     col,
		StrokeWidth:     width,
		StrokeDashArray: dash,
	}}
}

func polygonSeries(name string, xs, ys []float64, fill drawing.Color) pathSeries {
	return pathSeries{name: name, kind: pathPolygon, xs: xs, ys: ys, style: chart.Style{FillColor: fill}}
}

func markerSeries(name string, xs, ys []float64, col drawing.Color) pathSeries {
	return pathSeries{name: name, kind: pathMarkers, xs: xs, ys: ys, style: chart.Style{
		DotColor:    col,
		DotWidth:    5,
		StrokeColor: col,
	}}
}

func (ps pathSeries) GetName() string                { return ps.name }
func (ps pathSeries) GetYAxis() chart.YAxisType      { return chart.YAxisPrimary }
func (ps pathSeries) GetStyle() chart.Style          { return ps.style }
func (ps pathSeries) Len() int                       { return len(ps.xs) }
func (ps pathSeries) GetValues(i int) (x, y float64) { return ps.xs[i], ps.ys[i] }

func (ps pathSeries) Validate() error {
	if len(ps.xs) == 0 {
		return fmt.Errorf("%s: no points", ps.name)
	}
	if len(ps.xs) != len(ps.ys) {
		return fmt.Errorf("%s: %d x values but %d y values", ps.name, len(ps.xs), len(ps.ys))
	}
	return nil
}

func (ps pathSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	v := viewport{box: canvasBox, xr: xrange, yr: yrange}
	switch ps.kind {
	case pathLine:
		ps.renderLine(r, v)
	case pathPolygon:
		ps.renderPolygon(r, v)
	case pathMarkers:
		ps.renderMarkers(r, v)
	}
}

func (ps pathSeries) renderLine(r chart.Renderer, v viewport) {
	r.SetStrokeColor(ps.style.StrokeColor)
	r.SetStrokeWidth(ps.style.StrokeWidth)
	r.SetStrokeDashArray(ps.style.StrokeDashArray)
	drawn := false
	penX, penY := 0, 0
	for i := 1; i < len(ps.xs); i++ {
		x0, y0, x1, y1, ok := v.clip(ps.xs[i-1], ps.ys[i-1], ps.xs[i], ps.ys[i])
		if !ok {
			continue
		}
		sx, sy := v.pixel(x0, y0)
		ex, ey := v.pixel(x1, y1)
		if !drawn || sx != penX || sy != penY {
			r.MoveTo(sx, sy)
		}
		r.LineTo(ex, ey)
		penX, penY = ex, ey
		drawn = true
	}
	if drawn {
		r.Stroke()
	}
	r.SetStrokeDashArray(nil)
}

func (ps pathSeries) renderPolygon(r chart.Renderer, v viewport) {
	if len(ps.xs) < 3 {
		return
	}
	r.SetFillColor(ps.style.FillColor)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.SetStrokeWidth(0)
	x, y := v.pixel(v.clamp(ps.xs[0], ps.ys[0]))
	r.MoveTo(x, y)
	for i := 1; i < len(ps.xs); i++ {
		x, y = v.pixel(v.clamp(ps.xs[i], ps.ys[i]))
		r.LineTo(x, y)
	}
	r.Close()
	r.Fill()
}

func (ps pathSeries) renderMarkers(r chart.Renderer, v viewport) {
	r.SetFillColor(ps.style.DotColor)
	r.SetStrokeColor(ps.style.StrokeColor)
	r.SetStrokeWidth(1)
	for i := range ps.xs {
		if !v.inside(ps.xs[i], ps.ys[i]) {
			continue
		}
		x, y := v.pixel(ps.xs[i], ps.ys[i])
		r.Circle(ps.style.DotWidth, x, y)
		r.FillStroke()
	}
}

// textLabel is one string anchored at a data point, horizontally centered, with the
// baseline at the point.
type textLabel struct {
	X, Y  float64
	Text  string
	Color drawing.Color
}

// labelSeries draws free text in data coordinates, like an axes text call.
// It has no values so it never widens the axis ranges.
type labelSeries struct {
	labels   []textLabel
	font     *truetype.Font
	fontSize float64
}

var _ chart.Series = labelSeries{}

func (ls labelSeries) GetName() string           { return "" }
func (ls labelSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ls labelSeries) GetStyle() chart.Style     { return chart.Style{FontSize: ls.fontSize, Font: ls.font} }
func (ls labelSeries) Validate() error           { return nil }

func (ls labelSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	v := viewport{box: canvasBox, xr: xrange, yr: yrange}
	r.SetFont(ls.GetStyle().GetFont(defaults.Font))
	r.SetFontSize(ls.fontSize)
	for _, l := range ls.labels {
		if !v.inside(l.X, l.Y) {
			continue
		}
		x, y := v.pixel(l.X, l.Y)
		w := r.MeasureText(l.Text).Width()
		r.SetFontColor(l.Color)
		r.Text(l.Text, x-w/2, y)
	}
}

// viewport maps data coordinates into the chart canvas.
type viewport struct {
	box    chart.Box
	xr, yr chart.Range
}

func (v viewport) pixel(x, y float64) (int, int) {
	return v.box.Left + v.xr.Translate(x), v.box.Bottom - v.yr.Translate(y)
}

func (v viewport) inside(x, y float64) bool {
	return x >= v.xr.GetMin() && x <= v.xr.GetMax() && y >= v.yr.GetMin() && y <= v.yr.GetMax()
}

func (v viewport) clamp(x, y float64) (float64, float64) {
	return clampf(x, v.xr.GetMin(), v.xr.GetMax()), clampf(y, v.yr.GetMin(), v.yr.GetMax())
}

// clip trims the segment (x0,y0)-(x1,y1) to the visible rectangle (Liang-Barsky).
func (v viewport) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	return clipSegment(x0, y0, x1, y1, v.xr.GetMin(), v.xr.GetMax(), v.yr.GetMin(), v.yr.GetMax())
}

func clipSegment(x0, y0, x1, y1, xmin, xmax, ymin, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
