package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/CropEfficiencyChart/src/analysis"
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

var (
	dashed = []float64{8, 5}
	dotted = []float64{2, 4}
)

// panel is one grid cell: either a chart to render, or a title over an empty cell.
type panel struct {
	title string
	chart *chart.Chart
}

func (t Theme) baseChart(title string, font *truetype.Font) *chart.Chart {
	w, h := t.cell()
	axisText := chart.Style{FontSize: t.LabelFontSize, FontColor: t.Text}
	grid := chart.Style{StrokeColor: t.Grid, StrokeWidth: 1}
	return &chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: t.PanelFontSize, FontColor: t.Text},
		Width:      w,
		Height:     h,
		Font:       font,
		Background: chart.Style{FillColor: t.Background, Padding: chart.Box{Top: 48, Left: 24, Right: 20, Bottom: 16}},
		Canvas:     chart.Style{FillColor: t.Background},
		XAxis:      chart.XAxis{NameStyle: axisText, Style: axisText, GridMajorStyle: grid},
		YAxis:      chart.YAxis{NameStyle: axisText, Style: axisText, GridMajorStyle: grid},
	}
}

// sweepPanel overlays total efficiency against concentration for every sweep type
// present, marking each gene series' maximum.
func sweepPanel(t Theme, tbl types.Table, font *truetype.Font) panel {
	lb := t.Labels
	p := panel{title: lb.SweepTitle}
	ch := t.baseChart(lb.SweepTitle, font)

	var legend []legendEntry
	var labels []textLabel
	var allX []float64
	for _, typ := range types.SweepTypes {
		rows := analysis.SelectTypeGrowth(tbl, typ, types.SweepGrowth)
		if len(rows) == 0 {
			continue
		}
		xs, ys := analysis.Concentrations(rows), analysis.Totals(rows)
		allX = append(allX, xs...)
		col := t.SweepColors[typ]
		name := lb.SweepSeries[typ]
		if name == "" {
			name = typ
		}
		width, dash, alpha := 3.0, []float64(nil), uint8(230)
		if typ == types.TypeVanilla {
			width, dash, alpha = 2.0, dashed, 204
		}
		ch.Series = append(ch.Series, lineSeries(name, xs, ys, col.WithAlpha(alpha), width, dash))
		legend = append(legend, legendEntry{label: name, color: col, dash: dash, width: width})

		if typ == types.TypeVanilla {
			continue
		}
		pk := rows[analysis.PeakIndex(rows)]
		ch.Series = append(ch.Series, markerSeries(name+" peak", []float64{pk.Concentration}, []float64{pk.TotalEff}, col))
		labels = append(labels, textLabel{X: pk.Concentration, Y: pk.TotalEff + 0.1, Text: fmt.Sprintf("%.2fx", pk.TotalEff), Color: col})
	}
	if len(ch.Series) == 0 {
		return p
	}

	xMin, xMax, _ := minMax(allX)
	xMin, xMax = paddedBounds(xMin, xMax)
	const yMin, yMax = -1.0, 3.5
	gray := drawing.ColorFromHex("808080")
	ch.Series = append(ch.Series, lineSeries("baseline", []float64{xMin, xMax}, []float64{1.5, 1.5}, gray.WithAlpha(128), 1.5, dotted))
	labels = append(labels, textLabel{X: 0, Y: 1.52, Text: lb.SweepBaseline, Color: gray})
	ch.Series = append(ch.Series, labelSeries{labels: labels, font: font, fontSize: t.LabelFontSize})

	ch.XAxis.Name = lb.SweepXAxis
	ch.XAxis.Range = &chart.ContinuousRange{Min: xMin, Max: xMax}
	ch.XAxis.Ticks = niceTicks(xMin, xMax, 9)
	ch.YAxis.Name = lb.SweepYAxis
	ch.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax}
	ch.YAxis.Ticks = niceTicks(yMin, yMax, 10)
	ch.Elements = []chart.Renderable{legendElement(legend, cornerTopRight, font, t.LabelFontSize)}
	p.chart = ch
	return p
}

// stackPanel draws the waterfall of the stack scenarios. Absent stack rows count as 0,
// so the panel always renders.
func stackPanel(t Theme, tbl types.Table, font *truetype.Font) panel {
	lb := t.Labels
	ch := t.baseChart(lb.StackTitle, font)
	totals := analysis.FirstTotalForTypes(tbl, types.StackTypes)
	steps := analysis.Waterfall(lb.StackTicks, totals)

	const half = 0.3
	var labels []textLabel
	for i, s := range steps {
		x := float64(i)
		col := t.StackColors[i%len(t.StackColors)]
		bx := []float64{x - half, x + half, x + half, x - half}
		by := []float64{s.Bottom, s.Bottom, s.Bottom + s.Height, s.Bottom + s.Height}
		ch.Series = append(ch.Series, polygonSeries(s.Label, bx, by, col))
		labels = append(labels, textLabel{X: x, Y: s.Top + 0.05, Text: fmt.Sprintf("%.2fx", s.Top), Color: t.Text})
		if i == 0 {
			continue
		}
		ch.Series = append(ch.Series, lineSeries("connector", []float64{x - 1.4, x + 0.4}, []float64{s.Bottom, s.Bottom}, drawing.ColorBlack.WithAlpha(77), 1, dashed))
		labels = append(labels, textLabel{X: x, Y: s.Bottom + s.Height/2, Text: fmt.Sprintf("%+.2f", s.Height), Color: incrementLabelColor(s.Height)})
	}
	ch.Series = append(ch.Series, labelSeries{labels: labels, font: font, fontSize: t.LabelFontSize})

	xMin, xMax := -0.6, float64(len(steps))-0.4
	ch.XAxis.Range = &chart.ContinuousRange{Min: xMin, Max: xMax}
	ch.XAxis.Ticks = categoryTicks(lb.StackTicks[:min(len(lb.StackTicks), len(steps))], xMin, xMax)
	ch.XAxis.GridMajorStyle = chart.Style{Hidden: true}
	ch.YAxis.Name = lb.StackYAxis
	ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 4.8}
	ch.YAxis.Ticks = niceTicks(0, 4.8, 10)
	ch.Elements = []chart.Renderable{textBoxElement(lb.StackNotes, 0.02, 0.05, font, t.LabelFontSize)}
	return panel{title: lb.StackTitle, chart: ch}
}

// incrementLabelColor keeps the in-bar label readable: white on a positive bar, dark on
// a negative one where the text sits near the thin lower edge.
func incrementLabelColor(h float64) drawing.Color {
	if h < 0 {
		return drawing.ColorFromHex("222222")
	}
	return drawing.ColorWhite
}

// growthPanel plots the growth gene sweep with the neutral (first >= 1.0) and final points marked.
func growthPanel(t Theme, tbl types.Table, font *truetype.Font) panel {
	lb := t.Labels
	p := panel{title: lb.GrowthTitle}
	rows := analysis.SelectType(tbl, types.TypeGrowthSweep)
	if len(rows) == 0 {
		return p
	}
	ch := t.baseChart(lb.GrowthTitle, font)
	xs, ys := analysis.GrowthGenes(rows), analysis.Totals(rows)
	col := t.GrowthColor
	ch.Series = append(ch.Series, lineSeries(types.TypeGrowthSweep, xs, ys, col, 3, nil))

	var mx, my []float64
	var labels []textLabel
	if i := analysis.FirstGrowthAtLeast(rows, 1.0); i >= 0 {
		r := rows[i]
		mx, my = append(mx, r.GrowthGene), append(my, r.TotalEff)
		labels = append(labels, textLabel{X: r.GrowthGene, Y: r.TotalEff - 0.2, Text: fmt.Sprintf(lb.GrowthFirst, r.TotalEff), Color: t.Text})
	}
	last := rows[len(rows)-1]
	mx, my = append(mx, last.GrowthGene), append(my, last.TotalEff)
	labels = append(labels, textLabel{X: last.GrowthGene, Y: last.TotalEff - 0.2, Text: fmt.Sprintf(lb.GrowthLast, last.TotalEff), Color: t.Text})
	ch.Series = append(ch.Series, markerSeries("marks", mx, my, col))
	ch.Series = append(ch.Series, labelSeries{labels: labels, font: font, fontSize: t.LabelFontSize})

	xMin, xMax, _ := minMax(xs)
	xMin, xMax = paddedBounds(xMin, xMax)
	// leave room for the labels hanging below the marks
	below := make([]float64, len(my))
	for i, y := range my {
		below[i] = y - 0.3
	}
	yMin, yMax, _ := minMax(ys, below)
	yMin, yMax = snapBounds(yMin, yMax, 0.5)
	ch.XAxis.Name = lb.GrowthXAxis
	ch.XAxis.Range = &chart.ContinuousRange{Min: xMin, Max: xMax}
	ch.XAxis.Ticks = niceTicks(xMin, xMax, 10)
	ch.XAxis.GridMajorStyle.StrokeDashArray = dashed
	ch.YAxis.Name = lb.GrowthYAxis
	ch.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax}
	ch.YAxis.Ticks = niceTicks(yMin, yMax, 8)
	ch.YAxis.GridMajorStyle.StrokeDashArray = dashed
	p.chart = ch
	return p
}

// breakdownPanel splits the R=300 sweep into base and total with the gain and loss between them filled.
func breakdownPanel(t Theme, tbl types.Table, font *truetype.Font) panel {
	lb := t.Labels
	p := panel{title: lb.BreakdownTitle}
	rows := analysis.SelectTypeGrowth(tbl, types.TypeGeneR300, types.SweepGrowth)
	if len(rows) == 0 {
		return p
	}
	ch := t.baseChart(lb.BreakdownTitle, font)
	xs, base, total := analysis.Concentrations(rows), analysis.Bases(rows), analysis.Totals(rows)

	gain, loss := t.GainColor.WithAlpha(77), t.LossColor.WithAlpha(77)
	for _, reg := range analysis.SplitFill(base, total) {
		px, py := reg.Polygon(xs, base, total)
		col, name := loss, lb.BreakdownLoss
		if reg.Positive {
			col, name = gain, lb.BreakdownGain
		}
		ch.Series = append(ch.Series, polygonSeries(name, px, py, col))
	}
	ch.Series = append(ch.Series,
		lineSeries(lb.BreakdownBase, xs, base, t.BaseColor, 1.5, dashed),
		lineSeries(lb.BreakdownTotal, xs, total, t.TotalColor, 2, nil),
	)

	xMin, xMax, _ := minMax(xs)
	xMin, xMax = paddedBounds(xMin, xMax)
	const yMin, yMax = -1.0, 3.5
	ch.XAxis.Name = lb.BreakdownXAxis
	ch.XAxis.Range = &chart.ContinuousRange{Min: xMin, Max: xMax}
	ch.XAxis.Ticks = niceTicks(xMin, xMax, 9)
	ch.YAxis.Name = lb.BreakdownYAxis
	ch.YAxis.Range = &chart.ContinuousRange{Min: yMin, Max: yMax}
	ch.YAxis.Ticks = niceTicks(yMin, yMax, 10)
	ch.Elements = []chart.Renderable{legendElement([]legendEntry{
		{label: lb.BreakdownBase, color: t.BaseColor, dash: dashed, width: 1.5},
		{label: lb.BreakdownTotal, color: t.TotalColor, width: 2},
		{label: lb.BreakdownGain, swatch: swatchFill, color: gain},
		{label: lb.BreakdownLoss, swatch: swatchFill, color: loss},
	}, cornerBottomLeft, font, t.LabelFontSize)}
	p.chart = ch
	return p
}
