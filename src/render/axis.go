package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// snapBounds pads [lo, hi] by 5% and widens it outward to multiples of step, so the
// growth panel's labels below its marks stay on the canvas.
func snapBounds(lo, hi, step float64) (float64, float64) {
	if hi <= lo {
		hi = lo + step
	}
	pad := (hi - lo) * 0.05
	return math.Floor((lo-pad)/step) * step, math.Ceil((hi+pad)/step) * step
}

// paddedBounds widens [min,max] by 5% per side without rounding, the way a plot's
// default data margins look.
func paddedBounds(min, max float64) (float64, float64) {
	if max <= min {
		return min - 0.5, max + 0.5
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}

// niceTicks generates about n tick marks inside [min, max] on 1/2/2.5/5 steps. The
// list always starts at min and ends at max (unlabelled when off-step) because go-chart
// narrows an axis range to its outermost ticks.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Floor(span/step) + 1
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	eps := bestStep * 1e-9
	ticks := []chart.Tick{}
	for v := math.Ceil((min-eps)/bestStep) * bestStep; v <= max+eps; v += bestStep {
		// snap -0 and float drift
		v = math.Round(v/bestStep) * bestStep
		if v == 0 {
			v = 0
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return boundTicks(ticks, min, max)
}

// boundTicks adds unlabelled ticks at lo and hi unless the list already reaches them.
func boundTicks(ticks []chart.Tick, lo, hi float64) []chart.Tick {
	eps := (hi - lo) * 1e-9
	if len(ticks) == 0 || ticks[0].Value > lo+eps {
		ticks = append([]chart.Tick{{Value: lo}}, ticks...)
	}
	if ticks[len(ticks)-1].Value < hi-eps {
		ticks = append(ticks, chart.Tick{Value: hi})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		s := fmt.Sprintf("%.2f", v)
		// 1.50 -> 1.5, 2.00 -> 2
		for len(s) > 1 && s[len(s)-1] == '0' {
			s = s[:len(s)-1]
		}
		if s[len(s)-1] == '.' {
			s = s[:len(s)-1]
		}
		return s
	}
}

// categoryTicks places one labelled tick per integer position 0..len(labels)-1 within
// the axis range [lo, hi].
func categoryTicks(labels []string, lo, hi float64) []chart.Tick {
	ticks := make([]chart.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}
	return boundTicks(ticks, lo, hi)
}

// minMax returns the extremes of every slice together; ok is false when all are empty.
func minMax(vals ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, vs := range vals {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			ok = true
		}
	}
	return lo, hi, ok
}
