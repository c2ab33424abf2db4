package analysis

// Increments converts cumulative totals [v0..vN-1] into [v0, v1-v0, ..., vN-1-vN-2].
// The first element is the base value itself. Values are not validated; a step may be negative.
func Increments(totals []float64) []float64 {
	if len(totals) == 0 {
		return nil
	}
	out := make([]float64, len(totals))
	out[0] = totals[0]
	for i := 1; i < len(totals); i++ {
		out[i] = totals[i] - totals[i-1]
	}
	return out
}

// WaterfallStep is one floating bar: it spans Bottom..Bottom+Height and ends at the cumulative Top.
type WaterfallStep struct {
	Label  string
	Bottom float64
	Height float64
	Top    float64
}

// Waterfall lays totals out as floating bars. The first bar stands on zero; every later
// bar starts at the previous cumulative value. labels may be shorter than totals.
func Waterfall(labels []string, totals []float64) []WaterfallStep {
	inc := Increments(totals)
	out := make([]WaterfallStep, len(totals))
	for i := range totals {
		s := WaterfallStep{Height: inc[i], Top: totals[i]}
		if i > 0 {
			s.Bottom = totals[i-1]
		}
		if i < len(labels) {
			s.Label = labels[i]
		}
		out[i] = s
	}
	return out
}
