package analysis

// FillRegion is a run of consecutive indices [Start, End] sharing the same sign of total-base.
type FillRegion struct {
	Start, End int
	Positive   bool
}

// SplitFill partitions the indices of base/total into maximal runs where total >= base
// (positive) or total < base (negative). Every index lands in exactly one region.
// Only the common prefix of the two slices is considered.
func SplitFill(base, total []float64) []FillRegion {
	n := len(base)
	if len(total) < n {
		n = len(total)
	}
	var out []FillRegion
	for i := 0; i < n; i++ {
		pos := total[i] >= base[i]
		if len(out) > 0 && out[len(out)-1].Positive == pos {
			out[len(out)-1].End = i
			continue
		}
		out = append(out, FillRegion{Start: i, End: i, Positive: pos})
	}
	return out
}

// Polygon returns the closed outline of a region: forward along upper, back along lower.
// Adjacent regions share no vertices, so they do not overlap; a single-index region
// collapses to a vertical segment.
func (r FillRegion) Polygon(xs, lower, upper []float64) (px, py []float64) {
	for i := r.Start; i <= r.End; i++ {
		px = append(px, xs[i])
		py = append(py, upper[i])
	}
	for i := r.End; i >= r.Start; i-- {
		px = append(px, xs[i])
		py = append(py, lower[i])
	}
	return px, py
}
