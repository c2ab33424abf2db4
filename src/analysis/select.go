package analysis

import (
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

// SelectType returns the records whose Type equals typ, in source order.
// An unknown type yields an empty (nil) slice.
func SelectType(t types.Table, typ string) types.Table {
	var out types.Table
	for _, r := range t {
		if r.Type == typ {
			out = append(out, r)
		}
	}
	return out
}

// SelectTypeGrowth narrows SelectType to rows recorded at the given GrowthGene value.
// The comparison is exact; the generator writes the sweep value verbatim.
func SelectTypeGrowth(t types.Table, typ string, growth float64) types.Table {
	var out types.Table
	for _, r := range t {
		if r.Type == typ && r.GrowthGene == growth {
			out = append(out, r)
		}
	}
	return out
}

// Types returns the distinct Type labels in first-seen order.
func Types(t types.Table) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range t {
		if !seen[r.Type] {
			seen[r.Type] = true
			out = append(out, r.Type)
		}
	}
	return out
}

// CountByType returns how many rows each Type has.
func CountByType(t types.Table) map[string]int {
	m := make(map[string]int)
	for _, r := range t {
		m[r.Type]++
	}
	return m
}

func column(t types.Table, f func(types.EfficiencyRecord) float64) []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = f(r)
	}
	return out
}

// Concentrations returns the Concentration column in row order.
func Concentrations(t types.Table) []float64 {
	return column(t, func(r types.EfficiencyRecord) float64 { return r.Concentration })
}

// GrowthGenes returns the GrowthGene column in row order.
func GrowthGenes(t types.Table) []float64 {
	return column(t, func(r types.EfficiencyRecord) float64 { return r.GrowthGene })
}

// Totals returns the TotalEff column in row order.
func Totals(t types.Table) []float64 {
	return column(t, func(r types.EfficiencyRecord) float64 { return r.TotalEff })
}

// Bases returns the BaseEff column in row order.
func Bases(t types.Table) []float64 {
	return column(t, func(r types.EfficiencyRecord) float64 { return r.BaseEff })
}

// FirstTotalForTypes returns, for each label, the TotalEff of its first row, or 0
// when the label is absent. The result always has len(typs) entries.
func FirstTotalForTypes(t types.Table, typs []string) []float64 {
	out := make([]float64, len(typs))
	for i, typ := range typs {
		for _, r := range t {
			if r.Type == typ {
				out[i] = r.TotalEff
				break
			}
		}
	}
	return out
}

// PeakIndex returns the index of the largest TotalEff (first one on ties), or -1 for an empty table.
func PeakIndex(t types.Table) int {
	best := -1
	for i, r := range t {
		if best < 0 || r.TotalEff > t[best].TotalEff {
			best = i
		}
	}
	return best
}

// FirstGrowthAtLeast returns the index of the first row with GrowthGene >= threshold, or -1.
func FirstGrowthAtLeast(t types.Table, threshold float64) int {
	for i, r := range t {
		if r.GrowthGene >= threshold {
			return i
		}
	}
	return -1
}
