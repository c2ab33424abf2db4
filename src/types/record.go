// Package types holds the record shapes shared by the loader, the analysis helpers and the renderer.
package types

// EfficiencyRecord is one row of the simulation table.
type EfficiencyRecord struct {
	Type          string  `json:"type"`
	Concentration float64 `json:"concentration"`
	GrowthGene    float64 `json:"growth_gene"`
	TotalEff      float64 `json:"total_eff"`
	BaseEff       float64 `json:"base_eff"`
	ResBonus      float64 `json:"res_bonus"`
}

// Table is the loaded simulation output in source order. It is never mutated after load.
type Table []EfficiencyRecord

// Column headers expected in the input file.
const (
	ColType          = "Type"
	ColConcentration = "Concentration"
	ColGrowthGene    = "GrowthGene"
	ColTotalEff      = "TotalEff"
	ColBaseEff       = "BaseEff"
	ColResBonus      = "ResBonus"
)

// Columns lists the required headers in canonical order.
var Columns = []string{ColType, ColConcentration, ColGrowthGene, ColTotalEff, ColBaseEff, ColResBonus}

// Concentration sweep scenarios (swept with GrowthGene == 1.0).
const (
	TypeVanilla  = "Vanilla"
	TypeGeneR50  = "Gene_R50"
	TypeGeneR100 = "Gene_R100"
	TypeGeneR300 = "Gene_R300"
)

// SweepTypes is the draw order of the concentration sweep.
var SweepTypes = []string{TypeVanilla, TypeGeneR50, TypeGeneR100, TypeGeneR300}

// Waterfall stack scenarios, each holding the cumulative total after one more contributor.
const (
	TypeStackBase   = "Stack_1_Base"
	TypeStackFert   = "Stack_2_Fert"
	TypeStackRes    = "Stack_3_Res"
	TypeStackGene   = "Stack_4_Gene"
	TypeStackBiome  = "Stack_5_Biome"
	TypeStackSpirit = "Stack_6_Spirit"
)

// StackTypes is the stacking order of the waterfall.
var StackTypes = []string{TypeStackBase, TypeStackFert, TypeStackRes, TypeStackGene, TypeStackBiome, TypeStackSpirit}

// TypeGrowthSweep holds the growth gene sweep at R=300, C=300.
const TypeGrowthSweep = "Growth_Sweep"

// SweepGrowth is the GrowthGene value the concentration sweep is recorded at.
const SweepGrowth = 1.0
