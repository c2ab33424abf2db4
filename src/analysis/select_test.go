package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iafilius/CropEfficiencyChart/src/types"
)

func TestSelectTypeGrowth_SingleRow(t *testing.T) {
	row := types.EfficiencyRecord{Type: "Gene_R300", Concentration: 100, GrowthGene: 1.0, TotalEff: 2.0, BaseEff: 1.0, ResBonus: 1.0}
	tbl := types.Table{row}
	got := SelectTypeGrowth(tbl, "Gene_R300", 1.0)
	assert.Equal(t, types.Table{row}, got)
	assert.Empty(t, SelectTypeGrowth(tbl, "Gene_R300", 2.0))
}

func TestSelectType_UnknownIsEmpty(t *testing.T) {
	tbl := types.Table{{Type: "Vanilla"}, {Type: "Gene_R50"}}
	got := SelectType(tbl, "Gene_R999")
	assert.Empty(t, got)
	assert.Empty(t, SelectType(nil, "Vanilla"))
}

func TestSelectType_PreservesSourceOrder(t *testing.T) {
	tbl := types.Table{
		{Type: "Growth_Sweep", GrowthGene: 3},
		{Type: "Vanilla", GrowthGene: 1},
		{Type: "Growth_Sweep", GrowthGene: 0.5},
		{Type: "Growth_Sweep", GrowthGene: 5},
	}
	assert.Equal(t, []float64{3, 0.5, 5}, GrowthGenes(SelectType(tbl, "Growth_Sweep")))
	assert.Equal(t, []string{"Growth_Sweep", "Vanilla"}, Types(tbl))
	assert.Equal(t, map[string]int{"Growth_Sweep": 3, "Vanilla": 1}, CountByType(tbl))
}

func TestFirstTotalForTypes_AbsentIsZero(t *testing.T) {
	tbl := types.Table{
		{Type: types.TypeStackBase, TotalEff: 1.0},
		{Type: types.TypeStackRes, TotalEff: 3.0},
		{Type: types.TypeStackBase, TotalEff: 9.0},
	}
	got := FirstTotalForTypes(tbl, []string{types.TypeStackBase, types.TypeStackFert, types.TypeStackRes})
	assert.Equal(t, []float64{1.0, 0, 3.0}, got)
}

func TestPeakIndex(t *testing.T) {
	tbl := types.Table{{TotalEff: 1}, {TotalEff: 3}, {TotalEff: 2}, {TotalEff: 3}}
	assert.Equal(t, 1, PeakIndex(tbl))
	assert.Equal(t, -1, PeakIndex(nil))
}

func TestFirstGrowthAtLeast(t *testing.T) {
	tbl := types.Table{{GrowthGene: 0.5}, {GrowthGene: 0.9}, {GrowthGene: 1.0}, {GrowthGene: 2}}
	assert.Equal(t, 2, FirstGrowthAtLeast(tbl, 1.0))
	assert.Equal(t, -1, FirstGrowthAtLeast(tbl, 10))
}
