package render

import "github.com/iafilius/CropEfficiencyChart/src/types"

// Labels holds every user-visible string of the figure.
type Labels struct {
	Figure string

	SweepTitle    string
	SweepXAxis    string
	SweepYAxis    string
	SweepSeries   map[string]string
	SweepBaseline string

	StackTitle string
	StackYAxis string
	StackTicks []string
	StackNotes []string

	GrowthTitle string
	GrowthXAxis string
	GrowthYAxis string
	GrowthFirst string // format with the value, e.g. "1.0 star: %.2fx"
	GrowthLast  string

	BreakdownTitle string
	BreakdownXAxis string
	BreakdownYAxis string
	BreakdownBase  string
	BreakdownTotal string
	BreakdownGain  string
	BreakdownLoss  string

	NoData string
}

// EnglishLabels render with the bundled font.
func EnglishLabels() Labels {
	return Labels{
		Figure: "CuisineFarming Growth Model Overview (V2)",

		SweepTitle: "A: Total growth efficiency vs fertilizer concentration (fertility=100)",
		SweepXAxis: "Fertilizer concentration",
		SweepYAxis: "Total efficiency (x)",
		SweepSeries: map[string]string{
			types.TypeVanilla:  "Vanilla crop",
			types.TypeGeneR50:  "Gene crop (R=50)",
			types.TypeGeneR100: "Gene crop (R=100)",
			types.TypeGeneR300: "Gene crop (R=300)",
		},
		SweepBaseline: "Vanilla baseline (1.5x)",

		StackTitle: "B: Stacked effect of all variables (ideal limit)",
		StackYAxis: "Total growth efficiency (x)",
		StackTicks: []string{"1. Base (1.0)", "+ Fertility", "+ Resistance", "+ Growth gene", "+ Biome", "+ Spirit"},
		StackNotes: []string{
			"Simulated environment (full stack):",
			"- Base fertility: 100 (+0.5)",
			"- Concentration: 300 (with R300 = +1.5)",
			"- Genes: resistance 300 / growth 5 stars",
			"- Biome: specialty enrichment (+30%)",
			"- Spirit: guardian mode (+10%)",
			"Note: base value starts at 1.0",
		},

		GrowthTitle: "C: Independent effect of the growth gene (R=300, C=300)",
		GrowthXAxis: "Growth gene value (0.5 - 5.0)",
		GrowthYAxis: "Total efficiency (baseline 3.0)",
		GrowthFirst: "1.0 star: %.2fx",
		GrowthLast:  "5.0 stars: %.2fx",

		BreakdownTitle: "D: Efficiency breakdown (R=300)",
		BreakdownXAxis: "Fertilizer concentration",
		BreakdownYAxis: "Efficiency contribution",
		BreakdownBase:  "Base efficiency (base+fertility)",
		BreakdownTotal: "Final efficiency (total)",
		BreakdownGain:  "Resistance gain (positive)",
		BreakdownLoss:  "Burn penalty (negative)",

		NoData: "no data",
	}
}

// ChineseLabels are the figure's native labels; they need a CJK font in Theme.Font.
func ChineseLabels() Labels {
	return Labels{
		Figure: "CuisineFarming 综合生长模型全解 (V2)",

		SweepTitle: "图表 A: 综合生长效率 vs 肥料浓度 (基础肥力=100)",
		SweepXAxis: "肥料浓度 (Concentration)",
		SweepYAxis: "总效率 (倍率)",
		SweepSeries: map[string]string{
			types.TypeVanilla:  "普通作物 (Vanilla)",
			types.TypeGeneR50:  "基因作物 (R=50)",
			types.TypeGeneR100: "基因作物 (R=100)",
			types.TypeGeneR300: "基因作物 (R=300)",
		},
		SweepBaseline: "普通作物基准 (1.5x)",

		StackTitle: "图表 B: 全变量叠加效应 (理想极限状态)",
		StackYAxis: "总生长效率 (倍率)",
		StackTicks: []string{"1. 基础(1.0)", "+ 肥力修正", "+ 耐肥收益", "+ 生长基因", "+ 群系加成", "+ 地灵加成"},
		StackNotes: []string{
			"模拟环境设定 (极限叠加):",
			"• 基础肥力: 100 (+0.5)",
			"• 肥料浓度: 300 (配合R300=+1.5)",
			"• 基因: 耐肥300 / 生长5星",
			"• 群系: 特产富集 (+30%)",
			"• 地灵: 守护者模式 (+10%)",
			"注: 基础值从 1.0 开始",
		},

		GrowthTitle: "图表 C: 生长基因(Growth Speed) 独立影响 (环境: R=300, C=300)",
		GrowthXAxis: "生长基因数值 (0.5 - 5.0)",
		GrowthYAxis: "总效率 (基准=3.0)",
		GrowthFirst: "1.0星: %.2fx",
		GrowthLast:  "5.0星: %.2fx",

		BreakdownTitle: "图表 D: 效率构成细分 (以 R=300 为例)",
		BreakdownXAxis: "肥料浓度",
		BreakdownYAxis: "效率贡献",
		BreakdownBase:  "基础效率 (Base+Fertility)",
		BreakdownTotal: "最终效率 (Total)",
		BreakdownGain:  "耐肥收益 (Positive)",
		BreakdownLoss:  "烧苗惩罚 (Negative)",

		NoData: "无数据",
	}
}

// LabelsFor picks a label set by locale name; unknown names fall back to English.
func LabelsFor(locale string) Labels {
	if loc, _ := types.CanonicalLocale(locale); loc == types.LocaleChinese {
		return ChineseLabels()
	}
	return EnglishLabels()
}
