package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iafilius/CropEfficiencyChart/src/types"
)

const sampleCSV = `Type,Concentration,GrowthGene,TotalEff,BaseEff,ResBonus
Vanilla,0,1.0,1.5,1.5,0.0
Gene_R300,100,1.0,2.0,1.0,1.0
Gene_R300,200,1.0,2.8,1.5,1.3
Stack_1_Base,0,1.0,1.0,1.0,0
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadTable_CSV(t *testing.T) {
	tbl, st, err := LoadTable(writeFile(t, "efficiency_data.csv", sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 4, st.Rows)
	assert.Zero(t, st.Skipped)
	require.Len(t, tbl, 4)
	assert.Equal(t, types.EfficiencyRecord{Type: "Gene_R300", Concentration: 100, GrowthGene: 1, TotalEff: 2, BaseEff: 1, ResBonus: 1}, tbl[1])
}

func TestLoadTable_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "efficiency_data.csv")
	_, _, err := LoadTable(missing)
	require.Error(t, err)
	var mie *MissingInputError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, missing, mie.Path)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadTable_HeaderOrderAndSpelling(t *testing.T) {
	body := "res_bonus, Total Eff ,type,BaseEff,growthgene,CONCENTRATION\n0.5,2.5,Gene_R50,2.0,1.0,40\n"
	tbl, _, err := ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, tbl, 1)
	assert.Equal(t, types.EfficiencyRecord{Type: "Gene_R50", Concentration: 40, GrowthGene: 1, TotalEff: 2.5, BaseEff: 2, ResBonus: 0.5}, tbl[0])
}

func TestReadTable_BOMHeader(t *testing.T) {
	body := "\ufeffType,Concentration,GrowthGene,TotalEff,BaseEff,ResBonus\nVanilla,0,1,1.5,1.5,0\n"
	tbl, _, err := ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	assert.Len(t, tbl, 1)
}

func TestReadTable_SkipsMalformedRows(t *testing.T) {
	body := `Type,Concentration,GrowthGene,TotalEff,BaseEff,ResBonus
Vanilla,0,1.0,1.5,1.5,0.0
Vanilla,10,1.0,abc,1.5,0.0
Vanilla,20
,30,1.0,1.5,1.5,0.0

Vanilla,40,1.0,1.5,1.5,0.0
`
	tbl, st, err := ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, 3, st.Skipped)
	assert.Equal(t, []float64{0, 40}, Concentrations(tbl))
}

func TestReadTable_SkipsNonFiniteValues(t *testing.T) {
	body := `Type,Concentration,GrowthGene,TotalEff,BaseEff,ResBonus
Gene_R300,0,1.0,1.5,1.5,0.0
Gene_R300,10,1.0,+Inf,1.5,0.0
Gene_R300,20,1.0,NaN,1.5,0.0
Gene_R300,30,-inf,1.6,1.5,0.1
Gene_R300,40,1.0,1.7,1.5,0.2
`
	tbl, st, err := ReadTable(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Rows)
	assert.Equal(t, 3, st.Skipped)
	assert.Equal(t, 1, PeakIndex(tbl))
	assert.Equal(t, []float64{1.5, 1.7}, Totals(tbl))
}

func TestReadTable_MissingColumn(t *testing.T) {
	_, _, err := ReadTable(strings.NewReader("Type,Concentration,TotalEff\nVanilla,0,1.5\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "GrowthGene")

	_, _, err = ReadTable(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadTable_XLSXMatchesCSV(t *testing.T) {
	csvTbl, _, err := ReadTable(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, line := range strings.Split(strings.TrimSpace(sampleCSV), "\n") {
		for c, cell := range strings.Split(line, ",") {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, name, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "efficiency_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	xlsxTbl, st, err := LoadTable(path)
	require.NoError(t, err)
	assert.Zero(t, st.Skipped)
	assert.Equal(t, csvTbl, xlsxTbl)
}
