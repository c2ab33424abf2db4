package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/CropEfficiencyChart/src/analysis"
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

func TestSummarize_CountsAndWaterfall(t *testing.T) {
	tbl := types.Table{
		{Type: types.TypeVanilla, TotalEff: 1.5},
		{Type: types.TypeVanilla, TotalEff: 1.5},
		{Type: types.TypeStackBase, TotalEff: 1.0},
		{Type: types.TypeStackFert, TotalEff: 1.5},
		{Type: types.TypeStackRes, TotalEff: 2.5},
	}
	var buf bytes.Buffer
	require.NoError(t, summarize(&buf, tbl, analysis.LoadStats{Rows: 5, Skipped: 1}, ""))
	out := buf.String()
	assert.Contains(t, out, "Total rows: 5 (skipped 1)")
	assert.Contains(t, out, "Vanilla: 2")
	assert.Contains(t, out, "+0.50")
	assert.Contains(t, out, "+1.00")
	assert.Contains(t, out, "2.50x")
	// absent stack steps fall back to zero totals
	assert.Contains(t, out, "-2.50")
}

func TestSummarize_TypeFilter(t *testing.T) {
	tbl := types.Table{
		{Type: "Gene_R300", Concentration: 100, GrowthGene: 1, TotalEff: 2, BaseEff: 1, ResBonus: 1},
		{Type: "Vanilla"},
	}
	var buf bytes.Buffer
	require.NoError(t, summarize(&buf, tbl, analysis.LoadStats{}, "Gene_R300"))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Gene_R300: 1 rows"))
	assert.Contains(t, out, "2.0000")

	buf.Reset()
	require.NoError(t, summarize(&buf, tbl, analysis.LoadStats{}, "Unknown"))
	assert.True(t, strings.HasPrefix(buf.String(), "Unknown: 0 rows"))
}

func TestExitCode_MissingTableHint(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "efficiency_data.csv")
	_, _, err := analysis.LoadTable(missing)
	require.Error(t, err)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, exitCode(err, &stdout, &stderr))
	assert.Equal(t, "Error: "+missing+" not found. Please run the Java generator first.\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	assert.Equal(t, 1, exitCode(errors.New("bad header"), &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "bad header")
	assert.Equal(t, 0, exitCode(nil, &stdout, &stderr))
}
