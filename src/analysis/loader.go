// Package analysis loads the efficiency table and derives the series the charts plot.
//
// Loading is tolerant: rows that do not parse are skipped and only counted, so a
// partially broken table still renders whatever panels it can.
package analysis

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/iafilius/CropEfficiencyChart/src/logging"
	"github.com/iafilius/CropEfficiencyChart/src/types"
)

// LoadStats summarizes a load.
type LoadStats struct {
	Rows    int // records kept
	Skipped int // malformed data rows dropped
}

// LoadTable reads the table at path. Files ending in .xlsx are read from their first
// sheet; anything else is parsed as CSV. A missing file yields *MissingInputError.
func LoadTable(path string) (types.Table, LoadStats, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, LoadStats{}, &MissingInputError{Path: path}
		}
		return nil, LoadStats{}, fmt.Errorf("stat %s: %w", path, err)
	}
	var rows rawRows
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, LoadStats{}, err
	}
	t, st, err := parseRows(rows.rows)
	st.Skipped += rows.bad
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debugf("loaded %d rows from %s (%d skipped)", st.Rows, path, st.Skipped)
	return t, st, nil
}

// ReadTable parses CSV content from r.
func ReadTable(r io.Reader) (types.Table, LoadStats, error) {
	rows, err := csvRows(r)
	if err != nil {
		return nil, LoadStats{}, err
	}
	t, st, err := parseRows(rows.rows)
	st.Skipped += rows.bad
	return t, st, err
}

// rawRows is the cell grid of a file plus the number of lines the reader could not split.
type rawRows struct {
	rows [][]string
	bad  int
}

func readCSV(path string) (rawRows, error) {
	f, err := os.Open(path)
	if err != nil {
		return rawRows{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := csvRows(f)
	if err != nil {
		return rawRows{}, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func csvRows(r io.Reader) (rawRows, error) {
	cr := csv.NewReader(r)
	// Field count is checked per row so one short line does not abort the whole read.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var out rawRows
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logging.Debugf("csv line %d skipped: %v", perr.Line, perr.Err)
				out.bad++
				continue
			}
			return rawRows{}, err
		}
		out.rows = append(out.rows, rec)
	}
	return out, nil
}

func readXLSX(path string) (rawRows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return rawRows{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return rawRows{}, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return rawRows{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rawRows{rows: rows}, nil
}

// normalizeHeader folds case and strips spaces, a BOM and underscores so
// "Total Eff", "total_eff" and "TotalEff" all match.
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// columnIndex maps each required column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		n := normalizeHeader(h)
		if _, dup := pos[n]; !dup {
			pos[n] = i
		}
	}
	idx := make(map[string]int, len(types.Columns))
	var missing []string
	for _, c := range types.Columns {
		i, ok := pos[normalizeHeader(c)]
		if !ok {
			missing = append(missing, c)
			continue
		}
		idx[c] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRows(rows [][]string) (types.Table, LoadStats, error) {
	var st LoadStats
	// first non-empty row is the header
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, st, fmt.Errorf("%w: empty table", ErrMissingColumn)
	}
	idx, err := columnIndex(rows[start])
	if err != nil {
		return nil, st, err
	}
	width := 0
	for _, i := range idx {
		if i+1 > width {
			width = i + 1
		}
	}
	out := make(types.Table, 0, len(rows)-start-1)
	for n, row := range rows[start+1:] {
		if isBlank(row) {
			continue
		}
		rec, ok := parseRecord(row, idx, width)
		if !ok {
			st.Skipped++
			logging.Debugf("row %d skipped: %q", start+n+2, row)
			continue
		}
		out = append(out, rec)
	}
	st.Rows = len(out)
	return out, st, nil
}

func parseRecord(row []string, idx map[string]int, width int) (types.EfficiencyRecord, bool) {
	var rec types.EfficiencyRecord
	if len(row) < width {
		return rec, false
	}
	rec.Type = strings.TrimSpace(row[idx[types.ColType]])
	if rec.Type == "" {
		return rec, false
	}
	fields := []struct {
		col string
		dst *float64
	}{
		{types.ColConcentration, &rec.Concentration},
		{types.ColGrowthGene, &rec.GrowthGene},
		{types.ColTotalEff, &rec.TotalEff},
		{types.ColBaseEff, &rec.BaseEff},
		{types.ColResBonus, &rec.ResBonus},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx[f.col]]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return rec, false
		}
		*f.dst = v
	}
	return rec, true
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
