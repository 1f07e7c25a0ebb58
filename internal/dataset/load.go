package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

// missingMarkers are the cell values treated as missing, on top of the
// empty string.
var missingMarkers = map[string]bool{
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
}

func isMissing(cell string) bool {
	return cell == "" || missingMarkers[cell]
}

// dateLayouts are tried in order when classifying a column as temporal.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02.01.2006",
}

func parseDate(cell string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, cell); err == nil {
			return true
		}
	}
	return false
}

// LoadCSV reads a comma-separated file with a header row into a Table.
// The header defines column names and order; every data row must have the
// same width as the header. Failures are reported as *LoadError.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Kind: NotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Kind: Malformed, Path: path, Err: fmt.Errorf("no header row")}
	}

	header := records[0]
	cells := make([][]string, len(header))
	for i := range cells {
		cells[i] = make([]string, 0, len(records)-1)
	}
	for _, record := range records[1:] {
		for i := range header {
			cells[i] = append(cells[i], record[i])
		}
	}

	return build(path, header, cells)
}

// build classifies each raw column and assembles the Table. Shared by the
// CSV and SQLite loaders.
func build(path string, names []string, cells [][]string) (*Table, error) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, &LoadError{Kind: Malformed, Path: path, Err: fmt.Errorf("duplicate column name %q", name)}
		}
		seen[name] = true
	}

	rows := 0
	if len(cells) > 0 {
		rows = len(cells[0])
	}

	t := &Table{rows: rows}
	for i, name := range names {
		t.Columns = append(t.Columns, classify(name, cells[i]))
	}
	return t, nil
}

// classify runs the explicit load-time classification pass: a column whose
// non-missing cells all parse as floats is numeric, else all parsing as
// dates makes it temporal, else it is categorical. An all-missing column
// counts as numeric.
func classify(name string, raw []string) *Column {
	missing := make([]bool, len(raw))
	numeric := true
	temporal := true
	nonMissing := 0
	for i, cell := range raw {
		if isMissing(cell) {
			missing[i] = true
			continue
		}
		nonMissing++
		if numeric {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
		}
		if temporal && !parseDate(cell) {
			temporal = false
		}
	}
	if nonMissing == 0 {
		numeric = true
	}

	col := &Column{Name: name, Missing: missing}
	switch {
	case numeric:
		col.Kind = KindNumeric
		col.Floats = make([]float64, len(raw))
		for i, cell := range raw {
			if missing[i] {
				col.Floats[i] = math.NaN()
				continue
			}
			col.Floats[i], _ = strconv.ParseFloat(cell, 64)
		}
	case temporal:
		col.Kind = KindTemporal
		col.Strings = raw
	default:
		col.Kind = KindCategorical
		col.Strings = raw
	}
	return col
}
