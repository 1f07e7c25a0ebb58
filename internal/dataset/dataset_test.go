package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV_Basic(t *testing.T) {
	path := writeCSV(t, "Age,City,Signup\n31,Oslo,2021-03-01\n45,Bergen,2022-11-15\n28,Oslo,2020-01-20\n")

	tab, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 3, tab.Rows())
	assert.Equal(t, 3, tab.ColumnCount())
	assert.Equal(t, []string{"Age", "City", "Signup"}, tab.Names())

	assert.Equal(t, KindNumeric, tab.Columns[0].Kind)
	assert.Equal(t, KindCategorical, tab.Columns[1].Kind)
	assert.Equal(t, KindTemporal, tab.Columns[2].Kind)
}

func TestLoadCSV_MissingCells(t *testing.T) {
	path := writeCSV(t, "A,B\n1,x\n,y\nNaN,\n")

	tab, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, tab.Columns[0].MissingCount())
	assert.Equal(t, 1, tab.Columns[1].MissingCount())
	assert.Equal(t, 3, tab.MissingCells())

	// Missing numeric cells are NaN in the float storage.
	assert.True(t, math.IsNaN(tab.Columns[0].Floats[1]))
	assert.Equal(t, []float64{1}, tab.Columns[0].Values())
}

func TestLoadCSV_NotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, NotFound, le.Kind)
}

func TestLoadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"ragged rows", "A,B\n1,2\n3\n"},
		{"duplicate header", "A,A\n1,2\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(writeCSV(t, tt.content))

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, Malformed, le.Kind)
		})
	}
}

func TestClassify_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want Kind
	}{
		{"integers", []string{"1", "2", "3"}, KindNumeric},
		{"floats with missing", []string{"1.5", "", "2.5"}, KindNumeric},
		{"scientific notation", []string{"1e3", "2.5e-1"}, KindNumeric},
		{"dates", []string{"2021-01-01", "2021-06-30"}, KindTemporal},
		{"mixed text and numbers", []string{"1", "two"}, KindCategorical},
		{"mixed dates and text", []string{"2021-01-01", "soon"}, KindCategorical},
		{"all missing", []string{"", "NA", "null"}, KindNumeric},
		{"labels", []string{"x", "y", "x"}, KindCategorical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify("c", tt.raw).Kind)
		})
	}
}

func TestColumnsOfKind_PartitionsAreExhaustive(t *testing.T) {
	path := writeCSV(t, "A,B,C,D\n1,x,2020-01-01,2\n2,y,2021-01-01,3\n")
	tab, err := LoadCSV(path)
	require.NoError(t, err)

	total := 0
	for _, k := range []Kind{KindNumeric, KindCategorical, KindTemporal} {
		total += len(tab.ColumnsOfKind(k))
	}
	assert.Equal(t, tab.ColumnCount(), total)
}

func TestTableString_DumpsAllCells(t *testing.T) {
	path := writeCSV(t, "A,B\n1,x\n,y\n")
	tab, err := LoadCSV(path)
	require.NoError(t, err)

	dump := tab.String()
	lines := strings.Split(dump, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "B")
	assert.Contains(t, dump, "NaN")
	assert.Contains(t, dump, "x")
	assert.Contains(t, dump, "y")
}

func TestMemoryBytes_ReflectsContent(t *testing.T) {
	small, err := LoadCSV(writeCSV(t, "A\nx\n"))
	require.NoError(t, err)
	large, err := LoadCSV(writeCSV(t, "A\n"+strings.Repeat("x", 4096)+"\n"))
	require.NoError(t, err)

	assert.Greater(t, large.MemoryBytes(), small.MemoryBytes())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "numeric", KindNumeric.String())
	assert.Equal(t, "categorical", KindCategorical.String())
	assert.Equal(t, "temporal", KindTemporal.String())
}
