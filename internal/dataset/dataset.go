// Package dataset holds the in-memory table model and its loaders.
//
// A Table is loaded once (from CSV or SQLite), classified column by column
// into numeric, categorical and temporal kinds, and treated as read-only by
// everything downstream.
package dataset

import (
	"fmt"
	"math"
	"strings"
)

// Kind is the inferred semantic kind of a column.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
	KindTemporal
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	case KindTemporal:
		return "temporal"
	}
	return "unknown"
}

// Column is a single named column of the loaded table.
//
// Numeric columns store parsed values in Floats with NaN at missing cells.
// Categorical and temporal columns store the cell text in Strings with ""
// at missing cells. Missing is maintained for all kinds.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
	Missing []bool
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Values returns the non-missing numeric values of a numeric column.
func (c *Column) Values() []float64 {
	out := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if !c.Missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Cell returns the display form of one cell: the raw text for non-numeric
// columns, the shortest float representation for numeric ones, and "NaN"
// for missing cells of any kind.
func (c *Column) Cell(row int) string {
	if c.Missing[row] {
		return "NaN"
	}
	if c.Kind == KindNumeric {
		v := c.Floats[row]
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return fmt.Sprintf("%.1f", v)
		}
		return fmt.Sprintf("%g", v)
	}
	return c.Strings[row]
}

// Table is the loaded dataset: an ordered list of uniquely named columns
// sharing one row count. It is immutable after load.
type Table struct {
	Columns []*Column
	rows    int
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// Names returns the column names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnsOfKind returns the columns of the given kind, in declaration order.
func (t *Table) ColumnsOfKind(k Kind) []*Column {
	var out []*Column
	for _, c := range t.Columns {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// MissingCells returns the total number of missing cells across the table.
func (t *Table) MissingCells() int {
	n := 0
	for _, c := range t.Columns {
		n += c.MissingCount()
	}
	return n
}

// MemoryBytes estimates the deep in-memory size of the table, including
// variable-length string content, not just the fixed-width slices.
func (t *Table) MemoryBytes() int64 {
	const (
		float64Size     = 8
		boolSize        = 1
		stringHeaderLen = 16
	)
	var total int64
	for _, c := range t.Columns {
		total += int64(len(c.Name))
		total += int64(len(c.Floats)) * float64Size
		total += int64(len(c.Missing)) * boolSize
		for _, s := range c.Strings {
			total += stringHeaderLen + int64(len(s))
		}
	}
	return total
}

// String renders a plain space-aligned dump of the whole table, header row
// first, every column right-aligned to its widest cell.
func (t *Table) String() string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Name)
		for row := 0; row < t.rows; row++ {
			if w := len(c.Cell(row)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%*s", widths[i], c.Name)
	}
	b.WriteByte('\n')
	for row := 0; row < t.rows; row++ {
		for i, c := range t.Columns {
			if i > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*s", widths[i], c.Cell(row))
		}
		if row < t.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
