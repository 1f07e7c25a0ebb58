// Package report produces the exploratory-data-analysis report: one method
// per section, each reading the loaded table and writing a self-contained,
// banner-delimited block to the output stream. Sections are independent and
// may run in any order; none of them mutates the table.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/datapeek/internal/dataset"
	"github.com/leapstack-labs/datapeek/internal/render"
)

const bannerWidth = 80

// Options tunes a Report. The zero value is completed by New.
type Options struct {
	// Table names the SQLite table to load for database sources.
	Table string
	// Justify is the numeric justification for summary frames.
	Justify string
	// MaxUnique caps how many distinct values a frequency listing may have.
	MaxUnique int
	// StrongThreshold is the |r| cutoff for reporting a correlation pair.
	StrongThreshold float64
}

// Report owns one loaded table and renders the analysis sections.
type Report struct {
	w       io.Writer
	styles  *render.Styles
	printer *render.Printer
	tab     *dataset.Table
	opts    Options
}

// CorrelationPair is one off-diagonal matrix entry above the strong
// threshold.
type CorrelationPair struct {
	A, B string
	R    float64
}

// New loads the dataset at path and returns a Report over it. The load is
// announced inside its own banner: a success line with the table dimensions,
// or the failure before the *dataset.LoadError propagates. On failure no
// usable Report is returned.
func New(w io.Writer, styles *render.Styles, path string, opts Options) (*Report, error) {
	if opts.MaxUnique <= 0 {
		opts.MaxUnique = 10
	}
	if opts.StrongThreshold == 0 {
		opts.StrongThreshold = 0.5
	}

	r := &Report{
		w:       w,
		styles:  styles,
		printer: render.NewPrinter(w, styles),
		opts:    opts,
	}

	var err error
	r.section("INITIALIZING DATA REPORT", func() {
		var tab *dataset.Table
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			tab, err = dataset.LoadSQLite(path, opts.Table)
		default:
			tab, err = dataset.LoadCSV(path)
		}
		if err != nil {
			if le, ok := err.(*dataset.LoadError); ok && le.Kind == dataset.NotFound {
				fmt.Fprintf(w, "File not found: %s\n", path)
			} else {
				fmt.Fprintf(w, "Error loading data: %v\n", err)
			}
			return
		}
		r.tab = tab
		fmt.Fprintf(w, "Data loaded successfully: %d rows, %d columns\n", tab.Rows(), tab.ColumnCount())
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run produces every report section in the standard order.
func (r *Report) Run() {
	r.BasicInfo()
	r.MissingValues()
	r.DataTypes()
	r.NumericSummary()
	r.CategoricalSummary()
	r.CorrelationAnalysis()
}

// section prints the banner for title and then runs fn. Every public
// analysis method goes through here so sections are uniformly delimited.
func (r *Report) section(title string, fn func()) {
	divider := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Banner.Render(divider))
	fmt.Fprintln(r.w, r.styles.Section.Render(title))
	fmt.Fprintln(r.w, r.styles.Banner.Render(divider))
	fn()
}

// BasicInfo reports the table dimensions, its deep in-memory size and the
// column names in declaration order.
func (r *Report) BasicInfo() {
	r.section("BASIC TABLE INFORMATION", func() {
		fmt.Fprintf(r.w, "Number of rows: %d\n", r.tab.Rows())
		fmt.Fprintf(r.w, "Number of columns: %d\n", r.tab.ColumnCount())
		fmt.Fprintf(r.w, "Memory usage: %.2f MB\n", float64(r.tab.MemoryBytes())/(1024*1024))
		fmt.Fprintf(r.w, "\nColumn Names:\n")
		for i, name := range r.tab.Names() {
			fmt.Fprintf(r.w, "  %d. %s\n", i+1, name)
		}
	})
}

// MissingValues reports whether the table has missing cells. When it does,
// the confirmation is followed by a plain dump of the full original table.
func (r *Report) MissingValues() {
	r.section("MISSING VALUES ANALYSIS", func() {
		summary := r.missingSummary()
		if len(summary.Rows) == 0 {
			fmt.Fprintln(r.w, "There are no missing elements in the dataset !!")
			return
		}
		fmt.Fprintln(r.w, "Found missing values in dataset!")
		fmt.Fprintln(r.w, r.tab.String())
	})
}

// missingSummary builds the per-column missing frame: only columns with a
// non-zero missing count, sorted ascending by that count, each carrying the
// global missing rate totalMissing*100/(rows*cols). The rate is identical
// on every row by construction.
func (r *Report) missingSummary() render.Frame {
	f := render.Frame{
		Columns: []string{"Columns", "Missing Elements", "Percentage Missing"},
		Numeric: []bool{false, true, true},
	}
	cellCount := r.tab.Rows() * r.tab.ColumnCount()
	if cellCount == 0 {
		return f
	}
	rate := float64(r.tab.MissingCells()) * 100 / float64(cellCount)
	for _, c := range r.tab.Columns {
		if n := c.MissingCount(); n > 0 {
			f.Rows = append(f.Rows, []any{c.Name, n, rate})
		}
	}
	sort.SliceStable(f.Rows, func(i, j int) bool {
		return f.Rows[i][1].(int) < f.Rows[j][1].(int)
	})
	return f
}

// DataTypes partitions the columns by inferred kind and reports each
// partition independently with a 0-indexed member list.
func (r *Report) DataTypes() {
	r.section("DATA TYPES SUMMARY", func() {
		r.kindPartition(dataset.KindNumeric, "numeric", "No numerical data found in dataset")
		fmt.Fprintln(r.w)
		r.kindPartition(dataset.KindCategorical, "categorical", "No categorical data found in dataset")
		fmt.Fprintln(r.w)
		r.kindPartition(dataset.KindTemporal, "temporal", "No temporal data found in dataset")
	})
}

func (r *Report) kindPartition(k dataset.Kind, label, emptyMsg string) {
	cols := r.tab.ColumnsOfKind(k)
	if len(cols) == 0 {
		fmt.Fprintln(r.w, emptyMsg)
		return
	}
	fmt.Fprintf(r.w, "Found %d %s columns in dataset:\n", len(cols), label)
	for i, c := range cols {
		fmt.Fprintf(r.w, "%d - %s\n", i, c.Name)
	}
}
