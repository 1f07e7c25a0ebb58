package report

import (
	"fmt"

	"github.com/leapstack-labs/datapeek/internal/dataset"
	"github.com/leapstack-labs/datapeek/internal/render"
	"github.com/leapstack-labs/datapeek/internal/stats"
)

// statRows is the fixed row order of the numeric summary frame. The median
// row duplicates the 50% quartile on purpose: it is shown as its own
// labeled row.
var statRows = []string{
	"count", "mean", "std", "min", "25%", "50%", "75%", "max",
	"median", "skew", "kurtosis",
}

// NumericSummary renders the descriptive-statistics frame of every numeric
// column, or a notice when there are none.
func (r *Report) NumericSummary() {
	r.section("NUMERIC COLUMNS STATISTICS", func() {
		cols := r.tab.ColumnsOfKind(dataset.KindNumeric)
		if len(cols) == 0 {
			fmt.Fprintln(r.w, "No numeric data exists in dataset...")
			return
		}
		if err := r.printer.Print(r.numericFrame(cols), render.Options{
			ShowIndex:      true,
			JustifyNumeric: r.opts.Justify,
		}); err != nil {
			fmt.Fprintf(r.w, "Error rendering table: %v\n", err)
		}
	})
}

func (r *Report) numericFrame(cols []*dataset.Column) render.Frame {
	f := render.Frame{
		Columns: make([]string, len(cols)),
		Numeric: make([]bool, len(cols)),
		Index:   statRows,
		Rows:    make([][]any, len(statRows)),
	}
	for i := range f.Rows {
		f.Rows[i] = make([]any, len(cols))
	}
	for ci, c := range cols {
		f.Columns[ci] = c.Name
		f.Numeric[ci] = true
		s := stats.Describe(c.Floats)
		f.Rows[0][ci] = s.Count
		f.Rows[1][ci] = s.Mean
		f.Rows[2][ci] = s.Std
		f.Rows[3][ci] = s.Min
		f.Rows[4][ci] = s.Q25
		f.Rows[5][ci] = s.Median
		f.Rows[6][ci] = s.Q75
		f.Rows[7][ci] = s.Max
		f.Rows[8][ci] = s.Median
		f.Rows[9][ci] = s.Skew
		f.Rows[10][ci] = s.Kurtosis
	}
	return f
}
