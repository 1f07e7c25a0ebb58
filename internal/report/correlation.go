package report

import (
	"fmt"
	"math"

	"github.com/leapstack-labs/datapeek/internal/dataset"
	"github.com/leapstack-labs/datapeek/internal/render"
	"github.com/leapstack-labs/datapeek/internal/stats"
)

// CorrelationAnalysis renders the Pearson and Spearman correlation matrices
// over the numeric columns and lists the strong pairs of each. Both halves
// always run when at least two numeric columns exist; with fewer, a notice
// is printed and nothing is computed.
func (r *Report) CorrelationAnalysis() {
	r.section("CORRELATION ANALYSIS (applicable to the numeric columns only)", func() {
		cols := r.tab.ColumnsOfKind(dataset.KindNumeric)
		if len(cols) == 0 {
			fmt.Fprintln(r.w, "No numerical data found in dataset...")
			return
		}
		if len(cols) < 2 {
			fmt.Fprintf(r.w, "Found only %d numeric column(s). At least 2 numeric columns are required for correlation analysis.\n", len(cols))
			return
		}

		fmt.Fprintf(r.w, "Found %d numeric columns in dataset:\n", len(cols))
		for i, c := range cols {
			fmt.Fprintf(r.w, "  %d. %s\n", i+1, c.Name)
		}

		values := make([][]float64, len(cols))
		names := make([]string, len(cols))
		for i, c := range cols {
			values[i] = c.Floats
			names[i] = c.Name
		}

		r.correlationHalf("Pearson", names, stats.Matrix(values, stats.Pearson))
		r.correlationHalf("Spearman", names, stats.Matrix(values, stats.Spearman))
	})
}

// correlationHalf renders one method's matrix (center-justified) and its
// strong pairs in row-major upper-triangle order.
func (r *Report) correlationHalf(method string, names []string, matrix [][]float64) {
	fmt.Fprintf(r.w, "\n%s Correlation Matrix:\n", method)
	if err := r.printer.Print(matrixFrame(names, matrix), render.Options{
		ShowIndex:      true,
		JustifyNumeric: "center",
	}); err != nil {
		fmt.Fprintf(r.w, "Error rendering table: %v\n", err)
	}

	fmt.Fprintf(r.w, "\nStrong %s Correlations Criterion: |r| > %g\n", method, r.opts.StrongThreshold)
	pairs := r.strongPairs(names, matrix)
	if len(pairs) == 0 {
		fmt.Fprintf(r.w, "\tNo strong %s correlations found !\n", method)
		return
	}
	for _, p := range pairs {
		fmt.Fprintf(r.w, "  %s ↔ %s: %.3f\n", p.A, p.B, p.R)
	}
}

// strongPairs scans the upper triangle (i<j) for entries whose absolute
// value exceeds the threshold, in the order encountered.
func (r *Report) strongPairs(names []string, matrix [][]float64) []CorrelationPair {
	var pairs []CorrelationPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if math.Abs(matrix[i][j]) > r.opts.StrongThreshold {
				pairs = append(pairs, CorrelationPair{A: names[i], B: names[j], R: matrix[i][j]})
			}
		}
	}
	return pairs
}

func matrixFrame(names []string, matrix [][]float64) render.Frame {
	f := render.Frame{
		Columns: names,
		Numeric: make([]bool, len(names)),
		Index:   names,
		Rows:    make([][]any, len(names)),
	}
	for i := range f.Numeric {
		f.Numeric[i] = true
	}
	for i, row := range matrix {
		f.Rows[i] = make([]any, len(row))
		for j, v := range row {
			f.Rows[i][j] = v
		}
	}
	return f
}
