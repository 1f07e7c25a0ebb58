package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/datapeek/internal/dataset"
	"github.com/leapstack-labs/datapeek/internal/render"
)

// valueCount pairs one distinct value with its occurrence count. Order of a
// valueCount slice is first-encountered unless explicitly re-sorted.
type valueCount struct {
	value string
	count int
}

// CategoricalSummary renders the high-level describe frame for all
// categorical columns, then a per-column breakdown: unique count, a
// frequency table when the distinct values are few enough to list, and the
// mode set (every value tied for the highest frequency).
func (r *Report) CategoricalSummary() {
	r.section("CATEGORICAL COLUMNS STATISTICS", func() {
		cols := r.tab.ColumnsOfKind(dataset.KindCategorical)
		if len(cols) == 0 {
			fmt.Fprintln(r.w, "No categorical data exists in dataset...")
			return
		}

		fmt.Fprintln(r.w, "High level summary of categorical columns:")
		if err := r.printer.Print(r.describeFrame(cols), render.Options{ShowIndex: true}); err != nil {
			fmt.Fprintf(r.w, "Error rendering table: %v\n", err)
		}

		for _, c := range cols {
			r.categoricalColumn(c)
		}
	})
}

// describeFrame is the count/unique/top/freq frame over all categorical
// columns at once.
func (r *Report) describeFrame(cols []*dataset.Column) render.Frame {
	f := render.Frame{
		Columns: make([]string, len(cols)),
		Numeric: make([]bool, len(cols)),
		Index:   []string{"count", "unique", "top", "freq"},
		Rows:    make([][]any, 4),
	}
	for i := range f.Rows {
		f.Rows[i] = make([]any, len(cols))
	}
	for ci, c := range cols {
		f.Columns[ci] = c.Name
		counts := valueCounts(c)
		nonMissing := 0
		top, topCount := "", 0
		for _, vc := range counts {
			nonMissing += vc.count
			if vc.count > topCount {
				top, topCount = vc.value, vc.count
			}
		}
		f.Rows[0][ci] = nonMissing
		f.Rows[1][ci] = len(counts)
		f.Rows[2][ci] = top
		f.Rows[3][ci] = topCount
	}
	return f
}

func (r *Report) categoricalColumn(c *dataset.Column) {
	fmt.Fprintf(r.w, "\n%s\n", strings.Repeat("~", bannerWidth))
	fmt.Fprintf(r.w, "Categorical feature (column): %s\n", c.Name)

	counts := valueCounts(c)
	fmt.Fprintf(r.w, "Number of unique items: %d\n", len(counts))

	if len(counts) <= r.opts.MaxUnique {
		byFreq := append([]valueCount(nil), counts...)
		sort.SliceStable(byFreq, func(i, j int) bool { return byFreq[i].count > byFreq[j].count })
		r.printItemCounts(byFreq)
	} else {
		fmt.Fprintf(r.w, "\nNumber of unique items > %d. Skipping item listing...\n", r.opts.MaxUnique)
	}

	modes := modes(counts)
	if len(modes) <= r.opts.MaxUnique {
		fmt.Fprintln(r.w, "\nHighest frequency items:")
		r.printItemCounts(modes)
	} else {
		fmt.Fprintf(r.w, "\nThere are >%d items at high frequency. Skipping item listing...\n", r.opts.MaxUnique)
	}
}

func (r *Report) printItemCounts(counts []valueCount) {
	f := render.Frame{
		Columns: []string{"Item", "Count"},
		Numeric: []bool{false, true},
	}
	for _, vc := range counts {
		f.Rows = append(f.Rows, []any{vc.value, vc.count})
	}
	if err := r.printer.Print(f, render.Options{}); err != nil {
		fmt.Fprintf(r.w, "Error rendering table: %v\n", err)
	}
}

// valueCounts tallies the non-missing cells of a column in
// first-encountered order.
func valueCounts(c *dataset.Column) []valueCount {
	index := make(map[string]int)
	var counts []valueCount
	for i, s := range c.Strings {
		if c.Missing[i] {
			continue
		}
		if at, ok := index[s]; ok {
			counts[at].count++
			continue
		}
		index[s] = len(counts)
		counts = append(counts, valueCount{value: s, count: 1})
	}
	return counts
}

// modes returns every value tied for the maximum frequency, keeping
// first-encountered order.
func modes(counts []valueCount) []valueCount {
	highest := 0
	for _, vc := range counts {
		if vc.count > highest {
			highest = vc.count
		}
	}
	var out []valueCount
	for _, vc := range counts {
		if vc.count == highest {
			out = append(out, vc)
		}
	}
	return out
}
