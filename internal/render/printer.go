package render

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Frame is an ephemeral rectangular result produced by an analysis step:
// ordered column labels, a per-column numeric flag, optional row-index
// labels, and rows of cells. Frames are rendered once and discarded.
type Frame struct {
	Columns []string
	Numeric []bool
	Index   []string
	Rows    [][]any
}

// Options controls how a Frame is rendered.
type Options struct {
	Title     string
	MaxRows   int // 0 means all rows
	MaxCols   int // 0 means all columns
	ShowIndex bool
	// JustifyNumeric aligns numeric columns: "left", "center" or "right".
	// Empty defaults to "right". Non-numeric columns always align left.
	JustifyNumeric string
}

// InvalidArgumentError is returned when an option value is not one of the
// recognized choices.
type InvalidArgumentError struct {
	Name  string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s must be one of left, center or right, got %q", e.Name, e.Value)
}

// Printer renders frames to one writer with one style set.
type Printer struct {
	w      io.Writer
	styles *Styles
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer, styles *Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// Print renders the frame as an aligned console table. An empty frame
// produces a short notice instead of a table. Row and column caps truncate
// head-wise; the caption reports how much of the true total was shown, and
// a shape notice with the untruncated dimensions follows the table whenever
// any cap was supplied.
func (p *Printer) Print(f Frame, opts Options) error {
	align, err := justification(opts.JustifyNumeric)
	if err != nil {
		return err
	}

	if len(f.Rows) == 0 {
		_, _ = fmt.Fprintln(p.w, p.styles.Notice.Render("Table is empty"))
		return nil
	}

	totalRows := len(f.Rows)
	totalCols := len(f.Columns)
	shownRows := totalRows
	if opts.MaxRows > 0 && opts.MaxRows < shownRows {
		shownRows = opts.MaxRows
	}
	shownCols := totalCols
	if opts.MaxCols > 0 && opts.MaxCols < shownCols {
		shownCols = opts.MaxCols
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	if opts.Title != "" {
		t.SetTitle(opts.Title)
	}

	offset := 0
	if opts.ShowIndex {
		offset = 1
	}
	configs := make([]table.ColumnConfig, 0, shownCols+offset)
	header := make(table.Row, 0, shownCols+offset)
	if opts.ShowIndex {
		header = append(header, "Index")
		configs = append(configs, table.ColumnConfig{
			Number:      1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
		})
	}
	for i := 0; i < shownCols; i++ {
		header = append(header, f.Columns[i])
		colAlign := text.AlignLeft
		if f.Numeric[i] {
			colAlign = align
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + offset + 1,
			Align:       colAlign,
			AlignHeader: colAlign,
		})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for ri := 0; ri < shownRows; ri++ {
		row := make(table.Row, 0, shownCols+offset)
		if opts.ShowIndex {
			label := fmt.Sprintf("%d", ri)
			if ri < len(f.Index) {
				label = f.Index[ri]
			}
			row = append(row, p.styles.Dim.Render(label))
		}
		for ci := 0; ci < shownCols; ci++ {
			row = append(row, p.formatCell(f.Rows[ri][ci]))
		}
		t.AppendRow(row)
	}

	rowsTruncated := shownRows < totalRows
	colsTruncated := shownCols < totalCols
	switch {
	case rowsTruncated && colsTruncated:
		t.SetCaption("Showing %d of %d rows, %d of %d columns", shownRows, totalRows, shownCols, totalCols)
	case rowsTruncated:
		t.SetCaption("Showing %d of %d rows", shownRows, totalRows)
	case colsTruncated:
		t.SetCaption("Showing %d of %d columns", shownCols, totalCols)
	}

	t.Render()

	if opts.MaxRows > 0 || opts.MaxCols > 0 {
		_, _ = fmt.Fprintln(p.w)
		_, _ = fmt.Fprintln(p.w, p.styles.Dim.Render(
			fmt.Sprintf("Table shape: %d rows × %d columns", totalRows, totalCols)))
	}
	return nil
}

// formatCell renders one cell: missing values as a dim NaN marker, floats
// with four decimals below 1000 in magnitude and scientific notation above,
// integers plainly, anything else via its default string form.
func (p *Printer) formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return p.styles.Dim.Render("NaN")
	case float64:
		return p.formatFloat(x)
	case float32:
		return p.formatFloat(float64(x))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (p *Printer) formatFloat(v float64) string {
	if math.IsNaN(v) {
		return p.styles.Dim.Render("NaN")
	}
	if math.Abs(v) < 1000 {
		return fmt.Sprintf("%.4f", v)
	}
	return fmt.Sprintf("%.2e", v)
}

func justification(mode string) (text.Align, error) {
	switch mode {
	case "", "right":
		return text.AlignRight, nil
	case "left":
		return text.AlignLeft, nil
	case "center":
		return text.AlignCenter, nil
	default:
		return text.AlignDefault, &InvalidArgumentError{Name: "justify_numeric", Value: mode}
	}
}
