package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Write emits the dataset as delimited text in the same format Read accepts.
func (d *Dataset) Write(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	cw := csv.NewWriter(w)
	cw.Comma = opts.Delimiter
	if err := cw.Write(d.Columns()); err != nil {
		return err
	}
	rec := make([]string, len(d.columns))
	for r := 0; r < d.rows; r++ {
		for c, col := range d.columns {
			rec[c] = col.cell(r, opts.Decimal)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Preview prints the header and the first n rows, prefixed with the row index.
func (d *Dataset) Preview(w io.Writer, n int) error {
	if n > d.rows {
		n = d.rows
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(d.Columns(), "\t"))
	for r := 0; r < n; r++ {
		fmt.Fprintf(tw, "%d", r)
		for _, col := range d.columns {
			if col.Numeric {
				fmt.Fprintf(tw, "\t%g", col.Values[r])
			} else {
				fmt.Fprintf(tw, "\t%s", col.Text[r])
			}
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}
