// Package dataset loads probe sweep tables (tab-separated text with decimal
// commas, or .xlsx) into an immutable, column-addressable structure.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrNotNumeric    = errors.New("column is not numeric")
	ErrNoHeader      = errors.New("no header row")
	ErrRowTooLong    = errors.New("row has more fields than header")
	ErrDuplicate     = errors.New("duplicate column name")
)

// Column is one named column. Numeric columns carry Values, text columns carry Text.
type Column struct {
	Name    string
	Numeric bool
	Values  []float64
	Text    []string
}

func (c Column) len() int {
	if c.Numeric {
		return len(c.Values)
	}
	return len(c.Text)
}

func (c Column) cell(i int, decimal rune) string {
	if !c.Numeric {
		return c.Text[i]
	}
	return FormatNumber(c.Values[i], decimal)
}

func (c Column) slice(from, to int) Column {
	out := Column{Name: c.Name, Numeric: c.Numeric}
	if c.Numeric {
		out.Values = c.Values[from:to:to]
	} else {
		out.Text = c.Text[from:to:to]
	}
	return out
}

// Dataset is an ordered table; column order and row order follow the source.
// It is never mutated after construction.
type Dataset struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a Dataset from columns of equal length.
func New(columns ...Column) (*Dataset, error) {
	d := &Dataset{index: make(map[string]int, len(columns))}
	for i, c := range columns {
		if _, dup := d.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, c.Name)
		}
		if i == 0 {
			d.rows = c.len()
		} else if c.len() != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name, c.len(), d.rows)
		}
		d.index[c.Name] = i
		d.columns = append(d.columns, c)
	}
	return d, nil
}

// FromFloats is a convenience constructor for numeric-only tables, columns in the given order.
func FromFloats(names []string, values ...[]float64) (*Dataset, error) {
	if len(names) != len(values) {
		return nil, fmt.Errorf("%d names for %d columns", len(names), len(values))
	}
	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n, Numeric: true, Values: append([]float64(nil), values[i]...)}
	}
	return New(cols...)
}

// Len returns the row count.
func (d *Dataset) Len() int { return d.rows }

// Columns returns column names in source order.
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether a column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Float returns a copy of a numeric column.
func (d *Dataset) Float(name string) ([]float64, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	c := d.columns[i]
	if !c.Numeric {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	return append([]float64(nil), c.Values...), nil
}

// Head returns the first n rows (all rows when n >= Len).
func (d *Dataset) Head(n int) *Dataset {
	if n > d.rows {
		n = d.rows
	}
	if n < 0 {
		n = 0
	}
	return d.rowRange(0, n)
}

// Tail returns the last n rows (all rows when n >= Len).
func (d *Dataset) Tail(n int) *Dataset {
	if n > d.rows {
		n = d.rows
	}
	if n < 0 {
		n = 0
	}
	return d.rowRange(d.rows-n, d.rows)
}

// rowRange shares backing arrays; capped slices keep appends from leaking into the parent.
func (d *Dataset) rowRange(from, to int) *Dataset {
	out := &Dataset{index: d.index, rows: to - from, columns: make([]Column, len(d.columns))}
	for i, c := range d.columns {
		out.columns[i] = c.slice(from, to)
	}
	return out
}

// ParseNumber converts a cell using the given decimal separator. Empty cells are NaN.
// A '.' is accepted as well, so "1,5" and "1.5" both parse with decimal ','.
func ParseNumber(s string, decimal rune) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	if decimal != '.' {
		s = strings.ReplaceAll(s, string(decimal), ".")
	}
	return strconv.ParseFloat(s, 64)
}

// FormatNumber renders v with the given decimal separator using the shortest exact form.
func FormatNumber(v float64, decimal rune) string {
	if math.IsNaN(v) {
		return ""
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if decimal != '.' {
		s = strings.Replace(s, ".", string(decimal), 1)
	}
	return s
}
