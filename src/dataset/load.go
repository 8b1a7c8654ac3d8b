package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/iafilius/LangmuirSweep/src/logging"
)

// Options controls parsing. The zero value means tab delimiter, comma decimal, U and Ig required.
type Options struct {
	Delimiter rune
	Decimal   rune
	// Required columns must exist and be numeric.
	Required []string
	// Sheet selects the worksheet for .xlsx input; empty means the first sheet.
	Sheet string
}

// DefaultRequired are the sweep columns every measurement file must provide.
var DefaultRequired = []string{"U", "Ig"}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = '\t'
	}
	if o.Decimal == 0 {
		o.Decimal = ','
	}
	if o.Required == nil {
		o.Required = DefaultRequired
	}
	return o
}

// Load reads a sweep file. ".xlsx" files go through excelize, anything else is parsed as delimited text.
func Load(path string, opts Options) (*Dataset, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("loaded %s: %d rows, columns=%s", path, d.Len(), strings.Join(d.Columns(), ","))
	return d, nil
}

// Read parses delimited text whose first record is the header.
func Read(r io.Reader, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(records, opts)
}

// LoadXLSX reads one worksheet laid out like the text format: header row, then one row per sample.
func LoadXLSX(path string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s sheet %q: %w", path, sheet, err)
	}
	d, err := fromRecords(rows, opts)
	if err != nil {
		return nil, fmt.Errorf("%s sheet %q: %w", path, sheet, err)
	}
	logging.Infof("loaded %s sheet %q: %d rows, columns=%s", path, sheet, d.Len(), strings.Join(d.Columns(), ","))
	return d, nil
}

func fromRecords(records [][]string, opts Options) (*Dataset, error) {
	records = dropBlank(records)
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	header := cleanHeader(records[0])
	body := records[1:]
	raw := make([][]string, len(header))
	for i := range raw {
		raw[i] = make([]string, len(body))
	}
	for r, rec := range body {
		if len(rec) > len(header) {
			// line numbers are 1-based and include the header
			return nil, fmt.Errorf("line %d: %w (%d > %d)", r+2, ErrRowTooLong, len(rec), len(header))
		}
		for c := range rec {
			raw[c][r] = rec[c]
		}
	}

	required := make(map[string]bool, len(opts.Required))
	for _, name := range opts.Required {
		required[name] = true
	}
	cols := make([]Column, len(header))
	for c, name := range header {
		col, err := parseColumn(name, raw[c], opts.Decimal, required[name])
		if err != nil {
			return nil, err
		}
		cols[c] = col
	}
	d, err := New(cols...)
	if err != nil {
		return nil, err
	}
	for _, name := range opts.Required {
		if !d.Has(name) {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrMissingColumn, name, strings.Join(header, ","))
		}
	}
	return d, nil
}

// parseColumn yields a numeric column when every cell parses; a failing cell
// in a required column is an error, otherwise the column is kept as text.
func parseColumn(name string, cells []string, decimal rune, required bool) (Column, error) {
	values := make([]float64, len(cells))
	for r, s := range cells {
		v, err := ParseNumber(s, decimal)
		if err != nil {
			if required {
				return Column{}, fmt.Errorf("line %d: %w: %q value %q", r+2, ErrNotNumeric, name, s)
			}
			logging.Debugf("column %q kept as text (line %d value %q)", name, r+2, s)
			return Column{Name: name, Text: append([]string(nil), cells...)}, nil
		}
		values[r] = v
	}
	return Column{Name: name, Numeric: true, Values: values}, nil
}

// cleanHeader trims names, strips a BOM, names empty cells "Unnamed: <i>" and
// renames repeats to "<name>.1", "<name>.2", ... in order of appearance.
func cleanHeader(rec []string) []string {
	header := make([]string, len(rec))
	used := make(map[string]bool, len(rec))
	for i, h := range rec {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[h] {
			base := h
			for n := 1; used[h]; n++ {
				h = fmt.Sprintf("%s.%d", base, n)
			}
			logging.Debugf("duplicate column %q renamed to %q", base, h)
		}
		used[h] = true
		header[i] = h
	}
	return header
}

func dropBlank(records [][]string) [][]string {
	out := records[:0:0]
	for _, rec := range records {
		blank := true
		for _, f := range rec {
			if strings.TrimSpace(f) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, rec)
		}
	}
	return out
}
