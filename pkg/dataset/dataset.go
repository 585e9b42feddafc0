// Package dataset loads tabular chart input from CSV files.
//
// A [Table] is a header-indexed view over CSV records. Columns are extracted
// by name, either as floats (for bubble areas) or as strings (for labels,
// values, and colors). Lookups are case-sensitive and surface INVALID_COLUMN
// errors with the list of available columns so CLI users can self-correct.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jabulente/bubblechart/pkg/errors"
)

// Table is an immutable in-memory CSV table with a header row.
type Table struct {
	header  []string
	index   map[string]int
	records [][]string
}

// Read parses CSV from r. The first record is the header; every following
// record must have the same number of fields.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse CSV")
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset needs a header row and at least one data row")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	return &Table{header: header, index: index, records: records[1:]}, nil
}

// ReadFile parses a CSV file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open dataset %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.records) }

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.header))
	copy(out, t.header)
	return out
}

// Strings returns the named column as strings.
func (t *Table) Strings(column string) ([]string, error) {
	col, err := t.column(column)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.records))
	for i, rec := range t.records {
		out[i] = rec[col]
	}
	return out, nil
}

// Floats returns the named column parsed as float64 values.
func (t *Table) Floats(column string) ([]float64, error) {
	col, err := t.column(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.records))
	for i, rec := range t.records {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q row %d: %q is not a number", column, i+1, rec[col])
		}
		out[i] = v
	}
	return out, nil
}

// column resolves a header name to its field index.
func (t *Table) column(name string) (int, error) {
	if err := errors.ValidateColumnName(name); err != nil {
		return 0, err
	}
	col, ok := t.index[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidColumn,
			"column %q not found (available: %s)", name, strings.Join(t.header, ", "))
	}
	return col, nil
}

// FormatValue renders a float the way chart value captions expect: integers
// without a decimal point, everything else with up to two decimals.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}
