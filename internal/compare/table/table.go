package table

import (
	"errors"
	"slices"
)

var (
	// ErrSchemaMismatch is returned by Diff when the two tables do not share
	// the same set of column names.
	ErrSchemaMismatch = errors.New("tables do not share the same columns")
	// ErrDuplicateColumn is returned by Read when a header names a column twice.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrMalformed is returned by Read when the input is not valid delimited text.
	ErrMalformed = errors.New("malformed table")
)

// Column is a named, ordered sequence of cell values. An empty string is a
// missing value.
type Column struct {
	Name   string
	Values []string
}

// Table is an ordered sequence of columns sharing the same row count.
type Table struct {
	Columns []Column
}

// New builds a table from a header and row-major records. Every record must
// have len(header) fields.
func New(header []string, rows [][]string) *Table {
	t := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		values := make([]string, len(rows))
		for r, row := range rows {
			values[r] = row[i]
		}
		t.Columns[i] = Column{Name: name, Values: values}
	}
	return t
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Names returns the column names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Row returns a copy of row i across all columns.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].Values[i]
	}
	return row
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Values: slices.Clone(c.Values)}
	}
	return out
}

// Equal reports whether both tables have the same columns in the same order
// holding the same values in the same order.
func (t *Table) Equal(other *Table) bool {
	if len(t.Columns) != len(other.Columns) {
		return false
	}
	for i, c := range t.Columns {
		if c.Name != other.Columns[i].Name || !slices.Equal(c.Values, other.Columns[i].Values) {
			return false
		}
	}
	return true
}
