package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Diff returns the rows of source that have no exact match in compared,
// counting duplicates: a row present n times in source and m times in compared
// appears max(n-m, 0) times in the result. Columns of compared are aligned to
// source by name, and the result keeps source's column and row order.
//
// An empty source yields an empty result and a compared table without any
// columns is treated as empty. Otherwise both tables must hold the same set of
// column names.
func Diff(source, compared *Table) (*Table, error) {
	if source.NumRows() == 0 || compared.NumColumns() == 0 {
		return source.Clone(), nil
	}

	order, err := alignColumns(source, compared)
	if err != nil {
		return nil, err
	}

	remaining := make(map[string]int, compared.NumRows())
	for r := range compared.NumRows() {
		remaining[compared.rowKey(r, order)]++
	}

	identity := make([]int, source.NumColumns())
	for i := range identity {
		identity[i] = i
	}

	var keep []int
	for r := range source.NumRows() {
		key := source.rowKey(r, identity)
		if remaining[key] > 0 {
			remaining[key]--
			continue
		}
		keep = append(keep, r)
	}

	out := &Table{Columns: make([]Column, len(source.Columns))}
	for i, c := range source.Columns {
		values := make([]string, len(keep))
		for j, r := range keep {
			values[j] = c.Values[r]
		}
		out.Columns[i] = Column{Name: c.Name, Values: values}
	}
	return out, nil
}

// alignColumns maps each source column position to the matching compared
// column position.
func alignColumns(source, compared *Table) ([]int, error) {
	if source.NumColumns() != compared.NumColumns() {
		return nil, schemaMismatch(source, compared)
	}

	order := make([]int, source.NumColumns())
	for i, name := range source.Names() {
		j := compared.Index(name)
		if j < 0 {
			return nil, schemaMismatch(source, compared)
		}
		order[i] = j
	}
	return order, nil
}

func schemaMismatch(source, compared *Table) error {
	a, b := source.Names(), compared.Names()
	slices.Sort(a)
	slices.Sort(b)
	return fmt.Errorf("%w: source [%s], compared [%s]", ErrSchemaMismatch, strings.Join(a, ", "), strings.Join(b, ", "))
}

// rowKey encodes row r using the given column positions. Each value is length
// prefixed so no separator can collide with cell content.
func (t *Table) rowKey(r int, order []int) string {
	var b strings.Builder
	for _, c := range order {
		v := t.Columns[c].Values[r]
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
