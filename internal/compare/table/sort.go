package table

import (
	"cmp"
	"slices"
)

// SortColumns returns a new table whose columns are each sorted ascending on
// their own. Row correspondence across columns is not kept. Missing values go
// last and equal values keep their relative order, so sorting a sorted table
// returns it unchanged.
func SortColumns(t *Table) *Table {
	out := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Values: sortValues(c.Values)}
	}
	return out
}

type cell struct {
	raw     string
	num     float64
	missing bool
}

func sortValues(values []string) []string {
	kind := InferKind(values)

	cells := make([]cell, len(values))
	for i, v := range values {
		c := cell{raw: v, missing: isMissing(v)}
		if kind == KindNumeric && !c.missing {
			c.num, _ = parseNumber(v)
		}
		cells[i] = c
	}

	slices.SortStableFunc(cells, func(a, b cell) int {
		switch {
		case a.missing && b.missing:
			return 0
		case a.missing:
			return 1
		case b.missing:
			return -1
		}
		if kind == KindNumeric {
			return cmp.Compare(a.num, b.num)
		}
		return cmp.Compare(a.raw, b.raw)
	})

	sorted := make([]string, len(cells))
	for i, c := range cells {
		sorted[i] = c.raw
	}
	return sorted
}
