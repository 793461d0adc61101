package table

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

func mustRead(t *testing.T, text string) *Table {
	t.Helper()
	tbl, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return tbl
}

func TestSortColumnsExample(t *testing.T) {
	src := mustRead(t, "a,b\n3,x\n1,y\n2,x\n")

	got := SortColumns(src)

	want := mustRead(t, "a,b\n1,x\n2,x\n3,y\n")
	if !got.Equal(want) {
		t.Fatalf("unexpected sort result: %+v", got.Columns)
	}

	// input is untouched
	if !reflect.DeepEqual(src.Columns[0].Values, []string{"3", "1", "2"}) {
		t.Fatalf("source mutated: %+v", src.Columns[0].Values)
	}
}

func TestSortColumnsNumericVersusText(t *testing.T) {
	src := New([]string{"n", "s"}, [][]string{
		{"10", "10"},
		{"9", "9"},
		{"-1.5", "b"},
		{"1e2", "a"},
	})

	got := SortColumns(src)

	if want := []string{"-1.5", "9", "10", "1e2"}; !reflect.DeepEqual(got.Columns[0].Values, want) {
		t.Fatalf("numeric column: got %v, want %v", got.Columns[0].Values, want)
	}
	if want := []string{"10", "9", "a", "b"}; !reflect.DeepEqual(got.Columns[1].Values, want) {
		t.Fatalf("text column: got %v, want %v", got.Columns[1].Values, want)
	}
}

func TestSortColumnsMissingLast(t *testing.T) {
	src := New([]string{"n", "s", "empty"}, [][]string{
		{"", "z", ""},
		{"2", "", ""},
		{"1", "a", ""},
	})

	got := SortColumns(src)

	if want := []string{"1", "2", ""}; !reflect.DeepEqual(got.Columns[0].Values, want) {
		t.Fatalf("numeric with missing: got %v, want %v", got.Columns[0].Values, want)
	}
	if want := []string{"a", "z", ""}; !reflect.DeepEqual(got.Columns[1].Values, want) {
		t.Fatalf("text with missing: got %v, want %v", got.Columns[1].Values, want)
	}
	if want := []string{"", "", ""}; !reflect.DeepEqual(got.Columns[2].Values, want) {
		t.Fatalf("all missing: got %v, want %v", got.Columns[2].Values, want)
	}
}

func TestSortColumnsEmptyTable(t *testing.T) {
	src := mustRead(t, "a,b\n")

	got := SortColumns(src)

	if got.NumColumns() != 2 || got.NumRows() != 0 {
		t.Fatalf("unexpected shape: %d cols, %d rows", got.NumColumns(), got.NumRows())
	}
	if !reflect.DeepEqual(got.Names(), []string{"a", "b"}) {
		t.Fatalf("unexpected names: %v", got.Names())
	}
}

func TestSortColumnsProperties(t *testing.T) {
	tables := []*Table{
		mustRead(t, "a,b\n3,x\n1,y\n2,x\n"),
		mustRead(t, "id,name,score\n5,bob,1.5\n2,alice,\n9,carol,-3\n2,dave,1.5\n,erin,7\n"),
		mustRead(t, "only\nNaN\n1\n2\n"),
		mustRead(t, "x\n"),
		{},
	}

	for _, tbl := range tables {
		once := SortColumns(tbl)
		twice := SortColumns(once)

		if !twice.Equal(once) {
			t.Fatalf("sort is not idempotent for %v", tbl.Names())
		}
		if once.NumRows() != tbl.NumRows() || once.NumColumns() != tbl.NumColumns() {
			t.Fatalf("shape changed for %v", tbl.Names())
		}
		for i, c := range tbl.Columns {
			before := slices.Clone(c.Values)
			after := slices.Clone(once.Columns[i].Values)
			slices.Sort(before)
			slices.Sort(after)
			if !slices.Equal(before, after) {
				t.Fatalf("column %q values changed: %v vs %v", c.Name, before, after)
			}
		}
	}
}

func TestInferKind(t *testing.T) {
	cases := []struct {
		name   string
		values []string
		want   Kind
	}{
		{name: "integers", values: []string{"1", "2", "3"}, want: KindNumeric},
		{name: "floats with missing", values: []string{"1.5", "", "-2"}, want: KindNumeric},
		{name: "mixed", values: []string{"1", "x"}, want: KindText},
		{name: "nan is text", values: []string{"NaN", "1"}, want: KindText},
		{name: "hex is text", values: []string{"0x10", "1"}, want: KindText},
		{name: "signed hex float is text", values: []string{"-0X1p-2"}, want: KindText},
		{name: "infinity is numeric", values: []string{"-Inf", "2"}, want: KindNumeric},
		{name: "all missing", values: []string{"", ""}, want: KindText},
		{name: "no values", values: nil, want: KindText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferKind(tc.values); got != tc.want {
				t.Fatalf("InferKind(%v) = %s, want %s", tc.values, got, tc.want)
			}
		})
	}
}
