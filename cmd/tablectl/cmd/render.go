package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/shandysiswandi/gocompare/internal/compare/table"
)

const (
	formatAuto  = "auto"
	formatCSV   = "csv"
	formatTable = "table"

	columnGap = "  "
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat turns "auto" into table for terminals and csv otherwise.
func resolveFormat(format string, w io.Writer) (string, error) {
	switch format {
	case formatCSV, formatTable:
		return format, nil
	case formatAuto, "":
		if isTerminal(w) {
			return formatTable, nil
		}
		return formatCSV, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatAuto, formatCSV, formatTable)
	}
}

// renderAligned writes t as left aligned columns padded by display width, so
// wide runes line up. The header is bold when bold is set.
func renderAligned(w io.Writer, t *table.Table, bold bool) error {
	names := t.Names()
	if len(names) == 0 {
		return nil
	}

	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = runewidth.StringWidth(name)
	}
	for r := range t.NumRows() {
		for i, v := range t.Row(r) {
			widths[i] = max(widths[i], runewidth.StringWidth(v))
		}
	}

	bw := bufio.NewWriter(w)
	line := func(cells []string, style func(a ...any) string) {
		for i, cell := range cells {
			if i > 0 {
				_, _ = bw.WriteString(columnGap)
			}
			if i < len(cells)-1 {
				cell = runewidth.FillRight(cell, widths[i])
			}
			if style != nil {
				cell = style(cell)
			}
			_, _ = bw.WriteString(cell)
		}
		_ = bw.WriteByte('\n')
	}

	var header func(a ...any) string
	if bold {
		header = color.OpBold.Sprint
	}
	line(names, header)
	for r := range t.NumRows() {
		line(t.Row(r), nil)
	}

	return bw.Flush()
}
