package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/gocompare/internal/compare/table"
)

func newSortCmd(opts *options) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "sort FILE",
		Short: "Sort every column of a CSV file independently",
		Long: `Sort orders each column ascending on its own. Numeric columns sort by
value, other columns byte-wise, and empty cells go last. Rows are not kept
together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTableFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			return writeTable(cmd, opts, out, table.SortColumns(t))
		},
	}

	c.Flags().StringVarP(&out, "output", "o", "", "Write the result to this file instead of stdout")

	return c
}
