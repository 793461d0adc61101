package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/gocompare/internal/compare/table"
)

func newDiffCmd(opts *options) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "diff SOURCE COMPARED",
		Short: "Print the rows of SOURCE that COMPARED does not contain",
		Long: `Diff removes from SOURCE one matching row of COMPARED per occurrence.
Both files must have the same column names; their order may differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readTableFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			compared, err := readTableFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			diff, err := table.Diff(source, compared)
			if err != nil {
				return err
			}

			return writeTable(cmd, opts, out, diff)
		},
	}

	c.Flags().StringVarP(&out, "output", "o", "", "Write the result to this file instead of stdout")

	return c
}
