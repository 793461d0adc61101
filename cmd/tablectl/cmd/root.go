// Package cmd implements tablectl, which runs the sort and diff engine on
// local CSV files without the HTTP service.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/gocompare/internal/compare/table"
)

// Version is set via ldflags at build time.
var Version = "0.0.1-dev"

type options struct {
	format string
}

// NewRootCmd builds the tablectl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "tablectl",
		Short: "Sort and diff CSV tables",
		Long: `tablectl applies the upload service's table engine to local files.

Examples:
  tablectl sort source.csv -o sorted_source.csv
  tablectl diff source.csv compared.csv --format table`,
		Version:      Version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.format, "format", formatAuto,
		"Output format: csv, table, or auto (table on a terminal, csv otherwise)")
	root.AddCommand(newSortCmd(opts), newDiffCmd(opts))

	return root
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func readTableFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return table.Read(f)
}

// writeTable writes t to out, or to the command's stdout when out is empty.
// Files are always CSV; stdout follows --format.
func writeTable(cmd *cobra.Command, opts *options, out string, t *table.Table) error {
	format, err := resolveFormat(opts.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		return t.Write(f)
	}

	w := cmd.OutOrStdout()
	if format == formatTable {
		return renderAligned(w, t, isTerminal(w))
	}
	return t.Write(w)
}
