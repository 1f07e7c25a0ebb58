package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/leapstack-labs/datapeek/internal/cli/config"
	"github.com/leapstack-labs/datapeek/internal/render"
	"github.com/leapstack-labs/datapeek/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var tableName string
	var pause bool

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Generate the full EDA report for a dataset",
		Long: `Load a dataset and print every report section in order: basic info,
missing values, data types, numeric statistics, categorical statistics and
correlation analysis.

CSV files are read with a header row. Files ending in .db, .sqlite or
.sqlite3 are opened as SQLite databases; use --table when the database holds
more than one table.`,
		Example: `  # Report on a CSV file
  datapeek report purchases.csv

  # Report on a SQLite table
  datapeek report warehouse.db --table orders

  # Center-justify numeric columns
  datapeek report purchases.csv --justify center`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Current()

			path := cfg.Dataset
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no dataset given: pass a path or set dataset in datapeek.yaml")
			}
			if tableName == "" {
				tableName = cfg.Table
			}

			styles := render.NewStyles(cmd.OutOrStdout(), cfg.NoColor)
			rep, err := report.New(cmd.OutOrStdout(), styles, path, report.Options{
				Table:           tableName,
				Justify:         cfg.Justify,
				MaxUnique:       cfg.MaxUnique,
				StrongThreshold: cfg.StrongThreshold,
			})
			if err != nil {
				return err
			}
			rep.Run()

			if pause || cfg.PauseOnExit {
				waitForEnter(cmd)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tableName, "table", "", "Table to load from a SQLite source")
	cmd.Flags().BoolVar(&pause, "pause", false, "Wait for Enter before exiting")

	return cmd
}

// waitForEnter blocks on the exit prompt, but only when stdin is attached
// to a terminal so piped runs never hang.
func waitForEnter(cmd *cobra.Command) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nPress Enter key to exit the program...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
