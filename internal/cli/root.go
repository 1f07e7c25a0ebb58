// Package cli provides the command-line interface for datapeek.
package cli

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/datapeek/internal/cli/commands"
	"github.com/leapstack-labs/datapeek/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datapeek",
		Short: "datapeek - Terminal EDA Report Generator",
		Long: `datapeek loads a tabular dataset (CSV or SQLite) and prints a sequence of
exploratory-data-analysis report sections: structure, missing values, type
breakdown, numeric statistics, categorical frequencies and correlation
analysis.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./datapeek.yaml)")
	rootCmd.PersistentFlags().String("justify", "", "Numeric column justification (left|center|right)")
	rootCmd.PersistentFlags().Int("max-unique", config.DefaultMaxUnique, "Max distinct values listed in frequency tables")
	rootCmd.PersistentFlags().Float64("strong-threshold", config.DefaultStrongThreshold, "Absolute correlation above which a pair is reported")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for justify flag
	_ = rootCmd.RegisterFlagCompletionFunc("justify", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"left", "center", "right"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
