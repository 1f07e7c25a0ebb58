package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/datapeek/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default datapeek.yaml",
		Long: `Write a datapeek.yaml with the default configuration into the given
directory (current directory when omitted).`,
		Example: `  # Initialize in current directory
  datapeek init

  # Initialize in a new directory
  datapeek init my-analysis

  # Force overwrite existing config
  datapeek init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "datapeek.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("datapeek.yaml already exists. Use --force to overwrite")
	}

	out, err := yaml.Marshal(&config.Config{
		Justify:         config.DefaultJustify,
		MaxUnique:       config.DefaultMaxUnique,
		StrongThreshold: config.DefaultStrongThreshold,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := []byte("# datapeek configuration. Flags and DATAPEEK_* env vars override these.\n")
	if err := os.WriteFile(configPath, append(header, out...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
