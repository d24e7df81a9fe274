package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config.json>",
	Short: "Check a configuration against the documented register values",
	Long: `Load a configuration and check every register field against the value
sets the datasheets document. Exits non-zero with the first offending
field on failure.

Examples:
  sx125x validate bench.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(resolveConfigPath(args[0]))
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Configuration valid: %s (%s)\n", cfg.Name, cfg.Variant)
	return nil
}
