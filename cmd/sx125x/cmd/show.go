package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <config.json>",
	Short: "Display a saved device configuration",
	Long: `Load a saved configuration and print its summary and register table.
Out-of-range register values are displayed as stored; use validate to
check them. A bare name is looked up under ~/.sx125x.

Examples:
  sx125x show bench.json
  sx125x show bench
  sx125x show --json bench.json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false,
		"re-emit the configuration as canonical JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(resolveConfigPath(args[0]))
	if err != nil {
		return err
	}

	if showJSON {
		return printJSON(cfg)
	}

	if verbose {
		fmt.Printf("Loaded configuration: %s\n\n", args[0])
	}

	printConfigSummary(cfg)
	fmt.Println()
	return printRegisterTable(cfg)
}
