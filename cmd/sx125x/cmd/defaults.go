package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

var (
	defaultsVariant string
	defaultsJSON    bool
	defaultsHex     bool
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the power-on register map",
	Long: `Print the power-on (reset) register values for an IC variant.

Examples:
  sx125x defaults
  sx125x defaults --variant sx1257
  sx125x defaults --json > defaults.json
  sx125x defaults --hex`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)

	defaultsCmd.Flags().StringVar(&defaultsVariant, "variant", "sx1255",
		"IC variant (sx1255 or sx1257)")
	defaultsCmd.Flags().BoolVar(&defaultsJSON, "json", false,
		"output configuration JSON instead of a table")
	defaultsCmd.Flags().BoolVar(&defaultsHex, "hex", false,
		"output only the register frame hex dump")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	v, err := registers.ParseVariant(defaultsVariant)
	if err != nil {
		return err
	}

	cfg := config.NewDeviceConfig("defaults", v)

	if defaultsJSON {
		return printJSON(cfg)
	}

	if defaultsHex {
		frame, err := cfg.Frame()
		if err != nil {
			return err
		}
		printFrameHex(frame)
		return nil
	}

	printConfigSummary(cfg)
	fmt.Println()
	return printRegisterTable(cfg)
}
