package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "sx125x",
	Short: "SX1255/SX1257 register map tools",
	Long: `sx125x works with the configuration register maps of the Semtech SX1255
and SX1257 RF front-end transceivers:
  - inspect power-on defaults and saved configurations
  - pack a configuration into the 27-byte register frame and back
  - validate register values against the documented sets
  - browse a register map interactively
  - start from built-in gateway presets

Examples:
  sx125x defaults --variant sx1257      # Power-on registers as a table
  sx125x show bench.json                # Inspect a saved configuration
  sx125x pack bench.json -o frame.bin   # Configuration -> register frame
  sx125x unpack --variant sx1255 frame.bin
  sx125x browse bench.json              # Interactive register browser
  sx125x profile eu868-gateway-a        # Print a built-in preset`,
	Version: "0.3.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}
