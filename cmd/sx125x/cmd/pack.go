package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
)

var packOutput string

var packCmd = &cobra.Command{
	Use:   "pack <config.json>",
	Short: "Serialize a configuration into its register frame",
	Long: `Serialize a saved configuration into the 27-byte register frame for its
IC variant. Registers the variant does not document are zeroed.

Examples:
  sx125x pack bench.json
  sx125x pack bench.json -o frame.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().StringVarP(&packOutput, "output", "o", "",
		"write the raw frame to a file instead of dumping hex")
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(resolveConfigPath(args[0]))
	if err != nil {
		return err
	}

	frame, err := cfg.Frame()
	if err != nil {
		return err
	}

	if packOutput != "" {
		if err := os.WriteFile(packOutput, frame, 0644); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
		fmt.Printf("Frame written to: %s (%d bytes)\n", packOutput, len(frame))
		return nil
	}

	if verbose {
		fmt.Printf("%s (%s) register frame:\n", cfg.Name, cfg.Variant)
	}
	printFrameHex(frame)
	return nil
}
