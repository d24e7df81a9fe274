package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

var (
	unpackVariant string
	unpackName    string
	unpackOutput  string
)

var unpackCmd = &cobra.Command{
	Use:   "unpack <frame-file>",
	Short: "Parse a register frame back into a configuration",
	Long: `Parse a 27-byte register frame into a configuration. The frame file may
hold the raw bytes or their hex text. The IC variant decides which bytes
carry registers; the same frame decodes differently per variant, so it
must be named explicitly.

Examples:
  sx125x unpack --variant sx1255 frame.bin
  sx125x unpack --variant sx1257 frame.hex -o recovered.json`,
	Args: cobra.ExactArgs(1),
	RunE: runUnpack,
}

func init() {
	rootCmd.AddCommand(unpackCmd)

	unpackCmd.Flags().StringVar(&unpackVariant, "variant", "",
		"IC variant the frame was serialized for (sx1255 or sx1257)")
	unpackCmd.Flags().StringVar(&unpackName, "name", "",
		"configuration name (default: frame file base name)")
	unpackCmd.Flags().StringVarP(&unpackOutput, "output", "o", "",
		"write the configuration to a file instead of stdout")
	unpackCmd.MarkFlagRequired("variant")
}

func runUnpack(cmd *cobra.Command, args []string) error {
	v, err := registers.ParseVariant(unpackVariant)
	if err != nil {
		return err
	}

	frame, err := readFrame(args[0])
	if err != nil {
		return err
	}

	name := unpackName
	if name == "" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cfg := config.NewDeviceConfig(name, v)
	if err := cfg.Registers.Deserialize(v, frame); err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Decoded %d-byte %s frame from %s\n",
			len(frame), v, args[0])
	}

	if unpackOutput != "" {
		if err := config.SaveToFile(cfg, unpackOutput); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to: %s\n", unpackOutput)
		return nil
	}

	return printJSON(cfg)
}
