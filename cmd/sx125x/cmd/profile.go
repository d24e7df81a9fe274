package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/profiles"
)

var (
	profileJSON   bool
	profileHex    bool
	profileOutput string
	profileExport string
)

var profileCmd = &cobra.Command{
	Use:   "profile [name]",
	Short: "List or print built-in configuration presets",
	Long: `List the built-in register configuration presets, or print one by name.

Examples:
  sx125x profile
  sx125x profile eu868-gateway-a
  sx125x profile us915-gateway-b --json
  sx125x profile cn470-gateway-a -o cn470.json
  sx125x profile --export ./presets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().BoolVar(&profileJSON, "json", false,
		"output configuration JSON instead of a table")
	profileCmd.Flags().BoolVar(&profileHex, "hex", false,
		"output only the register frame hex dump")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "",
		"save the preset configuration to a file")
	profileCmd.Flags().StringVar(&profileExport, "export", "",
		"write every preset to the given directory")
}

func runProfile(cmd *cobra.Command, args []string) error {
	if profileExport != "" {
		if err := profiles.WriteAll(profileExport); err != nil {
			return err
		}
		fmt.Printf("Wrote %d presets to %s\n", len(profiles.Names()), profileExport)
		return nil
	}

	if len(args) == 0 {
		listProfiles()
		return nil
	}

	cfg, ok := profiles.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown preset %q (run \"sx125x profile\" for the list)", args[0])
	}

	if profileOutput != "" {
		if err := config.SaveToFile(cfg, profileOutput); err != nil {
			return err
		}
		fmt.Printf("Configuration saved to: %s\n", profileOutput)
		return nil
	}

	if profileJSON {
		return printJSON(cfg)
	}

	if profileHex {
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

func listProfiles() {
	fmt.Println(headingText("Available presets:"))
	for _, cfg := range profiles.All() {
		name := registerText(fmt.Sprintf("%-18s", cfg.Name))
		fmt.Printf("  %s %s (%s)\n", name, cfg.Description, cfg.Variant)
	}
}
