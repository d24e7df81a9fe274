package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

// Sprint-style so output goes through fmt and follows os.Stdout, which the
// e2e tests replace.
var (
	headingText  = color.New(color.FgCyan, color.Bold).SprintFunc()
	registerText = color.New(color.FgYellow).SprintFunc()
	mutedText    = color.New(color.Faint).SprintFunc()
)

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printFrameHex(frame []byte) {
	for base := 0; base < len(frame); base += 8 {
		end := base + 8
		if end > len(frame) {
			end = len(frame)
		}
		parts := make([]string, 0, 8)
		for _, b := range frame[base:end] {
			parts = append(parts, fmt.Sprintf("%02X", b))
		}
		fmt.Printf("  0x%02X: %s\n", base, strings.Join(parts, " "))
	}
}

func printConfigSummary(cfg *config.DeviceConfig) {
	fmt.Println(headingText("Configuration Summary:"))
	fmt.Printf("  Name:         %s\n", cfg.Name)
	fmt.Printf("  Variant:      %s\n", cfg.Variant)
	if cfg.Description != "" {
		fmt.Printf("  Description:  %s\n", cfg.Description)
	}
	fmt.Printf("  Mode:         %s\n", cfg.GetModeString())
	fmt.Printf("  RX Frequency: %.6f MHz\n", cfg.GetRxFrequencyMHz())
	fmt.Printf("  TX Frequency: %.6f MHz\n", cfg.GetTxFrequencyMHz())
	fmt.Printf("  Crystal:      %.1f MHz\n", cfg.GetCrystalMHz())
}

func printRegisterTable(cfg *config.DeviceConfig) error {
	frame, err := cfg.Frame()
	if err != nil {
		return err
	}

	fmt.Println(headingText(fmt.Sprintf("Registers (%s):", cfg.Variant)))
	fmt.Printf("  %-5s %-14s %s\n", "ADDR", "NAME", "VALUE")

	for _, info := range registers.Layout() {
		value := "--"
		note := ""
		if info.Includes(cfg.Variant) {
			bytes := frame[info.Addr : int(info.Addr)+info.Size]
			parts := make([]string, 0, info.Size)
			for _, b := range bytes {
				parts = append(parts, fmt.Sprintf("%02X", b))
			}
			value = strings.Join(parts, " ")
		} else {
			note = mutedText(fmt.Sprintf("%s only", info.Only))
		}

		// Pad before colorizing so escape codes do not skew the columns.
		fmt.Printf("  0x%02X  %s %-9s %s\n",
			info.Addr, registerText(fmt.Sprintf("%-14s", info.Name)), value, note)
	}
	return nil
}

// resolveConfigPath maps a bare configuration name to its conventional path
// under the config directory. Explicit paths pass through unchanged.
func resolveConfigPath(arg string) string {
	if filepath.Ext(arg) != "" || strings.ContainsRune(arg, os.PathSeparator) {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	return config.DefaultConfigPath(arg)
}

// readFrame loads a register frame from a file holding either the raw bytes
// or their hex text.
func readFrame(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame file: %w", err)
	}
	if len(data) == registers.FrameLen {
		return data, nil
	}
	return decodeHexFrame(string(data))
}

func decodeHexFrame(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	clean = strings.TrimPrefix(clean, "0x")

	frame, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex frame: %w", err)
	}
	if len(frame) != registers.FrameLen {
		return nil, fmt.Errorf("frame is %d bytes, want %d", len(frame), registers.FrameLen)
	}
	return frame, nil
}
