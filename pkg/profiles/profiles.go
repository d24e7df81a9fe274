// Package profiles provides pre-defined register configurations for common
// SX1255 and SX1257 deployments. Each preset is a complete DeviceConfig
// that can be shown, saved or packed as-is.
package profiles

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

// All returns every built-in preset in display order. Presets are built
// fresh on each call so callers may modify them freely.
func All() []*config.DeviceConfig {
	return []*config.DeviceConfig{
		NewEU868Gateway(true),
		NewEU868Gateway(false),
		NewUS915Gateway(true),
		NewUS915Gateway(false),
		NewCN470Gateway(true),
		NewCN470Gateway(false),
	}
}

// Names lists the built-in preset names in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, cfg := range all {
		names[i] = cfg.Name
	}
	return names
}

// Get returns the preset with the given name.
func Get(name string) (*config.DeviceConfig, bool) {
	for _, cfg := range All() {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return nil, false
}

// WriteAll saves every preset to dir as <name>.json.
func WriteAll(dir string) error {
	for _, cfg := range All() {
		path := filepath.Join(dir, fmt.Sprintf("%s.json", cfg.Name))
		if err := config.SaveToFile(cfg, path); err != nil {
			return fmt.Errorf("failed to save preset %s: %w", cfg.Name, err)
		}
	}
	return nil
}

// FrequencyWord converts a carrier frequency in MHz into the 24-bit
// synthesizer word. The synthesizer step is crystal/2^20 on the SX1255
// and crystal/2^19 on the SX1257.
func FrequencyWord(mhz, crystalMHz float64, v registers.Variant) uint32 {
	step := float64(uint64(1) << 20)
	if v == registers.SX1257 {
		step = float64(uint64(1) << 19)
	}
	return uint32(math.Round(mhz / crystalMHz * step))
}
