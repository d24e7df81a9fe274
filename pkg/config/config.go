package config

import (
	"fmt"
	"time"

	"github.com/rfkit/sx125x/pkg/registers"
)

// DefaultCrystalMHz is the reference crystal assumed when a configuration
// does not name one. The SX1255/57 reference designs use a 36 MHz TCXO.
const DefaultCrystalMHz = 36.0

// DeviceConfig holds a named register configuration for one SX1255 or
// SX1257 device
type DeviceConfig struct {
	Name        string                 `json:"name"`
	Variant     registers.Variant      `json:"variant"`
	Description string                 `json:"description,omitempty"`
	RefMHz      float64                `json:"ref_mhz,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
	Registers   *registers.RegisterMap `json:"registers"`
}

// NewDeviceConfig returns a configuration holding the power-on register
// defaults for the given variant
func NewDeviceConfig(name string, v registers.Variant) *DeviceConfig {
	return &DeviceConfig{
		Name:      name,
		Variant:   v,
		Timestamp: time.Now(),
		Registers: registers.NewRegisterMap(),
	}
}

// Validate checks the configuration and every register field against the
// documented value sets
func (c *DeviceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("configuration has no name")
	}
	if c.Registers == nil {
		return fmt.Errorf("configuration has no registers")
	}
	if err := c.Registers.Validate(); err != nil {
		return fmt.Errorf("invalid registers: %w", err)
	}
	return nil
}

// Frame returns the serialized register frame for the configuration's variant
func (c *DeviceConfig) Frame() ([]byte, error) {
	if c.Registers == nil {
		return nil, fmt.Errorf("configuration has no registers")
	}
	frame := make([]byte, registers.FrameLen)
	if err := c.Registers.Serialize(c.Variant, frame); err != nil {
		return nil, fmt.Errorf("failed to serialize registers: %w", err)
	}
	return frame, nil
}

// GetCrystalMHz returns the reference crystal frequency in MHz
func (c *DeviceConfig) GetCrystalMHz() float64 {
	if c.RefMHz > 0 {
		return c.RefMHz
	}
	return DefaultCrystalMHz
}

// GetRxFrequencyMHz returns the configured RX frequency in MHz
func (c *DeviceConfig) GetRxFrequencyMHz() float64 {
	return frequencyMHz(c.Registers.RxFrequency.Word, c.Variant, c.GetCrystalMHz())
}

// GetTxFrequencyMHz returns the configured TX frequency in MHz
func (c *DeviceConfig) GetTxFrequencyMHz() float64 {
	return frequencyMHz(c.Registers.TxFrequency.Word, c.Variant, c.GetCrystalMHz())
}

// frequencyMHz converts a 24-bit tuning word to MHz. The synthesizer step
// is the crystal frequency divided by 2^20 on the SX1255 and 2^19 on the
// SX1257.
func frequencyMHz(word uint32, v registers.Variant, crystalMHz float64) float64 {
	if v == registers.SX1257 {
		return float64(word) * crystalMHz / (1 << 19)
	}
	return float64(word) * crystalMHz / (1 << 20)
}

// GetModeString returns a human-readable operating mode
func (c *DeviceConfig) GetModeString() string {
	if mode, ok := c.Registers.Mode.OpMode(); ok {
		return mode.String()
	}
	var raw [1]byte
	registers.Pack(&c.Registers.Mode, raw[:])
	return fmt.Sprintf("custom (0x%02X)", raw[0])
}
