package profiles

import (
	"fmt"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

// Gateway presets mirror the front-end setup LoRa concentrator HALs program
// into their SX125x radios: 32 MHz reference from the baseband chip, LNA at
// maximum gain, wide-band sigma-delta ADC and the RX PLL at its narrowest
// bandwidth. Concentrators carry two radios; radio A drives CLK_OUT to
// radio B, which runs with its own clock output disabled.

// GatewayCrystalMHz is the reference clock a concentrator feeds its radios.
const GatewayCrystalMHz = 32.0

// NewEU868Gateway creates the RX radio setup of a EU868 concentrator,
// tuned to the middle of the 867-868 MHz uplink block. clockOut selects
// radio A (drives CLK_OUT) or radio B.
func NewEU868Gateway(clockOut bool) *config.DeviceConfig {
	return newGateway("eu868-gateway", "EU868 concentrator RX radio",
		registers.SX1257, 867.5, clockOut)
}

// NewUS915Gateway creates the RX radio setup of a US915 concentrator,
// tuned to the band center. clockOut selects radio A or radio B.
func NewUS915Gateway(clockOut bool) *config.DeviceConfig {
	return newGateway("us915-gateway", "US915 concentrator RX radio",
		registers.SX1257, 915.0, clockOut)
}

// NewCN470Gateway creates the RX radio setup of a CN470 concentrator on
// the SX1255. clockOut selects radio A or radio B.
func NewCN470Gateway(clockOut bool) *config.DeviceConfig {
	return newGateway("cn470-gateway", "CN470 concentrator RX radio",
		registers.SX1255, 470.0, clockOut)
}

func newGateway(band, desc string, v registers.Variant, rxMHz float64, clockOut bool) *config.DeviceConfig {
	name := band + "-a"
	role := "radio A, drives CLK_OUT"
	if !clockOut {
		name = band + "-b"
		role = "radio B, CLK_OUT disabled"
	}

	cfg := config.NewDeviceConfig(name, v)
	cfg.Description = fmt.Sprintf("%s (%s)", desc, role)
	cfg.RefMHz = GatewayCrystalMHz

	r := cfg.Registers
	r.Mode.SetOpMode(registers.ModeRx)
	r.RxFrequency.Word = FrequencyWord(rxMHz, GatewayCrystalMHz, v)
	// Concentrators retune the TX synthesizer for every transmission;
	// park it on the uplink carrier until then.
	r.TxFrequency.Word = r.RxFrequency.Word
	r.TxGain = registers.TxGain{DacGain: registers.DacGainMinus3, MixerGain: 14}
	r.TxBw = registers.TxBw{PllBw: 1} // 150 kHz
	r.TxDacBw = registers.TxDacBw{DacBw: 5}
	r.RxFrontend = registers.RxFrontend{
		LnaGain: registers.LnaGainMax,
		PgaGain: 12,
		Zin:     registers.Zin200,
		AdcBw:   registers.AdcBwWide,
		AdcTrim: 6, // for a 32 MHz reference, 5 for 36 MHz
		PgaBw:   0, // 750 kHz
		PllBw:   0, // 75 kHz
	}
	r.ClockSelect = registers.ClockSelect{
		ClockSelectTxDac: true,
		ClockOutEnable:   clockOut,
	}
	return cfg
}
