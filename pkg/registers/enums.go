package registers

import "fmt"

// Enumerated register fields. Each type carries the raw datasheet code;
// String reports the physical value and Valid reports membership in the
// documented code set. Codes outside the set are representable (they decode
// and re-encode unchanged) and are flagged by RegisterMap.Validate.

// DacGain selects the TX DAC gain relative to maximum.
type DacGain uint8

const (
	DacGainMinus9 DacGain = 0 // max gain - 9 dB
	DacGainMinus6 DacGain = 1 // max gain - 6 dB
	DacGainMinus3 DacGain = 2 // max gain - 3 dB, power-on default
	DacGainMax    DacGain = 3 // max gain, 0 dBFS
)

func (g DacGain) Valid() bool { return g <= DacGainMax }

func (g DacGain) String() string {
	switch g {
	case DacGainMinus9:
		return "max-9 dB"
	case DacGainMinus6:
		return "max-6 dB"
	case DacGainMinus3:
		return "max-3 dB"
	case DacGainMax:
		return "max (0 dBFS)"
	}
	return fmt.Sprintf("invalid(%d)", uint8(g))
}

// TankRes trims the TX mixer tank parallel resistance. All eight codes are
// documented; values run from 0.95 kOhm up to an effectively open 64 kOhm.
type TankRes uint8

var tankResKOhm = [8]string{"0.95", "1.11", "1.32", "1.65", "2.18", "3.24", "6.00", "64"}

func (r TankRes) Valid() bool { return r <= 7 }

func (r TankRes) String() string {
	if r > 7 {
		return fmt.Sprintf("invalid(%d)", uint8(r))
	}
	return tankResKOhm[r] + " kOhm"
}

// PllBw selects a PLL loop-filter bandwidth of (code+1)*75 kHz. Shared by
// the TX and RX synthesizers.
type PllBw uint8

func (b PllBw) Valid() bool { return b <= 3 }

func (b PllBw) String() string {
	if b > 3 {
		return fmt.Sprintf("invalid(%d)", uint8(b))
	}
	return fmt.Sprintf("%d kHz", (int(b)+1)*75)
}

// LnaGain selects the LNA gain step, G1 (highest) through G6. Codes 0 and 7
// are reserved by the datasheet.
type LnaGain uint8

const (
	LnaGainMax     LnaGain = 1 // G1, 0 dB
	LnaGainMinus6  LnaGain = 2 // G2
	LnaGainMinus12 LnaGain = 3 // G3
	LnaGainMinus24 LnaGain = 4 // G4
	LnaGainMinus36 LnaGain = 5 // G5
	LnaGainMinus48 LnaGain = 6 // G6
)

func (g LnaGain) Valid() bool { return g >= LnaGainMax && g <= LnaGainMinus48 }

func (g LnaGain) String() string {
	switch g {
	case LnaGainMax:
		return "0 dB"
	case LnaGainMinus6:
		return "-6 dB"
	case LnaGainMinus12:
		return "-12 dB"
	case LnaGainMinus24:
		return "-24 dB"
	case LnaGainMinus36:
		return "-36 dB"
	case LnaGainMinus48:
		return "-48 dB"
	}
	return fmt.Sprintf("invalid(%d)", uint8(g))
}

// Zin selects the LNA input impedance.
type Zin uint8

const (
	Zin50  Zin = 0 // 50 ohm
	Zin200 Zin = 1 // 200 ohm, power-on default
)

func (z Zin) Valid() bool { return z <= Zin200 }

func (z Zin) String() string {
	switch z {
	case Zin50:
		return "50 ohm"
	case Zin200:
		return "200 ohm"
	}
	return fmt.Sprintf("invalid(%d)", uint8(z))
}

// AdcBw selects the RX sigma-delta ADC single-sideband bandwidth range.
// Only three of the eight codes are documented.
type AdcBw uint8

const (
	AdcBwNarrow AdcBw = 2 // 100 to 200 kHz
	AdcBwMid    AdcBw = 5 // 200 to 400 kHz, power-on default
	AdcBwWide   AdcBw = 7 // over 400 kHz
)

func (b AdcBw) Valid() bool {
	return b == AdcBwNarrow || b == AdcBwMid || b == AdcBwWide
}

func (b AdcBw) String() string {
	switch b {
	case AdcBwNarrow:
		return "100-200 kHz"
	case AdcBwMid:
		return "200-400 kHz"
	case AdcBwWide:
		return ">400 kHz"
	}
	return fmt.Sprintf("invalid(%d)", uint8(b))
}

// PgaBw selects the RX programmable gain amplifier single-sideband bandwidth.
type PgaBw uint8

var pgaBwKHz = [4]int{750, 500, 375, 250}

func (b PgaBw) Valid() bool { return b <= 3 }

func (b PgaBw) String() string {
	if b > 3 {
		return fmt.Sprintf("invalid(%d)", uint8(b))
	}
	return fmt.Sprintf("%d kHz", pgaBwKHz[b])
}

// Dio0Mapping selects the signal routed to DIO0. Codes 0 through 2 all carry
// pll_lock_rx; 3 carries the end-of-life comparator output.
type Dio0Mapping uint8

const (
	Dio0PllLockRx  Dio0Mapping = 0
	Dio0PllLockRx1 Dio0Mapping = 1
	Dio0PllLockRx2 Dio0Mapping = 2
	Dio0Eol        Dio0Mapping = 3
)

func (d Dio0Mapping) Valid() bool { return d <= Dio0Eol }

func (d Dio0Mapping) String() string {
	switch d {
	case Dio0PllLockRx, Dio0PllLockRx1, Dio0PllLockRx2:
		return "pll_lock_rx"
	case Dio0Eol:
		return "eol"
	}
	return fmt.Sprintf("invalid(%d)", uint8(d))
}

// Dio1Mapping selects the signal routed to DIO1; only pll_lock_tx is
// documented.
type Dio1Mapping uint8

const Dio1PllLockTx Dio1Mapping = 0

func (d Dio1Mapping) Valid() bool { return d == Dio1PllLockTx }

func (d Dio1Mapping) String() string {
	if d == Dio1PllLockTx {
		return "pll_lock_tx"
	}
	return fmt.Sprintf("invalid(%d)", uint8(d))
}

// Dio2Mapping selects the signal routed to DIO2; only xosc_ready is
// documented.
type Dio2Mapping uint8

const Dio2XoscReady Dio2Mapping = 0

func (d Dio2Mapping) Valid() bool { return d == Dio2XoscReady }

func (d Dio2Mapping) String() string {
	if d == Dio2XoscReady {
		return "xosc_ready"
	}
	return fmt.Sprintf("invalid(%d)", uint8(d))
}

// Dio3Mapping selects the signal routed to DIO3; only the combined
// pll_lock_rx & pll_lock_tx signal is documented.
type Dio3Mapping uint8

const Dio3PllLockRxTx Dio3Mapping = 0

func (d Dio3Mapping) Valid() bool { return d == Dio3PllLockRxTx }

func (d Dio3Mapping) String() string {
	if d == Dio3PllLockRxTx {
		return "pll_lock_rx_tx"
	}
	return fmt.Sprintf("invalid(%d)", uint8(d))
}

// IismMode selects the I/Q serial interface mode.
type IismMode uint8

const (
	IismModeA  IismMode = 0
	IismModeB1 IismMode = 1
	IismModeB2 IismMode = 2
)

func (m IismMode) Valid() bool { return m <= IismModeB2 }

func (m IismMode) String() string {
	switch m {
	case IismModeA:
		return "A"
	case IismModeB1:
		return "B1"
	case IismModeB2:
		return "B2"
	}
	return fmt.Sprintf("invalid(%d)", uint8(m))
}

// LowBatTrim trims the end-of-life battery comparator threshold in 70 mV
// steps from 1.695 V.
type LowBatTrim uint8

func (t LowBatTrim) Valid() bool { return t <= 7 }

func (t LowBatTrim) String() string {
	if t > 7 {
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
	return fmt.Sprintf("%.3f V", 1.695+0.070*float64(t))
}
