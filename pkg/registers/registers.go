// Package registers models the configuration register map of the Semtech
// SX1255 and SX1257 RF front-end ICs and packs it into the exact byte image
// the chips expect over their control bus.
//
// Register structs hold already-coded field values; nothing here converts
// engineering units (dB, Hz, ohms) into codes. Fields wider than their
// declared bit width are silently truncated when packed, so callers must
// range-check before assignment, or run RegisterMap.Validate.
package registers

// Mode is the operating mode register at 0x00.
type Mode struct {
	DriverEnable bool `json:"driver_enable"` // PA driver
	TxEnable     bool `json:"tx_enable"`     // TX path, except the PA driver
	RxEnable     bool `json:"rx_enable"`     // RX path
	RefEnable    bool `json:"ref_enable"`    // power distribution and crystal oscillator
}

func (r *Mode) fields() []field {
	return []field{
		reserved(4),
		flag(&r.DriverEnable),
		flag(&r.TxEnable),
		flag(&r.RxEnable),
		flag(&r.RefEnable),
	}
}

// OpMode names the documented combinations of the Mode register's enable
// bits.
type OpMode uint8

const (
	ModeSleep      OpMode = iota // everything off
	ModeStandby                  // oscillator running, RX and TX off
	ModeRx                       // receiver on
	ModeTx                       // transmitter on, PA driver off
	ModeTxPa                     // transmitter and PA driver on
	ModeFullDuplex               // receiver, transmitter and PA driver on
)

// String returns a short lower-case name for the mode.
func (m OpMode) String() string {
	switch m {
	case ModeSleep:
		return "sleep"
	case ModeStandby:
		return "standby"
	case ModeRx:
		return "rx"
	case ModeTx:
		return "tx"
	case ModeTxPa:
		return "tx+pa"
	case ModeFullDuplex:
		return "full-duplex"
	}
	return "unknown"
}

// SetOpMode sets the four enable bits to the named combination.
func (r *Mode) SetOpMode(m OpMode) {
	r.RefEnable = m != ModeSleep
	r.RxEnable = m == ModeRx || m == ModeFullDuplex
	r.TxEnable = m == ModeTx || m == ModeTxPa || m == ModeFullDuplex
	r.DriverEnable = m == ModeTxPa || m == ModeFullDuplex
}

// OpMode reports the named mode matching the current enable bits. ok is
// false for combinations with no documented name.
func (r *Mode) OpMode() (mode OpMode, ok bool) {
	for m := ModeSleep; m <= ModeFullDuplex; m++ {
		var want Mode
		want.SetOpMode(m)
		if *r == want {
			return m, true
		}
	}
	return ModeSleep, false
}

// Frequency is a 24-bit synthesizer tuning word; the RX word lives at
// 0x01..0x03 and the TX word at 0x04..0x06. The step size is the crystal
// frequency divided by 2^20 on the SX1255 and by 2^19 on the SX1257.
type Frequency struct {
	Word uint32 `json:"word"`
}

func (r *Frequency) fields() []field {
	return []field{u24(&r.Word)}
}

// TxGain is the TX gain register at 0x08.
type TxGain struct {
	DacGain   DacGain `json:"dac_gain"`
	MixerGain uint8   `json:"mixer_gain"` // -38 + 2*code dB, 4 bits
}

func (r *TxGain) fields() []field {
	return []field{
		reserved(1),
		code(3, &r.DacGain),
		u8(4, &r.MixerGain),
	}
}

// TxTank is the TX mixer tank trim register at 0x09. The tank is only
// documented for the SX1255; on the SX1257 this byte reads as zero.
type TxTank struct {
	TankCap uint8   `json:"tank_cap"` // 128 fF per step, 3 bits
	TankRes TankRes `json:"tank_res"`
}

func (r *TxTank) fields() []field {
	return []field{
		reserved(2),
		u8(3, &r.TankCap),
		code(3, &r.TankRes),
	}
}

// TxBw is the TX bandwidth register at 0x0A.
type TxBw struct {
	PllBw    PllBw `json:"pll_bw"`
	FilterBw uint8 `json:"filter_bw"` // analog filter DSB bandwidth trim, 5 bits
}

func (r *TxBw) fields() []field {
	return []field{
		reserved(1),
		code(2, &r.PllBw),
		u8(5, &r.FilterBw),
	}
}

// TxDacBw is the TX FIR-DAC bandwidth register at 0x0B; the DAC runs
// 24 + 8*code FIR taps.
type TxDacBw struct {
	DacBw uint8 `json:"dac_bw"` // 3 bits
}

func (r *TxDacBw) fields() []field {
	return []field{
		reserved(5),
		u8(3, &r.DacBw),
	}
}

// RxFrontend is the three-byte RX front-end register at 0x0C..0x0E.
type RxFrontend struct {
	LnaGain LnaGain `json:"lna_gain"`
	PgaGain uint8   `json:"pga_gain"` // lowest gain + 2 dB per step, 4 bits
	Zin     Zin     `json:"zin"`
	AdcBw   AdcBw   `json:"adc_bw"`
	AdcTrim uint8   `json:"adc_trim"` // sigma-delta trim, 3 bits
	PgaBw   PgaBw   `json:"pga_bw"`
	PllBw   PllBw   `json:"pll_bw"`
	AdcTemp bool    `json:"adc_temp"` // ADC in temperature-measurement mode
}

func (r *RxFrontend) fields() []field {
	return []field{
		code(3, &r.LnaGain),
		u8(4, &r.PgaGain),
		code(1, &r.Zin),
		code(3, &r.AdcBw),
		u8(3, &r.AdcTrim),
		code(2, &r.PgaBw),
		reserved(5),
		code(2, &r.PllBw),
		flag(&r.AdcTemp),
	}
}

// IoMap is the DIO pin mapping register at 0x0F.
type IoMap struct {
	Dio0 Dio0Mapping `json:"dio0"`
	Dio1 Dio1Mapping `json:"dio1"`
	Dio2 Dio2Mapping `json:"dio2"`
	Dio3 Dio3Mapping `json:"dio3"`
}

func (r *IoMap) fields() []field {
	return []field{
		code(2, &r.Dio0),
		code(2, &r.Dio1),
		code(2, &r.Dio2),
		code(2, &r.Dio3),
	}
}

// ClockSelect is the clock and loop-back register at 0x10.
type ClockSelect struct {
	DigLoopbackEnable bool `json:"dig_loopback_enable"`
	RfLoopbackEnable  bool `json:"rf_loopback_enable"`
	ClockOutEnable    bool `json:"clock_out_enable"`
	ClockSelectTxDac  bool `json:"clock_select_tx_dac"` // external TX DAC clock
}

func (r *ClockSelect) fields() []field {
	return []field{
		reserved(4),
		flag(&r.DigLoopbackEnable),
		flag(&r.RfLoopbackEnable),
		flag(&r.ClockOutEnable),
		flag(&r.ClockSelectTxDac),
	}
}

// Status is the status register at 0x11. It is read-only on the device but
// kept writable in the map so the byte layout stays symmetric and captured
// frames can be decoded.
type Status struct {
	Eol       bool `json:"eol"` // battery below the EOL threshold
	XoscReady bool `json:"xosc_ready"`
	PllLockRx bool `json:"pll_lock_rx"`
	PllLockTx bool `json:"pll_lock_tx"`
}

func (r *Status) fields() []field {
	return []field{
		reserved(4),
		flag(&r.Eol),
		flag(&r.XoscReady),
		flag(&r.PllLockRx),
		flag(&r.PllLockTx),
	}
}

// Iism is the I/Q serial interface register at 0x12, SX1255 only.
type Iism struct {
	RxDuringTxDisable bool     `json:"rx_during_tx_disable"`
	TxDuringRxDisable bool     `json:"tx_during_rx_disable"`
	Mode              IismMode `json:"mode"`
	ClockDiv          uint8    `json:"clock_div"` // XTAL/CLK_OUT divider, 4 bits
}

func (r *Iism) fields() []field {
	return []field{
		flag(&r.RxDuringTxDisable),
		flag(&r.TxDuringRxDisable),
		code(2, &r.Mode),
		u8(4, &r.ClockDiv),
	}
}

// DigBridge is the digital interpolation/decimation bridge register at
// 0x13, SX1255 only.
type DigBridge struct {
	IntDecMantissa uint8 `json:"int_dec_mantissa"` // 1 bit
	IntDecMParam   uint8 `json:"int_dec_m_param"`  // 1 bit
	IntDecNParam   uint8 `json:"int_dec_n_param"`  // 3 bits
	IismTruncation bool  `json:"iism_truncation"`
	IismStatus     bool  `json:"iism_status"`
}

func (r *DigBridge) fields() []field {
	return []field{
		u8(1, &r.IntDecMantissa),
		u8(1, &r.IntDecMParam),
		u8(3, &r.IntDecNParam),
		flag(&r.IismTruncation),
		flag(&r.IismStatus),
		reserved(1),
	}
}

// LowBat is the battery EOL threshold register at 0x1A, SX1257 only.
type LowBat struct {
	Threshold LowBatTrim `json:"threshold"`
}

func (r *LowBat) fields() []field {
	return []field{
		reserved(5),
		code(3, &r.Threshold),
	}
}

// Register addresses
const (
	RegMode        = 0x00
	RegFrfRx       = 0x01 // 0x01-0x03, MSB first
	RegFrfTx       = 0x04 // 0x04-0x06, MSB first
	RegVersion     = 0x07
	RegTxGain      = 0x08
	RegTxTank      = 0x09 // SX1255 only
	RegTxBw        = 0x0A
	RegTxDacBw     = 0x0B
	RegRxFrontend  = 0x0C // 0x0C-0x0E
	RegIoMap       = 0x0F
	RegClockSelect = 0x10
	RegStatus      = 0x11
	// Reserved 0x12-0x19 on the SX1257
	RegIism      = 0x12 // SX1255 only
	RegDigBridge = 0x13 // SX1255 only
	RegLowBat    = 0x1A // SX1257 only
)
