package registers

import "fmt"

// FrameLen is the canonical serialized size of the register file. The map
// spans 0x00..0x1A inclusive, the superset of both variants' documented
// registers; the SX1257's low-battery threshold at 0x1A fixes the length.
const FrameLen = 0x1B

// RegisterMap is the full register file in device address order. Storage
// for variant-specific registers is always present, so the shape is
// variant-independent; only their encoding is variant-conditional.
type RegisterMap struct {
	Mode        Mode        `json:"mode"`
	RxFrequency Frequency   `json:"rx_frequency"`
	TxFrequency Frequency   `json:"tx_frequency"`
	Version     uint8       `json:"version"` // chip revision, read-only on the device
	TxGain      TxGain      `json:"tx_gain"`
	TxTank      TxTank      `json:"tx_tank"` // SX1255 only
	TxBw        TxBw        `json:"tx_bw"`
	TxDacBw     TxDacBw     `json:"tx_dac_bw"`
	RxFrontend  RxFrontend  `json:"rx_frontend"`
	IoMap       IoMap       `json:"io_map"`
	ClockSelect ClockSelect `json:"clock_select"`
	Status      Status      `json:"status"`
	Iism        Iism        `json:"iism"`       // SX1255 only
	DigBridge   DigBridge   `json:"dig_bridge"` // SX1255 only
	LowBat      LowBat      `json:"low_bat"`    // SX1257 only
}

// NewRegisterMap returns a map with every field at its power-on default:
// standby mode, both synthesizers at word 0xC0E38E (434 MHz with a 36 MHz
// crystal), datasheet gain and bandwidth trims, CLK_OUT enabled.
func NewRegisterMap() *RegisterMap {
	return &RegisterMap{
		Mode:        Mode{RefEnable: true},
		RxFrequency: Frequency{Word: 0xC0E38E},
		TxFrequency: Frequency{Word: 0xC0E38E},
		TxGain:      TxGain{DacGain: DacGainMinus3, MixerGain: 14},
		TxTank:      TxTank{TankCap: 4, TankRes: 4},
		TxBw:        TxBw{PllBw: 3},
		TxDacBw:     TxDacBw{DacBw: 2},
		RxFrontend: RxFrontend{
			LnaGain: LnaGainMax,
			PgaGain: 7,
			Zin:     Zin200,
			AdcBw:   AdcBwMid,
			AdcTrim: 1,
			PgaBw:   1,
			PllBw:   3,
		},
		ClockSelect: ClockSelect{ClockOutEnable: true},
	}
}

// variantSet says which IC variants document a register slot.
type variantSet uint8

const (
	onSX1255 variantSet = 1 << iota
	onSX1257

	onBoth = onSX1255 | onSX1257
)

func (s variantSet) includes(v Variant) bool {
	switch v {
	case SX1255:
		return s&onSX1255 != 0
	case SX1257:
		return s&onSX1257 != 0
	}
	return false
}

// layoutEntry places one register slot in the frame.
type layoutEntry struct {
	addr uint8
	name string
	on   variantSet
	fs   []field
}

// layout returns the canonical frame layout in address order. Addresses and
// sizes are fixed by the datasheet register tables; the frame is written to
// the device byte-for-byte.
func (m *RegisterMap) layout() []layoutEntry {
	return []layoutEntry{
		{RegMode, "MODE", onBoth, m.Mode.fields()},
		{RegFrfRx, "FRF_RX", onBoth, m.RxFrequency.fields()},
		{RegFrfTx, "FRF_TX", onBoth, m.TxFrequency.fields()},
		{RegVersion, "VERSION", onBoth, []field{u8(8, &m.Version)}},
		{RegTxGain, "TX_GAIN", onBoth, m.TxGain.fields()},
		{RegTxTank, "TX_TANK", onSX1255, m.TxTank.fields()},
		{RegTxBw, "TX_BW", onBoth, m.TxBw.fields()},
		{RegTxDacBw, "TX_DAC_BW", onBoth, m.TxDacBw.fields()},
		{RegRxFrontend, "RX_FE", onBoth, m.RxFrontend.fields()},
		{RegIoMap, "IO_MAP", onBoth, m.IoMap.fields()},
		{RegClockSelect, "CK_SEL", onBoth, m.ClockSelect.fields()},
		{RegStatus, "STAT", onBoth, m.Status.fields()},
		{RegIism, "IISM", onSX1255, m.Iism.fields()},
		{RegDigBridge, "DIG_BRIDGE", onSX1255, m.DigBridge.fields()},
		{RegLowBat, "LOW_BAT_THRES", onSX1257, m.LowBat.fields()},
	}
}

// Serialize encodes the map for the given variant into frame, which must
// hold at least FrameLen bytes. The frame is zeroed first and then every
// register the variant documents is packed at its address, so byte ranges
// reserved for the other variant's registers are always explicit zeroes; a
// buffer reused across variants never leaks the previous encoding.
//
// Serialize is total over field values: out-of-range values truncate to
// their field width and never fail. Run Validate to catch them.
func (m *RegisterMap) Serialize(v Variant, frame []byte) error {
	if v > SX1257 {
		return fmt.Errorf("serialize: unknown IC variant %d", uint8(v))
	}
	if len(frame) < FrameLen {
		return fmt.Errorf("serialize: frame needs %d bytes, buffer has %d", FrameLen, len(frame))
	}
	for i := 0; i < FrameLen; i++ {
		frame[i] = 0
	}
	for _, e := range m.layout() {
		if e.on.includes(v) {
			packFields(e.fs, frame[e.addr:])
		}
	}
	return nil
}

// Deserialize decodes a frame captured for the given variant. Only the
// registers the variant documents are decoded; the rest of the map is left
// untouched.
func (m *RegisterMap) Deserialize(v Variant, frame []byte) error {
	if v > SX1257 {
		return fmt.Errorf("deserialize: unknown IC variant %d", uint8(v))
	}
	if len(frame) < FrameLen {
		return fmt.Errorf("deserialize: frame needs %d bytes, buffer has %d", FrameLen, len(frame))
	}
	for _, e := range m.layout() {
		if e.on.includes(v) {
			unpackFields(e.fs, frame[e.addr:])
		}
	}
	return nil
}

// Validate checks every enumerated field against its documented code set
// and every plain field against its declared bit width, returning the first
// violation. Serialize never calls this: encoding an out-of-range value is
// a caller bug, caught here at the boundary, not a runtime condition.
func (m *RegisterMap) Validate() error {
	if m.RxFrequency.Word > 0xFFFFFF {
		return fmt.Errorf("frf_rx: word 0x%X exceeds 24 bits", m.RxFrequency.Word)
	}
	if m.TxFrequency.Word > 0xFFFFFF {
		return fmt.Errorf("frf_tx: word 0x%X exceeds 24 bits", m.TxFrequency.Word)
	}
	if !m.TxGain.DacGain.Valid() {
		return fmt.Errorf("tx_gain: dac gain code %d not documented", uint8(m.TxGain.DacGain))
	}
	if m.TxGain.MixerGain > 15 {
		return fmt.Errorf("tx_gain: mixer gain %d exceeds 4 bits", m.TxGain.MixerGain)
	}
	if m.TxTank.TankCap > 7 {
		return fmt.Errorf("tx_tank: tank cap %d exceeds 3 bits", m.TxTank.TankCap)
	}
	if !m.TxTank.TankRes.Valid() {
		return fmt.Errorf("tx_tank: tank res code %d not documented", uint8(m.TxTank.TankRes))
	}
	if !m.TxBw.PllBw.Valid() {
		return fmt.Errorf("tx_bw: pll bandwidth code %d not documented", uint8(m.TxBw.PllBw))
	}
	if m.TxBw.FilterBw > 31 {
		return fmt.Errorf("tx_bw: filter bandwidth %d exceeds 5 bits", m.TxBw.FilterBw)
	}
	if m.TxDacBw.DacBw > 7 {
		return fmt.Errorf("tx_dac_bw: dac bandwidth %d exceeds 3 bits", m.TxDacBw.DacBw)
	}
	if !m.RxFrontend.LnaGain.Valid() {
		return fmt.Errorf("rx_fe: lna gain code %d not documented", uint8(m.RxFrontend.LnaGain))
	}
	if m.RxFrontend.PgaGain > 15 {
		return fmt.Errorf("rx_fe: pga gain %d exceeds 4 bits", m.RxFrontend.PgaGain)
	}
	if !m.RxFrontend.Zin.Valid() {
		return fmt.Errorf("rx_fe: zin code %d not documented", uint8(m.RxFrontend.Zin))
	}
	if !m.RxFrontend.AdcBw.Valid() {
		return fmt.Errorf("rx_fe: adc bandwidth code %d not documented", uint8(m.RxFrontend.AdcBw))
	}
	if m.RxFrontend.AdcTrim > 7 {
		return fmt.Errorf("rx_fe: adc trim %d exceeds 3 bits", m.RxFrontend.AdcTrim)
	}
	if !m.RxFrontend.PgaBw.Valid() {
		return fmt.Errorf("rx_fe: pga bandwidth code %d not documented", uint8(m.RxFrontend.PgaBw))
	}
	if !m.RxFrontend.PllBw.Valid() {
		return fmt.Errorf("rx_fe: pll bandwidth code %d not documented", uint8(m.RxFrontend.PllBw))
	}
	if !m.IoMap.Dio0.Valid() {
		return fmt.Errorf("io_map: dio0 code %d not documented", uint8(m.IoMap.Dio0))
	}
	if !m.IoMap.Dio1.Valid() {
		return fmt.Errorf("io_map: dio1 code %d not documented", uint8(m.IoMap.Dio1))
	}
	if !m.IoMap.Dio2.Valid() {
		return fmt.Errorf("io_map: dio2 code %d not documented", uint8(m.IoMap.Dio2))
	}
	if !m.IoMap.Dio3.Valid() {
		return fmt.Errorf("io_map: dio3 code %d not documented", uint8(m.IoMap.Dio3))
	}
	if !m.Iism.Mode.Valid() {
		return fmt.Errorf("iism: mode code %d not documented", uint8(m.Iism.Mode))
	}
	if m.Iism.ClockDiv > 15 {
		return fmt.Errorf("iism: clock divider %d exceeds 4 bits", m.Iism.ClockDiv)
	}
	if m.DigBridge.IntDecMantissa > 1 {
		return fmt.Errorf("dig_bridge: mantissa %d exceeds 1 bit", m.DigBridge.IntDecMantissa)
	}
	if m.DigBridge.IntDecMParam > 1 {
		return fmt.Errorf("dig_bridge: m parameter %d exceeds 1 bit", m.DigBridge.IntDecMParam)
	}
	if m.DigBridge.IntDecNParam > 7 {
		return fmt.Errorf("dig_bridge: n parameter %d exceeds 3 bits", m.DigBridge.IntDecNParam)
	}
	if !m.LowBat.Threshold.Valid() {
		return fmt.Errorf("low_bat_thres: threshold code %d not documented", uint8(m.LowBat.Threshold))
	}
	return nil
}

// RegisterInfo describes one slot of the canonical frame layout.
type RegisterInfo struct {
	Addr uint8  `json:"addr"`
	Name string `json:"name"`
	Size int    `json:"size"`
	Only string `json:"only,omitempty"` // variant name when variant-restricted
}

// Includes reports whether the slot is encoded for the given variant.
func (i RegisterInfo) Includes(v Variant) bool {
	return i.Only == "" || i.Only == v.String()
}

// Layout returns the canonical register layout in address order.
func Layout() []RegisterInfo {
	var m RegisterMap
	entries := m.layout()
	infos := make([]RegisterInfo, len(entries))
	for i, e := range entries {
		info := RegisterInfo{Addr: e.addr, Name: e.name, Size: fieldBytes(e.fs)}
		switch e.on {
		case onSX1255:
			info.Only = SX1255.String()
		case onSX1257:
			info.Only = SX1257.String()
		}
		infos[i] = info
	}
	return infos
}
