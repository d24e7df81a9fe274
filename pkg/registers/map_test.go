package registers

import (
	"testing"

	"go.viam.com/test"
)

// Power-on register file of the SX1255, straight from the datasheet table.
var defaultFrameSX1255 = []byte{
	0x01,             // 0x00 MODE: standby
	0xC0, 0xE3, 0x8E, // 0x01 FRF_RX: 434 MHz at 36 MHz crystal
	0xC0, 0xE3, 0x8E, // 0x04 FRF_TX
	0x00,             // 0x07 VERSION
	0x2E,             // 0x08 TX_GAIN: DAC max-3 dB, mixer code 14
	0x24,             // 0x09 TX_TANK: cap 4, res 4
	0x60,             // 0x0A TX_BW: PLL 300 kHz
	0x02,             // 0x0B TX_DAC_BW
	0x2F, 0xA5, 0x06, // 0x0C RX_FE
	0x00,                               // 0x0F IO_MAP
	0x02,                               // 0x10 CK_SEL: CLK_OUT enabled
	0x00,                               // 0x11 STAT
	0x00, 0x00,                         // 0x12 IISM, 0x13 DIG_BRIDGE
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x14-0x19 reserved
	0x00, // 0x1A LOW_BAT_THRES (zeroed on the SX1255)
}

func TestSerializeDefaultsSX1255(t *testing.T) {
	frame := make([]byte, FrameLen)
	err := NewRegisterMap().Serialize(SX1255, frame)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame, test.ShouldResemble, defaultFrameSX1255)
}

func TestSerializeDefaultsSX1257(t *testing.T) {
	frame := make([]byte, FrameLen)
	err := NewRegisterMap().Serialize(SX1257, frame)
	test.That(t, err, test.ShouldBeNil)

	// Identical to the SX1255 frame except the tank register, which does
	// not exist on the SX1257; the remaining variant-specific registers
	// default to zero on both.
	want := make([]byte, FrameLen)
	copy(want, defaultFrameSX1255)
	want[RegTxTank] = 0x00
	test.That(t, frame, test.ShouldResemble, want)
}

func TestSerializeZeroFillsOtherVariant(t *testing.T) {
	m := NewRegisterMap()
	m.TxTank = TxTank{TankCap: 7, TankRes: 2}
	m.Iism = Iism{ClockDiv: 9}
	m.DigBridge = DigBridge{IntDecNParam: 5}
	m.LowBat = LowBat{Threshold: 7}

	frame := make([]byte, FrameLen)

	test.That(t, m.Serialize(SX1255, frame), test.ShouldBeNil)
	test.That(t, frame[RegTxTank], test.ShouldEqual, byte(0x3A))
	test.That(t, frame[RegIism], test.ShouldEqual, byte(0x09))
	test.That(t, frame[RegDigBridge], test.ShouldEqual, byte(0x28))
	test.That(t, frame[RegLowBat], test.ShouldEqual, byte(0x00))

	test.That(t, m.Serialize(SX1257, frame), test.ShouldBeNil)
	test.That(t, frame[RegTxTank], test.ShouldEqual, byte(0x00))
	test.That(t, frame[RegIism], test.ShouldEqual, byte(0x00))
	test.That(t, frame[RegDigBridge], test.ShouldEqual, byte(0x00))
	test.That(t, frame[RegLowBat], test.ShouldEqual, byte(0x07))
}

func TestSerializeReusedBufferDoesNotLeak(t *testing.T) {
	m := NewRegisterMap()
	frame := make([]byte, FrameLen)

	// The SX1255 encoding leaves a non-zero tank byte behind; a later
	// SX1257 encoding into the same buffer must clear it.
	test.That(t, m.Serialize(SX1255, frame), test.ShouldBeNil)
	test.That(t, frame[RegTxTank], test.ShouldEqual, byte(0x24))

	test.That(t, m.Serialize(SX1257, frame), test.ShouldBeNil)
	test.That(t, frame[RegTxTank], test.ShouldEqual, byte(0x00))
}

func TestSerializeSharedBytesMatchAcrossVariants(t *testing.T) {
	a := make([]byte, FrameLen)
	b := make([]byte, FrameLen)
	m := NewRegisterMap()
	test.That(t, m.Serialize(SX1255, a), test.ShouldBeNil)
	test.That(t, m.Serialize(SX1257, b), test.ShouldBeNil)

	variantSpecific := map[int]bool{
		RegTxTank: true, RegIism: true, RegDigBridge: true, RegLowBat: true,
	}
	for i := 0; i < FrameLen; i++ {
		if !variantSpecific[i] {
			test.That(t, a[i], test.ShouldEqual, b[i])
		}
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	src := NewRegisterMap()
	src.Mode.SetOpMode(ModeFullDuplex)
	src.RxFrequency.Word = 0xD90000
	src.TxFrequency.Word = 0xDA4000
	src.Version = 0x21
	src.TxGain = TxGain{DacGain: DacGainMax, MixerGain: 5}
	src.RxFrontend.LnaGain = LnaGainMinus12
	src.RxFrontend.AdcTemp = true
	src.IoMap.Dio0 = Dio0Eol
	src.Status = Status{XoscReady: true, PllLockRx: true}

	t.Run("sx1255", func(t *testing.T) {
		src := *src
		src.Iism = Iism{Mode: IismModeB1, ClockDiv: 3}
		src.DigBridge = DigBridge{IntDecMantissa: 1, IismTruncation: true}
		src.LowBat = LowBat{} // not encoded for this variant

		frame := make([]byte, FrameLen)
		test.That(t, src.Serialize(SX1255, frame), test.ShouldBeNil)

		var dst RegisterMap
		test.That(t, dst.Deserialize(SX1255, frame), test.ShouldBeNil)
		test.That(t, dst, test.ShouldResemble, src)
	})

	t.Run("sx1257", func(t *testing.T) {
		src := *src
		src.TxTank = TxTank{} // not encoded for this variant
		src.LowBat = LowBat{Threshold: 2}

		frame := make([]byte, FrameLen)
		test.That(t, src.Serialize(SX1257, frame), test.ShouldBeNil)

		var dst RegisterMap
		test.That(t, dst.Deserialize(SX1257, frame), test.ShouldBeNil)
		test.That(t, dst, test.ShouldResemble, src)
	})
}

func TestSerializeErrors(t *testing.T) {
	m := NewRegisterMap()

	err := m.Serialize(Variant(9), make([]byte, FrameLen))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown IC variant")

	err = m.Serialize(SX1255, make([]byte, FrameLen-1))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "frame needs 27 bytes")

	err = m.Deserialize(SX1257, make([]byte, 4))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "frame needs 27 bytes")
}

func TestValidate(t *testing.T) {
	test.That(t, NewRegisterMap().Validate(), test.ShouldBeNil)

	cases := []struct {
		name    string
		mutate  func(m *RegisterMap)
		wantErr string
	}{
		{
			name:    "lna gain reserved code",
			mutate:  func(m *RegisterMap) { m.RxFrontend.LnaGain = 0 },
			wantErr: "lna gain code 0",
		},
		{
			name:    "adc bandwidth undocumented code",
			mutate:  func(m *RegisterMap) { m.RxFrontend.AdcBw = 3 },
			wantErr: "adc bandwidth code 3",
		},
		{
			name:    "dio1 undocumented code",
			mutate:  func(m *RegisterMap) { m.IoMap.Dio1 = 2 },
			wantErr: "dio1 code 2",
		},
		{
			name:    "iism mode reserved code",
			mutate:  func(m *RegisterMap) { m.Iism.Mode = 3 },
			wantErr: "mode code 3",
		},
		{
			name:    "mixer gain too wide",
			mutate:  func(m *RegisterMap) { m.TxGain.MixerGain = 16 },
			wantErr: "mixer gain 16 exceeds 4 bits",
		},
		{
			name:    "frequency word too wide",
			mutate:  func(m *RegisterMap) { m.TxFrequency.Word = 0x1000000 },
			wantErr: "exceeds 24 bits",
		},
		{
			name:    "clock divider too wide",
			mutate:  func(m *RegisterMap) { m.Iism.ClockDiv = 16 },
			wantErr: "clock divider 16",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewRegisterMap()
			tc.mutate(m)
			err := m.Validate()
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.wantErr)
		})
	}
}

func TestLayoutCoversFrame(t *testing.T) {
	infos := Layout()
	test.That(t, infos[0].Name, test.ShouldEqual, "MODE")
	last := infos[len(infos)-1]
	test.That(t, last.Name, test.ShouldEqual, "LOW_BAT_THRES")
	test.That(t, int(last.Addr)+last.Size, test.ShouldEqual, FrameLen)

	// Ascending addresses, no overlap.
	for i := 1; i < len(infos); i++ {
		prevEnd := int(infos[i-1].Addr) + infos[i-1].Size
		test.That(t, int(infos[i].Addr) >= prevEnd, test.ShouldBeTrue)
	}

	test.That(t, infos[0].Includes(SX1255), test.ShouldBeTrue)
	test.That(t, infos[0].Includes(SX1257), test.ShouldBeTrue)
	test.That(t, last.Includes(SX1255), test.ShouldBeFalse)
	test.That(t, last.Includes(SX1257), test.ShouldBeTrue)
}

func TestVariantText(t *testing.T) {
	v, err := ParseVariant("sx1257")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v, test.ShouldEqual, SX1257)

	v, err = ParseVariant("1255")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v, test.ShouldEqual, SX1255)

	_, err = ParseVariant("sx1276")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sx1276")

	text, err := SX1255.MarshalText()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(text), test.ShouldEqual, "sx1255")

	var back Variant
	test.That(t, back.UnmarshalText([]byte("sx1257")), test.ShouldBeNil)
	test.That(t, back, test.ShouldEqual, SX1257)
}

func TestOpModes(t *testing.T) {
	m := NewRegisterMap()
	got, ok := m.Mode.OpMode()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, got, test.ShouldEqual, ModeStandby)

	for mode := ModeSleep; mode <= ModeFullDuplex; mode++ {
		var r Mode
		r.SetOpMode(mode)
		got, ok := r.OpMode()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, got, test.ShouldEqual, mode)
	}

	// PA driver without the TX path has no documented name.
	odd := Mode{DriverEnable: true, RefEnable: true}
	_, ok = odd.OpMode()
	test.That(t, ok, test.ShouldBeFalse)

	var r Mode
	r.SetOpMode(ModeTxPa)
	var buf [1]byte
	test.That(t, Pack(&r, buf[:]), test.ShouldBeNil)
	test.That(t, buf[0], test.ShouldEqual, byte(0x0D))
}
