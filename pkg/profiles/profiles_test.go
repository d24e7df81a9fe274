package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/rfkit/sx125x/pkg/config"
	"github.com/rfkit/sx125x/pkg/registers"
)

func TestPresetRegistry(t *testing.T) {
	test.That(t, Names(), test.ShouldResemble, []string{
		"eu868-gateway-a", "eu868-gateway-b",
		"us915-gateway-a", "us915-gateway-b",
		"cn470-gateway-a", "cn470-gateway-b",
	})

	cfg, ok := Get("eu868-gateway-a")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cfg.Variant, test.ShouldEqual, registers.SX1257)
	test.That(t, cfg.RefMHz, test.ShouldEqual, GatewayCrystalMHz)
	test.That(t, cfg.Description, test.ShouldContainSubstring, "drives CLK_OUT")

	_, ok = Get("eu433-gateway-a")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestPresetsValidate(t *testing.T) {
	for _, cfg := range All() {
		test.That(t, cfg.Validate(), test.ShouldBeNil)
		mode, ok := cfg.Registers.Mode.OpMode()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, mode, test.ShouldEqual, registers.ModeRx)
	}
}

func TestGatewayFrames(t *testing.T) {
	eu, ok := Get("eu868-gateway-a")
	test.That(t, ok, test.ShouldBeTrue)
	frame, err := eu.Frame()
	test.That(t, err, test.ShouldBeNil)

	test.That(t, frame[registers.RegMode], test.ShouldEqual, byte(0x03))
	test.That(t, frame[registers.RegFrfRx:registers.RegFrfRx+3], test.ShouldResemble, []byte{0xD8, 0xE0, 0x00})
	test.That(t, frame[registers.RegFrfTx:registers.RegFrfTx+3], test.ShouldResemble, []byte{0xD8, 0xE0, 0x00})
	test.That(t, frame[registers.RegTxGain], test.ShouldEqual, byte(0x2E))
	test.That(t, frame[registers.RegTxTank], test.ShouldEqual, byte(0x00)) // zero-filled on the SX1257
	test.That(t, frame[registers.RegTxBw], test.ShouldEqual, byte(0x20))
	test.That(t, frame[registers.RegTxDacBw], test.ShouldEqual, byte(0x05))
	test.That(t, frame[registers.RegRxFrontend], test.ShouldEqual, byte(0x39))
	test.That(t, frame[registers.RegRxFrontend+1], test.ShouldEqual, byte(0xF8))
	test.That(t, frame[registers.RegRxFrontend+2], test.ShouldEqual, byte(0x00))
	test.That(t, frame[registers.RegClockSelect], test.ShouldEqual, byte(0x03))

	slave, ok := Get("eu868-gateway-b")
	test.That(t, ok, test.ShouldBeTrue)
	frame, err = slave.Frame()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame[registers.RegClockSelect], test.ShouldEqual, byte(0x01))

	cn, ok := Get("cn470-gateway-a")
	test.That(t, ok, test.ShouldBeTrue)
	frame, err = cn.Frame()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, frame[registers.RegFrfRx:registers.RegFrfRx+3], test.ShouldResemble, []byte{0xEB, 0x00, 0x00})
	test.That(t, frame[registers.RegTxTank], test.ShouldEqual, byte(0x24)) // SX1255 keeps the tank register
}

func TestPresetFrequencies(t *testing.T) {
	eu, _ := Get("eu868-gateway-a")
	test.That(t, eu.GetRxFrequencyMHz(), test.ShouldAlmostEqual, 867.5, 1e-6)
	test.That(t, eu.GetTxFrequencyMHz(), test.ShouldAlmostEqual, 867.5, 1e-6)

	us, _ := Get("us915-gateway-a")
	test.That(t, us.GetRxFrequencyMHz(), test.ShouldAlmostEqual, 915.0, 1e-6)

	cn, _ := Get("cn470-gateway-b")
	test.That(t, cn.GetRxFrequencyMHz(), test.ShouldAlmostEqual, 470.0, 1e-6)
}

func TestFrequencyWord(t *testing.T) {
	cases := []struct {
		mhz     float64
		crystal float64
		variant registers.Variant
		want    uint32
	}{
		{867.5, 32, registers.SX1257, 0xD8E000},
		{915.0, 32, registers.SX1257, 0xE4C000},
		{868.0, 32, registers.SX1257, 0xD90000},
		{470.0, 32, registers.SX1255, 0xEB0000},
		// 434 MHz with a 36 MHz crystal rounds to the power-on word.
		{434.0, 36, registers.SX1255, 0xC0E38E},
		{434.0, 36, registers.SX1257, 0x6071C7},
	}
	for _, c := range cases {
		test.That(t, FrequencyWord(c.mhz, c.crystal, c.variant), test.ShouldEqual, c.want)
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	test.That(t, WriteAll(dir), test.ShouldBeNil)

	entries, err := os.ReadDir(dir)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(entries), test.ShouldEqual, len(Names()))

	loaded, err := config.LoadFromFile(filepath.Join(dir, "us915-gateway-b.json"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, loaded.Registers.RxFrequency.Word, test.ShouldEqual, uint32(0xE4C000))
	test.That(t, loaded.Registers.ClockSelect.ClockOutEnable, test.ShouldBeFalse)
	test.That(t, loaded.RefMHz, test.ShouldEqual, GatewayCrystalMHz)
}
