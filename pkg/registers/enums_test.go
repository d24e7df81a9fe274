package registers

import (
	"testing"

	"go.viam.com/test"
)

func TestEnumValidSets(t *testing.T) {
	// LNA gain codes 0 and 7 are reserved.
	test.That(t, LnaGain(0).Valid(), test.ShouldBeFalse)
	for g := LnaGainMax; g <= LnaGainMinus48; g++ {
		test.That(t, g.Valid(), test.ShouldBeTrue)
	}
	test.That(t, LnaGain(7).Valid(), test.ShouldBeFalse)

	// Only three ADC bandwidth codes are documented.
	for code := uint8(0); code < 8; code++ {
		want := code == 2 || code == 5 || code == 7
		test.That(t, AdcBw(code).Valid(), test.ShouldEqual, want)
	}

	// DIO1 through DIO3 each document a single mapping.
	test.That(t, Dio1Mapping(0).Valid(), test.ShouldBeTrue)
	test.That(t, Dio1Mapping(1).Valid(), test.ShouldBeFalse)
	test.That(t, Dio2Mapping(1).Valid(), test.ShouldBeFalse)
	test.That(t, Dio3Mapping(1).Valid(), test.ShouldBeFalse)

	test.That(t, IismMode(2).Valid(), test.ShouldBeTrue)
	test.That(t, IismMode(3).Valid(), test.ShouldBeFalse)
	test.That(t, TankRes(7).Valid(), test.ShouldBeTrue)
	test.That(t, TankRes(8).Valid(), test.ShouldBeFalse)
}

func TestEnumStrings(t *testing.T) {
	test.That(t, DacGainMax.String(), test.ShouldEqual, "max (0 dBFS)")
	test.That(t, DacGainMinus9.String(), test.ShouldEqual, "max-9 dB")
	test.That(t, TankRes(4).String(), test.ShouldEqual, "2.18 kOhm")
	test.That(t, TankRes(7).String(), test.ShouldEqual, "64 kOhm")
	test.That(t, PllBw(0).String(), test.ShouldEqual, "75 kHz")
	test.That(t, PllBw(3).String(), test.ShouldEqual, "300 kHz")
	test.That(t, LnaGainMinus24.String(), test.ShouldEqual, "-24 dB")
	test.That(t, Zin50.String(), test.ShouldEqual, "50 ohm")
	test.That(t, Zin200.String(), test.ShouldEqual, "200 ohm")
	test.That(t, AdcBwWide.String(), test.ShouldEqual, ">400 kHz")
	test.That(t, PgaBw(3).String(), test.ShouldEqual, "250 kHz")
	test.That(t, Dio0PllLockRx2.String(), test.ShouldEqual, "pll_lock_rx")
	test.That(t, Dio0Eol.String(), test.ShouldEqual, "eol")
	test.That(t, IismModeB1.String(), test.ShouldEqual, "B1")
	test.That(t, LowBatTrim(0).String(), test.ShouldEqual, "1.695 V")
	test.That(t, LowBatTrim(7).String(), test.ShouldEqual, "2.185 V")

	test.That(t, DacGain(9).String(), test.ShouldEqual, "invalid(9)")
	test.That(t, LnaGain(7).String(), test.ShouldEqual, "invalid(7)")

	test.That(t, ModeSleep.String(), test.ShouldEqual, "sleep")
	test.That(t, ModeTxPa.String(), test.ShouldEqual, "tx+pa")
	test.That(t, ModeFullDuplex.String(), test.ShouldEqual, "full-duplex")
}
