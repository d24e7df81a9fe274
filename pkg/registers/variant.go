package registers

import "fmt"

// Variant selects which of the two IC models a frame is encoded for. The
// two chips share the register map except for a handful of registers; the
// variant is a per-serialization decision, not a property of the map.
type Variant uint8

const (
	SX1255 Variant = iota
	SX1257
)

func (v Variant) String() string {
	switch v {
	case SX1255:
		return "sx1255"
	case SX1257:
		return "sx1257"
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// MarshalText implements encoding.TextMarshaler for JSON config files.
func (v Variant) MarshalText() ([]byte, error) {
	if v > SX1257 {
		return nil, fmt.Errorf("unknown IC variant %d", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVariant parses a variant name as it appears in config files and on
// the command line.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "sx1255", "SX1255", "1255":
		return SX1255, nil
	case "sx1257", "SX1257", "1257":
		return SX1257, nil
	}
	return 0, fmt.Errorf("unknown IC variant %q (want sx1255 or sx1257)", s)
}
