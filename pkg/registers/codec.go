package registers

import "fmt"

// field binds a bit width to one struct field of a register. Descriptors are
// listed most significant field first; packFields lays them out MSB-first
// across the register's bytes, crossing byte boundaries as needed.
type field struct {
	bits uint8
	get  func() uint32
	set  func(uint32)
}

// u8 describes an unsigned field of the given width backed by a uint8.
func u8(bits uint8, p *uint8) field {
	return field{
		bits: bits,
		get:  func() uint32 { return uint32(*p) },
		set:  func(v uint32) { *p = uint8(v) },
	}
}

// u24 describes a 24-bit field backed by a uint32 (the frequency words).
func u24(p *uint32) field {
	return field{
		bits: 24,
		get:  func() uint32 { return *p },
		set:  func(v uint32) { *p = v },
	}
}

// flag describes a single-bit boolean field.
func flag(p *bool) field {
	return field{
		bits: 1,
		get: func() uint32 {
			if *p {
				return 1
			}
			return 0
		},
		set: func(v uint32) { *p = v != 0 },
	}
}

// code describes an enumerated field. The raw wire code is stored as-is, so
// undocumented codes survive a round trip and are caught by Validate, not here.
func code[T ~uint8](bits uint8, p *T) field {
	return field{
		bits: bits,
		get:  func() uint32 { return uint32(*p) },
		set:  func(v uint32) { *p = T(v) },
	}
}

// reserved describes a padding span that always encodes as zero and is
// discarded on decode.
func reserved(bits uint8) field {
	return field{
		bits: bits,
		get:  func() uint32 { return 0 },
		set:  func(uint32) {},
	}
}

// fieldBytes returns the packed size of a descriptor list in bytes. Field
// widths always sum to a whole number of bytes per register.
func fieldBytes(fs []field) int {
	total := 0
	for _, f := range fs {
		total += int(f.bits)
	}
	return total / 8
}

// packFields encodes the fields into dst, first field in the highest-order
// bits of dst[0]. Values wider than the declared width are truncated to
// width here; assignment is never range-checked.
func packFields(fs []field, dst []byte) {
	var acc uint64
	for _, f := range fs {
		acc = acc<<f.bits | uint64(f.get())&(1<<f.bits-1)
	}
	for i := fieldBytes(fs) - 1; i >= 0; i-- {
		dst[i] = byte(acc)
		acc >>= 8
	}
}

// unpackFields is the exact inverse of packFields.
func unpackFields(fs []field, src []byte) {
	var acc uint64
	for i := 0; i < fieldBytes(fs); i++ {
		acc = acc<<8 | uint64(src[i])
	}
	// The last field sits in the low bits of the accumulator.
	for i := len(fs) - 1; i >= 0; i-- {
		fs[i].set(uint32(acc & (1<<fs[i].bits - 1)))
		acc >>= fs[i].bits
	}
}

// Register is implemented by every register type in this package and by
// nothing else; the bit layouts are fixed by the datasheet.
type Register interface {
	fields() []field
}

// PackedSize returns the encoded size of a register in bytes.
func PackedSize(r Register) int {
	return fieldBytes(r.fields())
}

// Pack encodes a register into dst, most significant field first.
func Pack(r Register, dst []byte) error {
	fs := r.fields()
	if n := fieldBytes(fs); len(dst) < n {
		return fmt.Errorf("pack: register needs %d bytes, buffer has %d", n, len(dst))
	}
	packFields(fs, dst)
	return nil
}

// Unpack decodes src into a register.
func Unpack(r Register, src []byte) error {
	fs := r.fields()
	if n := fieldBytes(fs); len(src) < n {
		return fmt.Errorf("unpack: register needs %d bytes, buffer has %d", n, len(src))
	}
	unpackFields(fs, src)
	return nil
}
