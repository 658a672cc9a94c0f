package cpu

import (
	"fmt"
)

// Arg is an instruction operand, already narrowed to its field width.
type Arg interface {
	fmt.Stringer
	bits() uint16
}

// Reg is a register file address (8 or 9 bits, depending on the operation).
type Reg uint16

func (r Reg) bits() uint16    { return uint16(r) }
func (r Reg) String() string { return fmt.Sprintf("0x%02X", uint16(r)) }

// Dest selects the result destination of a register operation.
type Dest uint8

const (
	DEST_A = Dest(0) // A
	DEST_F = Dest(1) // F
)

func (d Dest) bits() uint16 { return uint16(d) }

func (d Dest) String() string {
	if d&1 == 0 {
		return "A"
	}
	return "F"
}

// Imm is an 8-bit immediate value.
type Imm uint8

func (k Imm) bits() uint16    { return uint16(k) }
func (k Imm) String() string { return fmt.Sprintf("0x%02X", uint8(k)) }

// U2 is a 2-bit value.
type U2 uint8

func (k U2) bits() uint16    { return uint16(k) }
func (k U2) String() string { return fmt.Sprintf("%d", uint8(k)) }

// U3 is a 3-bit value, usually a bit index.
type U3 uint8

func (k U3) bits() uint16    { return uint16(k) }
func (k U3) String() string { return fmt.Sprintf("%d", uint8(k)) }

// U7 is a 7-bit value.
type U7 uint8

func (k U7) bits() uint16    { return uint16(k) }
func (k U7) String() string { return fmt.Sprintf("0x%02X", uint8(k)) }

// U9 is a 9-bit value.
type U9 uint16

func (k U9) bits() uint16    { return uint16(k) }
func (k U9) String() string { return fmt.Sprintf("0x%03X", uint16(k)) }

// U10 is a 10-bit value.
type U10 uint16

func (k U10) bits() uint16    { return uint16(k) }
func (k U10) String() string { return fmt.Sprintf("0x%03X", uint16(k)) }

// Addr is a code address in words. It renders as a byte address.
type Addr uint16

func (a Addr) bits() uint16    { return uint16(a) }
func (a Addr) String() string { return fmt.Sprintf("0x%04X", uint32(a)<<1) }

// Word is a raw instruction word.
type Word uint16

func (w Word) bits() uint16    { return uint16(w) }
func (w Word) String() string { return fmt.Sprintf("0x%04X", uint16(w)) }

// narrow checks that value fits in an unsigned field of the given width.
func narrow(value int64, width uint) (out uint16, err error) {
	if value < 0 || value >= int64(1)<<width {
		err = ErrRange{Value: value, Bits: width}
		return
	}

	out = uint16(value)
	return
}

// MakeU2 narrows value to a 2-bit field.
func MakeU2(value int64) (U2, error) {
	v, err := narrow(value, 2)
	return U2(v), err
}

// MakeU3 narrows value to a 3-bit field.
func MakeU3(value int64) (U3, error) {
	v, err := narrow(value, 3)
	return U3(v), err
}

// MakeU7 narrows value to a 7-bit field.
func MakeU7(value int64) (U7, error) {
	v, err := narrow(value, 7)
	return U7(v), err
}

// MakeImm narrows value to an 8-bit field.
func MakeImm(value int64) (Imm, error) {
	v, err := narrow(value, 8)
	return Imm(v), err
}

// MakeU9 narrows value to a 9-bit field.
func MakeU9(value int64) (U9, error) {
	v, err := narrow(value, 9)
	return U9(v), err
}

// MakeU10 narrows value to a 10-bit field.
func MakeU10(value int64) (U10, error) {
	v, err := narrow(value, 10)
	return U10(v), err
}

// MakeAddr converts a byte address to a word address of the given field width.
func MakeAddr(value int64, width uint) (a Addr, err error) {
	if value&1 != 0 {
		err = ErrAddress(value)
		return
	}

	v, err := narrow(value>>1, width)
	if err != nil {
		err = ErrRange{Value: value, Bits: width + 1}
		return
	}

	a = Addr(v)
	return
}
