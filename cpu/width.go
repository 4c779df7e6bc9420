// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"math/bits"
)

// Operand storage types, one per Width.
type (
	Byte    = uint8
	Quarter = uint16
	Half    = uint32
	Word    = uint64

	SignedByte    = int8
	SignedQuarter = int16
	SignedHalf    = int32
	SignedWord    = int64
)

// Unsigned is the set of operand storage types.
type Unsigned interface {
	Byte | Quarter | Half | Word
}

// Width is the operand size of an instruction.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_BYTE    = Width(0) // byte
	WIDTH_QUARTER = Width(1) // quarter
	WIDTH_HALF    = Width(2) // half
	WIDTH_WORD    = Width(3) // word
)

// Widths lists all operand widths, narrowest first.
var Widths = [...]Width{WIDTH_BYTE, WIDTH_QUARTER, WIDTH_HALF, WIDTH_WORD}

// Bytes returns the storage size of the width.
func (w Width) Bytes() int {
	return 1 << w
}

// Bits returns the bit size of the width.
func (w Width) Bits() int {
	return 8 << w
}

// Mask returns the all-ones value at the width.
func (w Width) Mask() uint64 {
	return ^uint64(0) >> (64 - w.Bits())
}

// Valid returns true for one of the four defined widths.
func (w Width) Valid() bool {
	return w >= WIDTH_BYTE && w <= WIDTH_WORD
}

// Signed sign-extends a value of the given width.
func Signed(value uint64, w Width) (signed int64) {
	shift := 64 - w.Bits()
	signed = int64(value<<shift) >> shift
	return
}

// bitsOf returns the bit size of an Unsigned type.
func bitsOf[T Unsigned]() int {
	var zero T
	return bits.Len64(uint64(^zero))
}
