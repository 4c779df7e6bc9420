// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
)

// Register is a register identifier.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A  = Register(0)  // a
	REG_B  = Register(1)  // b
	REG_C  = Register(2)  // c
	REG_D  = Register(3)  // d
	REG_E  = Register(4)  // e
	REG_F  = Register(5)  // f
	REG_G  = Register(6)  // g
	REG_H  = Register(7)  // h
	REG_SP = Register(8)  // sp
	REG_P1 = Register(9)  // p1
	REG_P2 = Register(10) // p2
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 11

// regMap maps register names to identifiers.
var regMap = map[string]Register{
	"a":  REG_A,
	"b":  REG_B,
	"c":  REG_C,
	"d":  REG_D,
	"e":  REG_E,
	"f":  REG_F,
	"g":  REG_G,
	"h":  REG_H,
	"sp": REG_SP,
	"p1": REG_P1,
	"p2": REG_P2,
}

// ParseRegister returns the register named by word.
func ParseRegister(word string) (reg Register, ok bool) {
	reg, ok = regMap[word]
	return
}

// Valid returns true if the identifier is in the register file.
func (reg Register) Valid() bool {
	return reg >= REG_A && reg < REGISTER_COUNT
}

// General returns true for the general-purpose registers a-h.
func (reg Register) General() bool {
	return reg >= REG_A && reg <= REG_H
}

// RegisterFromWord converts a runtime value into a destination register.
// Only the general-purpose registers are legal destinations.
func RegisterFromWord(value uint64) (reg Register, err error) {
	if value > uint64(REG_H) {
		err = ErrInvalidRegisterCast(value)
		return
	}

	reg = Register(value)
	return
}

// Registers is the register file.
type Registers [REGISTER_COUNT]uint64

// Get reads the low-order bytes of a register.
func (regs *Registers) Get(reg Register, width Width) (value uint64) {
	var buff [8]byte
	binary.LittleEndian.PutUint64(buff[:], regs[reg])
	clear(buff[width.Bytes():])
	value = binary.LittleEndian.Uint64(buff[:])
	return
}

// Set writes a value of the width into a register, zero extended.
func (regs *Registers) Set(reg Register, width Width, value uint64) {
	regs[reg] = value & width.Mask()
}

// Reset zeros all registers.
func (regs *Registers) Reset() {
	clear(regs[:])
}

// registerAs reads a register at the width of T.
func registerAs[T Unsigned](regs *Registers, reg Register) T {
	return T(regs[reg])
}
