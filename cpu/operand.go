package cpu

import (
	"fmt"
	"strconv"
)

// Operand is either a register reference or an immediate value.
// Immediates are range checked against the instruction width when decoded.
type Operand struct {
	Immediate bool     // Set if Value holds the operand.
	Register  Register // Source register, when not immediate.
	Value     uint64   // Immediate value.
}

// OperandRegister makes a register operand.
func OperandRegister(reg Register) Operand {
	return Operand{Register: reg}
}

// OperandImmediate makes an immediate operand.
func OperandImmediate(value uint64) Operand {
	return Operand{Immediate: true, Value: value}
}

// parseOperand parses a register name, or a number at the given width.
func parseOperand(word string, width Width) (op Operand, err error) {
	reg, ok := ParseRegister(word)
	if ok {
		op = OperandRegister(reg)
		return
	}

	value, err := strconv.ParseUint(word, 0, width.Bits())
	if err != nil {
		err = &ErrParseOperand{Word: word, Width: width}
		return
	}

	op = OperandImmediate(value)
	return
}

// operandAs resolves an operand at the width of T.
func operandAs[T Unsigned](regs *Registers, op Operand) T {
	if op.Immediate {
		return T(op.Value)
	}
	return registerAs[T](regs, op.Register)
}

func (op Operand) String() string {
	if op.Immediate {
		return fmt.Sprintf("%#x", op.Value)
	}
	return op.Register.String()
}
