package cpu

import (
	"strings"
)

// CodeOp is an instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_STOP           = CodeOp(0)  // stop
	OP_SET            = CodeOp(1)  // set
	OP_SET_INDIRECT   = CodeOp(2)  // set-indirect
	OP_ADD            = CodeOp(3)  // add
	OP_SUB            = CodeOp(4)  // sub
	OP_MUL            = CodeOp(5)  // mul
	OP_DIV            = CodeOp(6)  // div
	OP_REM            = CodeOp(7)  // rem
	OP_AND            = CodeOp(8)  // and
	OP_OR             = CodeOp(9)  // or
	OP_XOR            = CodeOp(10) // xor
	OP_NOT            = CodeOp(11) // not
	OP_TEST           = CodeOp(12) // test
	OP_COMPARE        = CodeOp(13) // compare
	OP_PUSH           = CodeOp(14) // push
	OP_POP            = CodeOp(15) // pop
	OP_CALL           = CodeOp(16) // call
	OP_RETURN         = CodeOp(17) // return
	OP_JUMP           = CodeOp(18) // jump
	OP_PRINT_REGISTER = CodeOp(19) // print-register
	OP_PRINT_STACK    = CodeOp(20) // print-stack
)

// Alu returns true if the operation recomputes the flags.
func (op CodeOp) Alu() bool {
	return op >= OP_ADD && op <= OP_COMPARE
}

// Stores returns true if an ALU operation writes its result back.
func (op CodeOp) Stores() bool {
	return op.Alu() && op != OP_TEST && op != OP_COMPARE
}

// Sized returns true if the operation has width variants.
func (op CodeOp) Sized() bool {
	return op >= OP_SET && op <= OP_POP
}

// CodeCond is a jump condition.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_ALWAYS       = CodeCond(0) // always
	COND_ZERO         = CodeCond(1) // zero
	COND_NOT_ZERO     = CodeCond(2) // not-zero
	COND_OVERFLOW     = CodeCond(3) // overflow
	COND_NOT_OVERFLOW = CodeCond(4) // not-overflow
	COND_SIGN         = CodeCond(5) // sign
	COND_NOT_SIGN     = CodeCond(6) // not-sign
)

// Conds lists all jump conditions.
var Conds = [...]CodeCond{
	COND_ALWAYS,
	COND_ZERO, COND_NOT_ZERO,
	COND_OVERFLOW, COND_NOT_OVERFLOW,
	COND_SIGN, COND_NOT_SIGN,
}

// Instruction is a decoded instruction.
//
// Dst is the destination register of sized operations, and the source of
// print-register. Src is the second operand of binary operations and the
// target of jump, call and print-stack. For set-indirect, Dst holds the
// destination id and Src names the value register.
type Instruction struct {
	Op    CodeOp
	Width Width
	Cond  CodeCond
	Dst   Register
	Src   Operand
}

// Mnemonic returns the opcode token of the instruction.
func (ins Instruction) Mnemonic() string {
	switch {
	case ins.Op.Sized():
		return ins.Op.String() + "-" + ins.Width.String()
	case ins.Op == OP_JUMP && ins.Cond != COND_ALWAYS:
		return ins.Op.String() + "-" + ins.Cond.String()
	}

	return ins.Op.String()
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	words := []string{ins.Mnemonic()}

	switch ins.Op {
	case OP_STOP, OP_RETURN:
	case OP_NOT, OP_PUSH, OP_POP, OP_PRINT_REGISTER:
		words = append(words, ins.Dst.String())
	case OP_JUMP, OP_CALL, OP_PRINT_STACK:
		words = append(words, ins.Src.String())
	default:
		words = append(words, ins.Dst.String(), ins.Src.String())
	}

	return strings.Join(words, " ")
}

