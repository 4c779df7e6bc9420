// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"maps"
	"slices"
	"strings"
)

// decodeFn decodes the operand words of one mnemonic.
type decodeFn func(opcode string, args []string) (ins Instruction, err error)

// decodeTable maps every mnemonic to its decoder. Read-only after init.
var decodeTable = makeDecodeTable()

// Binary sized operations: 'op-width register operand'
var binaryOps = []CodeOp{
	OP_SET,
	OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_REM,
	OP_AND, OP_OR, OP_XOR,
	OP_TEST, OP_COMPARE,
}

// Unary sized operations: 'op-width register'
var unaryOps = []CodeOp{OP_NOT, OP_PUSH, OP_POP}

func makeDecodeTable() (table map[string]decodeFn) {
	table = map[string]decodeFn{
		"stop":           decodeNone(OP_STOP),
		"return":         decodeNone(OP_RETURN),
		"call":           decodeTarget(OP_CALL, COND_ALWAYS),
		"print-register": decodeRegister(OP_PRINT_REGISTER, WIDTH_WORD),
		"print-stack":    decodeTarget(OP_PRINT_STACK, COND_ALWAYS),
	}

	for _, cond := range Conds {
		ins := Instruction{Op: OP_JUMP, Cond: cond}
		table[ins.Mnemonic()] = decodeTarget(OP_JUMP, cond)
	}

	for _, width := range Widths {
		for _, op := range binaryOps {
			ins := Instruction{Op: op, Width: width}
			table[ins.Mnemonic()] = decodeRegisterOperand(op, width)
		}
		for _, op := range unaryOps {
			ins := Instruction{Op: op, Width: width}
			table[ins.Mnemonic()] = decodeRegister(op, width)
		}
		ins := Instruction{Op: OP_SET_INDIRECT, Width: width}
		table[ins.Mnemonic()] = decodeRegisterRegister(OP_SET_INDIRECT, width)
	}

	return
}

// Mnemonics returns all decodable opcode tokens, sorted.
func Mnemonics() []string {
	return slices.Sorted(maps.Keys(decodeTable))
}

// Decode decodes a single line of instruction text.
func Decode(line string) (ins Instruction, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	return DecodeWords(words[0], words[1:])
}

// DecodeWords decodes an opcode token and its operand tokens.
func DecodeWords(opcode string, args []string) (ins Instruction, err error) {
	decode, ok := decodeTable[opcode]
	if !ok {
		err = ErrUnknownOpcode(opcode)
		return
	}

	return decode(opcode, args)
}

// checkShape verifies the operand count against the expected shape.
func checkShape(opcode string, args []string, shape ...string) (err error) {
	switch {
	case len(args) < len(shape):
		err = ErrOpcodeValueMissing
	case len(args) > len(shape):
		err = ErrOpcodeExtraArgs
	default:
		return
	}

	err = &ErrShape{Opcode: opcode, Shape: strings.Join(shape, " "), Err: err}
	return
}

// parseRegister parses a register operand word.
func parseRegister(word string) (reg Register, err error) {
	reg, ok := ParseRegister(word)
	if !ok {
		err = ErrInvalidRegister(word)
	}
	return
}

func decodeNone(op CodeOp) decodeFn {
	return func(opcode string, args []string) (ins Instruction, err error) {
		err = checkShape(opcode, args)
		if err != nil {
			return
		}

		ins = Instruction{Op: op}
		return
	}
}

func decodeTarget(op CodeOp, cond CodeCond) decodeFn {
	return func(opcode string, args []string) (ins Instruction, err error) {
		err = checkShape(opcode, args, "operand")
		if err != nil {
			return
		}

		src, err := parseOperand(args[0], WIDTH_WORD)
		if err != nil {
			return
		}

		ins = Instruction{Op: op, Width: WIDTH_WORD, Cond: cond, Src: src}
		return
	}
}

func decodeRegister(op CodeOp, width Width) decodeFn {
	return func(opcode string, args []string) (ins Instruction, err error) {
		err = checkShape(opcode, args, "register")
		if err != nil {
			return
		}

		dst, err := parseRegister(args[0])
		if err != nil {
			return
		}

		ins = Instruction{Op: op, Width: width, Dst: dst}
		return
	}
}

func decodeRegisterOperand(op CodeOp, width Width) decodeFn {
	return func(opcode string, args []string) (ins Instruction, err error) {
		err = checkShape(opcode, args, "register", "operand")
		if err != nil {
			return
		}

		dst, err := parseRegister(args[0])
		if err != nil {
			return
		}

		src, err := parseOperand(args[1], width)
		if err != nil {
			return
		}

		ins = Instruction{Op: op, Width: width, Dst: dst, Src: src}
		return
	}
}

func decodeRegisterRegister(op CodeOp, width Width) decodeFn {
	return func(opcode string, args []string) (ins Instruction, err error) {
		err = checkShape(opcode, args, "register", "register")
		if err != nil {
			return
		}

		dst, err := parseRegister(args[0])
		if err != nil {
			return
		}

		src, err := parseRegister(args[1])
		if err != nil {
			return
		}

		ins = Instruction{Op: op, Width: width, Dst: dst, Src: OperandRegister(src)}
		return
	}
}
