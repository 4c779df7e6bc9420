package cpu

// Width-generic ALU primitives. All wrap at the width of T and report
// unsigned overflow (carry or borrow out of the width).

func overflowingAdd[T Unsigned](a, b T) (result T, overflow bool) {
	result = a + b
	overflow = result < a
	return
}

func overflowingSub[T Unsigned](a, b T) (result T, overflow bool) {
	result = a - b
	overflow = b > a
	return
}

func overflowingMul[T Unsigned](a, b T) (result T, overflow bool) {
	result = a * b
	overflow = a != 0 && result/a != b
	return
}

// doAlu performs a binary or unary ALU operation. Division by zero must
// be checked by the caller.
func doAlu[T Unsigned](op CodeOp, a, b T) (result T, overflow bool) {
	switch op {
	case OP_ADD:
		result, overflow = overflowingAdd(a, b)
	case OP_SUB, OP_COMPARE:
		result, overflow = overflowingSub(a, b)
	case OP_MUL:
		result, overflow = overflowingMul(a, b)
	case OP_DIV:
		result = a / b
	case OP_REM:
		result = a % b
	case OP_AND, OP_TEST:
		result = a & b
	case OP_OR:
		result = a | b
	case OP_XOR:
		result = a ^ b
	case OP_NOT:
		result = ^a
	}

	return
}

// alu executes an arithmetic or logic instruction at the width of T.
// Registers and flags are left untouched on error.
func alu[T Unsigned](cpu *Cpu, ins Instruction) (err error) {
	a := registerAs[T](&cpu.Register, ins.Dst)

	var b T
	if ins.Op != OP_NOT {
		b = operandAs[T](&cpu.Register, ins.Src)
	}

	if (ins.Op == OP_DIV || ins.Op == OP_REM) && b == 0 {
		err = ErrDivideByZero
		return
	}

	result, overflow := doAlu(ins.Op, a, b)
	setFlags(&cpu.Flags, result, overflow)

	if ins.Op.Stores() {
		cpu.Register[ins.Dst] = uint64(result)
	}

	return
}

// aluWidth dispatches an ALU instruction on its width.
func (cpu *Cpu) aluWidth(ins Instruction) (err error) {
	switch ins.Width {
	case WIDTH_BYTE:
		err = alu[Byte](cpu, ins)
	case WIDTH_QUARTER:
		err = alu[Quarter](cpu, ins)
	case WIDTH_HALF:
		err = alu[Half](cpu, ins)
	case WIDTH_WORD:
		err = alu[Word](cpu, ins)
	default:
		err = ErrWidthInvalid
	}

	return
}
