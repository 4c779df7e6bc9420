package cpu

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for _, mnemonic := range Mnemonics() {
		f.Add(mnemonic + " a 1")
		f.Add(mnemonic + " b")
		f.Add(mnemonic)
	}
	f.Add("")
	f.Add("set-byte a 0x100")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		ins, err := Decode(line)
		if err != nil {
			return
		}

		// A decoded instruction renders to text that decodes the same.
		again, err := Decode(ins.String())
		assert.NoError(err, line)
		assert.Equal(ins, again, line)
		assert.Equal(strings.Fields(line)[0], ins.Mnemonic())
	})
}

func FuzzAlu(f *testing.F) {
	for _, width := range Widths {
		f.Add(uint8(OP_ADD), uint8(width), uint64(0), uint64(0))
		f.Add(uint8(OP_SUB), uint8(width), uint64(0), uint64(1))
		f.Add(uint8(OP_MUL), uint8(width), ^uint64(0), ^uint64(0))
		f.Add(uint8(OP_DIV), uint8(width), uint64(7), uint64(0))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, w uint8, a uint64, b uint64) {
		assert := assert.New(t)

		op := OP_ADD + CodeOp(opcode%uint8(OP_COMPARE-OP_ADD+1))
		width := Width(w % uint8(len(Widths)))
		mask := width.Mask()

		cpu := NewCpu(64)
		cpu.Register[REG_A] = a
		cpu.Register[REG_B] = b
		ins := Instruction{Op: op, Width: width, Dst: REG_A, Src: OperandRegister(REG_B)}

		err := cpu.Execute(ins)
		if (op == OP_DIV || op == OP_REM) && b&mask == 0 {
			assert.ErrorIs(err, ErrDivideByZero)
			assert.Equal(a, cpu.Register[REG_A])
			assert.Equal(Flags{}, cpu.Flags)
			return
		}
		assert.NoError(err)

		result := cpu.Register[REG_A]
		if !op.Stores() {
			assert.Equal(a, result)
			return
		}

		assert.Equal(uint64(0), result&^mask, "zero extended")
		assert.Equal(result == 0, cpu.Flags.Zero)
		assert.Equal(Signed(result, width) < 0, cpu.Flags.Sign)

		limit := uint256.NewInt(mask)
		ua := uint256.NewInt(a & mask)
		ub := uint256.NewInt(b & mask)
		switch op {
		case OP_ADD:
			exact := new(uint256.Int).Add(ua, ub)
			assert.Equal(exact.Cmp(limit) > 0, cpu.Flags.Overflow)
		case OP_SUB:
			assert.Equal(ua.Lt(ub), cpu.Flags.Overflow)
		case OP_MUL:
			exact := new(uint256.Int).Mul(ua, ub)
			assert.Equal(exact.Cmp(limit) > 0, cpu.Flags.Overflow)
		default:
			assert.False(cpu.Flags.Overflow)
		}
	})
}
