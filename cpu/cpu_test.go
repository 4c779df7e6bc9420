package cpu

import (
	"bytes"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	assert.True(cpu.Running)
	assert.Equal(uint64(64), cpu.Stack.Capacity())
	assert.Equal(Registers{}, cpu.Register)

	defines := maps.Collect(cpu.Defines())
	assert.Equal("64", defines["STACK_SIZE"])
	assert.Equal("11", defines["REGISTER_COUNT"])

	assert.Contains(cpu.String(), "pc: 0\n")
}

// execute decodes and executes each line, stopping on the first error.
func execute(cpu *Cpu, lines ...string) (err error) {
	for _, line := range lines {
		var ins Instruction
		ins, err = Decode(line)
		if err != nil {
			return
		}
		err = cpu.Execute(ins)
		if err != nil {
			return
		}
	}

	return
}

func TestCpuArithmetic(t *testing.T) {
	table := [](struct {
		name  string
		lines []string
		a     uint64
		flags Flags
	}){
		{"set", []string{"set-word a 0x1122334455667788", "set-byte a 0x99"}, 0x99, Flags{}},
		{"add", []string{"set-byte a 250", "add-byte a 10"}, 4, Flags{Overflow: true}},
		{"add-zero", []string{"set-byte a 255", "add-byte a 1"}, 0, Flags{Zero: true, Overflow: true}},
		{"add-sign", []string{"set-quarter a 0x7fff", "add-quarter a 1"}, 0x8000, Flags{Sign: true}},
		{"sub", []string{"set-half a 1", "sub-half a 2"}, 0xffff_ffff, Flags{Overflow: true, Sign: true}},
		{"mul", []string{"set-byte a 20", "mul-byte a 20"}, 144, Flags{Overflow: true, Sign: true}},
		{"div", []string{"set-byte a 20", "div-byte a 6"}, 3, Flags{}},
		{"rem", []string{"set-byte a 20", "rem-byte a 6"}, 2, Flags{}},
		{"and", []string{"set-byte a 0xf0", "and-byte a 0x0f"}, 0, Flags{Zero: true}},
		{"or", []string{"set-byte a 0xf0", "or-byte a 0x0f"}, 0xff, Flags{Sign: true}},
		{"xor", []string{"set-word a 0xff", "xor-word a 0xff"}, 0, Flags{Zero: true}},
		{"not", []string{"set-word a 0", "not-word a"}, 0xffff_ffff_ffff_ffff, Flags{Sign: true}},
		{"not-narrow", []string{"set-word a 0xff00", "not-byte a"}, 0xff, Flags{Sign: true}},
		{"test", []string{"set-byte a 0xf0", "test-byte a 0x0f"}, 0xf0, Flags{Zero: true}},
		{"compare", []string{"set-byte a 3", "compare-byte a 3"}, 3, Flags{Zero: true}},
		{"compare-less", []string{"set-byte a 2", "compare-byte a 3"}, 2, Flags{Overflow: true, Sign: true}},
		{"narrow-add", []string{"set-word a 0x1ff", "add-byte a 1"}, 0, Flags{Zero: true, Overflow: true}},
		{"register", []string{"set-byte b 5", "set-byte a 7", "add-byte a b"}, 12, Flags{}},
		// Subtraction undoes addition at every width.
		{"add-sub-byte", []string{"set-byte a 200", "set-byte b 100", "add-byte a b", "sub-byte a b"}, 200, Flags{Overflow: true, Sign: true}},
		{"add-sub-byte-zero", []string{"set-byte b 100", "add-byte a b", "sub-byte a b"}, 0, Flags{Zero: true}},
		{"add-sub-quarter", []string{"set-quarter a 0x9000", "set-quarter b 0x8000", "add-quarter a b", "sub-quarter a b"}, 0x9000, Flags{Overflow: true, Sign: true}},
		{"add-sub-quarter-zero", []string{"set-quarter b 0xffff", "add-quarter a b", "sub-quarter a b"}, 0, Flags{Zero: true}},
		{"add-sub-half", []string{"set-half a 5", "set-half b 0xfffffffe", "add-half a b", "sub-half a b"}, 5, Flags{Overflow: true}},
		{"add-sub-half-zero", []string{"set-half b 0x80000000", "add-half a b", "sub-half a b"}, 0, Flags{Zero: true}},
		{"add-sub-word", []string{"set-word a 0x10", "set-word b 0x8000000000000000", "add-word a b", "sub-word a b"}, 0x10, Flags{}},
		{"add-sub-word-zero", []string{"set-word b 0xffffffffffffffff", "add-word a b", "sub-word a b"}, 0, Flags{Zero: true}},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			cpu := NewCpu(64)
			err := execute(cpu, entry.lines...)
			assert.NoError(err)
			assert.Equal(entry.a, cpu.Register[REG_A])
			assert.Equal(entry.flags, cpu.Flags)
			assert.Equal(uint64(len(entry.lines)), cpu.Pc)
			assert.Equal(uint64(len(entry.lines)), cpu.Executed)
		})
	}
}

func TestCpuDivideByZero(t *testing.T) {
	for _, op := range []string{"div", "rem"} {
		t.Run(op, func(t *testing.T) {
			assert := assert.New(t)

			cpu := NewCpu(64)
			assert.NoError(execute(cpu, "set-byte a 9", "set-byte b 1", "compare-byte b 1"))
			regs := cpu.Register
			flags := cpu.Flags

			err := execute(cpu, op+"-byte a 0")
			assert.ErrorIs(err, ErrDivideByZero)
			assert.ErrorIs(err, ErrInstruction{})
			assert.Equal(regs, cpu.Register)
			assert.Equal(flags, cpu.Flags)
			assert.Equal(uint64(3), cpu.Pc)
			assert.False(cpu.Running)

			// A stopped CPU refuses further work.
			err = execute(cpu, "set-byte a 1")
			assert.ErrorIs(err, ErrStopped)
			assert.Equal(uint64(9), cpu.Register[REG_A])
		})
	}
}

func TestCpuSetIndirect(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	err := execute(cpu,
		"set-word c 0x1234",
		"set-word a 7",
		"set-indirect-quarter a c",
	)
	assert.NoError(err)
	assert.Equal(uint64(0x1234), cpu.Register[REG_H])

	err = execute(cpu,
		"set-word a 1",
		"set-indirect-byte a c",
	)
	assert.NoError(err)
	assert.Equal(uint64(0x34), cpu.Register[REG_B])

	regs := cpu.Register
	err = execute(cpu,
		"set-word a 8",
		"set-indirect-byte a c",
	)
	assert.ErrorIs(err, ErrInvalidRegisterCast(8))
	regs[REG_A] = 8
	assert.Equal(regs, cpu.Register)
	assert.False(cpu.Running)
}

func TestCpuStack(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	err := execute(cpu,
		"set-word a 0x1122334455667788",
		"push-word a",
		"push-byte a",
		"set-word a 0",
		"pop-byte b",
		"pop-word c",
	)
	assert.NoError(err)
	assert.Equal(uint64(0x88), cpu.Register[REG_B])
	assert.Equal(uint64(0x1122334455667788), cpu.Register[REG_C])
	assert.Equal(uint64(0), cpu.Register[REG_SP])

	err = execute(cpu, "pop-byte a")
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(uint64(0), cpu.Register[REG_SP])
	assert.False(cpu.Running)
}

func TestCpuStackFull(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(8)
	assert.NoError(execute(cpu, "push-half a", "push-quarter a"))
	assert.Equal(uint64(6), cpu.Register[REG_SP])

	err := execute(cpu, "push-half a")
	assert.ErrorIs(err, ErrStackFull)
	assert.Equal(uint64(6), cpu.Register[REG_SP])
}

func TestCpuJump(t *testing.T) {
	table := [](struct {
		name  string
		setup []string
		jump  string
		pc    uint64
	}){
		{"always", nil, "jump 10", 10},
		{"register", []string{"set-word g 33"}, "jump g", 33},
		{"zero", []string{"compare-byte a 0"}, "jump-zero 10", 10},
		{"zero-not-taken", []string{"compare-byte a 1"}, "jump-zero 10", 2},
		{"not-zero", []string{"compare-byte a 1"}, "jump-not-zero 10", 10},
		{"overflow", []string{"sub-byte a 1"}, "jump-overflow 10", 10},
		{"not-overflow", []string{"sub-byte a 1"}, "jump-not-overflow 10", 2},
		{"sign", []string{"sub-byte a 1"}, "jump-sign 10", 10},
		{"not-sign", []string{"add-byte a 1"}, "jump-not-sign 10", 10},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			cpu := NewCpu(64)
			setup := entry.setup
			if len(setup) == 0 {
				setup = []string{"set-byte b 0"}
			}
			assert.NoError(execute(cpu, setup...))
			assert.NoError(execute(cpu, entry.jump))
			assert.Equal(entry.pc, cpu.Pc)
			assert.Equal(uint64(2), cpu.Executed)
		})
	}
}

func TestCpuCallReturn(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(64)
	cpu.Pc = 5
	sp := cpu.Register[REG_SP]

	assert.NoError(execute(cpu, "call 20"))
	assert.Equal(uint64(20), cpu.Pc)
	assert.Equal(sp+8, cpu.Register[REG_SP])

	assert.NoError(execute(cpu, "return"))
	assert.Equal(uint64(6), cpu.Pc)
	assert.Equal(sp, cpu.Register[REG_SP])

	err := execute(cpu, "return")
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(uint64(6), cpu.Pc)

	// Call with a full stack leaves the program counter.
	cpu = NewCpu(4)
	err = execute(cpu, "call 20")
	assert.ErrorIs(err, ErrStackFull)
	assert.Equal(uint64(0), cpu.Pc)
}

func TestCpuStop(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	cpu := NewCpu(64)
	cpu.Output = out
	cpu.PrintExecuted = true

	assert.NoError(execute(cpu, "set-byte a 1", "set-byte a 2", "stop"))
	assert.False(cpu.Running)
	assert.Equal(uint64(2), cpu.Pc)
	assert.Equal(uint64(2), cpu.Executed)
	assert.Equal("Instructions Executed: 2\n", out.String())

	// Stop is reported once.
	assert.NoError(cpu.Stop())
	assert.Equal("Instructions Executed: 2\n", out.String())

	cpu.Reset()
	assert.True(cpu.Running)
	assert.Equal(uint64(0), cpu.Pc)
	assert.Equal(uint64(0), cpu.Executed)
	assert.Equal(Registers{}, cpu.Register)
}

func TestCpuPrint(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	cpu := NewCpu(16)
	cpu.Output = out

	err := execute(cpu,
		"set-byte a 200",
		"print-register a",
		"set-word b 0",
		"not-word b",
		"print-register b",
		"set-quarter c 0xbeef",
		"push-quarter c",
		"push-byte a",
		"print-stack 2",
		"print-stack 64",
		"print-register sp",
	)
	assert.NoError(err)

	lines := strings.Split(out.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal("a: 200 (0xc8, signed 200)", lines[0])
	assert.True(strings.HasSuffix(lines[1], "(0xffffffffffffffff, signed -1)"), lines[1])
	assert.Equal("stack 3/16: be c8", lines[2])
	assert.Equal("stack 3/16: ef be c8", lines[3])
	assert.Equal("sp: 3 (0x3, signed 3)", lines[4])
	assert.Equal("", lines[5])
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestCpuPrintFailure(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(16)
	cpu.Output = failWriter{}

	err := execute(cpu, "print-register a")
	var eio *ErrIO
	assert.ErrorAs(err, &eio)
	assert.ErrorIs(err, errWrite)
	assert.False(cpu.Running)
}
