// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

// Cpu is the virtual processor state.
type Cpu struct {
	Verbose       bool      // Set to enable verbose logging.
	PrintExecuted bool      // Report the instruction count on stop.
	Output        io.Writer // Destination of print-* output.

	Pc       uint64    // Index of the next instruction.
	Register Registers // Register file.
	Flags    Flags     // Condition flags.
	Stack    Stack     // Stack memory; sp is Register[REG_SP].
	Running  bool      // Cleared once, by stop or a failure.
	Executed uint64    // Instructions completed since reset.
}

// NewCpu creates a new CPU with a stack of stackSize bytes.
func NewCpu(stackSize int) (cpu *Cpu) {
	cpu = &Cpu{
		Output:  io.Discard,
		Stack:   NewStack(stackSize),
		Running: true,
	}

	return
}

// Defines for the cpu, sized to its stack.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"STACK_SIZE":     fmt.Sprintf("%v", cpu.Stack.Capacity()),
		"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	})
}

// Reset the CPU state for a new run.
// - Clears the registers, flags and stack.
// - Zeros the instruction counter and program counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Stack.Reset()
	cpu.Flags = Flags{}
	cpu.Pc = 0
	cpu.Executed = 0
	cpu.Running = true
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "flags", cpu.Flags)
	for reg := REG_A; reg < REGISTER_COUNT; reg++ {
		val := cpu.Register[reg]
		text += fmt.Sprintf("% 5s: %08X_%08X\n", reg, val>>32, val&0xffffffff)
	}

	return
}

// Halt stops the CPU without reporting.
func (cpu *Cpu) Halt() {
	cpu.Running = false
}

// Stop stops the CPU, reporting the instruction count if enabled.
func (cpu *Cpu) Stop() (err error) {
	if !cpu.Running {
		return
	}

	cpu.Running = false

	if cpu.PrintExecuted {
		err = cpu.printExecuted()
	}

	return
}

// push pushes a value onto the stack, updating sp.
func (cpu *Cpu) push(width Width, value uint64) (err error) {
	sp, err := cpu.Stack.Push(cpu.Register[REG_SP], width, value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// pop pops a value from the stack, updating sp.
func (cpu *Cpu) pop(width Width) (value uint64, err error) {
	value, sp, err := cpu.Stack.Pop(cpu.Register[REG_SP], width)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// operand resolves an operand at the width.
func (cpu *Cpu) operand(width Width, op Operand) (value uint64) {
	if op.Immediate {
		return op.Value & width.Mask()
	}

	return cpu.Register.Get(op.Register, width)
}

// Execute executes a single decoded instruction.
//
// On success the program counter moves to the next instruction, or to the
// target of a taken jump, call or return. On failure the CPU is stopped.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			cpu.Running = false
			err = errors.Join(ErrInstruction(ins), err)
		}
	}()

	if !cpu.Running {
		err = ErrStopped
		return
	}

	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, ins)
	}

	next_pc := cpu.Pc + 1

	switch ins.Op {
	case OP_STOP:
		next_pc = cpu.Pc
		err = cpu.Stop()
	case OP_SET:
		cpu.Register.Set(ins.Dst, ins.Width, cpu.operand(ins.Width, ins.Src))
	case OP_SET_INDIRECT:
		var dst Register
		dst, err = RegisterFromWord(cpu.Register[ins.Dst])
		if err != nil {
			return
		}
		cpu.Register.Set(dst, ins.Width, cpu.operand(ins.Width, ins.Src))
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_REM,
		OP_AND, OP_OR, OP_XOR, OP_NOT,
		OP_TEST, OP_COMPARE:
		err = cpu.aluWidth(ins)
	case OP_PUSH:
		err = cpu.push(ins.Width, cpu.Register.Get(ins.Dst, ins.Width))
	case OP_POP:
		var value uint64
		value, err = cpu.pop(ins.Width)
		if err != nil {
			return
		}
		cpu.Register.Set(ins.Dst, ins.Width, value)
	case OP_CALL:
		err = cpu.push(WIDTH_WORD, cpu.Pc)
		next_pc = cpu.operand(WIDTH_WORD, ins.Src)
	case OP_RETURN:
		var ret uint64
		ret, err = cpu.pop(WIDTH_WORD)
		next_pc = ret + 1
	case OP_JUMP:
		if cpu.Flags.Check(ins.Cond) {
			next_pc = cpu.operand(WIDTH_WORD, ins.Src)
		}
	case OP_PRINT_REGISTER:
		err = cpu.printRegister(ins.Dst)
	case OP_PRINT_STACK:
		err = cpu.printStack(cpu.operand(WIDTH_WORD, ins.Src))
	default:
		err = ErrOpcodeOp
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc
	if ins.Op != OP_STOP {
		cpu.Executed++
	}

	return
}
