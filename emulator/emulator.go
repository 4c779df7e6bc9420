// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the virtual processor over an assembled program.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/vproc/cpu"
	"github.com/ezrec/vproc/internal"
)

const (
	MAX_STACK_SIZE = 1 << 30 // Largest configurable stack, in bytes.
)

var _emulator_defines = map[string]string{
	"MAX_STACK_SIZE": fmt.Sprintf("%v", MAX_STACK_SIZE),
}

// Emulator state: the CPU and the program it runs.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator with a stack of stackSize bytes.
func NewEmulator(stackSize int) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(stackSize),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Sorted2(internal.Concat2(
		maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	))
}

// Predefine sets every emulator define as an assembler equate, so that
// programs see the machine they will run on.
func (emu *Emulator) Predefine(asm *cpu.Assembler) {
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
}

// Reset the emulator to the start of the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emulator: %d lines", len(emu.Program.Lines))
	}
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint64 {
	return emu.Cpu.Pc
}

// Line returns the next line to execute.
func (emu *Emulator) Line() (line cpu.Line, ok bool) {
	return emu.Program.Fetch(emu.Cpu.Pc)
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single fetch, decode and execute.
//
// Running past the last line is an implicit stop. done is set once the
// CPU has stopped; any error stops the CPU.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	line, ok := emu.Line()
	if !ok {
		err = emu.Cpu.Stop()
		if err != nil {
			err = &ErrRuntime{LineNo: 0, Err: err}
		}
		done = true
		return
	}

	ins, err := line.Decode()
	if err != nil {
		emu.Cpu.Halt()
		err = &cpu.ErrSyntax{LineNo: line.LineNo, Line: line.String(), Err: err}
		return
	}

	err = emu.Cpu.Execute(ins)
	if err != nil {
		err = &ErrRuntime{LineNo: line.LineNo, Err: err}
		return
	}

	done = !emu.Cpu.Running
	return
}

// Run ticks until the CPU stops, or the first error.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
