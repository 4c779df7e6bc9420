package cpu

import (
	"iter"
	"strings"
)

// Line is one instruction line of a program, with its source location.
type Line struct {
	LineNo int
	Words  []string
}

func (line Line) String() string {
	return strings.Join(line.Words, " ")
}

// Decode decodes the instruction on the line.
func (line Line) Decode() (ins Instruction, err error) {
	if len(line.Words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	return DecodeWords(line.Words[0], line.Words[1:])
}

// Program is an assembled program: one line per program counter value.
type Program struct {
	Lines  []Line
	Labels map[string]int // Label to program counter.
}

// Fetch returns the line at the program counter.
func (prog *Program) Fetch(pc uint64) (line Line, ok bool) {
	if pc >= uint64(len(prog.Lines)) {
		return
	}

	return prog.Lines[pc], true
}

// LineNo returns the source line number at the program counter, or 0.
func (prog *Program) LineNo(pc uint64) int {
	line, _ := prog.Fetch(pc)
	return line.LineNo
}

// Validate decodes every line, returning the first failure.
func (prog *Program) Validate() (err error) {
	for _, line := range prog.Lines {
		_, err = line.Decode()
		if err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.String(), Err: err}
			return
		}
	}

	return
}

// Instructions iterates over the program lines by program counter.
func (prog *Program) Instructions() iter.Seq2[uint64, Line] {
	return func(yield func(pc uint64, line Line) bool) {
		for n, line := range prog.Lines {
			if !yield(uint64(n), line) {
				return
			}
		}
	}
}
