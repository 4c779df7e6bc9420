package cpu

import (
	"strconv"
	"strings"

	"github.com/ezrec/vproc/translate"
)

// printRegister writes the full register value to the output.
func (cpu *Cpu) printRegister(reg Register) (err error) {
	value := cpu.Register[reg]
	_, err = translate.Fprintf(cpu.Output, "%v: %v (%#x, signed %v)\n",
		reg.String(),
		strconv.FormatUint(value, 10),
		value,
		strconv.FormatInt(Signed(value, WIDTH_WORD), 10))
	if err != nil {
		err = &ErrIO{Err: err}
	}
	return
}

// printStack writes up to count bytes below the stack pointer to the output.
func (cpu *Cpu) printStack(count uint64) (err error) {
	sp := cpu.Register[REG_SP]

	var text strings.Builder
	text.WriteString(translate.From("stack %v/%v:",
		strconv.FormatUint(sp, 10),
		strconv.FormatUint(cpu.Stack.Capacity(), 10)))
	for _, b := range cpu.Stack.Top(sp, count) {
		text.WriteString(translate.From(" %02x", b))
	}
	text.WriteString("\n")

	_, err = translate.Fprintf(cpu.Output, "%v", text.String())
	if err != nil {
		err = &ErrIO{Err: err}
	}
	return
}

// printExecuted writes the instruction count to the output.
func (cpu *Cpu) printExecuted() (err error) {
	_, err = translate.Fprintf(cpu.Output, "Instructions Executed: %v\n",
		strconv.FormatUint(cpu.Executed, 10))
	if err != nil {
		err = &ErrIO{Err: err}
	}
	return
}
