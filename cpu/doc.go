// Package cpu implements the virtual processor and its program loader.
//
// The processor has eight 64-bit general-purpose registers (a-h), a stack
// pointer (sp) into a fixed-size byte stack, and two scratch registers
// (p1, p2). Every arithmetic and logic instruction names one of four
// operand widths (byte, quarter, half, word), wraps at that width, and
// sets the zero, overflow and sign flags.
//
// Instructions are decoded from text one line at a time through a static
// mnemonic table. The assembler resolves labels, equates and macros into
// the Program listing the emulator fetches from.
package cpu
