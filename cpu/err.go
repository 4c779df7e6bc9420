package cpu

import (
	"errors"

	"github.com/ezrec/vproc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStopped      = errors.New(f("cpu stopped"))
	ErrStackEmpty   = errors.New(f("stack underflow"))
	ErrStackFull    = errors.New(f("stack overflow"))
	ErrDivideByZero = errors.New(f("divide by zero"))
	ErrWidthInvalid = errors.New(f("width invalid"))
	ErrOpcodeOp     = errors.New(f("op"))

	// Instruction decode errors
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelInvalid    = errors.New(f("label invalid"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
)

type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(err))
}

type ErrInvalidRegister string

func (err ErrInvalidRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrInvalidRegisterCast is a runtime value that names no legal register.
type ErrInvalidRegisterCast uint64

func (err ErrInvalidRegisterCast) Error() string {
	return f("value %#x is not a register", uint64(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrParseOperand is an operand that is neither a register nor a number
// at the instruction width.
type ErrParseOperand struct {
	Word  string
	Width Width
}

func (err *ErrParseOperand) Error() string {
	return f("'%v' is not a register or %v value", err.Word, err.Width)
}

// ErrShape is an instruction with the wrong number of operands.
type ErrShape struct {
	Opcode string
	Shape  string
	Err    error
}

func (err *ErrShape) Error() string {
	if len(err.Shape) == 0 {
		return f("%v %v, expects no operands", err.Opcode, err.Err)
	}
	return f("%v %v, expects '%v'", err.Opcode, err.Err, err.Shape)
}

func (err *ErrShape) Unwrap() error {
	return err.Err
}

// ErrInstruction tags an execute error with the failing instruction.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrIO is a failure writing to the output.
type ErrIO struct {
	Err error
}

func (err *ErrIO) Error() string {
	return f("io: %v", err.Err)
}

func (err *ErrIO) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
