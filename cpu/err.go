package cpu

import (
	"errors"

	"github.com/stackmach/ls8/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrAluOperation = errors.New(f("unsupported alu operation"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrByteSyntax      = errors.New(f(".byte syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrImageSize       = errors.New(f("image larger than memory"))
)

// ErrAddressing is a fatal addressing error carrying the offending
// memory address.
type ErrAddressing int

func (ea ErrAddressing) Error() string {
	return f("address 0x%02x out of range", int(ea))
}

func (ea ErrAddressing) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressing)
	return
}

// ErrInstruction is a fatal decode error carrying the unknown opcode
// byte and the PC it was fetched from.
type ErrInstruction struct {
	Opcode Opcode
	PC     byte
}

func (ei ErrInstruction) Error() string {
	return f("unknown instruction 0x%02x at pc 0x%02x", byte(ei.Opcode), ei.PC)
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrRegister is a fatal decode error carrying an operand byte that is
// not a valid register index.
type ErrRegister byte

func (er ErrRegister) Error() string {
	return f("operand 0x%02x is not a register", byte(er))
}

func (er ErrRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrRegister)
	return
}

// ErrDivideByZero is a fatal arithmetic error carrying the ALU
// operation and operand registers.
type ErrDivideByZero struct {
	Op   AluOp
	RegA int
	RegB int
}

func (ed ErrDivideByZero) Error() string {
	return f("%v r%d r%d: divide by zero", ed.Op, ed.RegA, ed.RegB)
}

func (ed ErrDivideByZero) Is(err error) (ok bool) {
	_, ok = err.(ErrDivideByZero)
	return
}

// ErrSyntax locates an assembler error on its source line.
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

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
