package asm374

import (
	"errors"

	"github.com/ezrec/asm374/translate"
)

var f = translate.From

// Error is an asm374 error code. The numbering is stable, and is shared with
// host adapters that can only pass integers around.
type Error int

//go:generate go tool stringer -type=Error
const (
	// Argument syntax
	ErrArgEmpty   = Error(1)
	ErrArgLong    = Error(2)
	ErrArgInvalid = Error(3)

	// Numerals
	ErrImmDigit = Error(4)
	ErrImmRange = Error(5)

	// Name resolution
	ErrRegUnknown    = Error(6)
	ErrCondUnknown   = Error(7)
	ErrOpUnknown     = Error(8)
	ErrOpMissingCond = Error(9)
	ErrIndexR0       = Error(10)

	// Arity
	ErrArgsTooMany   = Error(11)
	ErrArgsNotEnough = Error(12)

	// Instruction structure
	ErrInstOp   = Error(13)
	ErrInstReg  = Error(14)
	ErrInstCond = Error(15)

	// Word boundary
	ErrHex = Error(16)

	ErrInstFormat = Error(17)
)

var errorText = map[Error]string{
	ErrArgEmpty:      "empty argument",
	ErrArgLong:       "argument too long",
	ErrArgInvalid:    "invalid argument",
	ErrImmDigit:      "unexpected non-digit in immediate",
	ErrImmRange:      "immediate value out of range",
	ErrRegUnknown:    "unknown register",
	ErrCondUnknown:   "unknown condition code",
	ErrOpUnknown:     "unknown op",
	ErrOpMissingCond: "missing condition code",
	ErrIndexR0:       "register r0 is forbidden as an index",
	ErrArgsTooMany:   "too many arguments",
	ErrArgsNotEnough: "not enough arguments",
	ErrInstOp:        "unknown opcode",
	ErrInstReg:       "invalid register",
	ErrInstCond:      "invalid condition code",
	ErrHex:           "invalid hexadecimal input (expected 8 hex digits)",
	ErrInstFormat:    "arguments do not match the opcode format",
}

func (err Error) Error() string {
	text, ok := errorText[err]
	if !ok {
		return f("unknown error %d", int(err))
	}
	return f(text)
}

// Code returns the Error code carried by err, if any.
func Code(err error) (code Error, ok bool) {
	ok = errors.As(err, &code)
	return
}

// ErrOp reports an error after the mnemonic was recognized as Op.
type ErrOp struct {
	Op  Opcode
	Err error
}

func (err *ErrOp) Error() string {
	return f("op %v: %v", err.Op, err.Err)
}

func (err *ErrOp) Unwrap() error {
	return err.Err
}

// ErrOperand locates an error in the Index'th (from 0) argument of an instruction.
type ErrOperand struct {
	Index int
	Text  string
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("argument %d '%v' %v", err.Index+1, err.Text, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}
