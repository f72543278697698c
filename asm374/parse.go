package asm374

import (
	"github.com/ezrec/asm374/internal"
)

// MAX_LINE_LEN limits the length of an assembly line.
const MAX_LINE_LEN = 4095

// Parse parses a single instruction in assembly syntax.
//
// The mnemonic is separated from the comma separated arguments by a space or
// tab. Opcodes are tried in ascending order, and the first with a matching
// mnemonic decides the instruction; its arguments are then parsed without
// trying any other opcode. On success the instruction always passes Validate.
func Parse(s string) (inst Inst, err error) {
	if len(s) > MAX_LINE_LEN {
		err = ErrArgLong
		return
	}

	s = internal.Trim(s)
	if len(s) == 0 {
		err = ErrArgEmpty
		return
	}

	mnemonic, args, _ := internal.Cut(s, " \t")
	args = internal.Trim(args)

	for op, spec := range Specs() {
		var cond Cond
		var ok bool
		cond, ok, err = spec.match(mnemonic)
		if err != nil {
			err = &ErrOp{Op: op, Err: err}
			return
		}
		if !ok {
			continue
		}

		ops := operands{cond: cond}
		err = ops.parse(spec, args)
		if err != nil {
			err = &ErrOp{Op: op, Err: err}
			return
		}

		inst = Inst{Op: op, Args: ops.args(spec.Format)}
		return
	}

	err = ErrOpUnknown
	return
}

// parse consumes the comma separated arguments of spec.
func (ops *operands) parse(spec Spec, args string) (err error) {
	rest := args
	for n, arg := range spec.Args() {
		var text string
		text, rest, _ = internal.Cut(rest, ",")
		text = internal.Trim(text)
		rest = internal.Trim(rest)

		if len(text) == 0 {
			return ErrArgsNotEnough
		}

		err = ops.parseArg(arg, text)
		if err != nil {
			return &ErrOperand{Index: n, Text: text, Err: err}
		}
	}

	if len(rest) != 0 {
		return ErrArgsTooMany
	}

	return
}

// parseArg parses a single argument into its field(s).
func (ops *operands) parseArg(arg Arg, text string) (err error) {
	switch arg {
	case ARG_RA:
		ops.ra, err = ParseReg(text)
	case ARG_RB:
		ops.rb, err = ParseReg(text)
	case ARG_RC:
		ops.rc, err = ParseReg(text)
	case ARG_C:
		ops.c, err = ParseImm18(text)
	case ARG_RBC:
		ops.rb, ops.c, err = ParseIndexed(text)
	default:
		err = ErrArgInvalid
	}
	return
}
