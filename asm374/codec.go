package asm374

import (
	"github.com/ezrec/asm374/internal"
)

// Word is an encoded instruction.
type Word uint32

// ParseWord parses exactly 8 hex digits, most significant first.
func ParseWord(s string) (word Word, err error) {
	value, ok := internal.ParseHex32(s)
	if !ok {
		err = ErrHex
		return
	}
	word = Word(value)
	return
}

// String returns the word as 8 upper case hex digits.
func (word Word) String() string {
	return internal.FormatHex32(uint32(word))
}

// Opcode returns the opcode field of the word.
func (word Word) Opcode() Opcode {
	return Opcode(fieldOp.Get(word))
}

// Decode extracts the fields the opcode's format defines. An undefined opcode
// decodes to an Inst with nil Args.
func Decode(word Word) (inst Inst) {
	inst.Op = word.Opcode()

	spec, ok := Lookup(inst.Op)
	if !ok {
		return
	}

	var ops operands
	for _, field := range spec.Format.layout() {
		ops.set(field.Slot, field.Get(word))
	}
	inst.Args = ops.args(spec.Format)

	return
}

// Encode packs the fields the opcode's format defines. All other bits are
// zero, so Encode(Decode(w)) clears the don't care bits of w.
func Encode(inst Inst) (word Word) {
	word = fieldOp.Put(uint32(inst.Op))

	spec, ok := Lookup(inst.Op)
	if !ok {
		return
	}

	ops := operandsOf(inst.Args)
	for _, field := range spec.Format.layout() {
		switch field.Slot {
		case SLOT_OP, SLOT_UNUSED:
			continue
		}
		word |= field.Put(ops.get(field.Slot))
	}

	return
}

// Validate checks that inst is structurally encodable. It never considers
// what the instruction would do.
func Validate(inst Inst) (err error) {
	spec, ok := Lookup(inst.Op)
	if !ok {
		return ErrInstOp
	}

	if inst.Args != nil && inst.Args.Format() != spec.Format {
		return ErrInstFormat
	}

	ops := operandsOf(inst.Args)
	for _, field := range spec.Format.layout() {
		switch field.Slot {
		case SLOT_RA, SLOT_RB, SLOT_RC:
			if !Reg(ops.get(field.Slot)).Valid() {
				return ErrInstReg
			}
		case SLOT_COND:
			if !ops.cond.Valid() {
				return ErrInstCond
			}
		}
	}

	return
}
