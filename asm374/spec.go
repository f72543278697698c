package asm374

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/asm374/internal"
)

// Format is an instruction encoding format.
type Format byte

const (
	FORMAT_NONE = Format(0)
	FORMAT_R    = Format('R') // opcode|Ra|Rb|Rc
	FORMAT_I    = Format('I') // opcode|Ra|Rb|C
	FORMAT_B    = Format('B') // opcode|Ra|C2|C
	FORMAT_J    = Format('J') // opcode|Ra
	FORMAT_M    = Format('M') // opcode
)

func (format Format) String() string {
	if format == FORMAT_NONE {
		return "?"
	}
	return string(rune(format))
}

// Arg is the syntax of one instruction argument.
type Arg int

//go:generate go tool stringer -linecomment -type=Arg
const (
	ARG_NONE = Arg(0) // -
	ARG_RA   = Arg(1) // ra
	ARG_RB   = Arg(2) // rb
	ARG_RC   = Arg(3) // rc
	ARG_C    = Arg(4) // c
	ARG_RBC  = Arg(5) // c(rb)
)

// Opcode is the 5-bit operation selector.
type Opcode uint8

const (
	OP_LD   = Opcode(0)
	OP_LDI  = Opcode(1)
	OP_ST   = Opcode(2)
	OP_ADD  = Opcode(3)
	OP_SUB  = Opcode(4)
	OP_AND  = Opcode(5)
	OP_OR   = Opcode(6)
	OP_SHR  = Opcode(7)
	OP_SHRA = Opcode(8)
	OP_SHL  = Opcode(9)
	OP_ROR  = Opcode(10)
	OP_ROL  = Opcode(11)
	OP_ADDI = Opcode(12)
	OP_ANDI = Opcode(13)
	OP_ORI  = Opcode(14)
	OP_MUL  = Opcode(15)
	OP_DIV  = Opcode(16)
	OP_NEG  = Opcode(17)
	OP_NOT  = Opcode(18)
	OP_BR   = Opcode(19)
	OP_JR   = Opcode(20)
	OP_JAL  = Opcode(21)
	OP_IN   = Opcode(22)
	OP_OUT  = Opcode(23)
	OP_MFHI = Opcode(24)
	OP_MFLO = Opcode(25)
	OP_NOP  = Opcode(26)
	OP_HALT = Opcode(27)
)

// OPCODE_COUNT is the size of the opcode space.
const OPCODE_COUNT = 1 << 5

// Spec describes the syntax and encoding of an opcode.
type Spec struct {
	Format   Format // Encoding format; FORMAT_NONE for an undefined opcode.
	Mnemonic string // Assembly mnemonic.
	Cond     bool   // If set, the mnemonic takes a condition code suffix.
	args     [3]Arg
}

// specs is the instruction table. Everything else dispatches through it.
var specs = [OPCODE_COUNT]Spec{
	OP_LD:   {FORMAT_I, "ld", false, [3]Arg{ARG_RA, ARG_RBC}},
	OP_LDI:  {FORMAT_I, "ldi", false, [3]Arg{ARG_RA, ARG_RBC}},
	OP_ST:   {FORMAT_I, "st", false, [3]Arg{ARG_RBC, ARG_RA}},
	OP_ADD:  {FORMAT_R, "add", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_SUB:  {FORMAT_R, "sub", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_AND:  {FORMAT_R, "and", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_OR:   {FORMAT_R, "or", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_SHR:  {FORMAT_R, "shr", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_SHRA: {FORMAT_R, "shra", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_SHL:  {FORMAT_R, "shl", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_ROR:  {FORMAT_R, "ror", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_ROL:  {FORMAT_R, "rol", false, [3]Arg{ARG_RA, ARG_RB, ARG_RC}},
	OP_ADDI: {FORMAT_I, "addi", false, [3]Arg{ARG_RA, ARG_RB, ARG_C}},
	OP_ANDI: {FORMAT_I, "andi", false, [3]Arg{ARG_RA, ARG_RB, ARG_C}},
	OP_ORI:  {FORMAT_I, "ori", false, [3]Arg{ARG_RA, ARG_RB, ARG_C}},
	OP_MUL:  {FORMAT_I, "mul", false, [3]Arg{ARG_RA, ARG_RB}},
	OP_DIV:  {FORMAT_I, "div", false, [3]Arg{ARG_RA, ARG_RB}},
	OP_NEG:  {FORMAT_I, "neg", false, [3]Arg{ARG_RA, ARG_RB}},
	OP_NOT:  {FORMAT_I, "not", false, [3]Arg{ARG_RA, ARG_RB}},
	OP_BR:   {FORMAT_B, "br", true, [3]Arg{ARG_RA, ARG_C}},
	OP_JR:   {FORMAT_J, "jr", false, [3]Arg{ARG_RA}},
	OP_JAL:  {FORMAT_J, "jal", false, [3]Arg{ARG_RA}},
	OP_IN:   {FORMAT_J, "in", false, [3]Arg{ARG_RA}},
	OP_OUT:  {FORMAT_J, "out", false, [3]Arg{ARG_RA}},
	OP_MFHI: {FORMAT_J, "mfhi", false, [3]Arg{ARG_RA}},
	OP_MFLO: {FORMAT_J, "mflo", false, [3]Arg{ARG_RA}},
	OP_NOP:  {FORMAT_M, "nop", false, [3]Arg{}},
	OP_HALT: {FORMAT_M, "halt", false, [3]Arg{}},
}

// Lookup returns the specification of op, if op is defined.
func Lookup(op Opcode) (spec Spec, ok bool) {
	if op >= OPCODE_COUNT {
		return
	}
	spec = specs[op]
	ok = spec.Format != FORMAT_NONE
	return
}

// Specs iterates over the defined opcodes in ascending order.
func Specs() iter.Seq2[Opcode, Spec] {
	return func(yield func(Opcode, Spec) bool) {
		for op := range Opcode(OPCODE_COUNT) {
			spec, ok := Lookup(op)
			if !ok {
				continue
			}
			if !yield(op, spec) {
				return
			}
		}
	}
}

// Mnemonics iterates over every accepted mnemonic, with condition suffixes
// expanded, in ascending opcode order.
func Mnemonics() iter.Seq2[Opcode, string] {
	var seqs []iter.Seq2[Opcode, string]
	for op, spec := range Specs() {
		seqs = append(seqs, spec.mnemonics(op))
	}
	return internal.Concat2(seqs...)
}

func (spec Spec) mnemonics(op Opcode) iter.Seq2[Opcode, string] {
	return func(yield func(Opcode, string) bool) {
		if !spec.Cond {
			yield(op, spec.Mnemonic)
			return
		}
		for cond := range Cond(COND_COUNT) {
			if !yield(op, spec.Mnemonic+cond.String()) {
				return
			}
		}
	}
}

// Args returns the argument syntax, in assembly order.
func (spec Spec) Args() (args []Arg) {
	for _, arg := range spec.args {
		if arg == ARG_NONE {
			break
		}
		args = append(args, arg)
	}
	return
}

// Syntax describes the assembly form of the instruction, such as "br<cond> ra, c".
func (spec Spec) Syntax() string {
	var sb strings.Builder
	sb.WriteString(spec.Mnemonic)
	if spec.Cond {
		sb.WriteString("<cond>")
	}
	for n, arg := range spec.Args() {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	return sb.String()
}

// match compares a mnemonic against the spec, returning the parsed condition
// code suffix. A condition bearing mnemonic without its suffix is an error.
func (spec Spec) match(mnemonic string) (cond Cond, ok bool, err error) {
	if !spec.Cond {
		ok = internal.EqualFold(mnemonic, spec.Mnemonic)
		return
	}

	for cond = range COND_COUNT {
		if internal.EqualFold(mnemonic, spec.Mnemonic+cond.String()) {
			ok = true
			return
		}
	}

	if internal.EqualFold(mnemonic, spec.Mnemonic) {
		err = ErrOpMissingCond
	}
	return 0, false, err
}

// Valid is true if op has a specification.
func (op Opcode) Valid() bool {
	_, ok := Lookup(op)
	return ok
}

// Spec returns the specification of op.
func (op Opcode) Spec() (Spec, bool) {
	return Lookup(op)
}

func (op Opcode) String() string {
	if spec, ok := Lookup(op); ok {
		return spec.Mnemonic
	}
	return op.GoString()
}

func (op Opcode) GoString() string {
	return "Opcode(" + strconv.FormatUint(uint64(op), 10) + ")"
}

// Slot identifies an encoded instruction field.
type Slot int

//go:generate go tool stringer -linecomment -type=Slot
const (
	SLOT_UNUSED = Slot(0) // Unk
	SLOT_OP     = Slot(1) // Op
	SLOT_RA     = Slot(2) // Ra
	SLOT_RB     = Slot(3) // Rb
	SLOT_RC     = Slot(4) // Rc
	SLOT_COND   = Slot(5) // C2
	SLOT_C      = Slot(6) // C
)

// Field is a bit range of an encoded instruction.
type Field struct {
	Slot  Slot
	Shift uint // Position of the least significant bit.
	Width uint // Number of bits.
}

// Mask returns the unshifted field mask.
func (field Field) Mask() uint32 {
	return 1<<field.Width - 1
}

// Get extracts the field from word.
func (field Field) Get(word Word) uint32 {
	return (uint32(word) >> field.Shift) & field.Mask()
}

// Put returns the field value positioned for a word.
func (field Field) Put(value uint32) Word {
	return Word((value & field.Mask()) << field.Shift)
}

var fieldOp = Field{SLOT_OP, 27, 5}

// layouts lists the fields of each format, most significant first. Together
// the fields of a layout cover all 32 bits exactly once.
var layouts = map[Format][]Field{
	FORMAT_NONE: {fieldOp, {SLOT_UNUSED, 0, 27}},
	FORMAT_R:    {fieldOp, {SLOT_RA, 23, 4}, {SLOT_RB, 19, 4}, {SLOT_RC, 15, 4}, {SLOT_UNUSED, 0, 15}},
	FORMAT_I:    {fieldOp, {SLOT_RA, 23, 4}, {SLOT_RB, 19, 4}, {SLOT_UNUSED, 18, 1}, {SLOT_C, 0, 18}},
	FORMAT_B:    {fieldOp, {SLOT_RA, 23, 4}, {SLOT_COND, 19, 4}, {SLOT_UNUSED, 18, 1}, {SLOT_C, 0, 18}},
	FORMAT_J:    {fieldOp, {SLOT_RA, 23, 4}, {SLOT_UNUSED, 0, 23}},
	FORMAT_M:    {fieldOp, {SLOT_UNUSED, 0, 27}},
}

func (format Format) layout() []Field {
	layout, ok := layouts[format]
	if !ok {
		return layouts[FORMAT_NONE]
	}
	return layout
}

// Layout returns the fields of the format, most significant first.
func (format Format) Layout() []Field {
	return slices.Clone(format.layout())
}
