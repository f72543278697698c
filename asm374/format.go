package asm374

import (
	"strings"
)

// FormatInst renders the canonical assembly form of inst. The result is
// never empty: an undefined opcode renders as "?".
func FormatInst(inst Inst) string {
	spec, ok := Lookup(inst.Op)
	if !ok {
		return "?"
	}

	ops := operandsOf(inst.Args)

	var sb strings.Builder
	sb.WriteString(spec.Mnemonic)
	if spec.Cond {
		sb.WriteString(ops.cond.Name())
	}
	for n, arg := range spec.Args() {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(ops.format(arg))
	}

	return sb.String()
}

// format renders a single argument.
func (ops operands) format(arg Arg) string {
	switch arg {
	case ARG_RA:
		return ops.ra.Name()
	case ARG_RB:
		return ops.rb.Name()
	case ARG_RC:
		return ops.rc.Name()
	case ARG_C:
		return ops.c.String()
	case ARG_RBC:
		return FormatIndexed(ops.rb, ops.c)
	}
	return "?"
}
