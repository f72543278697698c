package asm374

import (
	"strings"

	"github.com/ezrec/asm374/internal"
)

// ExplainInst describes the encoding of inst on two lines.
//
// The first line lists each field in bit order as binary digits, with the
// bits the format does not use shown as '?':
//
//	Op:10011|Ra:0010|C2:0000|Unk:?|C:000010011100001111
//
// The second line gives the format and the decoded field values:
//
//	B Op=br Ra=r2 C2=zr C=9999
func ExplainInst(inst Inst) string {
	spec, ok := Lookup(inst.Op)
	ops := operandsOf(inst.Args)
	layout := spec.Format.layout()

	var sb strings.Builder

	for n, field := range layout {
		if n > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(field.Slot.String())
		sb.WriteByte(':')
		switch field.Slot {
		case SLOT_UNUSED:
			sb.WriteString(strings.Repeat("?", int(field.Width)))
		case SLOT_OP:
			sb.WriteString(internal.Binary(uint32(inst.Op), field.Width))
		default:
			sb.WriteString(internal.Binary(ops.get(field.Slot), field.Width))
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(spec.Format.String())
	if !ok {
		return sb.String()
	}

	sb.WriteString(" Op=")
	sb.WriteString(spec.Mnemonic)
	for _, field := range layout {
		var value string
		switch field.Slot {
		case SLOT_RA:
			value = ops.ra.Name()
		case SLOT_RB:
			value = ops.rb.Name()
		case SLOT_RC:
			value = ops.rc.Name()
		case SLOT_COND:
			value = ops.cond.Name()
		case SLOT_C:
			value = ops.c.String()
		default:
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(field.Slot.String())
		sb.WriteByte('=')
		sb.WriteString(value)
	}

	return sb.String()
}
