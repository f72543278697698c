package asm374

// Args holds the fields of one instruction format.
//
// Each format has its own Args type carrying only the fields that format
// encodes: RArgs, IArgs, BArgs, JArgs and MArgs.
type Args interface {
	// Format returns the encoding format of the arguments.
	Format() Format

	operands() operands
}

// RArgs are the fields of a FORMAT_R instruction.
type RArgs struct {
	Ra, Rb, Rc Reg
}

// IArgs are the fields of a FORMAT_I instruction.
type IArgs struct {
	Ra, Rb Reg
	C      Imm18
}

// BArgs are the fields of a FORMAT_B instruction.
type BArgs struct {
	Ra   Reg
	Cond Cond
	C    Imm18
}

// JArgs are the fields of a FORMAT_J instruction.
type JArgs struct {
	Ra Reg
}

// MArgs are the (absent) fields of a FORMAT_M instruction.
type MArgs struct{}

func (RArgs) Format() Format { return FORMAT_R }
func (IArgs) Format() Format { return FORMAT_I }
func (BArgs) Format() Format { return FORMAT_B }
func (JArgs) Format() Format { return FORMAT_J }
func (MArgs) Format() Format { return FORMAT_M }

// Inst is a decoded instruction.
//
// Args is nil for an undefined opcode.
type Inst struct {
	Op   Opcode
	Args Args
}

// operands is the flat view of every instruction field, used where a field
// is addressed by Arg or Slot rather than by format.
type operands struct {
	ra, rb, rc Reg
	cond       Cond
	c          Imm18
}

func (a RArgs) operands() operands { return operands{ra: a.Ra, rb: a.Rb, rc: a.Rc} }
func (a IArgs) operands() operands { return operands{ra: a.Ra, rb: a.Rb, c: a.C} }
func (a BArgs) operands() operands { return operands{ra: a.Ra, cond: a.Cond, c: a.C} }
func (a JArgs) operands() operands { return operands{ra: a.Ra} }
func (a MArgs) operands() operands { return operands{} }

// operandsOf flattens args; nil args have all fields zero.
func operandsOf(args Args) operands {
	if args == nil {
		return operands{}
	}
	return args.operands()
}

// args builds the Args of a format, keeping only the fields it encodes.
func (ops operands) args(format Format) Args {
	switch format {
	case FORMAT_R:
		return RArgs{Ra: ops.ra, Rb: ops.rb, Rc: ops.rc}
	case FORMAT_I:
		return IArgs{Ra: ops.ra, Rb: ops.rb, C: ops.c}
	case FORMAT_B:
		return BArgs{Ra: ops.ra, Cond: ops.cond, C: ops.c}
	case FORMAT_J:
		return JArgs{Ra: ops.ra}
	case FORMAT_M:
		return MArgs{}
	}
	return nil
}

// get returns the value of an encoded field slot.
func (ops operands) get(slot Slot) uint32 {
	switch slot {
	case SLOT_RA:
		return uint32(ops.ra)
	case SLOT_RB:
		return uint32(ops.rb)
	case SLOT_RC:
		return uint32(ops.rc)
	case SLOT_COND:
		return uint32(ops.cond)
	case SLOT_C:
		return uint32(ops.c)
	}
	return 0
}

// set stores the value of an encoded field slot.
func (ops *operands) set(slot Slot, value uint32) {
	switch slot {
	case SLOT_RA:
		ops.ra = Reg(value)
	case SLOT_RB:
		ops.rb = Reg(value)
	case SLOT_RC:
		ops.rc = Reg(value)
	case SLOT_COND:
		ops.cond = Cond(value)
	case SLOT_C:
		ops.c = Imm18(value)
	}
}

// String returns the canonical assembly form of the instruction.
func (inst Inst) String() string {
	return FormatInst(inst)
}
