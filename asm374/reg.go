package asm374

import (
	"strconv"

	"github.com/ezrec/asm374/internal"
)

// Reg is a general purpose register index.
type Reg uint8

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_R0  = Reg(0)  // r0
	REG_R1  = Reg(1)  // r1
	REG_R2  = Reg(2)  // r2
	REG_R3  = Reg(3)  // r3
	REG_R4  = Reg(4)  // r4
	REG_R5  = Reg(5)  // r5
	REG_R6  = Reg(6)  // r6
	REG_R7  = Reg(7)  // r7
	REG_R8  = Reg(8)  // r8
	REG_R9  = Reg(9)  // r9
	REG_R10 = Reg(10) // r10
	REG_R11 = Reg(11) // r11
	REG_R12 = Reg(12) // r12
	REG_R13 = Reg(13) // r13
	REG_R14 = Reg(14) // r14
	REG_R15 = Reg(15) // r15
)

// REG_COUNT is the number of registers; every 4-bit register field is a register.
const REG_COUNT = 16

// Valid is true if reg names a register.
func (reg Reg) Valid() bool {
	return reg < REG_COUNT
}

// Name returns the assembly name of the register, or "?".
func (reg Reg) Name() string {
	if !reg.Valid() {
		return "?"
	}
	return reg.String()
}

func (reg Reg) GoString() string {
	return "Reg(" + strconv.FormatUint(uint64(reg), 10) + ")"
}

// ParseReg parses a register name, ignoring case.
func ParseReg(s string) (reg Reg, err error) {
	if len(s) == 0 {
		err = ErrArgEmpty
		return
	}

	for reg = range REG_COUNT {
		if internal.EqualFold(reg.String(), s) {
			return
		}
	}

	return 0, ErrRegUnknown
}
