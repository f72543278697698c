package asm374

import (
	"strconv"

	"github.com/ezrec/asm374/internal"
)

// Cond is a branch condition code.
type Cond uint8

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ZR = Cond(0) // zr
	COND_NZ = Cond(1) // nz
	COND_PL = Cond(2) // pl
	COND_MI = Cond(3) // mi
)

// COND_COUNT is the number of condition codes. The encoded field is 4 bits
// wide, so a decoded Cond may still be out of range.
const COND_COUNT = 4

// Valid is true if cond is a defined condition code.
func (cond Cond) Valid() bool {
	return cond < COND_COUNT
}

// Name returns the assembly name of the condition code, or "?".
func (cond Cond) Name() string {
	if !cond.Valid() {
		return "?"
	}
	return cond.String()
}

func (cond Cond) GoString() string {
	return "Cond(" + strconv.FormatUint(uint64(cond), 10) + ")"
}

// ParseCond parses a condition code name, ignoring case.
func ParseCond(s string) (cond Cond, err error) {
	if len(s) == 0 {
		err = ErrArgEmpty
		return
	}

	for cond = range COND_COUNT {
		if internal.EqualFold(cond.String(), s) {
			return
		}
	}

	return 0, ErrCondUnknown
}
