package asm374

import (
	"strconv"

	"github.com/ezrec/asm374/internal"
)

// Imm18 is an 18-bit two's complement immediate, held as its bit pattern.
type Imm18 uint32

const (
	IMM_BITS = 18
	IMM_MASK = Imm18(1<<IMM_BITS - 1)
	IMM_SIGN = Imm18(1 << (IMM_BITS - 1))

	IMM_MIN = -(1 << (IMM_BITS - 1))
	IMM_MAX = 1<<(IMM_BITS-1) - 1
)

// MakeImm18 truncates value to an 18-bit immediate.
func MakeImm18(value int32) Imm18 {
	return Imm18(uint32(value)) & IMM_MASK
}

// Int32 returns the sign extended value of imm.
func (imm Imm18) Int32() int32 {
	n := imm & IMM_MASK
	if n&IMM_SIGN != 0 {
		return int32(n) - (1 << IMM_BITS)
	}
	return int32(n)
}

// String renders the canonical decimal form; no leading zeros, no '+'.
func (imm Imm18) String() string {
	return strconv.FormatInt(int64(imm.Int32()), 10)
}

func (imm Imm18) GoString() string {
	return "Imm18(" + strconv.FormatUint(uint64(imm), 10) + ")"
}

// ParseImm18 parses an immediate.
//
// A sign (+ or -) may lead. The default base is decimal, but a 0x, 0o or 0b
// prefix selects hex, octal or binary. A leading $ instead parses unsigned
// hex, without sign or prefix.
//
// Signed decimal values must be in [IMM_MIN, IMM_MAX], as must any value with
// an explicit sign. A prefixed value without a sign is taken as a raw 18-bit
// pattern, so it can set the sign bit directly.
func ParseImm18(s string) (imm Imm18, err error) {
	if len(s) == 0 {
		err = ErrArgEmpty
		return
	}

	base := uint32(10)
	var neg, pos bool

	if s[0] == '$' {
		s = s[1:]
		base = 16
	} else {
		switch s[0] {
		case '+':
			s = s[1:]
			pos = true
		case '-':
			s = s[1:]
			neg = true
		}
		if len(s) > 0 && s[0] == '0' {
			s = s[1:]
			if len(s) > 0 {
				switch s[0] {
				case 'x':
					s = s[1:]
					base = 16
				case 'o':
					s = s[1:]
					base = 8
				case 'b':
					s = s[1:]
					base = 2
				}
			}
		}
	}

	var value uint32
	for n := 0; n < len(s); n++ {
		digit, ok := internal.Digit(s[n])
		if !ok || digit >= base {
			err = ErrImmDigit
			return
		}
		value = value*base + digit
		if value >= 1<<IMM_BITS {
			err = ErrImmRange
			return
		}
	}

	switch {
	case neg && value > uint32(IMM_SIGN):
		err = ErrImmRange
		return
	case !neg && (pos || base == 10) && value >= uint32(IMM_SIGN):
		err = ErrImmRange
		return
	}

	if neg {
		value = (1 << IMM_BITS) - value
	}

	imm = Imm18(value) & IMM_MASK
	return
}
