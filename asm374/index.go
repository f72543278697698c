package asm374

import (
	"strings"
)

// MAX_ARG_LEN limits the length of a single indexed argument.
const MAX_ARG_LEN = 255

// ParseIndexed parses an indexed argument, "C" or "C(Rb)".
//
// An absent index register is returned as REG_R0; an explicit "(r0)" is an
// error, since r0 as an index means "no index".
func ParseIndexed(s string) (reg Reg, imm Imm18, err error) {
	if len(s) == 0 {
		err = ErrArgEmpty
		return
	}
	if len(s) > MAX_ARG_LEN {
		err = ErrArgLong
		return
	}

	s_imm := s
	s_reg, has_reg := "", false
	if open := strings.IndexByte(s, '('); open >= 0 {
		close := strings.IndexByte(s[open:], ')')
		if close < 0 || open+close != len(s)-1 {
			err = ErrArgInvalid
			return
		}
		s_imm, s_reg, has_reg = s[:open], s[open+1:len(s)-1], true
	}

	imm, err = ParseImm18(s_imm)
	if err != nil {
		return
	}

	if has_reg {
		reg, err = ParseReg(s_reg)
		if err != nil {
			return
		}
		if reg == REG_R0 {
			err = ErrIndexR0
			return
		}
	}

	return
}

// FormatIndexed renders an indexed argument, omitting a REG_R0 index.
func FormatIndexed(reg Reg, imm Imm18) string {
	if reg == REG_R0 {
		return imm.String()
	}
	return imm.String() + "(" + reg.Name() + ")"
}
