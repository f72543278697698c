package asm374

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImm18(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Imm18(0x3FFFF), MakeImm18(-1))
	assert.Equal(Imm18(0x20000), MakeImm18(IMM_MIN))
	assert.Equal(Imm18(0x1FFFF), MakeImm18(IMM_MAX))
	assert.Equal(int32(-1), Imm18(0x3FFFF).Int32())
	assert.Equal(int32(IMM_MIN), Imm18(0x20000).Int32())
	assert.Equal(int32(IMM_MAX), Imm18(0x1FFFF).Int32())

	assert.Equal("-1", Imm18(0x3FFFF).String())
	assert.Equal("9999", Imm18(9999).String())
	assert.Equal("0", Imm18(0).String())
	assert.Equal("Imm18(5)", Imm18(5).GoString())
}

func TestParseImm18(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		imm  Imm18
		err  error
	}){
		{"0", 0, nil},
		{"-0", 0, nil},
		{"+0", 0, nil},
		{"17", 17, nil},
		{"017", 17, nil},
		{"131071", 0x1FFFF, nil},
		{"131072", 0, ErrImmRange},
		{"+131071", 0x1FFFF, nil},
		{"-1", 0x3FFFF, nil},
		{"-131072", 0x20000, nil},
		{"-131073", 0, ErrImmRange},
		{"262144", 0, ErrImmRange},
		{"0x3FFFF", 0x3FFFF, nil},
		{"0x3ffff", 0x3FFFF, nil},
		{"0x40000", 0, ErrImmRange},
		{"+0x1FFFF", 0x1FFFF, nil},
		{"+0x20000", 0, ErrImmRange},
		{"-0x20000", 0x20000, nil},
		{"-0x20001", 0, ErrImmRange},
		{"0b101", 5, nil},
		{"-0b1", 0x3FFFF, nil},
		{"0o17", 15, nil},
		{"0o8", 0, ErrImmDigit},
		{"0b2", 0, ErrImmDigit},
		{"0x1G", 0, ErrImmDigit},
		{"0X10", 0, ErrImmDigit},
		{"$3ffff", 0x3FFFF, nil},
		{"$10", 16, nil},
		{"$40000", 0, ErrImmRange},
		{"$-1", 0, ErrImmDigit},
		{"12z", 0, ErrImmDigit},
		{"1 2", 0, ErrImmDigit},
		{"0x", 0, nil},
		{"$", 0, nil},
		{"-", 0, nil},
		{"", 0, ErrArgEmpty},
	}

	for _, entry := range table {
		imm, err := ParseImm18(entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(entry.imm, imm, entry.text)
	}
}

func TestParseImm18Canonical(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int32{IMM_MIN, -9999, -1, 0, 1, 9999, IMM_MAX} {
		imm := MakeImm18(value)
		parsed, err := ParseImm18(imm.String())
		assert.NoError(err, value)
		assert.Equal(imm, parsed, value)
	}
}
