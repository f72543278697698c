package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", Trim(""))
	assert.Equal("", Trim(" \t\r\n\v\f"))
	assert.Equal("add r1", Trim("\t add r1 \r\n"))
	assert.Equal("a  b", Trim("a  b"))
	// Not ASCII whitespace, so it is kept.
	assert.Equal(" x", Trim(" x"))
}

func TestCut(t *testing.T) {
	assert := assert.New(t)

	before, after, found := Cut("brzr\tr2, 0", " \t")
	assert.True(found)
	assert.Equal("brzr", before)
	assert.Equal("r2, 0", after)

	before, after, found = Cut("nop", " \t")
	assert.False(found)
	assert.Equal("nop", before)
	assert.Equal("", after)
}

func TestEqualFold(t *testing.T) {
	assert := assert.New(t)

	assert.True(EqualFold("BrZr", "brzr"))
	assert.True(EqualFold("", ""))
	assert.False(EqualFold("br", "brzr"))
	assert.False(EqualFold("r1", "r2"))
	// Unicode folding (U+017F LATIN SMALL LETTER LONG S) is not ASCII.
	assert.False(EqualFold("ſt", "st"))
}

func TestDigit(t *testing.T) {
	assert := assert.New(t)

	table := map[byte]uint32{'0': 0, '9': 9, 'a': 10, 'F': 15, 'z': 35, 'Z': 35}
	for c, want := range table {
		have, ok := Digit(c)
		assert.True(ok, string(c))
		assert.Equal(want, have, string(c))
	}

	for _, c := range []byte{'$', '-', '+', ' ', '(', 0} {
		_, ok := Digit(c)
		assert.False(ok, string(c))
	}
}

func TestHex32(t *testing.T) {
	assert := assert.New(t)

	value, ok := ParseHex32("9900270f")
	assert.True(ok)
	assert.Equal(uint32(0x9900270f), value)
	assert.Equal("9900270F", FormatHex32(value))
	assert.Equal("00000000", FormatHex32(0))

	for _, bad := range []string{"", "9900270", "9900270F0", "9900270G", "0x00270F", " 900270F"} {
		_, ok := ParseHex32(bad)
		assert.False(ok, bad)
	}
}

func TestBinary(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("10011", Binary(19, 5))
	assert.Equal("0000", Binary(0, 4))
	assert.Equal("0010", Binary(0x12, 4))
	assert.Equal("111111111111111111", Binary(0xffffffff, 18))
}

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[int]string{1: "a"})
	b := maps.All(map[int]string{2: "b"})

	var keys []int
	for k, v := range Concat2(a, b) {
		keys = append(keys, k)
		assert.NotEmpty(v)
	}
	assert.Equal([]int{1, 2}, keys)

	// Early stop.
	keys = nil
	for k := range Concat2(a, b) {
		keys = append(keys, k)
		break
	}
	assert.Equal([]int{1}, keys)
	assert.True(slices.Equal(keys, []int{1}))
}
