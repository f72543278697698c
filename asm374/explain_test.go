package asm374

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainInst(t *testing.T) {
	assert := assert.New(t)

	unused := func(n int) string { return "Unk:" + strings.Repeat("?", n) }

	table := [](struct {
		word Word
		text string
	}){
		{0x9900270F, "Op:10011|Ra:0010|C2:0000|Unk:?|C:000010011100001111\nB Op=br Ra=r2 C2=zr C=9999"},
		{0x28918000, "Op:00101|Ra:0001|Rb:0010|Rc:0011|" + unused(15) + "\nR Op=and Ra=r1 Rb=r2 Rc=r3"},
		{0x0983FFFF, "Op:00001|Ra:0011|Rb:0000|Unk:?|C:111111111111111111\nI Op=ldi Ra=r3 Rb=r0 C=-1"},
		{0xA7800000, "Op:10100|Ra:1111|" + unused(23) + "\nJ Op=jr Ra=r15"},
		{0xD8000000, "Op:11011|" + unused(27) + "\nM Op=halt"},
		{0x98200000, "Op:10011|Ra:0000|C2:0100|Unk:?|C:000000000000000000\nB Op=br Ra=r0 C2=? C=0"},
		{0xE0000000, "Op:11100|" + unused(27) + "\n?"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, ExplainInst(Decode(entry.word)), entry.word.String())
	}
}
