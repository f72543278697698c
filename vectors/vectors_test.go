package vectors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/asm374/asm374"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	file, err := Load(strings.NewReader(`
cases:
  - asm: brzr r2, $270f
    hex: 9900270F
    dis: brzr r2, 9999
  - asm: ldi r0, 0(r0)
    error: ErrIndexR0
  - name: skipped
    asm: nonsense
    hex: 00000000
    skip: not yet
`))
	require.NoError(t, err)
	require.Len(t, file.Cases, 3)

	assert.Equal(Case{Asm: "brzr r2, $270f", Hex: "9900270F", Dis: "brzr r2, 9999"}, file.Cases[0])
	assert.Equal("ErrIndexR0", file.Cases[1].Error)
	assert.Equal("skipped", file.Cases[2].String())
	assert.Empty(file.Check())

	file, err = Load(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(file.Cases)

	_, err = Load(strings.NewReader("cases:\n  - asm: nop\n    bogus: 1\n"))
	assert.Error(err)

	_, err = Load(strings.NewReader("cases: [\n"))
	assert.Error(err)
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		c    Case
		err  error
	}){
		{"ok", Case{Asm: "and r1, r2, r3", Hex: "28918000"}, nil},
		{"ok_dis", Case{Asm: "ld r1, 5", Hex: "00800005", Dis: "ld r1, 5"}, nil},
		{"ok_reject", Case{Asm: "sdf r2, 0"}, nil},
		{"ok_reject_code", Case{Asm: "sdf r2, 0", Error: "ErrOpUnknown"}, nil},
		{"ok_hex_only", Case{Hex: "D8FFFFFF", Dis: "halt"}, nil},
		{"empty", Case{}, ErrCaseEmpty},
		{"encode", Case{Asm: "and r1, r2, r3", Hex: "28918001"}, ErrWrongEncode},
		{"not_rejected", Case{Asm: "halt"}, ErrNotRejected},
		{"wrong_error", Case{Asm: "sdf r2, 0", Error: "ErrImmRange"}, ErrWrongError},
		{"unknown_error", Case{Asm: "sdf r2, 0", Error: "ErrBogus"}, ErrUnknownError},
		{"disasm", Case{Hex: "28918000", Dis: "and r1, r2, r4"}, ErrWrongDisasm},
		{"invalid_word", Case{Hex: "E0000000", Dis: "?"}, ErrInvalidWord},
		{"no_hex", Case{Asm: "sdf r2, 0", Dis: "sdf r2, 0"}, ErrCaseNoHex},
	}

	for _, entry := range table {
		err := entry.c.Check()
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}

	// Assembly errors pass through.
	err := Case{Asm: "halt r1", Hex: "D8000000"}.Check()
	assert.Error(err)
	var mismatch *ErrMismatch
	assert.False(errors.As(err, &mismatch))

	assert.ErrorIs(Case{Dis: "halt"}.Check(), ErrCaseEmpty)
	assert.ErrorIs(Case{Hex: "D800000"}.Check(), asm374.ErrHex)
}

func TestFileCheck(t *testing.T) {
	assert := assert.New(t)

	file := &File{Cases: []Case{
		{Asm: "nop", Hex: "D0000000"},
		{Asm: "nop", Hex: "D8000000"},
		{Asm: "nop", Hex: "D8000000", Skip: "known bad"},
		{Name: "bad", Asm: "halt"},
	}}

	failures := file.Check()
	if assert.Len(failures, 2) {
		assert.Equal(1, failures[0].Index)
		assert.ErrorIs(failures[0], ErrWrongEncode)
		assert.Equal(`case 2 ("nop"): wrong encoding: expected "D8000000", got "D0000000"`, failures[0].Error())

		assert.Equal(3, failures[1].Index)
		assert.ErrorIs(failures[1], ErrNotRejected)
		assert.Contains(failures[1].Error(), "case 4 (bad)")
	}
}
