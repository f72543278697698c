package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/asm374/asm374"
)

func execute(t *testing.T, input string, args ...string) (out, errOut string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &outBuf, &errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, version)
}

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.NotNil(cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(cmd.PersistentFlags().Lookup("lang"))

	for _, name := range []string{"stream", "asm", "dis", "explain", "ops", "vectors", "script"} {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(err, name)
		assert.Equal(name, sub.Name())
	}
}

func TestAsm(t *testing.T) {
	assert := assert.New(t)

	out, _, err := execute(t, "", "asm", "brzr", "r2,", "$270f")
	assert.NoError(err)
	assert.Equal("9900270F\n", out)

	out, _, err = execute(t, "", "asm", "ldi", "r3,", "-1")
	assert.NoError(err)
	assert.Equal("0983FFFF\n", out)

	_, _, err = execute(t, "", "asm", "ldi r0, 0(r0)")
	assert.ErrorIs(err, asm374.ErrIndexR0)

	_, _, err = execute(t, "", "asm")
	assert.Error(err)
}

func TestAsmVerbose(t *testing.T) {
	assert := assert.New(t)

	out, errOut, err := execute(t, "", "--verbose", "asm", "and", "r1,", "r2,", "r3")
	assert.NoError(err)
	assert.Equal("28918000\n", out)
	assert.Contains(errOut, "RArgs")
}

func TestDis(t *testing.T) {
	assert := assert.New(t)

	out, _, err := execute(t, "", "dis", "28918000")
	assert.NoError(err)
	assert.Equal("and r1, r2, r3\n", out)

	out, _, err = execute(t, "", "dis", "E0000000")
	assert.ErrorIs(err, asm374.ErrInstOp)
	assert.Equal("?\n", out)

	_, _, err = execute(t, "", "dis", "2891800")
	assert.ErrorIs(err, asm374.ErrHex)
}

func TestExplain(t *testing.T) {
	assert := assert.New(t)

	out, _, err := execute(t, "", "explain", "9900270F")
	assert.NoError(err)
	assert.Equal("Op:10011|Ra:0010|C2:0000|Unk:?|C:000010011100001111\nB Op=br Ra=r2 C2=zr C=9999\n", out)
}

func TestOps(t *testing.T) {
	assert := assert.New(t)

	out, _, err := execute(t, "", "ops")
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(lines, int(asm374.OP_HALT)+1)
	assert.Equal(" 0 I ld ra, c(rb)", lines[0])
	assert.Equal("19 B br<cond> ra, c", lines[19])
	assert.Equal("27 M halt", lines[27])
}

func TestStream(t *testing.T) {
	assert := assert.New(t)

	out, errOut, err := execute(t, "nop\n9900270F\nsdf r2, 0\n")
	assert.NoError(err)
	assert.Equal("D0000000\nbrzr r2, 9999\nsdf r2, 0\n", out)
	assert.Contains(errOut, "line 3")

	name := filepath.Join(t.TempDir(), "input.s")
	require.NoError(t, os.WriteFile(name, []byte("halt\n"), 0o644))

	out, _, err = execute(t, "", "stream", name)
	assert.NoError(err)
	assert.Equal("D8000000\n", out)

	_, _, err = execute(t, "", "stream", filepath.Join(t.TempDir(), "missing.s"))
	assert.Error(err)
}

func TestVectors(t *testing.T) {
	assert := assert.New(t)

	out, _, err := execute(t, "", "vectors", "../../asm374/testdata/vectors.yaml")
	assert.NoError(err)
	assert.Contains(out, "0 failed")

	name := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(name, []byte("cases:\n  - {asm: nop, hex: D8000000}\n"), 0o644))

	out, _, err = execute(t, "", "vectors", name)
	assert.ErrorIs(err, ErrVectorsFailed)
	assert.Contains(out, "wrong encoding")
	assert.Contains(out, "1 cases, 1 failed")
}

func TestScript(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join(t.TempDir(), "test.star")
	require.NoError(t, os.WriteFile(name, []byte(`print(asm374.assemble("halt"))`+"\n"), 0o644))

	out, _, err := execute(t, "", "script", name)
	assert.NoError(err)
	assert.Equal("D8000000\n", out)
}

func TestLang(t *testing.T) {
	assert := assert.New(t)

	_, _, err := execute(t, "", "--lang", "en-US", "ops")
	assert.NoError(err)

	_, _, err = execute(t, "", "--lang", "not a language!", "ops")
	assert.Error(err)
}
