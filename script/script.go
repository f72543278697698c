// Package script hosts asm374 in Starlark.
//
// Scripts see a single predeclared module, asm374:
//
//	asm374.assemble(text)       -> hex string; fails on error
//	asm374.disassemble(hex)     -> (text, error string or None)
//	asm374.explain(hex)         -> (text, error string or None)
//	asm374.error(code)          -> description of an error code
//	asm374.mnemonics()          -> list of every accepted mnemonic
//
// disassemble and explain only fail when there is no text to return, that
// is when hex is not 8 hex digits.
package script

import (
	"fmt"
	"io"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm374/asm374"
)

// Script runs Starlark scripts against an Assembler.
type Script struct {
	Assembler asm374.Assembler
	Out       io.Writer // Destination of print(); os.Stdout if nil.
}

// Module returns the asm374 module bound to the script's assembler.
func (s *Script) Module() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: "asm374",
		Members: starlark.StringDict{
			"assemble":    starlark.NewBuiltin("assemble", s.assemble),
			"disassemble": starlark.NewBuiltin("disassemble", s.disassemble),
			"explain":     starlark.NewBuiltin("explain", s.explain),
			"error":       starlark.NewBuiltin("error", errorText),
			"mnemonics":   starlark.NewBuiltin("mnemonics", mnemonics),
		},
	}
}

// Run executes a script. src may be anything starlark.ExecFileOptions
// accepts; nil reads filename.
func (s *Script) Run(filename string, src any) (globals starlark.StringDict, err error) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}

	predeclared := starlark.StringDict{
		"asm374": s.Module(),
	}

	opts := syntax.FileOptions{}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	return
}

// Run executes a script with a default Script.
func Run(filename string, src any, out io.Writer) (starlark.StringDict, error) {
	s := &Script{Out: out}
	return s.Run(filename, src)
}

func (s *Script) assemble(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var text string
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text)
	if err != nil {
		return
	}

	word, err := s.Assembler.Assemble(text)
	if err != nil {
		return
	}

	value = starlark.String(word.String())
	return
}

// result is the (text, error) pair of disassemble and explain.
func result(text string, err error) starlark.Value {
	var st_err starlark.Value = starlark.None
	if err != nil {
		st_err = starlark.String(err.Error())
	}
	return starlark.Tuple{starlark.String(text), st_err}
}

func (s *Script) disassemble(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var hex string
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &hex)
	if err != nil {
		return
	}

	word, err := asm374.ParseWord(hex)
	if err != nil {
		return
	}

	value = result(s.Assembler.Disassemble(word))
	return
}

func (s *Script) explain(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var hex string
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &hex)
	if err != nil {
		return
	}

	word, err := asm374.ParseWord(hex)
	if err != nil {
		return
	}

	value = result(s.Assembler.Explain(word))
	return
}

func errorText(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var code int
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &code)
	if err != nil {
		return
	}

	value = starlark.String(asm374.Error(code).Error())
	return
}

func mnemonics(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0)
	if err != nil {
		return
	}

	var list []starlark.Value
	for _, mnemonic := range asm374.Mnemonics() {
		list = append(list, starlark.String(mnemonic))
	}

	value = starlark.NewList(list)
	return
}
