// Package vectors checks asm374 against YAML test vector files.
//
// A vector file lists cases:
//
//	cases:
//	  - asm: brzr r2, $270f
//	    hex: 9900270F
//	    dis: brzr r2, 9999
//	  - asm: ldi r0, 0(r0)
//	    error: ErrIndexR0
//
// A case with an asm line and no hex must fail to assemble, with the named
// error code if one is given. A case with dis must disassemble (from hex)
// without error to exactly that text.
package vectors

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/asm374/asm374"
	"github.com/ezrec/asm374/translate"
)

var f = translate.From

var (
	ErrCaseEmpty    = errors.New(f("case has neither asm nor hex"))
	ErrCaseNoHex    = errors.New(f("dis requires hex"))
	ErrNotRejected  = errors.New(f("assembled, but an error was expected"))
	ErrWrongError   = errors.New(f("wrong error"))
	ErrWrongEncode  = errors.New(f("wrong encoding"))
	ErrWrongDisasm  = errors.New(f("wrong disassembly"))
	ErrInvalidWord  = errors.New(f("invalid instruction"))
	ErrUnknownError = errors.New(f("unknown error name"))
)

// Case is a single test vector.
type Case struct {
	Name  string `yaml:"name,omitempty"`
	Asm   string `yaml:"asm,omitempty"`   // Assembly input.
	Hex   string `yaml:"hex,omitempty"`   // Expected encoding; empty if asm must fail.
	Error string `yaml:"error,omitempty"` // Expected error code name, such as ErrImmRange.
	Dis   string `yaml:"dis,omitempty"`   // Expected disassembly of hex.
	Skip  string `yaml:"skip,omitempty"`  // Reason to skip this case.
}

// String names the case for reports.
func (c Case) String() string {
	switch {
	case c.Name != "":
		return c.Name
	case c.Asm != "":
		return fmt.Sprintf("%q", c.Asm)
	}
	return c.Hex
}

// File is the contents of a vector file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Failure is a case that did not hold.
type Failure struct {
	Index int
	Case  Case
	Err   error
}

func (fail Failure) Error() string {
	return f("case %d (%v): %v", fail.Index+1, fail.Case, fail.Err)
}

func (fail Failure) Unwrap() error {
	return fail.Err
}

// ErrMismatch reports an expected and actual value.
type ErrMismatch struct {
	Err      error
	Expected string
	Actual   string
}

func (err *ErrMismatch) Error() string {
	return f("%v: expected %q, got %q", err.Err, err.Expected, err.Actual)
}

func (err *ErrMismatch) Unwrap() error {
	return err.Err
}

// Load reads a vector file. Unknown keys are an error.
func Load(r io.Reader) (file *File, err error) {
	file = &File{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(file)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		file = nil
	}

	return
}

// errorCodes maps error code names back to codes.
var errorCodes = func() map[string]asm374.Error {
	codes := map[string]asm374.Error{}
	for code := asm374.ErrArgEmpty; code <= asm374.ErrInstFormat; code++ {
		codes[code.String()] = code
	}
	return codes
}()

// Check runs every case that is not skipped, and returns the failures.
func (file *File) Check() (failures []Failure) {
	for n, c := range file.Cases {
		if c.Skip != "" {
			continue
		}
		if err := c.Check(); err != nil {
			failures = append(failures, Failure{Index: n, Case: c, Err: err})
		}
	}
	return
}

// Check runs a single case.
func (c Case) Check() (err error) {
	if c.Asm == "" && c.Hex == "" {
		return ErrCaseEmpty
	}

	var want asm374.Word
	if c.Hex != "" {
		want, err = asm374.ParseWord(c.Hex)
		if err != nil {
			return
		}
	}

	if c.Asm != "" {
		err = c.checkAssemble(want)
		if err != nil {
			return
		}
	}

	if c.Dis != "" {
		if c.Hex == "" {
			return ErrCaseNoHex
		}
		text, dis_err := asm374.Disassemble(want)
		if dis_err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWord, dis_err)
		}
		if text != c.Dis {
			return &ErrMismatch{Err: ErrWrongDisasm, Expected: c.Dis, Actual: text}
		}
	}

	return
}

func (c Case) checkAssemble(want asm374.Word) (err error) {
	word, asm_err := asm374.Assemble(c.Asm)

	if c.Hex == "" {
		if asm_err == nil {
			return &ErrMismatch{Err: ErrNotRejected, Expected: "error", Actual: word.String()}
		}
		if c.Error == "" {
			return
		}
		expected, ok := errorCodes[c.Error]
		if !ok {
			return &ErrMismatch{Err: ErrUnknownError, Expected: "Err...", Actual: c.Error}
		}
		if code, _ := asm374.Code(asm_err); code != expected {
			return &ErrMismatch{Err: ErrWrongError, Expected: c.Error, Actual: asm_err.Error()}
		}
		return
	}

	if asm_err != nil {
		return asm_err
	}
	if word != want {
		return &ErrMismatch{Err: ErrWrongEncode, Expected: want.String(), Actual: word.String()}
	}

	return
}
