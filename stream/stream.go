// Package stream is the line oriented asm374 front end.
//
// Each input line holding exactly 8 hex digits is disassembled; any other
// non-blank line is assembled. Results go to Out, one per line, and errors to
// Err. In batch (non-interactive) use the failing input is echoed to Out in
// place of a result, so the output stays line-aligned with the input.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/asm374/asm374"
	"github.com/ezrec/asm374/internal"
	"github.com/ezrec/asm374/translate"
)

var f = translate.From

// ErrLine locates an error on an input line.
type ErrLine struct {
	Line int    // Line number, from 1.
	Text string // Trimmed input.
	Err  error
}

func (err *ErrLine) Error() string {
	return f("line %d: invalid instruction '%v': %v", err.Line, err.Text, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// Processor converts a stream of lines.
type Processor struct {
	Assembler   asm374.Assembler
	Interactive bool      // If set, prompt on Err and do not echo failed input.
	Out         io.Writer // Results; os.Stdout if nil.
	Err         io.Writer // Diagnostics; os.Stderr if nil.

	Errors []*ErrLine // Every failed line of the last Run.
}

// IsInteractive is true if r is a terminal.
func IsInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Run processes every line of r. The returned error is only for failures to
// read or write; per-line failures are reported on Err and kept in Errors.
func (p *Processor) Run(r io.Reader) (err error) {
	out, errOut := p.Out, p.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	p.Errors = nil

	if p.Interactive {
		fmt.Fprintln(errOut, f("enter an instruction (8-digit hex) to disassemble, or anything else to assemble"))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, asm374.MAX_LINE_LEN+1), 1024*1024)

	for lineno := 1; scanner.Scan(); lineno++ {
		raw := scanner.Text()
		line := internal.Trim(raw)

		var result, echo string
		var line_err error

		switch {
		case len(line) == 0:
			result = raw
		default:
			if word, hex_err := asm374.ParseWord(line); hex_err == nil {
				result, line_err = p.Assembler.Disassemble(word)
				echo = line + " [" + result + "]"
				break
			}
			var word asm374.Word
			word, line_err = p.Assembler.Assemble(line)
			result, echo = word.String(), line
		}

		if line_err != nil {
			err_line := &ErrLine{Line: lineno, Text: echo, Err: line_err}
			p.Errors = append(p.Errors, err_line)
			fmt.Fprintln(errOut, err_line)
			if p.Interactive {
				continue
			}
			result = echo
		}

		_, err = fmt.Fprintln(out, result)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}
