// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm374

import (
	"log"
)

// Assembler assembles, disassembles and explains single instructions.
//
// The zero value is ready to use; the package level functions use one.
type Assembler struct {
	Verbose bool // If set, logs each conversion.
}

// Assemble parses an instruction and encodes it. Parse errors are returned
// as is, with no word.
func (asm *Assembler) Assemble(text string) (word Word, err error) {
	inst, err := Parse(text)
	if err != nil {
		if asm.Verbose {
			log.Printf("assemble %q: %v", text, err)
		}
		return
	}

	word = Encode(inst)
	if asm.Verbose {
		log.Printf("assemble %q: %v %#v", text, word, inst)
	}

	return
}

// Disassemble decodes and formats a word.
//
// The text is always a best-effort disassembly, even when err is set. The
// error, if any, is from Validate: the word decodes, but is not a legal
// instruction.
func (asm *Assembler) Disassemble(word Word) (text string, err error) {
	inst := Decode(word)
	text = FormatInst(inst)
	err = Validate(inst)

	if asm.Verbose {
		log.Printf("disassemble %v: %q %#v (err %v)", word, text, inst, err)
	}

	return
}

// Explain breaks a word down into its encoded fields. Like Disassemble, the
// text is always present and the error is from Validate.
func (asm *Assembler) Explain(word Word) (text string, err error) {
	inst := Decode(word)
	text = ExplainInst(inst)
	err = Validate(inst)

	if asm.Verbose {
		log.Printf("explain %v: %q (err %v)", word, text, err)
	}

	return
}

var defaultAssembler = &Assembler{}

// Assemble parses and encodes an instruction.
func Assemble(text string) (Word, error) {
	return defaultAssembler.Assemble(text)
}

// Disassemble decodes and formats a word.
func Disassemble(word Word) (string, error) {
	return defaultAssembler.Disassemble(word)
}

// Explain describes the encoded fields of a word.
func Explain(word Word) (string, error) {
	return defaultAssembler.Explain(word)
}
