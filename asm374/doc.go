// Package asm374 assembles and disassembles single instructions of the W23
// ELEC374 CPU.
//
// The CPU has 16 general purpose registers (r0-r15), four branch condition
// codes (zr, nz, pl, mi), and 28 opcodes in five 32-bit encoding formats:
//
//	R  opcode:5 Ra:4 Rb:4 Rc:4 -:15
//	I  opcode:5 Ra:4 Rb:4 -:1  C:18
//	B  opcode:5 Ra:4 C2:4 -:1  C:18
//	J  opcode:5 Ra:4 -:23
//	M  opcode:5 -:27
//
// The instruction table (see Lookup) drives parsing, formatting, encoding,
// decoding and validation. Assemble, Disassemble and Explain convert between
// assembly text and encoded words, one instruction at a time; there are no
// labels, directives or programs.
//
// Assembly syntax is "mnemonic[cond] arg, arg, ...". Immediates (C) are
// 18-bit two's complement, written in decimal, or as 0x, 0o, 0b or $ (hex)
// prefixed raw bit patterns. Indexed arguments are written "C" or "C(Rb)",
// where an absent index register encodes as r0.
package asm374
