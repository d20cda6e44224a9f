// Package cpu implements the assembler for the 8-bit accumulator CPU.
//
// The CPU has two working registers (A and B), a 256 byte flat address
// space, and a fixed table of one and two byte instructions.
//
// Assembly runs in stages over the whole source: each line is parsed
// into a Line, EQU constants are folded into operands, a first pass
// assigns every label its byte address, and a second pass encodes each
// instruction. Labels may therefore be referenced before they are defined.
// Compile-time $(...) expressions over EQU constants are evaluated with
// Starlark.
package cpu
