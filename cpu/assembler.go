// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
)

// Assembler is a two pass assembler for the accumulator CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Lines   []Line           // Lines after constant folding.
	Equate  map[string]Value // Map of resolved constants.
	Symbols Symbols          // Map of labels to byte addresses.
}

// Parse parses an input stream into a Program. The first error stops the
// assembly; no partial program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Lines = nil
	asm.Equate = nil
	asm.Symbols = nil

	scanner := bufio.NewScanner(input)

	var lines []Line
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		var line Line
		line, err = ParseLine(text, lineno)
		if err != nil {
			return
		}
		lines = append(lines, line)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	res, err := resolveConstants(lines)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, name := range slices.Sorted(maps.Keys(res.constants)) {
			log.Printf("equ %v = %v\n", name, res.constants[name])
		}
	}

	symbols := BuildSymbols(res.lines)

	if asm.Verbose {
		for _, name := range symbols.Names() {
			log.Printf("label %v = %#02x\n", name, symbols[name])
		}
	}

	// Second pass: every address is known.
	opcodes := make([]Opcode, 0, len(res.lines))
	ip := 0
	for n := range res.lines {
		line := &res.lines[n]

		var codes []byte
		codes, err = line.Encode(symbols)
		if err != nil {
			return
		}

		if len(line.Label) != 0 || line.Instruction != nil {
			opcodes = append(opcodes, Opcode{
				LineNo:      line.Index,
				Ip:          ip,
				Label:       line.Label,
				Text:        line.Text,
				Instruction: line.Instruction,
				Codes:       codes,
			})
		}
		ip += len(codes)
	}

	asm.Lines = res.lines
	asm.Equate = res.constants
	asm.Symbols = symbols

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}
