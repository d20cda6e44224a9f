package cpu

import (
	"maps"
	"slices"
)

// Symbols maps labels to byte addresses.
type Symbols map[string]int

// BuildSymbols assigns each line its address and records the address of
// every label. A label names the address of the next instruction, so a
// label-only line takes the address of the line that follows it. A label
// defined twice keeps its last address.
func BuildSymbols(lines []Line) (symbols Symbols) {
	symbols = make(Symbols, len(lines))

	ip := 0
	for _, line := range lines {
		if len(line.Label) != 0 {
			symbols[line.Label] = ip
		}
		if line.Instruction != nil {
			ip += line.Instruction.Size()
		}
	}

	return
}

// Names returns the labels ordered by address, then by name.
func (symbols Symbols) Names() []string {
	return slices.SortedFunc(maps.Keys(symbols), func(a, b string) int {
		if symbols[a] != symbols[b] {
			return symbols[a] - symbols[b]
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
}
