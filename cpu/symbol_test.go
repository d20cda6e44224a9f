package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSymbols(t *testing.T) {
	assert := assert.New(t)

	lines := parseLines(t,
		"FIRST: LOAD A,#1", // 0, 2 bytes
		"SIZE EQU #3",      // 2, 0 bytes
		"NOP",              // 2
		"SECOND:",          // 3
		"",                 //
		"RESB 4",           // 3, 4 bytes
		"THIRD: JZ FIRST",  // 7, 2 bytes
		"DB #1",            // 9
		"FOURTH: HALT",     // 10
		"FIRST: HALT",      // 11
	)

	symbols := BuildSymbols(lines)

	expected := Symbols{
		"FIRST":  11,
		"SIZE":   2,
		"SECOND": 3,
		"THIRD":  7,
		"FOURTH": 10,
	}
	assert.Equal(expected, symbols)
	assert.Equal([]string{"SIZE", "SECOND", "THIRD", "FOURTH", "FIRST"}, symbols.Names())
}

func TestBuildSymbolsEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Symbols{}, BuildSymbols(nil))
}
