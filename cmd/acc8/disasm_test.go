package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/acc8/cpu"
)

func TestReadHex(t *testing.T) {
	assert := assert.New(t)

	codes, err := readHex(strings.NewReader("09 05 0C\n06 00\n"))
	assert.NoError(err)
	assert.Equal([]byte{0x09, 0x05, 0x0c, 0x06, 0x00}, codes)

	codes, err = readHex(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(codes)

	_, err = readHex(strings.NewReader("09 XY"))
	assert.Error(err)
}

func TestWriteListing(t *testing.T) {
	assert := assert.New(t)

	source := "START: LOAD A,#5\nINC A\n\nJMP START"
	prog, err := (&cpu.Assembler{}).Parse(strings.NewReader(source))
	assert.NoError(err)

	insts, err := cpu.Decode(prog.Bytes())
	assert.NoError(err)

	var output bytes.Buffer
	assert.NoError(writeListing(&output, insts, nil))
	assert.Equal("00: LOAD A,#5\n02: INC A\n03: JMP 0\n", output.String())

	output.Reset()
	assert.NoError(writeListing(&output, insts, prog))
	lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
	if assert.Len(lines, 3) {
		assert.True(strings.HasPrefix(lines[0], "00: LOAD A,#5"), lines[0])
		assert.True(strings.HasSuffix(lines[0], "; 1: START: LOAD A,#5"), lines[0])
		assert.True(strings.HasSuffix(lines[1], "; 2: INC A"), lines[1])
		assert.True(strings.HasSuffix(lines[2], "; 4: JMP START"), lines[2])
	}

	// Decoding out of step with the source lands inside an instruction.
	insts, err = cpu.Decode(prog.Bytes()[1:])
	assert.NoError(err)
	for n := range insts {
		insts[n].Ip++
	}
	output.Reset()
	assert.NoError(writeListing(&output, insts, prog))
	assert.Contains(output.String(), "; 1+1: START: LOAD A,#5")
}
