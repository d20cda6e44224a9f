package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t,
		"LOAD A,#1",
		"EMPTY:",
		"INC A",
		"OUT: OUTPUT",
	)
	assert.NoError(err)

	dbg := prog.Debug(1)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(2)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(3)
	assert.Equal("OUT", dbg.Label)

	dbg = prog.Debug(4)
	assert.Nil(dbg.Opcode)
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t, "JMP END", "RESB 2", "END: HALT")
	assert.NoError(err)

	var ips []int
	var codes []byte
	for ip, code := range prog.Codes() {
		ips = append(ips, ip)
		codes = append(codes, code)
	}
	assert.Equal([]int{0, 1, 2, 3, 4}, ips)
	assert.Equal([]byte{0x06, 0x04, 0x00, 0x00, 0x0f}, codes)

	// Early exit from the iterator.
	for ip := range prog.Codes() {
		if ip == 2 {
			break
		}
	}
}

func TestProgramImage(t *testing.T) {
	assert := assert.New(t)

	prog, err := assemble(t, "LOAD A,#7", "HALT")
	assert.NoError(err)

	image, err := prog.Image()
	assert.NoError(err)
	assert.Equal(byte(0x09), image[0])
	assert.Equal(byte(0x07), image[1])
	assert.Equal(byte(0x0f), image[2])
	assert.Equal(make([]byte, MEMORY_SIZE-3), image[3:])

	prog, err = assemble(t, "RESB 255", "RESB 1", "HALT")
	assert.NoError(err)

	_, err = prog.Image()
	assert.ErrorIs(err, ErrProgramSize)
}
