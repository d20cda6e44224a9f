package cpu

import (
	"iter"

	"github.com/ezrec/acc8/internal"
)

const MEMORY_SIZE = 256 // Bytes of addressable memory.

// Opcode represents a line of assembled code with its source location and generated bytes.
type Opcode struct {
	LineNo      int
	Ip          int
	Label       string
	Text        string
	Instruction *Instruction
	Codes       []byte
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode whose bytes cover the address.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates over every (address, byte) of the program.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	seqs := make([]iter.Seq2[int, byte], 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		seqs = append(seqs, internal.Offset(op.Ip, op.Codes))
	}
	return internal.IterSeq2Concat(seqs...)
}

// Bytes returns the program byte stream.
func (prog *Program) Bytes() (codes []byte) {
	codes = []byte{}
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}
	return
}

// Image returns the program as a zero padded memory image.
func (prog *Program) Image() (image [MEMORY_SIZE]byte, err error) {
	for ip, code := range prog.Codes() {
		if ip >= MEMORY_SIZE {
			err = ErrProgramSize
			return
		}
		image[ip] = code
	}
	return
}
