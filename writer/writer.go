// Package writer renders assembled programs: a flat hex dump, a
// "v3.0 hex words addressed" memory image, and a source listing.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/internal"
	"github.com/ezrec/acc8/translate"
)

var f = translate.From

const (
	WORDS_HEADER   = "v3.0 hex words addressed"
	WORDS_PER_LINE = 16
)

// hexBytes formats bytes as space separated uppercase hex.
func hexBytes(codes []byte) string {
	words := make([]string, len(codes))
	for n, code := range codes {
		words[n] = fmt.Sprintf("%02X", code)
	}
	return strings.Join(words, " ")
}

// Hex writes the program bytes as a single line of uppercase hex.
func Hex(output io.Writer, codes []byte) (err error) {
	_, err = fmt.Fprintln(output, hexBytes(codes))
	return
}

// Words writes the zero padded memory image of the program, sixteen bytes
// per line, each line prefixed by its address.
func Words(output io.Writer, prog *cpu.Program) (err error) {
	image, err := prog.Image()
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(output, WORDS_HEADER)
	if err != nil {
		return
	}

	for ip, chunk := range internal.Chunk(image[:], WORDS_PER_LINE) {
		words := make([]string, len(chunk))
		for n, code := range chunk {
			words[n] = fmt.Sprintf("%02x", code)
		}
		_, err = fmt.Fprintf(output, "%02x: %s\n", ip, strings.Join(words, " "))
		if err != nil {
			return
		}
	}

	return
}

// Table writes a listing of every labelled or assembled source line, with
// its address and bytes.
func Table(output io.Writer, prog *cpu.Program) (err error) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{f("Line"), f("Addr"), f("Label"), f("Instruction"), f("Bytes")})

	for _, op := range prog.Opcodes {
		text := ""
		if op.Instruction != nil {
			text = op.Instruction.String()
		}
		tw.AppendRow(table.Row{op.LineNo, fmt.Sprintf("%02X", op.Ip), op.Label, text, hexBytes(op.Codes)})
	}

	_, err = fmt.Fprintln(output, tw.Render())
	return
}
