package writer

import (
	"io"

	"github.com/ezrec/acc8/cpu"
)

// Format selects an output renderer.
type Format string

const (
	FORMAT_HEX   = Format("hex")   // Flat hex dump.
	FORMAT_WORDS = Format("words") // v3.0 hex words addressed.
	FORMAT_TABLE = Format("table") // Source listing.
)

// Formats lists the known output formats.
var Formats = []Format{FORMAT_HEX, FORMAT_WORDS, FORMAT_TABLE}

type ErrFormat string

func (err ErrFormat) Error() string {
	return f("unknown output format '%v'", string(err))
}

// Write renders the program in the given format.
func Write(output io.Writer, format Format, prog *cpu.Program) error {
	switch format {
	case FORMAT_HEX:
		return Hex(output, prog.Bytes())
	case FORMAT_WORDS:
		return Words(output, prog)
	case FORMAT_TABLE:
		return Table(output, prog)
	}
	return ErrFormat(format)
}
