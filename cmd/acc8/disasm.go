package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/acc8/cpu"
)

var (
	disasmOutput string
	disasmSource string
)

// readHex reads a dump of whitespace separated hex bytes.
func readHex(input io.Reader) (codes []byte, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	for _, word := range strings.Fields(string(text)) {
		var code []byte
		code, err = hex.DecodeString(word)
		if err != nil {
			return
		}
		codes = append(codes, code...)
	}

	return
}

// writeListing writes each decoded instruction with its address. Given the
// program assembled from the dump's source, every line also names the source
// line whose bytes it decoded, with the byte offset when decoding fell out of
// step with the source.
func writeListing(output io.Writer, insts []cpu.Decoded, prog *cpu.Program) (err error) {
	for _, dec := range insts {
		text := fmt.Sprintf("%02X: %v", dec.Ip, dec.Instruction)
		if prog != nil {
			dbg := prog.Debug(dec.Ip)
			switch {
			case dbg.Opcode == nil:
			case dbg.Index == 0:
				text = fmt.Sprintf("%-16s ; %d: %v", text, dbg.LineNo, dbg.Text)
			default:
				text = fmt.Sprintf("%-16s ; %d+%d: %v", text, dbg.LineNo, dbg.Index, dbg.Text)
			}
		}
		_, err = fmt.Fprintln(output, text)
		if err != nil {
			return
		}
	}

	return
}

// assembleSource assembles the named source file.
func assembleSource(name string) (prog *cpu.Program, err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return (&cpu.Assembler{}).Parse(inf)
}

var disasmCmd = &cobra.Command{
	Use:   "disasm DUMP",
	Short: "Disassemble a hex dump",
	Long: `Disasm reads DUMP, a hex dump as written by 'acc8 asm -f hex', and
prints each instruction with its address. With --source, each instruction is
annotated with the line of the source file that assembled to it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dump := args[0]

		inf, err := os.Open(dump)
		if err != nil {
			atexit.Fatalf("%v: %v", dump, err)
		}
		defer inf.Close()

		codes, err := readHex(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", dump, err)
		}

		insts, err := cpu.Decode(codes)
		if err != nil {
			atexit.Fatalf("%v: %v", dump, err)
		}

		var prog *cpu.Program
		if len(disasmSource) != 0 {
			prog, err = assembleSource(disasmSource)
			if err != nil {
				atexit.Fatalf("%v: %v", disasmSource, err)
			}
		}

		ouf := openOutput(disasmOutput)
		err = writeListing(ouf, insts, prog)
		if err != nil {
			atexit.Fatalf("%v: %v", disasmOutput, err)
		}
	},
}

func init() {
	disasmCmd.Flags().StringVarP(&disasmOutput, "output", "o", "-", "Output file")
	disasmCmd.Flags().StringVarP(&disasmSource, "source", "s", "", "Source file of the dump, for line annotations")
	rootCmd.AddCommand(disasmCmd)
}
