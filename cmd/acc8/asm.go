package main

import (
	"log"
	"os"
	"slices"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/writer"
)

var (
	asmOutput  string
	asmFormat  string
	asmVerbose bool
	asmDump    bool
)

var asmCmd = &cobra.Command{
	Use:   "asm SOURCE",
	Short: "Assemble a source file",
	Long: `Asm assembles SOURCE, one instruction or label per line, and writes
the result as a hex dump (hex), a padded 256 byte hex word image (words), or
a line by line listing (table).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		compile := args[0]

		format := writer.Format(asmFormat)
		if !slices.Contains(writer.Formats, format) {
			atexit.Fatalf("%v: %v", os.Args[0], writer.ErrFormat(asmFormat))
		}

		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: asmVerbose}
		prog, err := asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}

		if asmDump {
			pp.Println(asm.Symbols)
			pp.Println(prog)
		}

		ouf := openOutput(asmOutput)
		err = writer.Write(ouf, format, prog)
		if err != nil {
			atexit.Fatalf("%v: %v", asmOutput, err)
		}

		if asmOutput != "-" {
			log.Printf("%v: wrote %d bytes to %v", compile, len(prog.Bytes()), asmOutput)
		}
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "-", "Output file")
	asmCmd.Flags().StringVarP(&asmFormat, "format", "f", string(writer.FORMAT_HEX), "Output format: hex, words, or table")
	asmCmd.Flags().BoolVarP(&asmVerbose, "verbose", "v", false, "Verbose mode")
	asmCmd.Flags().BoolVar(&asmDump, "dump", false, "Dump the symbol table and program")
	rootCmd.AddCommand(asmCmd)
}
