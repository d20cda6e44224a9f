// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/acc8/translate"
)

var lang string

var rootCmd = &cobra.Command{
	Use:   "acc8",
	Short: "Assembler for the 8-bit accumulator CPU",
	Long: `Acc8 assembles source for the two register, 256 byte accumulator
CPU into the byte stream the machine executes, and disassembles such byte
streams back into instructions.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if len(lang) != 0 {
			translate.Use(lang)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Message language, overriding the system locale")
}

// openOutput opens the named output, or stdout for "-". Files are closed
// on exit, including fatal exits.
func openOutput(name string) (output *os.File) {
	if name == "-" {
		return os.Stdout
	}

	output, err := os.Create(name)
	if err != nil {
		atexit.Fatalf("%v: %v", name, err)
	}
	atexit.Register(func() { output.Close() })

	return
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
