// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command pioc assembles and disassembles RISC8B eMCU programs.
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/pioc/asm"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pioc",
	Short: "RISC8B eMCU assembler and disassembler",
	Long: `Pioc is the language processor for the RISC8B eMCU found in the WCH
CH53x and CH32X035 PIOC peripheral.

Source files use the WCH assembler syntax: 'NAME EQU expr' definitions,
'ORG addr' origins, 'INCLUDE path' directives and instruction lines with
an optional label. Images are little-endian 16-bit words, starting at code
address 0.
`,
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// symbolFlags are the flags shared by the commands that assemble.
type symbolFlags struct {
	symbols string
	bare    bool
}

func (sf *symbolFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.symbols, "symbols", "", "Starlark symbol file to load")
	cmd.Flags().BoolVar(&sf.bare, "bare", false, "Start from an empty symbol table")
}

// assembler creates an assembler configured by the flags.
func (sf *symbolFlags) assembler() (as *asm.Assembler, err error) {
	as = &asm.Assembler{Verbose: verbose}
	if sf.bare {
		as.Symbols = asm.SymTab{}
	}

	if len(sf.symbols) != 0 {
		err = as.LoadSymbols(sf.symbols, nil)
	}

	return
}

// openInput opens path for reading, with "-" as standard input.
func openInput(path string) (r io.ReadCloser, err error) {
	if path == "-" {
		r = io.NopCloser(os.Stdin)
		return
	}

	return os.Open(path)
}

// createOutput creates path for writing, with "-" as standard output.
func createOutput(path string) (w io.WriteCloser, err error) {
	if path == "-" {
		w = nopWriteCloser{os.Stdout}
		return
	}

	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// replaceExt swaps the extension of path for ext.
func replaceExt(path string, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
