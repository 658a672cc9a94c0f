package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/pioc/cpu"
)

var genFlags struct {
	symbolFlags
	output string
	pkg    string
	name   string
}

var genCmd = &cobra.Command{
	Use:   "gen sourceFile",
	Short: "Assemble a source file to Go source",
	Long: `Gen assembles one source file and writes a Go source file declaring
the image as a uint16 array, for embedding a PIOC program in firmware
tooling written in Go.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		as, err := genFlags.assembler()
		if err != nil {
			return
		}

		prog, err := as.AssembleFile(args[0])
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
			return
		}

		ouf, err := createOutput(genFlags.output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()

		err = generate(ouf, genFlags.pkg, genFlags.name, args[0], prog)
		return
	},
}

// generate writes prog as a formatted Go source file.
func generate(w io.Writer, pkg string, name string, source string, prog *cpu.Program) (err error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by pioc gen from %v. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %v\n\n", pkg)
	fmt.Fprintf(&buf, "var %v = [...]uint16{\n", name)
	for addr, inst := range prog.Insts() {
		text, _, _ := strings.Cut(inst.String(), "\t")
		fmt.Fprintf(&buf, "0x%04X, // %04X: %v\n", prog.Words[addr/2], addr, text)
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return
	}

	_, err = w.Write(src)
	return
}

func init() {
	genFlags.register(genCmd)
	genCmd.Flags().StringVarP(&genFlags.output, "output", "o", "-", "Output Go source path")
	genCmd.Flags().StringVar(&genFlags.pkg, "package", "main", "Package name of the Go source")
	genCmd.Flags().StringVar(&genFlags.name, "name", "program", "Variable name of the image")
	rootCmd.AddCommand(genCmd)
}
