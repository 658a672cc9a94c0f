package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/pioc/cpu"
)

var asFlags struct {
	symbolFlags
	output string
}

var asCmd = &cobra.Command{
	Use:   "as sourceFile",
	Short: "Assemble a source file to a binary image",
	Long: `As assembles one source file, expanding its INCLUDE directives, and
writes the little-endian image. The image is written next to the source
with a .bin extension unless -o is given. A source of '-' is read from
standard input and written to standard output.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		input := args[0]

		output := asFlags.output
		if len(output) == 0 {
			if input == "-" {
				output = "-"
			} else {
				output = replaceExt(input, ".bin")
			}
		}

		as, err := asFlags.assembler()
		if err != nil {
			return
		}

		var prog *cpu.Program
		if input == "-" {
			prog, err = as.Assemble(os.Stdin)
		} else {
			prog, err = as.AssembleFile(input)
		}
		if err != nil {
			err = fmt.Errorf("%v: %w", input, err)
			return
		}

		ouf, err := createOutput(output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()

		_, err = prog.WriteTo(ouf)
		return
	},
}

var asOneCmd = &cobra.Command{
	Use:   "as-one line",
	Short: "Assemble a single instruction line",
	Long: `As-one assembles one instruction line against the symbol table and
prints the instruction word.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		as, err := asFlags.assembler()
		if err != nil {
			return
		}

		// The line is never labelled.
		word, err := as.AssembleLine(" " + args[0])
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "0x%04X\n", word)
		return
	},
}

func init() {
	asFlags.register(asCmd)
	asCmd.Flags().StringVarP(&asFlags.output, "output", "o", "", "Output image path")
	rootCmd.AddCommand(asCmd)

	asFlags.register(asOneCmd)
	rootCmd.AddCommand(asOneCmd)
}
