package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/pioc/cpu"
)

var disFlags struct {
	output string
	addr   bool
}

var disCmd = &cobra.Command{
	Use:   "dis imageFile",
	Short: "Disassemble a binary image",
	Long: `Dis decodes a little-endian image, one instruction per line. Words that
are not instructions are rendered as DW, so the output assembles back to
the same image. With --addr each line is prefixed by its byte address and
raw word.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		inf, err := openInput(args[0])
		if err != nil {
			return
		}
		defer inf.Close()

		prog, err := cpu.ReadProgram(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", args[0], err)
			return
		}

		ouf, err := createOutput(disFlags.output)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
		}()

		if disFlags.addr {
			err = prog.Listing(ouf)
		} else {
			err = prog.Disassemble(ouf)
		}
		return
	},
}

var disOneCmd = &cobra.Command{
	Use:   "dis-one word",
	Short: "Disassemble a single instruction word",
	Long: `Dis-one decodes one instruction word. The word may be written in any
Go integer literal syntax, such as 0x4B9B or 19355.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		word, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			return
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), cpu.Decode(uint16(word)))
		return
	},
}

func init() {
	disCmd.Flags().StringVarP(&disFlags.output, "output", "o", "-", "Output listing path")
	disCmd.Flags().BoolVar(&disFlags.addr, "addr", false, "Prefix lines with address and word")
	rootCmd.AddCommand(disCmd)

	rootCmd.AddCommand(disOneCmd)
}
