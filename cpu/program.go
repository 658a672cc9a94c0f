package cpu

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
)

// Program is an instruction word image, starting at code address 0.
type Program struct {
	Words []uint16
}

// ReadProgram loads a little-endian image.
func ReadProgram(r io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	prog = &Program{Words: make([]uint16, len(data)/2)}
	for n := range prog.Words {
		prog.Words[n] = binary.LittleEndian.Uint16(data[n*2:])
	}

	return
}

// Insts returns the decoded instructions, keyed by byte address.
func (prog *Program) Insts() iter.Seq2[int, Inst] {
	return func(yield func(addr int, inst Inst) bool) {
		for n, word := range prog.Words {
			if !yield(n*2, Decode(word)) {
				return
			}
		}
	}
}

// Binary returns the little-endian image.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, len(prog.Words)*2)
	for _, word := range prog.Words {
		bin = binary.LittleEndian.AppendUint16(bin, word)
	}

	return
}

// WriteTo writes the little-endian image to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	wrote, err := w.Write(prog.Binary())
	n = int64(wrote)
	return
}

// Disassemble writes one rendered instruction line per word.
func (prog *Program) Disassemble(w io.Writer) (err error) {
	for _, inst := range prog.Insts() {
		_, err = fmt.Fprintf(w, "\t%v\n", inst)
		if err != nil {
			return
		}
	}

	return
}

// Listing writes one rendered instruction per word, prefixed by its byte
// address and raw word.
func (prog *Program) Listing(w io.Writer) (err error) {
	for addr, inst := range prog.Insts() {
		_, err = fmt.Fprintf(w, "%04X: %04X\t%v\n", addr, prog.Words[addr/2], inst)
		if err != nil {
			return
		}
	}

	return
}
