// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bytes"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/pioc/cpu"
)

// originLimit is the byte address past the end of the code space.
const originLimit = 0x2000

// Assembler is an include expanding, ORG aware assembler for the RISC8B eMCU.
type Assembler struct {
	Verbose  bool                              // If set, verbosely logs the assembler actions.
	Logger   *log.Logger                       // Diagnostic log; nil is log.Default().
	Symbols  SymTab                            // Base symbol table; nil is DefaultSymbols().
	ReadFile func(path string) ([]byte, error) // Include file reader; nil is os.ReadFile.
}

func (asm *Assembler) logger() *log.Logger {
	if asm.Logger == nil {
		return log.Default()
	}
	return asm.Logger
}

// debugf logs only when verbose.
func (asm *Assembler) debugf(format string, args ...any) {
	if asm.Verbose {
		asm.logger().Printf(format, args...)
	}
}

// cautionf logs an advisory diagnostic.
func (asm *Assembler) cautionf(format string, args ...any) {
	asm.logger().Print(f("caution: ") + f(format, args...))
}

func (asm *Assembler) symbols() SymTab {
	if asm.Symbols == nil {
		return DefaultSymbols()
	}
	return asm.Symbols
}

func (asm *Assembler) readFile(path string) ([]byte, error) {
	if asm.ReadFile == nil {
		return os.ReadFile(path)
	}
	return asm.ReadFile(path)
}

// Expand replaces every INCLUDE statement with the statements of the file
// it names, recursively.
func (asm *Assembler) Expand(prog []Stmt) (out []Stmt, err error) {
	return asm.expand(prog, nil)
}

func (asm *Assembler) expand(prog []Stmt, stack []string) (out []Stmt, err error) {
	for _, stmt := range prog {
		inc, ok := stmt.(*Include)
		if !ok {
			out = append(out, stmt)
			continue
		}

		if slices.Contains(stack, inc.Path) {
			err = ErrIncludeCycle(inc.Path)
			return
		}

		asm.debugf("include %v", inc.Path)

		var sub []Stmt
		sub, err = asm.include(inc.Path)
		if err == nil {
			sub, err = asm.expand(sub, append(stack, inc.Path))
		}
		if err != nil {
			if _, nested := err.(*ErrInclude); !nested {
				err = &ErrInclude{Path: inc.Path, Err: err}
			}
			return
		}

		out = append(out, sub...)
	}

	return
}

func (asm *Assembler) include(path string) (prog []Stmt, err error) {
	data, err := asm.readFile(path)
	if err != nil {
		return
	}

	prog, err = Parse(bytes.NewReader(data))
	return
}

// Emit encodes an include expanded program against a resolved symbol table.
func (asm *Assembler) Emit(sym SymTab, prog []Stmt) (words []uint16, err error) {
	var addr int

	for _, stmt := range prog {
		asm.debugf("%04X: %v", addr*instSize, stmt)

		switch s := stmt.(type) {
		case *Define:
		case *Origin:
			addr, err = asm.origin(sym, s, len(words))
			if err != nil {
				return
			}
			for len(words) < addr {
				words = append(words, 0)
			}
		case *Instruction:
			var word uint16
			word, err = asm.encode(sym, s, int64(addr*instSize))
			if err != nil {
				return
			}
			if addr < len(words) {
				words[addr] = word
			} else {
				words = append(words, word)
			}
			addr++
		case *Include:
			err = ErrIncludeUnexpanded
			return
		}
	}

	return
}

// origin evaluates an ORG statement to a word index.
func (asm *Assembler) origin(sym SymTab, s *Origin, emitted int) (addr int, err error) {
	value, err := sym.Eval(s.Addr)
	if err != nil {
		return
	}

	if value&1 != 0 {
		err = ErrAlign(value)
		return
	}

	if value < 0 || value > originLimit {
		err = ErrOrigin(value)
		return
	}

	addr = int(value / instSize)
	if addr < emitted {
		asm.cautionf("ORG %#x moves back over %d emitted words", value, emitted-addr)
	}

	return
}

// encode converts an instruction statement at byte address pc to its word.
func (asm *Assembler) encode(sym SymTab, s *Instruction, pc int64) (word uint16, err error) {
	mn, ok := mnemonics[s.Mnemonic]
	if !ok {
		err = ErrMnemonic(s.Mnemonic)
		return
	}

	if mn.unsupported {
		err = ErrUnsupported(s.Mnemonic)
		return
	}

	fields := mn.op.Fields()[len(mn.implied):]

	least := len(fields)
	if least > 0 && fields[least-1].IsDest() {
		least--
	}

	switch {
	case len(s.Args) > len(fields):
		err = &ErrOperand{Mnemonic: s.Mnemonic, Index: len(fields), Err: ErrOperandExtra}
		return
	case len(s.Args) < least:
		err = &ErrOperand{Mnemonic: s.Mnemonic, Index: len(s.Args), Err: ErrOperandMissing}
		return
	}

	inst := cpu.Inst{Op: mn.op}
	for n, value := range mn.implied {
		inst.Args[n], err = mn.op.Fields()[n].Narrow(value)
		if err != nil {
			return
		}
	}

	for n, fld := range fields {
		var arg cpu.Arg
		if n < len(s.Args) {
			arg, err = asm.operand(sym, fld, s.Args[n], pc)
		} else {
			arg = cpu.DEST_F
		}
		if err != nil {
			err = &ErrOperand{Mnemonic: s.Mnemonic, Index: n, Err: err}
			return
		}
		inst.Args[len(mn.implied)+n] = arg
	}

	if mn.caution {
		asm.cautionf("%v is reinterpreted as %v", s.Mnemonic, bare(inst))
	}

	word = inst.Word()
	if got := cpu.Decode(word); inst.Op != cpu.OP_DW && got.Op != inst.Op {
		asm.cautionf("%v encodes as %v", bare(inst), bare(got))
	}

	return
}

// bare renders an instruction without its trailing comment.
func bare(inst cpu.Inst) string {
	text, _, _ := strings.Cut(inst.String(), "\t")
	return text
}

// operand evaluates and narrows an expression to an instruction field.
func (asm *Assembler) operand(sym SymTab, fld cpu.Field, expr Expr, pc int64) (arg cpu.Arg, err error) {
	if fld.IsDest() && expr.Num == 0 {
		switch strings.ToLower(string(expr.Label)) {
		case "a":
			arg = cpu.DEST_A
			return
		case "f":
			arg = cpu.DEST_F
			return
		}
	}

	value, err := sym.Eval(expr)
	if err != nil {
		return
	}

	arg, err = fld.NarrowAt(int64(value), pc)
	return
}

// AssembleStmts expands, resolves and emits a parsed program.
func (asm *Assembler) AssembleStmts(prog []Stmt) (out *cpu.Program, err error) {
	prog, err = asm.Expand(prog)
	if err != nil {
		return
	}

	base := asm.symbols()
	sym, err := Resolve(base, prog)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, name := range sym.Names() {
			if _, builtin := base[name]; !builtin {
				asm.debugf("%v = %#x", name, sym[name])
			}
		}
	}

	words, err := asm.Emit(sym, prog)
	if err != nil {
		return
	}

	out = &cpu.Program{Words: words}
	return
}

// Assemble parses and assembles a source text.
func (asm *Assembler) Assemble(input io.Reader) (prog *cpu.Program, err error) {
	stmts, err := Parse(input)
	if err != nil {
		return
	}

	prog, err = asm.AssembleStmts(stmts)
	return
}

// AssembleFile assembles the source file at path.
func (asm *Assembler) AssembleFile(path string) (prog *cpu.Program, err error) {
	return asm.AssembleStmts([]Stmt{&Include{Path: path}})
}

// AssembleLine assembles a single instruction line, placed at address 0.
func (asm *Assembler) AssembleLine(line string) (word uint16, err error) {
	stmt, err := ParseLine(line)
	if err != nil {
		return
	}

	s, ok := stmt.(*Instruction)
	if !ok {
		err = ErrNotInstruction
		return
	}

	word, err = asm.encode(asm.symbols(), s, 0)
	return
}
