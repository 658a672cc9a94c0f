package asm

import (
	"errors"

	"github.com/ezrec/pioc/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrEnd       = errors.New(f("END reached"))
	ErrMultiline = errors.New(f("line contains a line break"))

	// Assembler errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))
	ErrNotInstruction = errors.New(f("not an instruction"))

	// Symbol errors
	ErrIncludeUnexpanded = errors.New(f("INCLUDE must be expanded before resolving symbols"))
)

// ErrSyntax is a source line that failed to parse.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParse carries the text that could not be parsed.
type ErrParse string

func (err ErrParse) Error() string {
	return f("unable to parse '%v'", string(err))
}

// ErrNumber is a numeric literal that does not fit in 32 bits.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a 32-bit number", string(err))
}

// ErrMnemonic is an unknown mnemonic spelling.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not a mnemonic", string(err))
}

// ErrInclude is a failure to read or parse an included file.
type ErrInclude struct {
	Path string
	Err  error
}

func (err ErrInclude) Error() string {
	return f("include %v: %v", err.Path, err.Err)
}

func (err ErrInclude) Unwrap() error {
	return err.Err
}

// ErrIncludeCycle is an include of a file that is already being included.
type ErrIncludeCycle string

func (err ErrIncludeCycle) Error() string {
	return f("%v includes itself", string(err))
}

// ErrSymbolUnresolved is a definition that never resolved.
type ErrSymbolUnresolved string

func (err ErrSymbolUnresolved) Error() string {
	return f("symbol %v unresolved", string(err))
}

// ErrSymbolMissing is a reference to an undefined symbol.
type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(err))
}

// ErrSymbolDuplicate is a symbol defined more than once in a program.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v duplicated", string(err))
}

// ErrSymbolConflict is a definition that changes an existing symbol's value.
type ErrSymbolConflict struct {
	Name  string
	Value int32
	Prior int32
}

func (err ErrSymbolConflict) Error() string {
	return f("symbol %v is %#x, redefined as %#x", err.Name, err.Prior, err.Value)
}

// ErrSymbolValue is a symbol file global that does not fit in 32 bits.
type ErrSymbolValue string

func (err ErrSymbolValue) Error() string {
	return f("symbol %v is not a 32-bit integer", string(err))
}

// ErrUnsupported is a mnemonic with no known encoding.
type ErrUnsupported Mnemonic

func (err ErrUnsupported) Error() string {
	return f("%v has no known encoding", string(err))
}

// ErrOperand is an operand a mnemonic does not accept.
type ErrOperand struct {
	Mnemonic Mnemonic
	Index    int
	Err      error
}

func (err ErrOperand) Error() string {
	return f("%v operand %d: %v", err.Mnemonic, err.Index+1, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}

// ErrAlign is an ORG to an odd byte address.
type ErrAlign int32

func (err ErrAlign) Error() string {
	return f("origin %#x is not word aligned", int32(err))
}

// ErrOrigin is an ORG outside of the code address space.
type ErrOrigin int32

func (err ErrOrigin) Error() string {
	return f("origin %#x out of range", int32(err))
}
