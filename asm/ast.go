package asm

import (
	"fmt"
	"strings"
)

// Ident is a symbol name.
type Ident string

// Expr is an operand expression: a literal when Label is empty, otherwise
// the value of Label plus Num.
type Expr struct {
	Label Ident
	Num   int32
}

// Num is a literal expression.
func Num(value int32) Expr {
	return Expr{Num: value}
}

// Label is a symbol reference expression.
func Label(name Ident) Expr {
	return Expr{Label: name}
}

// Add is a symbol reference plus a constant offset.
func Add(name Ident, offset int32) Expr {
	return Expr{Label: name, Num: offset}
}

// IsLiteral returns true if the expression needs no symbol lookup.
func (expr Expr) IsLiteral() bool {
	return len(expr.Label) == 0
}

func (expr Expr) String() string {
	switch {
	case expr.IsLiteral():
		return fmt.Sprintf("%d", expr.Num)
	case expr.Num == 0:
		return string(expr.Label)
	}
	return fmt.Sprintf("%v%+d", expr.Label, expr.Num)
}

// Stmt is a parsed source statement: *Define, *Origin, *Include or
// *Instruction.
type Stmt interface {
	fmt.Stringer
	stmt()
}

// Define is a NAME EQU expr statement.
type Define struct {
	Name  Ident
	Value Expr
}

// Origin is an ORG expr statement.
type Origin struct {
	Addr Expr
}

// Include is an INCLUDE path statement.
type Include struct {
	Path string
}

// Instruction is an optionally labelled mnemonic with up to two operands.
type Instruction struct {
	Label    Ident
	Mnemonic Mnemonic
	Args     []Expr
}

func (*Define) stmt()      {}
func (*Origin) stmt()      {}
func (*Include) stmt()     {}
func (*Instruction) stmt() {}

func (s *Define) String() string {
	return fmt.Sprintf("%v EQU %v", s.Name, s.Value)
}

func (s *Origin) String() string {
	return fmt.Sprintf("\tORG %v", s.Addr)
}

func (s *Include) String() string {
	return fmt.Sprintf("\tINCLUDE %v", s.Path)
}

func (s *Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(string(s.Label))
	sb.WriteString("\t")
	sb.WriteString(string(s.Mnemonic))
	for n, arg := range s.Args {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	return sb.String()
}
