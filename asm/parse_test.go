package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"", "  ", "  \n  ", ";\n; comment\n"} {
		prog, err := Parse(strings.NewReader(text))
		assert.NoError(err)
		assert.Empty(prog, text)
	}
}

func TestParseInstructions(t *testing.T) {
	assert := assert.New(t)

	nop := &Instruction{Mnemonic: "NOP"}

	prog, err := Parse(strings.NewReader(" NOP\n NOP;"))
	assert.NoError(err)
	assert.Equal([]Stmt{nop, nop}, prog)

	prog, err = Parse(strings.NewReader(" NOP;comment\n NOP;\n;comment\n;\n"))
	assert.NoError(err)
	assert.Equal([]Stmt{nop, nop}, prog)
}

func TestParseEnd(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader(" NOP\n END ; done\n this is not assembly\n"))
	assert.NoError(err)
	assert.Equal([]Stmt{&Instruction{Mnemonic: "NOP"}}, prog)

	_, err = ParseLine("END")
	assert.ErrorIs(err, ErrEnd)
}

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		stmt Stmt
	}{
		{"", nil},
		{";", nil},
		{" ; comment", nil},
		{"a EQU 42 ; comment", &Define{Name: "a", Value: Num(42)}},
		{"abc EQU 0x42", &Define{Name: "abc", Value: Num(0x42)}},
		{"abc EQU L42", &Define{Name: "abc", Value: Label("L42")}},
		{"ORG 42 ; comment", &Origin{Addr: Num(42)}},
		{"ORG 0x42", &Origin{Addr: Num(0x42)}},
		{" ORG L42", &Origin{Addr: Label("L42")}},
		{"INCLUDE CH32X035.ASM ; comment", &Include{Path: "CH32X035.ASM"}},
		{` INCLUDE C:\RISC8B\CH533INC.ASM`, &Include{Path: `C:\RISC8B\CH533INC.ASM`}},
		{" NOP", &Instruction{Mnemonic: "NOP"}},
		{" NOP ; comment", &Instruction{Mnemonic: "NOP"}},
		{"NOP", &Instruction{Mnemonic: "NOP"}},
		{"NOP NOP", &Instruction{Label: "NOP", Mnemonic: "NOP"}},
		{"MOVL 5", &Instruction{Mnemonic: "MOVL", Args: []Expr{Num(5)}}},
		{" ADDL 0x42", &Instruction{Mnemonic: "ADDL", Args: []Expr{Num(0x42)}}},
		{"L1 ADDL 0x42", &Instruction{Label: "L1", Mnemonic: "ADDL", Args: []Expr{Num(0x42)}}},
		{"L1:ADDL 0x42", &Instruction{Label: "L1", Mnemonic: "ADDL", Args: []Expr{Num(0x42)}}},
		{" BS 0x9B, 3", &Instruction{Mnemonic: "BS", Args: []Expr{Num(0x9b), Num(3)}}},
		{" MOV SFR_DATA_REG0,A", &Instruction{Mnemonic: "MOV", Args: []Expr{Label("SFR_DATA_REG0"), Label("A")}}},
		{"\tMOVL ';'\t; semicolon", &Instruction{Mnemonic: "MOVL", Args: []Expr{Num(';')}}},
		{"\tJMP loop,", &Instruction{Mnemonic: "JMP", Args: []Expr{Label("loop")}}},
	}

	for _, entry := range table {
		stmt, err := ParseLine(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.stmt, stmt, entry.line)
	}
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	var residual ErrParse

	_, err := ParseLine(" NOP 1 2 3")
	assert.True(errors.As(err, &residual))
	assert.Equal(ErrParse("3"), residual)

	_, err = ParseLine(" HCF")
	assert.Equal(ErrMnemonic("HCF"), err)

	_, err = ParseLine(" EQU 5")
	assert.Error(err)

	_, err = ParseLine("abc EQU 42 x")
	assert.Equal(ErrParse("x"), err)

	_, err = ParseLine(" MOVL 0x1FFFFFFFF")
	assert.Error(err)

	_, err = ParseLine(" NOP\n NOP")
	assert.ErrorIs(err, ErrMultiline)

	_, err = ParseLine("INCLUDE")
	assert.Error(err)
}

func TestParseSyntaxError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(strings.NewReader(" NOP\n NOP\n BOGUS 1\n"))

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(3, syntax.LineNo)
	assert.Equal(" BOGUS 1", syntax.Line)
	assert.Equal(ErrMnemonic("BOGUS"), syntax.Err)
}

func TestParseExpr(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		expr Expr
	}{
		{"abc123", Label("abc123")},
		{"_$#@", Label("_$#@")},
		{"42", Num(42)},
		{"+42", Num(42)},
		{"-42", Num(-42)},
		{"0d42", Num(42)},
		{"0D42", Num(42)},
		{"d'42'", Num(42)},
		{"D'42'", Num(42)},
		{"0b101010", Num(42)},
		{"0B101010", Num(42)},
		{"0b0101010", Num(42)},
		{"0b0010_1010", Num(42)},
		{"b'101010'", Num(42)},
		{"B'101010'", Num(42)},
		{"b'0010_1010'", Num(42)},
		{"0o42", Num(0o42)},
		{"0x42", Num(0x42)},
		{"0X42", Num(0x42)},
		{"h'42'", Num(0x42)},
		{"H'42'", Num(0x42)},
		{"'a'", Num('a')},
		{`'\\'`, Num('\\')},
		{`'\''`, Num('\'')},
		{`'\"'`, Num('"')},
		{`'\n'`, Num('\n')},
		{`'\t'`, Num('\t')},
		{`'\0'`, Num(0)},
		{"-2147483648", Num(-2147483648)},
	}

	for _, entry := range table {
		lx := &lexer{text: entry.text}
		expr, ok := lx.expr()
		assert.True(ok, entry.text)
		assert.Equal(entry.expr, expr, entry.text)
		assert.Empty(lx.rest(), entry.text)
	}

	for _, text := range []string{"1a", "0123x", `'\'`, "1 + 1"} {
		lx := &lexer{text: text}
		_, ok := lx.expr()
		assert.False(ok && len(lx.rest()) == 0, text)
	}

	lx := &lexer{text: "0d99999999999"}
	lx.expr()
	assert.Equal(ErrNumber("0d99999999999"), lx.err)
}

func TestStmtString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("var EQU 42", (&Define{Name: "var", Value: Num(42)}).String())
	assert.Equal("\tORG var", (&Origin{Addr: Label("var")}).String())
	assert.Equal("\tINCLUDE x.asm", (&Include{Path: "x.asm"}).String())
	assert.Equal("L1\tBS 0x9b+2, -3", (&Instruction{
		Label:    "L1",
		Mnemonic: "BS",
		Args:     []Expr{Add("0x9b", 2), Num(-3)},
	}).String())
}
