package asm

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reEnd       = regexp.MustCompile(`^\s*END\s*(;.*)?$`)
	reSpace     = regexp.MustCompile(`^\s+`)
	reSeparator = regexp.MustCompile(`^[ \t:,]+`)
	reIdent     = regexp.MustCompile(`^[A-Za-z_$#@][A-Za-z0-9_$#@]*`)
	rePath      = regexp.MustCompile(`^[^ \t;]+`)
	reTrailer   = regexp.MustCompile(`^[ \t:,]*(;.*)?$`)
)

// literal is a numeric literal form. A zero base is a character literal.
type literal struct {
	re   *regexp.Regexp
	base int
}

// literals are tried in order; the first match wins.
var literals = []literal{
	{regexp.MustCompile(`^0[bB]([01]+(?:_[01]+)*)`), 2},
	{regexp.MustCompile(`^[bB]'([01]+(?:_[01]+)*)'`), 2},
	{regexp.MustCompile(`^0[dD]([0-9]+)`), 10},
	{regexp.MustCompile(`^[dD]'([0-9]+)'`), 10},
	{regexp.MustCompile(`^0o([0-7]+)`), 8},
	{regexp.MustCompile(`^0[xX]([0-9a-fA-F]+)`), 16},
	{regexp.MustCompile(`^[hH]'([0-9a-fA-F]+)'`), 16},
	{regexp.MustCompile(`^'(\\['"nrt\\0]|[^'\\])'`), 0},
	{regexp.MustCompile(`^([+-]?[0-9]+)`), 10},
}

var escapes = map[byte]int32{
	'\'': '\'',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'\\': '\\',
	'0':  0,
}

// lexer walks a single line of source.
type lexer struct {
	text string
	pos  int
	err  error // First literal or mnemonic error seen.
}

func (lx *lexer) rest() string {
	return lx.text[lx.pos:]
}

// match consumes the text matched by re at the current position.
func (lx *lexer) match(re *regexp.Regexp) (text string, ok bool) {
	loc := re.FindStringIndex(lx.rest())
	if loc == nil || loc[1] == 0 {
		return
	}

	text = lx.rest()[:loc[1]]
	lx.pos += loc[1]
	ok = true
	return
}

func (lx *lexer) keyword(word string) (ok bool) {
	ok = strings.HasPrefix(lx.rest(), word)
	if ok {
		lx.pos += len(word)
	}
	return
}

func (lx *lexer) space() {
	lx.match(reSpace)
}

func (lx *lexer) separator() (ok bool) {
	_, ok = lx.match(reSeparator)
	return
}

func (lx *lexer) fail(err error) {
	if lx.err == nil {
		lx.err = err
	}
}

// number consumes a numeric literal.
func (lx *lexer) number() (value int32, ok bool) {
	rest := lx.rest()
	for _, lit := range literals {
		m := lit.re.FindStringSubmatch(rest)
		if m == nil {
			continue
		}

		if lit.base == 0 {
			if m[1][0] == '\\' {
				value = escapes[m[1][1]]
			} else {
				value = []rune(m[1])[0]
			}
		} else {
			v, err := strconv.ParseInt(strings.ReplaceAll(m[1], "_", ""), lit.base, 32)
			if err != nil {
				lx.fail(ErrNumber(m[0]))
				continue
			}
			value = int32(v)
		}

		lx.pos += len(m[0])
		ok = true
		return
	}

	return
}

// expr consumes a literal or a symbol reference.
func (lx *lexer) expr() (expr Expr, ok bool) {
	value, ok := lx.number()
	if ok {
		expr = Num(value)
		return
	}

	name, ok := lx.match(reIdent)
	if ok {
		expr = Label(Ident(name))
	}
	return
}

// mnemonic consumes a known mnemonic spelling.
func (lx *lexer) mnemonic() (m Mnemonic, ok bool) {
	mark := lx.pos
	name, ok := lx.match(reIdent)
	if !ok {
		return
	}

	m = Mnemonic(name)
	if !m.Valid() {
		lx.fail(ErrMnemonic(name))
		lx.pos = mark
		m = ""
		ok = false
	}
	return
}

// operands consumes up to two separator prefixed expressions.
func (lx *lexer) operands() (args []Expr) {
	for len(args) < 2 {
		mark := lx.pos
		if !lx.separator() {
			break
		}
		expr, ok := lx.expr()
		if !ok {
			lx.pos = mark
			break
		}
		args = append(args, expr)
	}

	return
}

// restore rewinds the lexer to mark unless ok.
func (lx *lexer) restore(mark int, ok *bool) {
	if !*ok {
		lx.pos = mark
	}
}

// define parses 'NAME EQU expr', with NAME at column 0.
func (lx *lexer) define() (stmt Stmt, ok bool) {
	defer lx.restore(lx.pos, &ok)

	name, ok := lx.match(reIdent)
	if !ok {
		return
	}

	ok = lx.separator() && lx.keyword("EQU") && lx.separator()
	if !ok {
		return
	}

	value, ok := lx.expr()
	if ok {
		stmt = &Define{Name: Ident(name), Value: value}
	}
	return
}

// origin parses 'ORG expr'.
func (lx *lexer) origin() (stmt Stmt, ok bool) {
	defer lx.restore(lx.pos, &ok)

	lx.space()
	ok = lx.keyword("ORG") && lx.separator()
	if !ok {
		return
	}

	addr, ok := lx.expr()
	if ok {
		stmt = &Origin{Addr: addr}
	}
	return
}

// include parses 'INCLUDE path'.
func (lx *lexer) include() (stmt Stmt, ok bool) {
	defer lx.restore(lx.pos, &ok)

	lx.space()
	ok = lx.keyword("INCLUDE") && lx.separator()
	if !ok {
		return
	}

	path, ok := lx.match(rePath)
	if ok {
		stmt = &Include{Path: path}
	}
	return
}

// instruction parses '[label] MNEMONIC [a[, b]]'. A line starting with a
// mnemonic at column 0 is accepted when it does not parse as a label.
func (lx *lexer) instruction() (stmt Stmt, ok bool) {
	mark := lx.pos
	defer lx.restore(mark, &ok)

	label, _ := lx.match(reIdent)

	var m Mnemonic
	if lx.separator() {
		m, ok = lx.mnemonic()
	}

	if !ok && len(label) != 0 {
		lx.pos = mark
		label = ""
		m, ok = lx.mnemonic()
	}

	if !ok {
		return
	}

	stmt = &Instruction{
		Label:    Ident(label),
		Mnemonic: m,
		Args:     lx.operands(),
	}
	return
}

// ParseLine parses one line of source. Blank and comment lines return a nil
// statement. An END line returns ErrEnd.
func ParseLine(line string) (stmt Stmt, err error) {
	if strings.ContainsAny(line, "\r\n") {
		err = ErrMultiline
		return
	}

	if reEnd.MatchString(line) {
		err = ErrEnd
		return
	}

	lx := &lexer{text: line}

	var ok bool
	for _, alt := range []func() (Stmt, bool){
		lx.define,
		lx.origin,
		lx.include,
		lx.instruction,
	} {
		stmt, ok = alt()
		if ok {
			break
		}
	}

	if !reTrailer.MatchString(lx.rest()) {
		if stmt == nil && lx.err != nil {
			err = lx.err
		} else {
			err = ErrParse(strings.TrimLeft(lx.rest(), " \t:,"))
		}
		stmt = nil
		return
	}

	return
}

// Parse parses a source text into statements, stopping at END.
func Parse(input io.Reader) (prog []Stmt, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		var stmt Stmt
		stmt, err = ParseLine(line)
		if errors.Is(err, ErrEnd) {
			err = nil
			break
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		if stmt != nil {
			prog = append(prog, stmt)
		}
	}

	if err == nil {
		err = scanner.Err()
	}

	return
}
