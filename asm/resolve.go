package asm

import (
	"maps"
	"slices"
	"strings"
)

// instSize is the size, in bytes, of every instruction.
const instSize = 2

// operandSelector is true for the names that select an instruction
// destination, and so need not resolve as symbols.
func operandSelector(name string) bool {
	switch strings.ToLower(name) {
	case "a", "f":
		return true
	}
	return false
}

// Resolve computes the value of every EQU definition and instruction label
// in an include expanded program. The returned table is a copy of sym with
// the program's symbols added.
//
// Labels are recorded relative to the most recent ORG expression, so a label
// may depend on a symbol that is only defined later in the program.
// Definitions are resolved by repeated passes until a pass makes no
// progress.
func Resolve(sym SymTab, prog []Stmt) (out SymTab, err error) {
	out = maps.Clone(sym)
	if out == nil {
		out = SymTab{}
	}

	pending := map[string]Expr{}
	define := func(name Ident, expr Expr) error {
		if _, ok := pending[string(name)]; ok {
			return ErrSymbolDuplicate(name)
		}
		pending[string(name)] = expr
		return nil
	}

	origin := Num(0)
	var offset int32

	for _, stmt := range prog {
		switch s := stmt.(type) {
		case *Define:
			err = define(s.Name, s.Value)
		case *Origin:
			origin = s.Addr
			offset = 0
		case *Instruction:
			if len(s.Label) != 0 {
				err = define(s.Label, Add(origin.Label, origin.Num+offset))
			}
			offset += instSize
		case *Include:
			err = ErrIncludeUnexpanded
		}
		if err != nil {
			out = nil
			return
		}
	}

	for len(pending) != 0 {
		progress := false
		for _, name := range slices.Sorted(maps.Keys(pending)) {
			value, ok := out.lookup(pending[name])
			if !ok {
				continue
			}

			prior, exists := out[name]
			if exists && prior != value {
				err = &ErrSymbolConflict{Name: name, Value: value, Prior: prior}
				out = nil
				return
			}

			out[name] = value
			delete(pending, name)
			progress = true
		}

		if !progress {
			break
		}
	}

	for _, name := range slices.Sorted(maps.Keys(pending)) {
		if operandSelector(name) {
			continue
		}
		err = ErrSymbolUnresolved(name)
		out = nil
		return
	}

	return
}

// lookup evaluates expr if its symbol is known.
func (sym SymTab) lookup(expr Expr) (value int32, ok bool) {
	value, err := sym.Eval(expr)
	ok = err == nil
	return
}
