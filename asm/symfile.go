package asm

import (
	"maps"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadSymbols executes a Starlark symbol file and sets Symbols to the base
// table plus every integer global the file defines. The base table is
// predeclared, so the file may compute from it:
//
//	MY_FLAGS = SFR_DATA_REG0 + 2
//	MY_BIT = 3
//
// src is as for starlark.ExecFile: nil reads filename, otherwise a string,
// []byte or io.Reader.
func (asm *Assembler) LoadSymbols(filename string, src any) (err error) {
	base := asm.symbols()

	predeclared := starlark.StringDict{}
	for name, value := range base {
		predeclared[name] = starlark.MakeInt(int(value))
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			asm.cautionf("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	sym := maps.Clone(base)
	for name, value := range globals {
		st_int, ok := value.(starlark.Int)
		if !ok {
			continue
		}

		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
			err = ErrSymbolValue(name)
			return
		}

		asm.debugf("%v: %v = %#x", filename, name, st_int64)
		sym[name] = int32(st_int64)
	}

	asm.Symbols = sym
	return
}
