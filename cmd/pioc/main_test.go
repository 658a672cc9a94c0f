package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pioc/cpu"
)

func run(args ...string) (out string, err error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	out = buf.String()
	return
}

func TestReplaceExt(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("blink.bin", replaceExt("blink.asm", ".bin"))
	assert.Equal("dir/blink.bin", replaceExt("dir/blink", ".bin"))
	assert.Equal("a.b.bin", replaceExt("a.b.ASM", ".bin"))
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)

	prog := &cpu.Program{Words: []uint16{0x4b9b, 0x0030}}

	var buf bytes.Buffer
	err := generate(&buf, "firmware", "blink", "blink.asm", prog)
	assert.NoError(err)
	assert.Equal(`// Code generated by pioc gen from blink.asm. DO NOT EDIT.

package firmware

var blink = [...]uint16{
	0x4B9B, // 0000: BS 0x9B, 3
	0x0030, // 0002: RET
}
`, buf.String())

	err = generate(&buf, "bad package", "x", "x.asm", prog)
	assert.Error(err)
}

func TestCommandsOne(t *testing.T) {
	assert := assert.New(t)

	out, err := run("as-one", "BS 0x9B, 3")
	assert.NoError(err)
	assert.Equal("0x4B9B\n", out)

	out, err = run("dis-one", "0x4B9B")
	assert.NoError(err)
	assert.Equal("BS 0x9B, 3\t; 1->0x9B[3]\n", out)

	out, err = run("dis-one", "24576")
	assert.NoError(err)
	assert.Equal("JMP 0x0000\n", out)

	_, err = run("dis-one", "0x10000")
	assert.Error(err)
}

func TestCommandsFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "blink.asm")
	symbols := filepath.Join(dir, "board.star")
	listing := filepath.Join(dir, "blink.lst")

	err := os.WriteFile(source, []byte("loop BS LED_REG, 3\n JMP loop\n DW 0x0040\n"), 0o644)
	assert.NoError(err)
	err = os.WriteFile(symbols, []byte("LED_REG = SFR_PORT_IO\n"), 0o644)
	assert.NoError(err)

	_, err = run("as", "--symbols", symbols, source)
	assert.NoError(err)

	image, err := os.ReadFile(filepath.Join(dir, "blink.bin"))
	assert.NoError(err)
	assert.Equal([]byte{0x0b, 0x4b, 0x00, 0x60, 0x40, 0x00}, image)

	_, err = run("dis", "--addr", "-o", listing, filepath.Join(dir, "blink.bin"))
	assert.NoError(err)

	text, err := os.ReadFile(listing)
	assert.NoError(err)
	assert.Equal("0000: 4B0B\tBS 0x0B, 3\t; 1->0x0B[3]\n"+
		"0002: 6000\tJMP 0x0000\n"+
		"0004: 0040\tDW 0x0040\n", string(text))

	_, err = run("as", filepath.Join(dir, "missing.asm"))
	assert.Error(err)
}
