package asm

import (
	"github.com/ezrec/pioc/cpu"
)

// Mnemonic is an instruction spelling, as written in source.
type Mnemonic string

// mnemonic describes how a spelling maps to an operation.
type mnemonic struct {
	op          cpu.Op
	implied     []int64 // Leading operand values supplied by the spelling.
	caution     bool    // Spelling is reinterpreted as another operation.
	unsupported bool    // Spelling is accepted, but cannot be encoded.
}

// mnemonics maps every accepted spelling to its operation.
var mnemonics = map[Mnemonic]mnemonic{
	"NOP":    {op: cpu.OP_NOP},
	"CLRWDT": {op: cpu.OP_CLRWDT},
	"WDT":    {op: cpu.OP_CLRWDT},
	"SLEEP":  {op: cpu.OP_SLEEPX, implied: []int64{0}},
	"SLEEPX": {op: cpu.OP_SLEEPX},
	"WAITB":  {op: cpu.OP_WAITB},
	"WAITRD": {op: cpu.OP_WAITB, implied: []int64{0}, caution: true},
	"WAITRO": {op: cpu.OP_WAITB, implied: []int64{0}, caution: true},
	"WAITWR": {op: cpu.OP_WAITB, implied: []int64{4}, caution: true},
	"RDCODE": {op: cpu.OP_RDCODE},
	"RCODE":  {op: cpu.OP_RDCODE},
	"PUSHAS": {op: cpu.OP_PUSHAS},
	"PUSHA":  {op: cpu.OP_PUSHAS},
	"POPAS":  {op: cpu.OP_POPAS},
	"POPA":   {op: cpu.OP_POPAS},
	"PUSHA2": {op: cpu.OP_PUSHA2},
	"POPA2":  {op: cpu.OP_POPA2},
	"RET":    {op: cpu.OP_RET},
	"RETURN": {op: cpu.OP_RET},
	"RETZ":   {op: cpu.OP_RETZ},
	"RETOK":  {op: cpu.OP_RETZ},
	"RETIE":  {op: cpu.OP_RETIE},
	"RETI":   {op: cpu.OP_RETIE},
	"RETL":   {op: cpu.OP_RETL},
	"RETLA":  {op: cpu.OP_RETL},
	"RETLN":  {op: cpu.OP_RETLN},
	"CLRA":   {op: cpu.OP_CLRA},
	"CLR":    {op: cpu.OP_CLR},
	"CLRF":   {op: cpu.OP_CLR},
	"MOVA":   {op: cpu.OP_MOVA},
	"MOVAF":  {op: cpu.OP_MOVA},
	"MOV":    {op: cpu.OP_MOV},
	"MOVF":   {op: cpu.OP_MOV},
	"INC":    {op: cpu.OP_INC},
	"INCF":   {op: cpu.OP_INC},
	"DEC":    {op: cpu.OP_DEC},
	"DECF":   {op: cpu.OP_DEC},
	"INCSZ":  {op: cpu.OP_INCSZ},
	"INCFSZ": {op: cpu.OP_INCSZ},
	"DECSZ":  {op: cpu.OP_DECSZ},
	"DECFSZ": {op: cpu.OP_DECSZ},
	"SWAP":   {op: cpu.OP_SWAP},
	"SWAPF":  {op: cpu.OP_SWAP},
	"AND":    {op: cpu.OP_AND},
	"ANDF":   {op: cpu.OP_AND},
	"IOR":    {op: cpu.OP_IOR},
	"IORF":   {op: cpu.OP_IOR},
	"OR":     {op: cpu.OP_IOR},
	"XOR":    {op: cpu.OP_XOR},
	"XORF":   {op: cpu.OP_XOR},
	"ADD":    {op: cpu.OP_ADD},
	"ADDF":   {op: cpu.OP_ADD},
	"SUB":    {op: cpu.OP_SUB},
	"SUBF":   {op: cpu.OP_SUB},
	"RCL":    {op: cpu.OP_RCL},
	"RLF":    {op: cpu.OP_RCL},
	"RCR":    {op: cpu.OP_RCR},
	"RRF":    {op: cpu.OP_RCR},
	"MOVIP":  {op: cpu.OP_MOVIP},
	"MOVIA":  {op: cpu.OP_MOVIA},
	"MOVA1F": {op: cpu.OP_MOVA1F},
	"MOVA2F": {op: cpu.OP_MOVA2F},
	"MOVA2P": {op: cpu.OP_MOVA2P},
	"MOVA1P": {op: cpu.OP_MOVA1P},
	"MOVL":   {op: cpu.OP_MOVL},
	"MOVLA":  {op: cpu.OP_MOVL},
	"ANDL":   {op: cpu.OP_ANDL},
	"ANDLA":  {op: cpu.OP_ANDL},
	"IORL":   {op: cpu.OP_IORL},
	"IORLA":  {op: cpu.OP_IORL},
	"XORL":   {op: cpu.OP_XORL},
	"XORLA":  {op: cpu.OP_XORL},
	"ADDL":   {op: cpu.OP_ADDL},
	"ADDLA":  {op: cpu.OP_ADDL},
	"SUBL":   {op: cpu.OP_SUBL},
	"SUBLA":  {op: cpu.OP_SUBL},
	"CMPLN":  {op: cpu.OP_CMPLN},
	"CMPL":   {op: cpu.OP_CMPL},
	"BC":     {op: cpu.OP_BC},
	"BCF":    {op: cpu.OP_BC},
	"BS":     {op: cpu.OP_BS},
	"BSF":    {op: cpu.OP_BS},
	"BTSC":   {op: cpu.OP_BTSC},
	"BTFSC":  {op: cpu.OP_BTSC},
	"BTSS":   {op: cpu.OP_BTSS},
	"BTFSS":  {op: cpu.OP_BTSS},
	"BCTC":   {op: cpu.OP_BCTC},
	"BTC":    {op: cpu.OP_BCTC, caution: true},
	"BP1F":   {op: cpu.OP_BP1F},
	"BP2F":   {op: cpu.OP_BP2F},
	"BG1F":   {op: cpu.OP_BG1F},
	"BG2F":   {op: cpu.OP_BG2F},
	"JMP":    {op: cpu.OP_JMP},
	"GOTO":   {op: cpu.OP_JMP},
	"CALL":   {op: cpu.OP_CALL},
	"JNZ":    {op: cpu.OP_JNZ},
	"JZ":     {op: cpu.OP_JZ},
	"JNC":    {op: cpu.OP_JNC},
	"JC":     {op: cpu.OP_JC},
	"CMPZ":   {op: cpu.OP_CMPZ},
	"DW":     {op: cpu.OP_DW},

	"WAITSPI": {unsupported: true},
	"WRCODE":  {unsupported: true},
	"EXEC":    {unsupported: true},
}

// Valid returns true if the spelling is a known mnemonic.
func (m Mnemonic) Valid() (ok bool) {
	_, ok = mnemonics[m]
	return
}

// Op returns the operation a mnemonic encodes as.
func (m Mnemonic) Op() (op cpu.Op, ok bool) {
	mn, ok := mnemonics[m]
	if !ok || mn.unsupported {
		ok = false
		return
	}

	op = mn.op
	return
}
