package cpu

import (
	"fmt"
	"strings"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOP    = Op(0)  // NOP
	OP_CLRWDT = Op(1)  // CLRWDT
	OP_SLEEPX = Op(2)  // SLEEPX
	OP_WAITB  = Op(3)  // WAITB
	OP_RDCODE = Op(4)  // RDCODE
	OP_PUSHAS = Op(5)  // PUSHAS
	OP_POPAS  = Op(6)  // POPAS
	OP_PUSHA2 = Op(7)  // PUSHA2
	OP_POPA2  = Op(8)  // POPA2
	OP_RET    = Op(9)  // RET
	OP_RETZ   = Op(10) // RETZ
	OP_RETIE  = Op(11) // RETIE
	OP_RETL   = Op(12) // RETL
	OP_RETLN  = Op(13) // RETLN
	OP_CLRA   = Op(14) // CLRA
	OP_CLR    = Op(15) // CLR
	OP_MOVA   = Op(16) // MOVA
	OP_MOV    = Op(17) // MOV
	OP_INC    = Op(18) // INC
	OP_DEC    = Op(19) // DEC
	OP_INCSZ  = Op(20) // INCSZ
	OP_DECSZ  = Op(21) // DECSZ
	OP_SWAP   = Op(22) // SWAP
	OP_AND    = Op(23) // AND
	OP_IOR    = Op(24) // IOR
	OP_XOR    = Op(25) // XOR
	OP_ADD    = Op(26) // ADD
	OP_SUB    = Op(27) // SUB
	OP_RCL    = Op(28) // RCL
	OP_RCR    = Op(29) // RCR
	OP_MOVIP  = Op(30) // MOVIP
	OP_MOVIA  = Op(31) // MOVIA
	OP_MOVA1F = Op(32) // MOVA1F
	OP_MOVA2F = Op(33) // MOVA2F
	OP_MOVA1P = Op(34) // MOVA1P
	OP_MOVA2P = Op(35) // MOVA2P
	OP_MOVL   = Op(36) // MOVL
	OP_ANDL   = Op(37) // ANDL
	OP_IORL   = Op(38) // IORL
	OP_XORL   = Op(39) // XORL
	OP_ADDL   = Op(40) // ADDL
	OP_SUBL   = Op(41) // SUBL
	OP_CMPLN  = Op(42) // CMPLN
	OP_CMPL   = Op(43) // CMPL
	OP_BC     = Op(44) // BC
	OP_BS     = Op(45) // BS
	OP_BTSC   = Op(46) // BTSC
	OP_BTSS   = Op(47) // BTSS
	OP_BCTC   = Op(48) // BCTC
	OP_BP1F   = Op(49) // BP1F
	OP_BP2F   = Op(50) // BP2F
	OP_BG1F   = Op(51) // BG1F
	OP_BG2F   = Op(52) // BG2F
	OP_JMP    = Op(53) // JMP
	OP_CALL   = Op(54) // CALL
	OP_JNZ    = Op(55) // JNZ
	OP_JZ     = Op(56) // JZ
	OP_JNC    = Op(57) // JNC
	OP_JC     = Op(58) // JC
	OP_CMPZ   = Op(59) // CMPZ
	OP_DW     = Op(60) // DW
)

// fieldKind is the operand type carried by an instruction field.
type fieldKind int

const (
	fieldReg8 = fieldKind(iota)
	fieldReg9
	fieldDest
	fieldImm
	fieldU2
	fieldU3
	fieldU7
	fieldU9
	fieldU10
	fieldAddr8
	fieldAddr10
	fieldAddr12
	fieldWord
)

var fieldWidth = [...]uint{
	fieldReg8:   8,
	fieldReg9:   9,
	fieldDest:   1,
	fieldImm:    8,
	fieldU2:     2,
	fieldU3:     3,
	fieldU7:     7,
	fieldU9:     9,
	fieldU10:    10,
	fieldAddr8:  8,
	fieldAddr10: 10,
	fieldAddr12: 12,
	fieldWord:   16,
}

// Field is one operand field of an operation's instruction word.
type Field struct {
	kind  fieldKind
	shift uint
}

// Width returns the field width in bits.
func (fld Field) Width() uint {
	return fieldWidth[fld.kind]
}

// IsDest is true for the A/F destination selector.
func (fld Field) IsDest() bool {
	return fld.kind == fieldDest
}

// IsAddr is true for code address fields, which take byte addresses.
func (fld Field) IsAddr() bool {
	switch fld.kind {
	case fieldAddr8, fieldAddr10, fieldAddr12:
		return true
	}
	return false
}

func (fld Field) mask() uint16 {
	return uint16((uint32(1) << fld.Width()) - 1)
}

// Narrow converts value to this field's operand type, failing if it does not
// fit. Address fields take a byte address.
func (fld Field) Narrow(value int64) (arg Arg, err error) {
	var v uint16

	switch fld.kind {
	case fieldAddr8, fieldAddr10, fieldAddr12:
		return MakeAddr(value, fld.Width())
	}

	v, err = narrow(value, fld.Width())
	if err != nil {
		return
	}

	arg = fld.unpack(v)
	return
}

// codeBits is the width of a word address in the code space.
const codeBits = 12

// NarrowAt is Narrow for an instruction at byte address pc. Address fields
// narrower than the code space replace only the low bits of the program
// counter, so they accept a target in the page of pc, or an offset within
// the first page.
func (fld Field) NarrowAt(value int64, pc int64) (arg Arg, err error) {
	width := fld.Width()
	if !fld.IsAddr() || width >= codeBits {
		return fld.Narrow(value)
	}

	if value&1 != 0 {
		err = ErrAddress(value)
		return
	}

	word := value >> 1
	if word < 0 || word >= 1<<codeBits {
		err = ErrRange{Value: value, Bits: codeBits + 1}
		return
	}

	page := word >> width
	if page != 0 && page != (pc>>1)>>width {
		err = ErrPage{Target: value, From: pc}
		return
	}

	arg = Addr(uint16(word) & fld.mask())
	return
}

// unpack converts raw field bits to the operand type.
func (fld Field) unpack(raw uint16) Arg {
	switch fld.kind {
	case fieldReg8, fieldReg9:
		return Reg(raw)
	case fieldDest:
		return Dest(raw)
	case fieldImm:
		return Imm(raw)
	case fieldU2:
		return U2(raw)
	case fieldU3:
		return U3(raw)
	case fieldU7:
		return U7(raw)
	case fieldU9:
		return U9(raw)
	case fieldU10:
		return U10(raw)
	case fieldAddr8, fieldAddr10, fieldAddr12:
		return Addr(raw)
	}
	return Word(raw)
}

var (
	fieldsNone    = []Field{}
	fieldsU2      = []Field{{fieldU2, 0}}
	fieldsU3      = []Field{{fieldU3, 0}}
	fieldsImm     = []Field{{fieldImm, 0}}
	fieldsU9      = []Field{{fieldU9, 0}}
	fieldsU10     = []Field{{fieldU10, 0}}
	fieldsReg     = []Field{{fieldReg8, 0}}
	fieldsReg9    = []Field{{fieldReg9, 0}}
	fieldsRegDest = []Field{{fieldReg8, 0}, {fieldDest, 12}}
	fieldsMovDest = []Field{{fieldReg9, 0}, {fieldDest, 12}}
	fieldsRegBit  = []Field{{fieldReg8, 0}, {fieldU3, 8}}
	fieldsPortBit = []Field{{fieldU2, 3}, {fieldU3, 0}}
	fieldsAddr10  = []Field{{fieldAddr10, 0}}
	fieldsAddr12  = []Field{{fieldAddr12, 0}}
	fieldsCmpz    = []Field{{fieldU7, 8}, {fieldAddr8, 0}}
	fieldsWord    = []Field{{fieldWord, 0}}
)

// opcode is the word layout of an operation.
type opcode struct {
	mask   uint16
	bits   uint16
	fields []Field
	note   string
}

var opcodes = [...]opcode{
	OP_NOP:    {0xfffc, 0x0000, fieldsNone, ""},
	OP_CLRA:   {0xfffc, 0x0004, fieldsNone, ""},
	OP_CLRWDT: {0xfffc, 0x0008, fieldsNone, ""},
	OP_SLEEPX: {0xfffc, 0x000c, fieldsU2, ""},
	OP_WAITB:  {0xfff8, 0x0010, fieldsU3, ""},
	OP_RDCODE: {0xfffc, 0x0018, fieldsU2, ""},
	OP_BCTC:   {0xfffc, 0x001c, fieldsU2, "%[1]v->C"},
	OP_PUSHAS: {0xfffc, 0x0020, fieldsNone, ""},
	OP_POPAS:  {0xfffc, 0x0024, fieldsNone, ""},
	OP_PUSHA2: {0xfffc, 0x0028, fieldsNone, ""},
	OP_POPA2:  {0xfffc, 0x002c, fieldsNone, ""},
	OP_RET:    {0xfffc, 0x0030, fieldsNone, ""},
	OP_RETZ:   {0xfffc, 0x0034, fieldsNone, ""},
	OP_RETIE:  {0xfffc, 0x0038, fieldsNone, ""},
	OP_BP1F:   {0xffe0, 0x0080, fieldsPortBit, "SFR_INDIR_ADDR[%[2]v]->%[1]v"},
	OP_BP2F:   {0xffe0, 0x00a0, fieldsPortBit, "SFR_DATA_EXCH[%[2]v]->%[1]v"},
	OP_BG1F:   {0xffe0, 0x00c0, fieldsPortBit, "%[1]v->SFR_INDIR_ADDR[%[2]v]"},
	OP_BG2F:   {0xffe0, 0x00e0, fieldsPortBit, "%[1]v->SFR_DATA_EXCH[%[2]v]"},
	OP_CLR:    {0xff00, 0x0100, fieldsReg, "0x00->%[1]v, 1->Z"},
	OP_MOV:    {0xee00, 0x0200, fieldsMovDest, "%[1]v->%[2]v"},
	OP_INC:    {0xef00, 0x0400, fieldsRegDest, "%[1]v+1->%[2]v"},
	OP_DEC:    {0xef00, 0x0500, fieldsRegDest, "%[1]v-1->%[2]v"},
	OP_INCSZ:  {0xef00, 0x0600, fieldsRegDest, "%[1]v+1->%[2]v, skip if Z"},
	OP_DECSZ:  {0xef00, 0x0700, fieldsRegDest, "%[1]v-1->%[2]v, skip if Z"},
	OP_SWAP:   {0xef00, 0x0800, fieldsRegDest, "%[1]v[3:0]<=>%[1]v[7:4] -> %[2]v"},
	OP_AND:    {0xef00, 0x0900, fieldsRegDest, "%[1]v&A->%[2]v"},
	OP_IOR:    {0xef00, 0x0a00, fieldsRegDest, "%[1]v|A->%[2]v"},
	OP_XOR:    {0xef00, 0x0b00, fieldsRegDest, "%[1]v^A->%[2]v"},
	OP_ADD:    {0xef00, 0x0c00, fieldsRegDest, "%[1]v+A->%[2]v"},
	OP_SUB:    {0xef00, 0x0d00, fieldsRegDest, "%[1]v-A->%[2]v"},
	OP_RCL:    {0xef00, 0x0e00, fieldsRegDest, "{%[1]v,C}<<1->%[2]v,%[1]v[7]->C"},
	OP_RCR:    {0xef00, 0x0f00, fieldsRegDest, "{%[1]v,C}>>1->%[2]v,%[1]v[0]->C"},
	OP_MOVA:   {0xfe00, 0x1000, fieldsReg9, "A->%[1]v"},
	OP_RETL:   {0xff00, 0x2000, fieldsImm, "%[1]v->A"},
	OP_RETLN:  {0xff00, 0x2100, fieldsImm, "%[1]v->A"},
	OP_MOVIP:  {0xfe00, 0x2200, fieldsU9, "%[1]v->SFR_INDIR_ADDR"},
	OP_MOVA1F: {0xff00, 0x2300, fieldsImm, "%[1]v->SFR_PORT_DIR"},
	OP_MOVIA:  {0xfc00, 0x2400, fieldsU10, "%[1]v->SFR_INDIR_ADDR2"},
	OP_MOVA2F: {0xff00, 0x2500, fieldsImm, "%[1]v->SFR_PORT_IO"},
	OP_MOVA2P: {0xff00, 0x2600, fieldsImm, "%[1]v->@SFR_INDIR_ADDR2"},
	OP_MOVA1P: {0xff00, 0x2700, fieldsImm, "%[1]v->@SFR_INDIR_ADDR"},
	OP_MOVL:   {0xff00, 0x2800, fieldsImm, "%[1]v->A"},
	OP_ANDL:   {0xff00, 0x2900, fieldsImm, "%[1]v&A->A"},
	OP_IORL:   {0xff00, 0x2a00, fieldsImm, "%[1]v|A->A"},
	OP_XORL:   {0xff00, 0x2b00, fieldsImm, "%[1]v^A->A"},
	OP_ADDL:   {0xff00, 0x2c00, fieldsImm, "%[1]v+A->A"},
	OP_SUBL:   {0xff00, 0x2d00, fieldsImm, "A-%[1]v->A"},
	OP_CMPLN:  {0xff00, 0x2e00, fieldsImm, "%[1]v+A -> Z,C"},
	OP_CMPL:   {0xff00, 0x2f00, fieldsImm, "%[1]v-A -> Z,C"},
	OP_JNZ:    {0xfc00, 0x3000, fieldsAddr10, ""},
	OP_JZ:     {0xfc00, 0x3400, fieldsAddr10, ""},
	OP_JNC:    {0xfc00, 0x3800, fieldsAddr10, ""},
	OP_JC:     {0xfc00, 0x3c00, fieldsAddr10, ""},
	OP_BC:     {0xf800, 0x4000, fieldsRegBit, "0->%[1]v[%[2]v]"},
	OP_BS:     {0xf800, 0x4800, fieldsRegBit, "1->%[1]v[%[2]v]"},
	OP_BTSC:   {0xf800, 0x5000, fieldsRegBit, "skip if %[1]v[%[2]v]==0"},
	OP_BTSS:   {0xf800, 0x5800, fieldsRegBit, "skip if %[1]v[%[2]v]==1"},
	OP_JMP:    {0xf000, 0x6000, fieldsAddr12, ""},
	OP_CALL:   {0xf000, 0x7000, fieldsAddr12, ""},
	OP_CMPZ:   {0x8000, 0x8000, fieldsCmpz, "%[2]v->PC[7:0] if A==%[1]v"},
	OP_DW:     {0x0000, 0x0000, fieldsWord, ""},
}

// decodeOrder is the match priority of Decode. Operations with fixed
// patterns come before the wide immediate forms that overlap them.
var decodeOrder = []Op{
	OP_NOP, OP_CLRA, OP_CLRWDT, OP_SLEEPX, OP_WAITB, OP_RDCODE, OP_BCTC,
	OP_PUSHAS, OP_POPAS, OP_PUSHA2, OP_POPA2, OP_RET, OP_RETZ, OP_RETIE,
	OP_BP1F, OP_BP2F, OP_BG1F, OP_BG2F,
	OP_CLR,
	OP_MOVL, OP_ANDL, OP_IORL, OP_XORL, OP_ADDL, OP_SUBL, OP_CMPLN, OP_CMPL,
	OP_RETL, OP_RETLN,
	OP_MOVA1F, OP_MOVA2F, OP_MOVA2P, OP_MOVA1P,
	OP_MOVIP, OP_MOVIA,
	OP_MOVA,
	OP_MOV,
	OP_INC, OP_DEC, OP_INCSZ, OP_DECSZ, OP_SWAP, OP_AND, OP_IOR, OP_XOR,
	OP_ADD, OP_SUB, OP_RCL, OP_RCR,
	OP_JMP, OP_CALL,
	OP_JNZ, OP_JZ, OP_JNC, OP_JC,
	OP_CMPZ,
	OP_BC, OP_BS, OP_BTSC, OP_BTSS,
}

// Valid returns true if op is a known operation.
func (op Op) Valid() bool {
	return op >= 0 && int(op) < len(opcodes)
}

// Fields returns the operand fields of op, in assembly order.
func (op Op) Fields() []Field {
	if !op.Valid() {
		return nil
	}
	return opcodes[op].fields
}

// Inst is a decoded instruction.
type Inst struct {
	Op   Op
	Args [2]Arg
}

// NewInst creates an instruction from an operation and its operands.
func NewInst(op Op, args ...Arg) (inst Inst) {
	inst.Op = op
	copy(inst.Args[:], args)
	return
}

// Word encodes the instruction. Operands are masked to their field widths,
// and missing operands encode as zero.
func (inst Inst) Word() (word uint16) {
	if !inst.Op.Valid() {
		return
	}

	code := &opcodes[inst.Op]
	word = code.bits
	for n, fld := range code.fields {
		arg := inst.Args[n]
		if arg == nil {
			continue
		}
		word |= (arg.bits() & fld.mask()) << fld.shift
	}

	return
}

// Decode converts an instruction word to an instruction. Words that match
// no operation decode as OP_DW.
func Decode(word uint16) (inst Inst) {
	for _, op := range decodeOrder {
		code := &opcodes[op]
		if word&code.mask != code.bits {
			continue
		}

		inst.Op = op
		for n, fld := range code.fields {
			inst.Args[n] = fld.unpack((word >> fld.shift) & fld.mask())
		}
		return
	}

	inst = NewInst(OP_DW, Word(word))
	return
}

// String renders the instruction as an assembly line, with a trailing
// comment describing its data movement where one is known.
func (inst Inst) String() string {
	if !inst.Op.Valid() {
		return inst.Op.String()
	}

	code := &opcodes[inst.Op]

	var sb strings.Builder
	sb.WriteString(inst.Op.String())
	for n := range code.fields {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(inst.Args[n]))
	}

	if len(code.note) != 0 {
		sb.WriteString("\t; ")
		sb.WriteString(fmt.Sprintf(code.note, inst.Args[0], inst.Args[1]))
	}

	return sb.String()
}
