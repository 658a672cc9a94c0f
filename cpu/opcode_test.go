package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstWord(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		inst Inst
		word uint16
	}{
		{NewInst(OP_NOP), 0x0000},
		{NewInst(OP_CLRA), 0x0004},
		{NewInst(OP_CLRWDT), 0x0008},
		{NewInst(OP_SLEEPX, U2(3)), 0x000f},
		{NewInst(OP_WAITB, U3(4)), 0x0014},
		{NewInst(OP_RDCODE, U2(1)), 0x0019},
		{NewInst(OP_BCTC, U2(2)), 0x001e},
		{NewInst(OP_PUSHAS), 0x0020},
		{NewInst(OP_POPAS), 0x0024},
		{NewInst(OP_PUSHA2), 0x0028},
		{NewInst(OP_POPA2), 0x002c},
		{NewInst(OP_RET), 0x0030},
		{NewInst(OP_RETZ), 0x0034},
		{NewInst(OP_RETIE), 0x0038},
		{NewInst(OP_BP1F, U2(1), U3(5)), 0x008d},
		{NewInst(OP_BG2F, U2(3), U3(7)), 0x00ff},
		{NewInst(OP_CLR, Reg(0x34)), 0x0134},
		{NewInst(OP_MOVA, Reg(0x1ff)), 0x11ff},
		{NewInst(OP_MOV, Reg(0x1ff), DEST_F), 0x13ff},
		{NewInst(OP_MOV, Reg(0x12), DEST_A), 0x0212},
		{NewInst(OP_INC, Reg(0x20), DEST_F), 0x1420},
		{NewInst(OP_RCR, Reg(0x20), DEST_A), 0x0f20},
		{NewInst(OP_RETL, Imm(0x55)), 0x2055},
		{NewInst(OP_RETLN, Imm(0xaa)), 0x21aa},
		{NewInst(OP_MOVIP, U9(0x0ff)), 0x22ff},
		{NewInst(OP_MOVA1F, Imm(0x12)), 0x2312},
		{NewInst(OP_MOVIA, U10(0x0c3)), 0x24c3},
		{NewInst(OP_MOVA2F, Imm(0x12)), 0x2512},
		{NewInst(OP_MOVA2P, Imm(0x12)), 0x2612},
		{NewInst(OP_MOVA1P, Imm(0x12)), 0x2712},
		{NewInst(OP_MOVL, Imm(0x5a)), 0x285a},
		{NewInst(OP_CMPL, Imm(0x5a)), 0x2f5a},
		{NewInst(OP_JNZ, Addr(0x3ff)), 0x33ff},
		{NewInst(OP_JC, Addr(0x001)), 0x3c01},
		{NewInst(OP_BC, Reg(0x9b), U3(3)), 0x439b},
		{NewInst(OP_BS, Reg(0x9b), U3(3)), 0x4b9b},
		{NewInst(OP_BTSS, Reg(0x01), U3(7)), 0x5f01},
		{NewInst(OP_JMP, Addr(0x080)), 0x6080},
		{NewInst(OP_CALL, Addr(0xfff)), 0x7fff},
		{NewInst(OP_CMPZ, U7(0x7f), Addr(0x10)), 0xff10},
		{NewInst(OP_DW, Word(0x0040)), 0x0040},
	}

	for _, entry := range table {
		assert.Equal(entry.word, entry.inst.Word(), entry.inst.String())
	}
}

func TestInstWordMasks(t *testing.T) {
	assert := assert.New(t)

	// Out of range operands are masked to their field.
	assert.Equal(uint16(0x0134), NewInst(OP_CLR, Reg(0x234)).Word())
	assert.Equal(uint16(0x000c), NewInst(OP_SLEEPX, U2(4)).Word())

	// Missing operands encode as zero.
	assert.Equal(uint16(0x0200), NewInst(OP_MOV).Word())

	// Unknown operations encode as zero.
	assert.Equal(uint16(0), NewInst(Op(99)).Word())
}

func TestDecodeString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		word uint16
		text string
	}{
		{0x0000, "NOP"},
		{0x0003, "NOP"},
		{0x0014, "WAITB 4"},
		{0x001d, "BCTC 1\t; 1->C"},
		{0x0020, "PUSHAS"},
		{0x003c, "DW 0x003C"},
		{0x0040, "DW 0x0040"},
		{0x007f, "DW 0x007F"},
		{0x0134, "CLR 0x34\t; 0x00->0x34, 1->Z"},
		{0x13ff, "MOV 0x1FF, F\t; 0x1FF->F"},
		{0x0212, "MOV 0x12, A\t; 0x12->A"},
		{0x0d20, "SUB 0x20, A\t; 0x20-A->A"},
		{0x285a, "MOVL 0x5A\t; 0x5A->A"},
		{0x2d01, "SUBL 0x01\t; A-0x01->A"},
		{0x2312, "MOVA1F 0x12\t; 0x12->SFR_PORT_DIR"},
		{0x2712, "MOVA1P 0x12\t; 0x12->@SFR_INDIR_ADDR"},
		{0x2612, "MOVA2P 0x12\t; 0x12->@SFR_INDIR_ADDR2"},
		{0x22ff, "MOVIP 0x0FF\t; 0x0FF->SFR_INDIR_ADDR"},
		{0x4b9b, "BS 0x9B, 3\t; 1->0x9B[3]"},
		{0x5001, "BTSC 0x01, 0\t; skip if 0x01[0]==0"},
		{0x008d, "BP1F 1, 5\t; SFR_INDIR_ADDR[5]->1"},
		{0x6080, "JMP 0x0100"},
		{0x7fff, "CALL 0x1FFE"},
		{0x3401, "JZ 0x0002"},
		{0xff10, "CMPZ 0x7F, 0x0020\t; 0x0020->PC[7:0] if A==0x7F"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, Decode(entry.word).String(), "%04x", entry.word)
	}
}

func TestDecodeTotal(t *testing.T) {
	assert := assert.New(t)

	for n := range 0x10000 {
		word := uint16(n)
		inst := Decode(word)
		if !assert.True(inst.Op.Valid(), "%04x", word) {
			continue
		}

		if inst.Op == OP_DW {
			assert.Equal(word, inst.Word())
			continue
		}

		// Re-encoding may clear ignored bits, but never changes the meaning.
		assert.Equal(inst, Decode(inst.Word()), "%04x", word)
	}
}

// aliased is true for immediates that encode into the space of a fixed
// opcode, and so do not decode back to the same operation.
func aliased(op Op, value int) bool {
	switch op {
	case OP_MOVIP:
		return value >= 0x100
	case OP_MOVIA:
		return value >= 0x100
	}
	return false
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, op := range decodeOrder {
		fields := op.Fields()

		limit := [2]int{1, 1}
		for n, fld := range fields {
			limit[n] = 1 << fld.Width()
		}

		for a := range limit[0] {
			if aliased(op, a) {
				continue
			}
			for b := range limit[1] {
				inst := Inst{Op: op}
				for n, v := range []int{a, b}[:len(fields)] {
					inst.Args[n] = fields[n].unpack(uint16(v))
				}

				got := Decode(inst.Word())
				if !assert.Equal(inst, got, "%v", inst) {
					return
				}
				assert.Equal(inst.String(), got.String())
			}
		}
	}
}

func TestAliasedImmediates(t *testing.T) {
	assert := assert.New(t)

	inst := Decode(NewInst(OP_MOVIP, U9(0x1ab)).Word())
	assert.Equal(OP_MOVA1F, inst.Op)
	assert.Equal(Imm(0xab), inst.Args[0])

	inst = Decode(NewInst(OP_MOVIA, U10(0x3ff)).Word())
	assert.Equal(OP_MOVA1P, inst.Op)
	assert.Equal(Imm(0xff), inst.Args[0])
}

func TestFieldNarrow(t *testing.T) {
	assert := assert.New(t)

	fields := OP_MOV.Fields()
	assert.Len(fields, 2)
	assert.False(fields[0].IsDest())
	assert.True(fields[1].IsDest())
	assert.Equal(uint(9), fields[0].Width())

	arg, err := fields[0].Narrow(0x1ff)
	assert.NoError(err)
	assert.Equal(Reg(0x1ff), arg)

	_, err = fields[0].Narrow(0x200)
	assert.Equal(ErrRange{Value: 0x200, Bits: 9}, err)

	arg, err = fields[1].Narrow(1)
	assert.NoError(err)
	assert.Equal(DEST_F, arg)

	_, err = fields[1].Narrow(2)
	assert.Error(err)

	jmp := OP_JMP.Fields()[0]
	assert.True(jmp.IsAddr())

	arg, err = jmp.Narrow(0x1ffe)
	assert.NoError(err)
	assert.Equal(Addr(0xfff), arg)

	_, err = jmp.Narrow(0x101)
	assert.Equal(ErrAddress(0x101), err)

	_, err = jmp.Narrow(0x2000)
	var rangeErr ErrRange
	assert.True(errors.As(err, &rangeErr))

	assert.Nil(Op(-1).Fields())
	assert.Empty(OP_NOP.Fields())
}

func TestFieldNarrowAt(t *testing.T) {
	assert := assert.New(t)

	cmpz := OP_CMPZ.Fields()[1]
	assert.True(cmpz.IsAddr())

	arg, err := cmpz.NarrowAt(0x210, 0x200)
	assert.NoError(err)
	assert.Equal(Addr(0x08), arg)

	arg, err = cmpz.NarrowAt(0x010, 0x200)
	assert.NoError(err)
	assert.Equal(Addr(0x08), arg)

	_, err = cmpz.NarrowAt(0x410, 0x200)
	assert.Equal(ErrPage{Target: 0x410, From: 0x200}, err)

	_, err = cmpz.NarrowAt(0x211, 0x200)
	assert.Equal(ErrAddress(0x211), err)

	_, err = cmpz.NarrowAt(0x2000, 0)
	assert.Equal(ErrRange{Value: 0x2000, Bits: 13}, err)

	jz := OP_JZ.Fields()[0]
	arg, err = jz.NarrowAt(0x1810, 0x1800)
	assert.NoError(err)
	assert.Equal(Addr(0x008), arg)

	_, err = jz.NarrowAt(0x0810, 0x1800)
	assert.Equal(ErrPage{Target: 0x0810, From: 0x1800}, err)

	jmp := OP_JMP.Fields()[0]
	arg, err = jmp.NarrowAt(0x1ffe, 0x1000)
	assert.NoError(err)
	assert.Equal(Addr(0xfff), arg)

	reg := OP_MOV.Fields()[0]
	arg, err = reg.NarrowAt(0x1ff, 0x1000)
	assert.NoError(err)
	assert.Equal(Reg(0x1ff), arg)
}

func TestMakeNarrow(t *testing.T) {
	assert := assert.New(t)

	u2, err := MakeU2(3)
	assert.NoError(err)
	assert.Equal(U2(3), u2)

	_, err = MakeU2(4)
	assert.Equal(ErrRange{Value: 4, Bits: 2}, err)

	_, err = MakeU3(-1)
	assert.Equal(ErrRange{Value: -1, Bits: 3}, err)

	u7, err := MakeU7(0x7f)
	assert.NoError(err)
	assert.Equal(U7(0x7f), u7)

	_, err = MakeImm(0x100)
	assert.Error(err)

	u9, err := MakeU9(0x1ff)
	assert.NoError(err)
	assert.Equal(U9(0x1ff), u9)

	u10, err := MakeU10(0x3ff)
	assert.NoError(err)
	assert.Equal(U10(0x3ff), u10)

	_, err = MakeU10(0x400)
	assert.Error(err)

	addr, err := MakeAddr(0x1fe, 8)
	assert.NoError(err)
	assert.Equal(Addr(0xff), addr)

	_, err = MakeAddr(0x200, 8)
	assert.Equal(ErrRange{Value: 0x200, Bits: 9}, err)
}

func TestArgString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A", DEST_A.String())
	assert.Equal("F", DEST_F.String())
	assert.Equal("0x05", Reg(5).String())
	assert.Equal("0x1FF", Reg(0x1ff).String())
	assert.Equal("3", U2(3).String())
	assert.Equal("0x0010", Addr(8).String())
	assert.Equal("0xBEEF", Word(0xbeef).String())
	assert.Equal("Op(99)", Op(99).String())
	assert.Equal("CMPZ", OP_CMPZ.String())
}
