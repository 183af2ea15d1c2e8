package isa

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/isa/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SimpleFunctionWithHiLoPair(t *testing.T) {
	// spec.md §8 scenario 1: lui $gp, 0x8000 / addiu $gp, $gp, 0x10 / jr $ra / nop
	words := []uint32{0x3C1C8000, 0x279C0010, 0x03E00008, 0x00000000}
	insts := make([]Instruction, len(words))
	for i, w := range words {
		insts[i] = Decode(w, DialectR4300)
	}

	require.Equal(t, Opcode_LUI, insts[0].Opcode)
	assert.Equal(t, registers.ClassGPR, insts[0].Rt.Class)
	assert.Equal(t, 28, insts[0].Rt.Number) // $gp == $28
	assert.Equal(t, uint16(0x8000), insts[0].Imm.Raw)

	require.Equal(t, Opcode_ADDIU, insts[1].Opcode)
	assert.Equal(t, 28, insts[1].Rs.Number)
	assert.Equal(t, 28, insts[1].Rt.Number)
	assert.Equal(t, uint16(0x0010), insts[1].Imm.Raw)

	require.Equal(t, Opcode_JR, insts[2].Opcode)
	assert.Equal(t, 31, insts[2].Rs.Number)
	assert.True(t, insts[2].Classify().IsJump)
	assert.True(t, insts[2].Classify().HasDelaySlot)

	require.Equal(t, Opcode_SLL, insts[3].Opcode)
	mnemonic, ok := insts[3].Pseudo()
	require.True(t, ok)
	assert.Equal(t, "nop", mnemonic)
}

func TestDecode_PseudoOpRendering(t *testing.T) {
	nop := Decode(0x00000000, DialectR4300)
	m, ok := nop.Pseudo()
	require.True(t, ok)
	assert.Equal(t, "nop", m)

	jr := Decode(0x03E00008, DialectR4300)
	assert.Equal(t, Opcode_JR, jr.Opcode)
	assert.Equal(t, "jr $ra", jr.String(ABIO32))

	li := Decode(0x24020001, DialectR4300)
	require.Equal(t, Opcode_ADDIU, li.Opcode)
	m, ok = li.Pseudo()
	require.True(t, ok)
	assert.Equal(t, "li", m)
	assert.Equal(t, 2, li.Rt.Number) // $v0
	assert.EqualValues(t, 1, li.Imm.Value())
}

func TestDecode_UnknownWordYieldsInvalid(t *testing.T) {
	inst := Decode(0xEC000000, DialectR4300) // primary opcode 0x3B is unassigned
	assert.Equal(t, Opcode_INVALID, inst.Opcode)
}

func TestDecode_BranchAndJumpClassification(t *testing.T) {
	beq := Decode(0x10000005, DialectR4300) // beq $zero,$zero,+5
	c := beq.Classify()
	assert.True(t, c.IsBranch)
	assert.True(t, c.HasDelaySlot)
	assert.False(t, c.IsLikelyBranch)

	beql := Decode(0x50000005, DialectR4300)
	assert.True(t, beql.Classify().IsLikelyBranch)

	jal := Decode(0x0C000000, DialectR4300)
	assert.Equal(t, Opcode_JAL, jal.Opcode)
	assert.True(t, jal.Classify().WritesRA)
}

func TestDecode_DialectOverlaySelectsCOP2Table(t *testing.T) {
	// Same COP2 function-space layout (rs=0x10), different funct fields,
	// decoded under different dialects — the dialect alone picks the table.
	rspWord := uint32(0x4A000008)  // funct 0x08 -> VMULF under RSP
	gteWord := uint32(0x4A000001)  // funct 0x01 -> RTPS under GTE

	rsp := Decode(rspWord, DialectRSP)
	assert.Equal(t, Opcode_VMULF, rsp.Opcode)

	gte := Decode(gteWord, DialectGTE)
	assert.Equal(t, Opcode_RTPS, gte.Opcode)
}
