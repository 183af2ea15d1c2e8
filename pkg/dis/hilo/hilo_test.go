package hilo

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(words ...uint32) []isa.Instruction {
	out := make([]isa.Instruction, len(words))
	for i, w := range words {
		out[i] = isa.Decode(w, isa.DialectR4300)
	}
	return out
}

func TestPair_LuiAddiuReconstructsKnownWordSymbol(t *testing.T) {
	ctx := context.New()
	sym := ctx.GetOrCreate(context.Key{VRAM: 0x80010000})
	sym.Type, sym.HasSize, sym.Size = context.TypeWord, true, 4

	// lui $t0, 0x8001 ; lw $t1, 0($t0)
	instrs := decodeAll(0x3C088001, 0x8D090000)
	vrams := []uint32{0x80000000, 0x80000004}
	diags := diag.NewCollector()

	overlay := Pair(instrs, vrams, ctx, "", "", nil, 0, false, diags)

	hi, ok := overlay.Get(0)
	require.True(t, ok)
	assert.Equal(t, RoleHi, hi.Role)
	assert.Same(t, sym, hi.Symbol)

	lo, ok := overlay.Get(1)
	require.True(t, ok)
	assert.Equal(t, RoleLo, lo.Role)
	assert.Same(t, sym, lo.Symbol)
	assert.EqualValues(t, 1, sym.ReferenceCount)
}

func TestPair_MultiUseOfSameLuiStaysLiveUntilOverwrite(t *testing.T) {
	ctx := context.New()
	base := ctx.GetOrCreate(context.Key{VRAM: 0x80020000})
	base.HasSize, base.Size = true, 8

	// lui $t0, 0x8002 ; lw $t1, 0($t0) ; lw $t2, 4($t0)
	instrs := decodeAll(0x3C088002, 0x8D090000, 0x8D0A0004)
	vrams := []uint32{0x80000000, 0x80000004, 0x80000008}
	diags := diag.NewCollector()

	overlay := Pair(instrs, vrams, ctx, "", "", nil, 0, false, diags)

	first, ok := overlay.Get(1)
	require.True(t, ok)
	assert.EqualValues(t, 0, first.Addend)

	second, ok := overlay.Get(2)
	require.True(t, ok)
	assert.EqualValues(t, 4, second.Addend, "second use reuses the still-live lui, offset by its own immediate")
}

func TestPair_JalClobbersLastLuiState(t *testing.T) {
	ctx := context.New()
	ctx.GetOrCreate(context.Key{VRAM: 0x80030000})

	// lui $t0, 0x8003 ; jal 0 ; nop (delay slot) ; lw $t1, 0($t0) -- stale after the call
	instrs := decodeAll(0x3C088003, 0x0C000000, 0x00000000, 0x8D090000)
	vrams := []uint32{0x80000000, 0x80000004, 0x80000008, 0x8000000C}
	diags := diag.NewCollector()

	overlay := Pair(instrs, vrams, ctx, "", "", nil, 0, false, diags)
	_, ok := overlay.Get(3)
	assert.False(t, ok, "lui state must not survive a jal per spec's conservative invalidation rule")
}

func TestPair_GPRelativeAddressingWithoutLui(t *testing.T) {
	ctx := context.New()
	sym := ctx.GetOrCreate(context.Key{VRAM: 0x80412340})
	sym.HasSize, sym.Size = true, 4

	// lw $t1, 0x2340($gp)
	instrs := decodeAll(0x8F892340)
	vrams := []uint32{0x80000000}
	diags := diag.NewCollector()

	overlay := Pair(instrs, vrams, ctx, "", "", nil, 0x80410000, true, diags)

	lo, ok := overlay.Get(0)
	require.True(t, ok)
	assert.Same(t, sym, lo.Symbol)
}
