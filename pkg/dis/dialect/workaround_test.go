package dialect

import (
	"testing"

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

func TestNew_NoneWorkaroundNeverCollapses(t *testing.T) {
	w := New(isa.WorkaroundNone)
	instrs := decodeAll(0x0082001A, 0x1440FFFF, 0x0000000D) // div $a0,$v0 ; bnez $v0,-1 ; break
	res := w.Apply(instrs)
	assert.Empty(t, res.Collapsed)
	assert.Empty(t, res.Suppressed)
}

func TestNew_SN64CollapsesDivTrapSequence(t *testing.T) {
	w := New(isa.WorkaroundSN64)

	// div $a0, $v0 ; bnez $v0, -1 ; break ; nop ; nop
	instrs := decodeAll(0x0082001A, 0x1440FFFF, 0x0000000D, 0x00000000, 0x00000000)
	res := w.Apply(instrs)

	require.Contains(t, res.Collapsed, 0)
	c := res.Collapsed[0]
	assert.Equal(t, "div", c.Mnemonic)
	assert.Equal(t, 4, c.Rs.Number) // $a0
	assert.Equal(t, 2, c.Rt.Number) // $v0
	assert.True(t, res.Suppressed[1])
	assert.True(t, res.Suppressed[2])
}

func TestNew_PSYQAppliesSameDivFixup(t *testing.T) {
	w := New(isa.WorkaroundPSYQ)
	instrs := decodeAll(0x0083001B, 0x1460FFFF, 0x0000000D) // divu $a0,$v1 ; bnez $v1,-1 ; break
	res := w.Apply(instrs)
	require.Contains(t, res.Collapsed, 0)
	assert.Equal(t, "divu", res.Collapsed[0].Mnemonic)
}
