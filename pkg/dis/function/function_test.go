package function

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
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

func TestSplit_TwoFunctionsSeparatedByJrRa(t *testing.T) {
	cfg := config.Default()

	// func_0: addiu $sp,$sp,-0x10 ; jr $ra ; nop
	// func_1 (called via jal, entry = vram 0x8000000C): addiu $v0,$zero,1 ; jr $ra ; nop
	words := []uint32{
		0x27BDFFF0, // addiu $sp,$sp,-0x10
		0x03E00008, // jr $ra
		0x00000000, // nop (delay slot)
		0x24020001, // addiu $v0,$zero,1
		0x03E00008, // jr $ra
		0x00000000, // nop
	}
	instrs := decodeAll(words...)
	vrams := []uint32{0x80000000, 0x80000004, 0x80000008, 0x8000000C, 0x80000010, 0x80000014}

	bounds := Split(instrs, vrams, []uint32{0x8000000C}, cfg)
	require.Len(t, bounds, 2)

	assert.EqualValues(t, 0x80000000, bounds[0].VRAM)
	assert.Equal(t, 0, bounds[0].StartIndex)
	assert.Equal(t, 3, bounds[0].EndIndex)
	assert.False(t, bounds[0].Handwritten, "has the standard addiu $sp,$sp,-N prologue")

	assert.EqualValues(t, 0x8000000C, bounds[1].VRAM)
	assert.Equal(t, 3, bounds[1].StartIndex)
	assert.Equal(t, 6, bounds[1].EndIndex)
	assert.True(t, bounds[1].Handwritten, "li $v0,1 is not a standard stack-frame prologue")
}
