package section

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkData_StringDetection(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	// "Hello" + NUL + 2 bytes padding to a 4-byte boundary (spec.md §8 scenario 3).
	sec := Section{
		Kind: context.SectionRodata,
		VRAM: 0x80010000,
		Data: []byte{'H', 'e', 'l', 'l', 'o', 0, 0, 0},
	}

	res, err := WalkData(sec, cfg, ctx, TextRange{}, diags)
	require.NoError(t, err)
	require.Len(t, res.Symbols, 1)
	assert.Equal(t, context.TypeCString, res.Symbols[0].Type)
	assert.EqualValues(t, 8, res.Symbols[0].Size)
	assert.Equal(t, "STR_80010000", res.Symbols[0].Name)
}

func TestWalkData_JumpTableDetection(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	textRange := TextRange{Start: 0x80001000, End: 0x80002000}
	sec := Section{
		Kind: context.SectionRodata,
		VRAM: 0x80020000,
		Data: words(0x80001050, 0x80001060, 0x80001070),
	}

	res, err := WalkData(sec, cfg, ctx, textRange, diags)
	require.NoError(t, err)
	require.Len(t, res.Symbols, 3)

	head := res.Symbols[0]
	assert.Equal(t, context.TypeJumpTable, head.Type)
	assert.EqualValues(t, 12, head.Size)

	assert.Equal(t, context.TypeJumpTableLabel, res.Symbols[1].Type)
	assert.Equal(t, context.TypeJumpTableLabel, res.Symbols[2].Type)
}

func TestWalkData_PlainWordFallback(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	sec := Section{Kind: context.SectionData, VRAM: 0x80030000, Data: words(0x00000001)}
	res, err := WalkData(sec, cfg, ctx, TextRange{}, diags)
	require.NoError(t, err)
	require.Len(t, res.Symbols, 1)
	assert.Equal(t, context.TypeWord, res.Symbols[0].Type)
	assert.Equal(t, "D_80030000", res.Symbols[0].Name)
}
