package section

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ws ...uint32) []byte {
	buf := make([]byte, len(ws)*4)
	for i, w := range ws {
		isa.PutWord(buf, i*4, isa.EndianBig, w)
	}
	return buf
}

func TestWalkText_JalPromotesCallTargetToFunction(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	// jal 0x80000008 ; nop ; ... ; nop (call target is the 3rd word)
	sec := Section{
		Kind: context.SectionText,
		VRAM: 0x80000000,
		Data: words(0x0C000002, 0x00000000, 0x03E00008, 0x00000000),
	}

	res, err := WalkText(sec, cfg, ctx, diags)
	require.NoError(t, err)
	require.Len(t, res.Instructions, 4)
	assert.Equal(t, isa.Opcode_JAL, res.Instructions[0].Opcode)
	require.Len(t, res.CallTargets, 1)
	assert.EqualValues(t, 0x80000008, res.CallTargets[0])

	sym, ok := ctx.Find(context.Key{VRAM: 0x80000008})
	require.True(t, ok)
	assert.Equal(t, context.TypeFunction, sym.Type)
	assert.Equal(t, 1, sym.ReferenceCount)
}

func TestWalkText_BranchWithinSectionBecomesBranchLabel(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	// beq $zero,$zero,+1 (targets the 3rd word, a local branch) ; nop ; nop ; nop
	sec := Section{
		Kind: context.SectionText,
		VRAM: 0x80001000,
		Data: words(0x10000001, 0x00000000, 0x00000000, 0x00000000),
	}

	res, err := WalkText(sec, cfg, ctx, diags)
	require.NoError(t, err)
	require.Len(t, res.BranchTargets, 1)
	assert.EqualValues(t, 0x80001008, res.BranchTargets[0])

	sym, ok := ctx.Find(context.Key{VRAM: 0x80001008})
	require.True(t, ok)
	assert.Equal(t, context.TypeBranchLabel, sym.Type)
}

func TestWalkText_InvalidWordRecordsAdvisoryDiagnostic(t *testing.T) {
	cfg := config.Default()
	ctx := context.New()
	diags := diag.NewCollector()

	sec := Section{Kind: context.SectionText, VRAM: 0x80002000, Data: words(0xEC000000)}
	_, err := WalkText(sec, cfg, ctx, diags)
	require.NoError(t, err)
	require.Len(t, diags.Entries(), 1)
	assert.Equal(t, diag.SeverityAdvisory, diags.Entries()[0].Severity)
}
