package dis

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/n64decomp/mipsdis/pkg/dis/section"
	"github.com/n64decomp/mipsdis/pkg/dis/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textWords builds a big-endian byte buffer from raw MIPS words.
func textWords(words ...uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		isa.PutWord(buf, i*4, isa.EndianBig, w)
	}
	return buf
}

func TestAnalyze_FullPipelineDecodesPairsSplitsAndMigrates(t *testing.T) {
	// addiu $sp, $sp, -0x10 ; lui $t0, 0x8000 ; lw $t1, 0x1000($t0) ;
	// jr $ra ; nop
	text := textWords(0x27BDFFF0, 0x3C088000, 0x8D091000, 0x03E00008, 0x00000000)
	rodata := []byte{0x12, 0x34, 0x56, 0x78}

	sections := []section.Section{
		{Kind: context.SectionText, VRAM: 0x80000000, Data: text},
		{Kind: context.SectionRodata, VRAM: 0x80001000, Data: rodata},
	}

	an, err := Analyze(sections, config.Default(), nil)
	require.NoError(t, err)
	require.Len(t, an.Sections, 2)

	textSA := an.Sections[0]
	require.NotNil(t, textSA.Text)
	require.Len(t, textSA.Functions, 1)

	fn := textSA.Functions[0]
	assert.EqualValues(t, 0x80000000, fn.Boundary.VRAM)
	assert.Equal(t, 0, fn.Boundary.StartIndex)
	assert.Equal(t, 5, fn.Boundary.EndIndex)
	assert.False(t, fn.Boundary.Handwritten, "addiu $sp,$sp,-0x10 is the standard prologue")

	require.NotNil(t, fn.HiLo)
	hiAnn, ok := fn.HiLo.Get(1)
	require.True(t, ok)
	loAnn, ok := fn.HiLo.Get(2)
	require.True(t, ok)
	require.NotNil(t, hiAnn.Symbol)
	require.NotNil(t, loAnn.Symbol)
	assert.Same(t, hiAnn.Symbol, loAnn.Symbol)
	assert.EqualValues(t, 0x80001000, hiAnn.Symbol.Key.VRAM)

	require.NotNil(t, fn.Workarounds)
	assert.Empty(t, fn.Workarounds.Collapsed, "WorkaroundNone must never collapse anything")

	dataSA := an.Sections[1]
	require.NotNil(t, dataSA.Data)
	require.Len(t, dataSA.Data.Symbols, 1)
	assert.Equal(t, context.TypeWord, dataSA.Data.Symbols[0].Type)

	migrated, ok := an.Migration("", "", 0x80000000)
	require.True(t, ok)
	require.Len(t, migrated, 1)
	assert.EqualValues(t, 0x80001000, migrated[0].Key.VRAM)
}

func TestAnalyze_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Dialect = isa.DialectRSP
	cfg.ABI = isa.ABIN64

	_, err := Analyze(nil, cfg, nil)
	assert.Error(t, err)
}

func TestAnalyze_AppliesUserSymbolsBeforeWalk(t *testing.T) {
	text := textWords(0x00000000) // a single nop, no real function
	sections := []section.Section{
		{Kind: context.SectionText, VRAM: 0x80000000, Data: text},
	}

	userSymbols := []symtab.Entry{
		{Name: "func_override", VRAM: 0x80000000, Type: context.TypeFunction},
	}
	an, err := Analyze(sections, config.Default(), userSymbols)
	require.NoError(t, err)

	sym, ok := an.Context.Find(context.Key{VRAM: 0x80000000})
	require.True(t, ok)
	assert.True(t, sym.UserOverride)
	assert.Equal(t, "func_override", sym.Name)
}
