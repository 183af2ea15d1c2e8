package symbrowse

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis"
	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/n64decomp/mipsdis/pkg/dis/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestAnalysis(t *testing.T) *dis.Analysis {
	t.Helper()
	buf := make([]byte, 8)
	isa.PutWord(buf, 0, isa.EndianBig, 0x27BDFFF0) // addiu $sp,$sp,-0x10
	isa.PutWord(buf, 4, isa.EndianBig, 0x03E00008) // jr $ra
	sections := []section.Section{
		{Kind: context.SectionText, Name: ".text", VRAM: 0x80000000, Data: buf},
	}
	an, err := dis.Analyze(sections, config.Default(), nil)
	require.NoError(t, err)
	return an
}

func TestBrowser_Sections(t *testing.T) {
	b := newBrowser(buildTestAnalysis(t))
	secs := b.sections()
	require.Len(t, secs, 1)
	assert.Equal(t, ".text", secs[0].Name)
	assert.Equal(t, 1, secs[0].Functions)
}

func TestBrowser_FunctionsByIndexAndAll(t *testing.T) {
	b := newBrowser(buildTestAnalysis(t))

	all, err := b.functions(-1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.EqualValues(t, 0x80000000, all[0].VRAM)

	scoped, err := b.functions(0)
	require.NoError(t, err)
	assert.Equal(t, all, scoped)

	_, err = b.functions(5)
	assert.Error(t, err)
}

func TestBrowser_LookupByAddressAndName(t *testing.T) {
	an := buildTestAnalysis(t)
	// Name the function so lookup-by-name has something to find.
	sym, ok := an.Context.Find(context.Key{VRAM: 0x80000000})
	require.True(t, ok)
	sym.Name = "func_80000000"

	b := newBrowser(an)

	byAddr := b.lookup("0x80000000")
	require.Len(t, byAddr, 1)
	assert.Same(t, sym, byAddr[0])

	byName := b.lookup("func_80000000")
	require.Len(t, byName, 1)
	assert.Same(t, sym, byName[0])

	assert.Empty(t, b.lookup("nonexistent"))
}

func TestParseHexAddr(t *testing.T) {
	v, ok := parseHexAddr("0x1000")
	require.True(t, ok)
	assert.EqualValues(t, 0x1000, v)

	_, ok = parseHexAddr("not-hex")
	assert.False(t, ok)
}
