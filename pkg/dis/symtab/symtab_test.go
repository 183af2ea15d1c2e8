package symtab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# comment line
gPlayerHealth,0x80123450,WORD,4,
func_80000000,0x80000000,FUNCTION,256,actor/en_item00

STR_80010000,0x80010000,CSTRING,8,
`

func TestRead_ParsesEntriesAndSkipsCommentsAndBlankLines(t *testing.T) {
	entries, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "gPlayerHealth", entries[0].Name)
	assert.EqualValues(t, 0x80123450, entries[0].VRAM)
	assert.Equal(t, context.TypeWord, entries[0].Type)
	assert.EqualValues(t, 4, entries[0].Size)
	assert.Equal(t, "", entries[0].Segment)

	assert.Equal(t, "actor/en_item00", entries[1].Segment)
	assert.Equal(t, context.TypeFunction, entries[1].Type)
}

func TestRead_RejectsUnknownType(t *testing.T) {
	_, err := Read(strings.NewReader("x,0x1000,NOT_A_TYPE,0,"))
	assert.Error(t, err)
}

func TestRead_RejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("x,0x1000"))
	assert.Error(t, err)
}

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	entries := []Entry{
		{Name: "D_80020000", VRAM: 0x80020000, Type: context.TypeWord, Size: 4, HasSize: true},
		{Name: "func_80000000", VRAM: 0x80000000, Type: context.TypeFunction, Segment: "actor/en_item00"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entries))

	roundTripped, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, roundTripped, 2)
	// Write sorts by (segment, vram): the un-overlaid entry ("") sorts first.
	assert.Equal(t, "D_80020000", roundTripped[0].Name)
	assert.Equal(t, "func_80000000", roundTripped[1].Name)
	assert.Equal(t, "actor/en_item00", roundTripped[1].Segment)
}

func TestApply_SetsUserOverrideOnContext(t *testing.T) {
	ctx := context.New()
	entries := []Entry{{Name: "gFoo", VRAM: 0x80050000, Type: context.TypeWord, Size: 4, HasSize: true}}
	Apply(ctx, entries)

	sym, ok := ctx.Find(context.Key{VRAM: 0x80050000})
	require.True(t, ok)
	assert.True(t, sym.UserOverride)
	assert.Equal(t, "gFoo", sym.Name)

	ok = ctx.PromoteType(sym, context.TypeFloat, nil)
	assert.False(t, ok, "user override must not be promotable")
}

func TestDump_ProducesEntriesForExistingContextSymbols(t *testing.T) {
	ctx := context.New()
	sym := ctx.GetOrCreate(context.Key{Category: "actor", ID: "en_item00", VRAM: 0x80600000})
	sym.Name, sym.Type = "func_80600000", context.TypeFunction

	entries := Dump(ctx, "actor", "en_item00")
	require.Len(t, entries, 1)
	assert.Equal(t, "func_80600000", entries[0].Name)
	assert.Equal(t, "actor/en_item00", entries[0].Segment)
}
