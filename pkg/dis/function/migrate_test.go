package function

import (
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SingleReferrerMovesIntoItsFunction(t *testing.T) {
	ctx := context.New()
	cfg := config.Default()

	str := ctx.GetOrCreate(context.Key{VRAM: 0x80010000})
	str.Section = context.SectionRodata
	str.Type = context.TypeCString
	str.AddReferrer(0x80000004) // the lw/addiu lo-use lives inside func_80000000

	bounds := []Boundary{{VRAM: 0x80000000, StartIndex: 0, EndIndex: 4}}

	m := Migrate(ctx, "", "", bounds, cfg)
	require.Contains(t, m, uint32(0x80000000))
	assert.Same(t, str, m[0x80000000][0])
}

func TestMigrate_MultipleReferrerFunctionsStayUnmigrated(t *testing.T) {
	ctx := context.New()
	cfg := config.Default()

	shared := ctx.GetOrCreate(context.Key{VRAM: 0x80010100})
	shared.Section = context.SectionRodata
	shared.Type = context.TypeFloat
	shared.AddReferrer(0x80000004)
	shared.AddReferrer(0x80000104)

	bounds := []Boundary{
		{VRAM: 0x80000000, StartIndex: 0, EndIndex: 4},
		{VRAM: 0x80000100, StartIndex: 4, EndIndex: 8},
	}

	m := Migrate(ctx, "", "", bounds, cfg)
	assert.Empty(t, m, "a rodata symbol used by two functions stays in .rodata")
}

func TestMigrate_JumpTableAlwaysMigrates(t *testing.T) {
	ctx := context.New()
	cfg := config.Default()

	jt := ctx.GetOrCreate(context.Key{VRAM: 0x80020000})
	jt.Section = context.SectionRodata
	jt.Type = context.TypeJumpTable
	jt.AddReferrer(0x80000004)

	bounds := []Boundary{{VRAM: 0x80000000, StartIndex: 0, EndIndex: 4}}
	m := Migrate(ctx, "", "", bounds, cfg)
	require.Contains(t, m, uint32(0x80000000))
	assert.Equal(t, context.TypeJumpTable, m[0x80000000][0].Type)
}

func TestMigrate_DisabledFeatureSkipsMigration(t *testing.T) {
	ctx := context.New()
	cfg := config.Default()
	cfg.Features.RodataMigration = false

	sym := ctx.GetOrCreate(context.Key{VRAM: 0x80010000})
	sym.Section = context.SectionRodata
	sym.AddReferrer(0x80000004)

	bounds := []Boundary{{VRAM: 0x80000000, StartIndex: 0, EndIndex: 4}}
	assert.Nil(t, Migrate(ctx, "", "", bounds, cfg))
}
