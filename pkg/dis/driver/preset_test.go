package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreset_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := LoadPreset("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadPreset_OverridesNamedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	body := `
dialect: rsp
abi: o32
endian: little
compiler_workaround: sn64
features:
  string_detection: false
  float_detection: true
  jump_table_detection: true
  pseudo_instructions: true
  handwritten_functions: true
  rodata_migration: true
  section_boundary_detect: true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, isa.DialectRSP, cfg.Dialect)
	assert.Equal(t, isa.ABIO32, cfg.ABI)
	assert.Equal(t, isa.EndianLittle, cfg.Endian)
	assert.Equal(t, isa.WorkaroundSN64, cfg.CompilerWorkaround)
	assert.False(t, cfg.Features.StringDetection)
	assert.True(t, cfg.Features.FloatDetection)
}

func TestLoadPreset_RejectsInvalidDialectABICombination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	body := "dialect: rsp\nabi: n64\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadPreset(path)
	assert.Error(t, err)
}

func TestLoadPreset_RejectsUnknownDialect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: bogus\n"), 0o644))

	_, err := LoadPreset(path)
	assert.Error(t, err)
}
