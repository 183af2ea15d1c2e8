// Package config defines the single configuration record spec.md §6
// describes, gathering every analysis tunable in one place rather than
// scattering flags across call sites (spec.md §9 re-architecture guidance).
package config

import (
	"fmt"

	"github.com/n64decomp/mipsdis/pkg/dis/isa"
)

// AutogenPrefixMode names how autogenerated symbol names are derived
// (spec.md §6): by owning section, or by inferred data type. The section
// walks do not read it: in either mode a .data/.rodata string, float or
// double gets the STR_/FLT_/DBL_ prefix and any other word gets D_, and
// the RO_ prefix is not used.
type AutogenPrefixMode uint

const (
	AutogenBySection AutogenPrefixMode = iota
	AutogenByType
)

// Features is the flag set spec.md §6 requires: "string detection on/off,
// float detection on/off, jump-table detection on/off, pseudo-instruction
// rendering on/off, handwritten-function detection on/off, rodata migration
// on/off, per-section boundary detection on/off".
type Features struct {
	StringDetection       bool
	FloatDetection        bool
	JumpTableDetection    bool
	PseudoInstructions    bool
	HandwrittenFunctions  bool
	RodataMigration       bool
	SectionBoundaryDetect bool
}

// DefaultFeatures returns every feature toggle enabled — the common case
// for a from-scratch N64 split, matching the teacher's DefaultMemoryConfig
// pattern of giving every default a named constructor instead of leaving
// the zero value implicit.
func DefaultFeatures() Features {
	return Features{
		StringDetection:       true,
		FloatDetection:        true,
		JumpTableDetection:    true,
		PseudoInstructions:    true,
		HandwrittenFunctions:  true,
		RodataMigration:       true,
		SectionBoundaryDetect: true,
	}
}

// StringThresholds are the tunables spec.md §9's Open Questions call out:
// "the exact heuristic threshold for string detection... is not numerically
// specified; implementations should expose the thresholds as tunables and
// document defaults." These are that documentation.
type StringThresholds struct {
	// MinLength is the shortest run of printable bytes (before the
	// terminating NUL) considered a candidate C string.
	MinLength int
	// MinPrintableRatio is the minimum fraction (0..1) of bytes in the
	// candidate run that must be printable ASCII. String detection does
	// not read it: the run it scans contains printable bytes only.
	MinPrintableRatio float64
	// RequireNULAlignment names the rule that the terminating NUL (plus
	// padding) brings the next symbol back to a 4-byte boundary, which
	// is how SN64/GCC emit C string literals in .rodata. String detection
	// does not read it: a detected string's size is always rounded up to
	// 4 bytes and the padding bytes are not inspected.
	RequireNULAlignment bool
}

// DefaultStringThresholds documents this implementation's chosen defaults:
// a minimum of 2 printable characters (single-character strings are
// indistinguishable from short numeric data) and a 0.85 printable ratio,
// picked empirically against decompiled N64 rodata and kept here as the
// single place that value is allowed to live.
func DefaultStringThresholds() StringThresholds {
	return StringThresholds{
		MinLength:           2,
		MinPrintableRatio:   0.85,
		RequireNULAlignment: true,
	}
}

// Config is the configuration record passed into an Analysis (spec.md §6).
type Config struct {
	ABI                isa.ABI
	Dialect             isa.Dialect
	Endian              isa.Endian
	GPValue             uint32
	HasGPValue          bool
	AutogenPrefixMode   AutogenPrefixMode
	CompilerWorkaround  isa.CompilerWorkaround
	Features            Features
	StringThresholds    StringThresholds
	// AutogenPrefix overrides the per-section default prefix table (spec.md
	// §6's func_/D_/RO_/B_/.L/L/jtbl_ scheme); nil uses the documented
	// defaults.
	AutogenPrefix *AutogenPrefixTable
}

// AutogenPrefixTable names every autogenerated symbol prefix spec.md §6
// enumerates, one field per kind, so a dialect preset can override
// individual prefixes without forking the whole naming scheme.
type AutogenPrefixTable struct {
	Function      string
	Data          string
	RodataSection string
	RodataString  string
	RodataFloat   string
	RodataDouble  string
	Bss           string
	BranchLabel   string
	JumpTableLbl  string
	JumpTable     string
}

// DefaultAutogenPrefixTable matches spec.md §6 exactly.
func DefaultAutogenPrefixTable() AutogenPrefixTable {
	return AutogenPrefixTable{
		Function:      "func_",
		Data:          "D_",
		RodataSection: "RO_",
		RodataString:  "STR_",
		RodataFloat:   "FLT_",
		RodataDouble:  "DBL_",
		Bss:           "B_",
		BranchLabel:   ".L",
		JumpTableLbl:  "L",
		JumpTable:     "jtbl_",
	}
}

// Default returns a Config with every field set to its documented default:
// O32 ABI, R4300 dialect, big-endian, no compiler workaround, every
// Feature enabled.
func Default() Config {
	return Config{
		ABI:                isa.ABIO32,
		Dialect:             isa.DialectR4300,
		Endian:              isa.EndianBig,
		AutogenPrefixMode:   AutogenBySection,
		CompilerWorkaround:  isa.WorkaroundNone,
		Features:            DefaultFeatures(),
		StringThresholds:    DefaultStringThresholds(),
	}
}

// Prefixes returns the effective autogenerated-name prefix table: the
// Config's override if set, otherwise the documented default.
func (c Config) Prefixes() AutogenPrefixTable {
	if c.AutogenPrefix != nil {
		return *c.AutogenPrefix
	}
	return DefaultAutogenPrefixTable()
}

// Validate checks the ABI/dialect combination, a fatal configuration
// error (spec.md §7): requesting the n64 64-bit ABI against a 32-bit-only
// dialect (RSP has no 64-bit GPRs; same for the PS1 GTE's scalar coprocessor).
// It does not see user symbols, so overlapping user symbols are not
// detected here or by symtab.Apply.
func (c Config) Validate() error {
	if (c.Dialect == isa.DialectRSP || c.Dialect == isa.DialectGTE) && c.ABI == isa.ABIN64 {
		return fmt.Errorf("config: ABI %s is not valid for dialect %s (32-bit-only core)", c.ABI, c.Dialect)
	}
	return nil
}
