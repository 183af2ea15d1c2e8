// Package isa implements instruction decoding for the MIPS dialects this
// disassembler targets: the R4300 CPU found in the N64, its RSP vector
// coprocessor, the PS1 GTE, the PSP's ALLEGREX core and the PS2 EE.
package isa

// Dialect selects which coprocessor-2 and extended instruction tables the
// Decoder overlays onto the baseline R4300 MIPS III instruction set.
type Dialect uint

const (
	// R4300 is the baseline N64 CPU: MIPS III with no vector coprocessor.
	DialectR4300 Dialect = iota
	// RSP is the N64's vector coprocessor, running its own reduced MIPS I
	// core with COP2 replaced by 128-bit vector instructions.
	DialectRSP
	// GTE is the PS1 Geometry Transformation Engine, living in COP2.
	DialectGTE
	// ALLEGREX is the PSP's MIPS core, adding the VFPU in COP2 and extra
	// bit-manipulation opcodes.
	DialectALLEGREX
	// EE is the PS2 Emotion Engine, adding the MMI multimedia extensions
	// and 128-bit registers.
	DialectEE

	totalDialects
)

func (d Dialect) String() string {
	switch d {
	case DialectR4300:
		return "r4300"
	case DialectRSP:
		return "rsp"
	case DialectGTE:
		return "gte"
	case DialectALLEGREX:
		return "allegrex"
	case DialectEE:
		return "ee"
	default:
		return "unknown"
	}
}

// HasVectorCOP2 reports whether COP2 in this dialect is a vector unit
// (RSP, ALLEGREX's VFPU) rather than a scalar geometry coprocessor (GTE)
// or absent (R4300, EE uses COP2 for nothing relevant here).
func (d Dialect) HasVectorCOP2() bool {
	return d == DialectRSP || d == DialectALLEGREX
}
