package isa

// ABI selects the register naming convention used when rendering general
// purpose register operands; floating point registers render as
// $f0-$f31 under every ABI.
type ABI uint

const (
	// ABINumeric renders every register as $0.."$31 — no convention applied.
	ABINumeric ABI = iota
	// ABIO32 is the classic 32-bit MIPS calling convention ($zero, $at, $v0..).
	ABIO32
	// ABIN32 uses the same integer register names as ABIN64.
	ABIN32
	// ABIN64 is the 64-bit MIPS calling convention (registers 8-11, o32's
	// $t0-$t3, are named $a4-$a7 and registers 12-15 are $t0-$t3).
	ABIN64
)

func (a ABI) String() string {
	switch a {
	case ABINumeric:
		return "numeric"
	case ABIO32:
		return "o32"
	case ABIN32:
		return "n32"
	case ABIN64:
		return "n64"
	default:
		return "unknown"
	}
}

// CompilerWorkaround selects per-toolchain instruction-sequence fixups
// applied by the Dialect/Workaround layer (spec.md §4.G).
type CompilerWorkaround uint

const (
	// WorkaroundNone disables all compiler-specific fixups.
	WorkaroundNone CompilerWorkaround = iota
	// WorkaroundSN64 collapses the SN64 toolchain's explicit div-by-zero
	// trap expansion back into a single div/divu.
	WorkaroundSN64
	// WorkaroundPSYQ does the same for the PSYQ (PS1) toolchain, which
	// emits a slightly different trap sequence than SN64.
	WorkaroundPSYQ
)

func (w CompilerWorkaround) String() string {
	switch w {
	case WorkaroundNone:
		return "none"
	case WorkaroundSN64:
		return "sn64"
	case WorkaroundPSYQ:
		return "psyq"
	default:
		return "unknown"
	}
}
