// Package registers resolves MIPS register numbers to ABI-dependent names,
// the way spec.md §4.B describes: "Stateless lookups: regName(num, abi)".
// It mirrors the teacher's pkg/hw/cpu/mc/registers package — a small set of
// Class descriptors, each owning a fixed number of registers — generalized
// from the toy CPU's single general-purpose class to MIPS's GPR/FPR/COP0
// classes plus per-dialect COP2 classes.
package registers

// Class identifies which MIPS register file a Number indexes into.
type Class uint

const (
	ClassNone Class = iota
	// ClassGPR is the 32 general purpose integer registers.
	ClassGPR
	// ClassFPR is the 32 floating point registers (COP1).
	ClassFPR
	// ClassCOP0 is the 32 system control registers.
	ClassCOP0
	// ClassCOP2Vector is the RSP/ALLEGREX 128-bit vector register file.
	ClassCOP2Vector
	// ClassCOP2GTE is the PS1 GTE's data/control register file.
	ClassCOP2GTE
	// ClassHiLo is the pseudo-register pair read/written by mult/div.
	ClassHiLo
)

// ABI selects the naming convention for ClassGPR registers; ClassFPR
// registers render as $f0-$f31 under every ABI. This
// mirrors isa.ABI exactly (kept as a distinct type to avoid this leaf
// package importing its own consumer).
type ABI uint

const (
	ABINumeric ABI = iota
	ABIO32
	ABIN32
	ABIN64
)

// Name resolves a register number in a given class to its display name
// under the given ABI. Unknown combinations fall back to a numeric name
// ($<n>) rather than panicking — a register name is always renderable;
// a register number outside the architectural range 0..31 renders as
// "$?".
func Name(class Class, number int, abi ABI) string {
	switch class {
	case ClassGPR:
		return gprName(number, abi)
	case ClassFPR:
		return fprName(number, abi)
	case ClassCOP0:
		return cop0Name(number)
	case ClassCOP2Vector:
		return vectorName(number)
	case ClassCOP2GTE:
		return gteName(number)
	case ClassHiLo:
		if number == 0 {
			return "hi"
		}
		return "lo"
	default:
		return numericName(number)
	}
}

func numericName(n int) string {
	const digits = "0123456789"
	if n < 0 || n > 31 {
		return "$?"
	}
	if n < 10 {
		return "$" + string(digits[n])
	}
	return "$" + string(digits[n/10]) + string(digits[n%10])
}

var o32GPRNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// n64GPRNames follows the n32/n64 calling convention: registers 8-11
// (o32's $t0-$t3) become $a4-$a7 and registers 12-15 become $t0-$t3,
// which widens the argument-register window from 4 to 8.
var n64GPRNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"a4", "a5", "a6", "a7", "t0", "t1", "t2", "t3",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

func gprName(n int, abi ABI) string {
	if n < 0 || n > 31 {
		return numericName(n)
	}
	switch abi {
	case ABIO32:
		return "$" + o32GPRNames[n]
	case ABIN32, ABIN64:
		return "$" + n64GPRNames[n]
	default:
		return numericName(n)
	}
}

func fprName(n int, abi ABI) string {
	if n < 0 || n > 31 {
		return numericName(n)
	}
	const digits = "0123456789"
	if n < 10 {
		return "$f" + string(digits[n])
	}
	return "$f" + string(digits[n/10]) + string(digits[n%10])
}

// cop0Names follows the VR4300 system control coprocessor register layout.
var cop0Names = [32]string{
	"Index", "Random", "EntryLo0", "EntryLo1", "Context", "PageMask", "Wired", "Reserved7",
	"BadVAddr", "Count", "EntryHi", "Compare", "Status", "Cause", "EPC", "PRId",
	"Config", "LLAddr", "WatchLo", "WatchHi", "XContext", "Reserved21", "Reserved22", "Reserved23",
	"Reserved24", "Reserved25", "ParityError", "CacheError", "TagLo", "TagHi", "ErrorEPC", "Reserved31",
}

func cop0Name(n int) string {
	if n < 0 || n > 31 {
		return numericName(n)
	}
	return "$" + cop0Names[n]
}

func vectorName(n int) string {
	if n < 0 || n > 31 {
		return numericName(n)
	}
	const digits = "0123456789"
	if n < 10 {
		return "$v" + string(digits[n])
	}
	return "$v" + string(digits[n/10]) + string(digits[n%10])
}

// gteNames follows the PS1 GTE's conventional data register names.
var gteNames = [32]string{
	"VXY0", "VZ0", "VXY1", "VZ1", "VXY2", "VZ2", "RGBC", "OTZ",
	"IR0", "IR1", "IR2", "IR3", "SXY0", "SXY1", "SXY2", "SXYP",
	"SZ0", "SZ1", "SZ2", "SZ3", "RGB0", "RGB1", "RGB2", "RES1",
	"MAC0", "MAC1", "MAC2", "MAC3", "IRGB", "ORGB", "LZCS", "LZCR",
}

func gteName(n int) string {
	if n < 0 || n > 31 {
		return numericName(n)
	}
	return "$" + gteNames[n]
}
