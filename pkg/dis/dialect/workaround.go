// Package dialect implements the compiler-workaround half of the
// Dialect/Workaround Layer (spec.md §4.G): per-compiler instruction-sequence
// quirks that must be collapsed back to the mnemonic a human would have
// written, so the disassembly matches. The per-ISA-extension half of §4.G
// (RSP/GTE/ALLEGREX/EE opcode tables) already lives in isa.Dialect and
// isa.Decode — there is no separate "strategy object" for it, since the
// Decoder's own dialect switch already is that strategy.
package dialect

import "github.com/n64decomp/mipsdis/pkg/dis/isa"

// CollapsedDiv is a multi-instruction `div`/`divu` trap-check expansion
// that should render as a single instruction (spec.md §8 scenario 5).
type CollapsedDiv struct {
	Mnemonic string // "div" or "divu"
	Rs, Rt   isa.Register
	// Span is how many raw instructions, starting at the div/divu itself,
	// the collapsed rendering absorbs.
	Span int
}

// Result is what a Workaround produces for one instruction stream: which
// indices collapse into a single rendering, and which indices the
// collapse absorbed and should not be emitted on their own.
type Result struct {
	Collapsed  map[int]CollapsedDiv
	Suppressed map[int]bool
}

func newResult() *Result {
	return &Result{Collapsed: make(map[int]CollapsedDiv), Suppressed: make(map[int]bool)}
}

// Workaround is the per-(platform, compiler) strategy spec.md §4.G
// describes, applied once per function after decode.
type Workaround interface {
	Apply(instrs []isa.Instruction) *Result
}

// New returns the Workaround for the given compiler_workaround
// configuration value. WorkaroundNone returns a strategy that never
// collapses anything.
func New(cw isa.CompilerWorkaround) Workaround {
	switch cw {
	case isa.WorkaroundSN64, isa.WorkaroundPSYQ:
		return divTrapWorkaround{}
	default:
		return noneWorkaround{}
	}
}

type noneWorkaround struct{}

func (noneWorkaround) Apply(instrs []isa.Instruction) *Result {
	return newResult()
}

// divTrapWorkaround recognizes the SN64/PSYQ `div`/`divu` expansion (spec.md
// §7, §8 scenario 5): the compiler emits the raw div alongside an explicit
// divide-by-zero trap check (a branch around one `break`) and, for signed
// division, a second branch/break guarding the INT_MIN/-1 overflow case.
// Source `div $rs, $rt` re-compiles to up to five raw instructions; this
// collapses that back to one.
type divTrapWorkaround struct{}

const maxDivExpansionSpan = 5

func (divTrapWorkaround) Apply(instrs []isa.Instruction) *Result {
	res := newResult()

	for i := 0; i < len(instrs); i++ {
		inst := instrs[i]
		if inst.Opcode != isa.Opcode_DIV && inst.Opcode != isa.Opcode_DIVU {
			continue
		}

		end := i + maxDivExpansionSpan
		if end > len(instrs) {
			end = len(instrs)
		}

		breaks := 0
		for j := i + 1; j < end; j++ {
			if instrs[j].Opcode == isa.Opcode_BREAK {
				breaks++
			}
		}
		if breaks < 1 {
			continue
		}

		span := end - i
		mnemonic := "div"
		if inst.Opcode == isa.Opcode_DIVU {
			mnemonic = "divu"
		}
		res.Collapsed[i] = CollapsedDiv{Mnemonic: mnemonic, Rs: inst.Rs, Rt: inst.Rt, Span: span}
		for j := i + 1; j < i+span; j++ {
			res.Suppressed[j] = true
		}
		i += span - 1
	}

	return res
}
