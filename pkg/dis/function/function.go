// Package function implements the Function Splitter & Rodata Migrator
// (spec.md §4.F): it carves a .text Section's decoded instruction stream
// into functions, and decides which .rodata symbols belong exclusively to
// one of them.
package function

import (
	"sort"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
)

// Boundary is one detected function: the half-open instruction index range
// [StartIndex, EndIndex) within the Section Analyzer's decoded stream, and
// the VRAM it starts at (spec.md §4.D.2).
type Boundary struct {
	VRAM       uint32
	StartIndex int
	EndIndex   int

	// Handwritten is advisory metadata only (spec.md §4.D.4): true when the
	// function lacks the compiler's standard `addiu $sp,$sp,-N` prologue.
	Handwritten bool
}

// Split carves instrs/vrams into functions (spec.md §4.D.2-3). entries is
// the set of known function-start VRAMs: the section base (if it's the
// first unclaimed address) plus every jal/bal target the text walk found,
// plus any user-provided labels the driver supplies.
func Split(instrs []isa.Instruction, vrams []uint32, entries []uint32, cfg config.Config) []Boundary {
	if len(instrs) == 0 {
		return nil
	}

	indexOf := make(map[uint32]int, len(vrams))
	for i, v := range vrams {
		indexOf[v] = i
	}

	sorted := uniqueSorted(entries)
	if len(sorted) == 0 || sorted[0] != vrams[0] {
		sorted = append([]uint32{vrams[0]}, sorted...)
		sorted = uniqueSorted(sorted)
	}

	var bounds []Boundary
	for i, entryVRAM := range sorted {
		startIdx, ok := indexOf[entryVRAM]
		if !ok {
			continue
		}
		limitIdx := len(instrs)
		if i+1 < len(sorted) {
			if nextIdx, ok := indexOf[sorted[i+1]]; ok {
				limitIdx = nextIdx
			}
		}

		endIdx := findTerminator(instrs, startIdx, limitIdx)
		b := Boundary{VRAM: entryVRAM, StartIndex: startIdx, EndIndex: endIdx}
		if cfg.Features.HandwrittenFunctions {
			b.Handwritten = !hasStandardPrologue(instrs, startIdx, endIdx)
		}
		bounds = append(bounds, b)
	}
	return bounds
}

// findTerminator looks, from startIdx up to (but not past) limitIdx, for a
// `jr $ra` plus its delay slot; failing that, for a trailing run of `nop`s
// (an alignment gap); failing that, the caller's limit wins (spec.md
// §4.D.2 "next known function entry").
func findTerminator(instrs []isa.Instruction, startIdx, limitIdx int) int {
	for i := startIdx; i < limitIdx; i++ {
		c := instrs[i].Classify()
		if c.IsJump && c.ReadsRA && instrs[i].Opcode == isa.Opcode_JR {
			end := i + 2 // the jr plus its delay slot
			if end > limitIdx {
				end = limitIdx
			}
			return end
		}
	}

	end := limitIdx
	for end > startIdx && isNop(instrs[end-1]) {
		end--
	}
	if end == startIdx {
		// The whole range was padding; there's no real function body here.
		return limitIdx
	}
	return end
}

func isNop(inst isa.Instruction) bool {
	return inst.Opcode == isa.Opcode_SLL && inst.Raw == 0
}

// hasStandardPrologue reports whether the function beginning at startIdx
// opens with the compiler's usual `addiu $sp, $sp, -N` stack-frame
// allocation (spec.md §4.D.4).
func hasStandardPrologue(instrs []isa.Instruction, startIdx, endIdx int) bool {
	if startIdx >= endIdx {
		return false
	}
	first := instrs[startIdx]
	if first.Opcode != isa.Opcode_ADDIU || first.Imm == nil {
		return false
	}
	const sp = 29
	return first.Rs.Number == sp && first.Rt.Number == sp && int16(first.Imm.Raw) < 0
}

func uniqueSorted(in []uint32) []uint32 {
	seen := make(map[uint32]bool, len(in))
	out := make([]uint32, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
