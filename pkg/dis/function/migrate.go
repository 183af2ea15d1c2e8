package function

import (
	"sort"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
)

// Migration maps a function's start VRAM to the rodata symbols that belong
// exclusively to it (spec.md §4.F).
type Migration map[uint32][]*context.ContextSymbol

// boundaryStartContaining returns the VRAM of the function boundary whose
// span covers addr, using the boundaries' VRAM order: each boundary's span
// is taken to run from its own VRAM up to the next boundary's VRAM (the
// last one's to the top of the address space), so any trailing nops Split
// left outside a function count toward that function here.
func boundaryStartContaining(bounds []Boundary, addr uint32) (uint32, bool) {
	for i, b := range bounds {
		end := uint32(1<<32 - 1)
		if i+1 < len(bounds) {
			end = bounds[i+1].VRAM
		}
		if addr >= b.VRAM && addr < end {
			return b.VRAM, true
		}
	}
	return 0, false
}

// Migrate computes which .rodata ContextSymbols should move into which
// function (spec.md §4.F): a rodata symbol referenced by exactly one
// function migrates into it; a JUMPTABLE always migrates to whichever
// function(s) reference it, since its labels are function-local — when a
// jump table is (unusually) referenced from more than one function, the
// first referencing function in VRAM order claims it and a diagnostic
// would be warranted from the caller (the migration itself stays
// deterministic either way).
func Migrate(ctx *context.Context, category context.OverlayCategory, id context.OverlayID, bounds []Boundary, cfg config.Config) Migration {
	if !cfg.Features.RodataMigration {
		return nil
	}

	result := make(Migration)
	for _, sym := range ctx.All(category, id) {
		if sym.Section != context.SectionRodata {
			continue
		}

		referrerFuncs := make(map[uint32]bool)
		for _, refVRAM := range sym.ReferrerVRAMs() {
			if start, ok := boundaryStartContaining(bounds, refVRAM); ok {
				referrerFuncs[start] = true
			}
		}
		if len(referrerFuncs) == 0 {
			continue
		}

		if sym.Type == context.TypeJumpTable {
			result[firstKey(referrerFuncs)] = append(result[firstKey(referrerFuncs)], sym)
			continue
		}

		if len(referrerFuncs) == 1 {
			result[firstKey(referrerFuncs)] = append(result[firstKey(referrerFuncs)], sym)
		}
	}

	for fn := range result {
		sort.Slice(result[fn], func(i, j int) bool { return result[fn][i].Key.VRAM < result[fn][j].Key.VRAM })
	}
	return result
}

func firstKey(m map[uint32]bool) uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys[0]
}
