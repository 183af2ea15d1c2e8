package section

import (
	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/isa"
)

// TextRange names the VRAM span of the function-bearing section a rodata
// walk needs in order to recognize .text pointers (spec.md §4.D "a word
// whose value equals a VRAM in a known section is a POINTER"). A zero
// TextRange disables pointer/jump-table detection for that walk.
type TextRange struct {
	Start, End uint32
}

func (r TextRange) contains(vram uint32) bool {
	return r.Start != r.End && vram >= r.Start && vram < r.End
}

// DataResult is what a .rodata/.data walk produces: the typed symbols it
// discovered, in VRAM order.
type DataResult struct {
	Symbols []*context.ContextSymbol
}

// WalkData types the words of a .rodata or .data Section (spec.md §4.D).
// AccessedAs hints already recorded on a ContextSymbol take priority over
// the generic heuristics here, since an explicit access width is stronger
// evidence than a guess from the raw bytes. WalkText and the Hi/Lo Pairer
// do not set AccessedAs, so only a hint a caller stored beforehand is seen.
func WalkData(sec Section, cfg config.Config, ctx *context.Context, text TextRange, diags *diag.Collector) (*DataResult, error) {
	res := &DataResult{}
	th := cfg.StringThresholds
	prefixes := cfg.Prefixes()

	i := 0
	for i < len(sec.Data) {
		vram := sec.VRAM + uint32(i)

		if cfg.Features.StringDetection {
			if n, ok := tryString(sec.Data[i:], th); ok {
				sym := ctx.GetOrCreate(context.Key{Category: sec.Category, ID: sec.ID, VRAM: vram})
				padded := alignUp(n, 4)
				ctx.PromoteType(sym, context.TypeCString, diagReject(diags, "section.data", vram))
				sym.Size, sym.HasSize = uint32(padded), true
				sym.Section = sec.Kind
				if sym.Name == "" {
					sym.Name = autoname(prefixes.RodataString, vram)
				}
				res.Symbols = append(res.Symbols, sym)
				i += padded
				continue
			}
		}

		if i+4 > len(sec.Data) {
			break
		}
		word := isa.ReadWord(sec.Data, i, cfg.Endian)
		sym := ctx.GetOrCreate(context.Key{Category: sec.Category, ID: sec.ID, VRAM: vram})
		sym.Section = sec.Kind

		switch {
		case sym.AccessedAs == context.TypeDouble && i+8 <= len(sec.Data):
			ctx.PromoteType(sym, context.TypeDouble, diagReject(diags, "section.data", vram))
			sym.Size, sym.HasSize = 8, true
			if sym.Name == "" {
				sym.Name = autoname(prefixes.RodataDouble, vram)
			}
			res.Symbols = append(res.Symbols, sym)
			i += 8
			continue
		case sym.AccessedAs == context.TypeFloat:
			ctx.PromoteType(sym, context.TypeFloat, diagReject(diags, "section.data", vram))
			sym.Size, sym.HasSize = 4, true
			if sym.Name == "" {
				sym.Name = autoname(prefixes.RodataFloat, vram)
			}
		case cfg.Features.JumpTableDetection && text.contains(word):
			ctx.PromoteType(sym, context.TypePointer, diagReject(diags, "section.data", vram))
			sym.Size, sym.HasSize = 4, true
			target := ctx.GetOrCreate(context.Key{Category: sec.Category, ID: sec.ID, VRAM: word})
			target.AddReferrer(vram)
		default:
			ctx.PromoteType(sym, context.TypeWord, diagReject(diags, "section.data", vram))
			sym.Size, sym.HasSize = 4, true
			if sym.Name == "" {
				sym.Name = autoname(prefixes.Data, vram)
			}
		}

		res.Symbols = append(res.Symbols, sym)
		i += 4
	}

	if cfg.Features.JumpTableDetection {
		promoteJumpTables(res, text, ctx, prefixes, diags)
	}

	return res, nil
}

// promoteJumpTables turns runs of 2+ consecutive POINTER-into-.text words
// into a single JUMPTABLE symbol with JUMPTABLE_LABEL entries (spec.md §4.D
// example 4), which is stronger evidence than any single pointer in
// isolation.
func promoteJumpTables(res *DataResult, text TextRange, ctx *context.Context, prefixes config.AutogenPrefixTable, diags *diag.Collector) {
	runStart := -1
	flush := func(end int) {
		if runStart < 0 || end-runStart < 2 {
			runStart = -1
			return
		}
		head := res.Symbols[runStart]
		ctx.PromoteType(head, context.TypeJumpTable, diagReject(diags, "section.data", head.Key.VRAM))
		head.Size, head.HasSize = uint32((end-runStart)*4), true
		if !head.UserOverride {
			head.Name = autoname(prefixes.JumpTable, head.Key.VRAM)
		}
		for j := runStart + 1; j < end; j++ {
			entry := res.Symbols[j]
			ctx.PromoteType(entry, context.TypeJumpTableLabel, diagReject(diags, "section.data", entry.Key.VRAM))
			entry.Name = autoname(prefixes.JumpTableLbl, entry.Key.VRAM)
		}
		runStart = -1
	}

	for idx, sym := range res.Symbols {
		if sym.Type == context.TypePointer {
			if runStart < 0 {
				runStart = idx
			}
		} else {
			flush(idx)
		}
	}
	flush(len(res.Symbols))
}

func diagReject(diags *diag.Collector, component string, vram uint32) func(from, to context.SymbolType) {
	return func(from, to context.SymbolType) {
		diags.Advisoryf(component, vram, "cannot promote %s to %s: incompatible with existing type", from, to)
	}
}

// tryString recognizes a candidate C string at the start of buf: a run of
// printable ASCII bytes terminated by NUL, meeting the configured minimum
// length (spec.md §4.D, §9 Open Question on thresholds). It returns the
// length including the terminator (but not alignment padding).
func tryString(buf []byte, th config.StringThresholds) (length int, ok bool) {
	n := 0
	for n < len(buf) && isPrintableASCII(buf[n]) {
		n++
	}
	if n < th.MinLength {
		return 0, false
	}
	if n >= len(buf) || buf[n] != 0 {
		return 0, false
	}
	return n + 1, true
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x7F
}

func alignUp(n, align int) int {
	if r := n % align; r != 0 {
		return n + (align - r)
	}
	return n
}

func autoname(prefix string, vram uint32) string {
	return prefix + hex32(vram)
}

func hex32(v uint32) string {
	const digits = "0123456789ABCDEF"
	buf := [8]byte{}
	for i := 7; i >= 0; i-- {
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
