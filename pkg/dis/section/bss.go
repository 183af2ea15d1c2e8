package section

import (
	"sort"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
)

// WalkBss derives .bss symbol sizes purely from the gaps between the
// VRAMs already referenced in that namespace (spec.md §4.D: ".bss carries
// no bytes of its own — symbol presence and size are inferred entirely
// from .text/.data references"). It does not create new symbols; it only
// sizes existing UNKNOWN/WORD stubs that fall within the section's range.
func WalkBss(sec Section, cfg config.Config, ctx *context.Context) []*context.ContextSymbol {
	all := ctx.All(sec.Category, sec.ID)

	var inBss []*context.ContextSymbol
	for _, s := range all {
		if s.Key.VRAM >= sec.VRAM && s.Key.VRAM < sec.End() {
			inBss = append(inBss, s)
		}
	}
	sort.Slice(inBss, func(i, j int) bool { return inBss[i].Key.VRAM < inBss[j].Key.VRAM })

	prefixes := cfg.Prefixes()
	for i, s := range inBss {
		if s.HasSize {
			continue
		}
		next := sec.End()
		if i+1 < len(inBss) {
			next = inBss[i+1].Key.VRAM
		}
		s.Size = next - s.Key.VRAM
		s.HasSize = true
		s.Section = context.SectionBss
		if s.Name == "" {
			s.Name = autoname(prefixes.Bss, s.Key.VRAM)
		}
	}
	return inBss
}
