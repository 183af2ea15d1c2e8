// Package symbrowse is a read-only inspector over a completed pkg/dis
// Analysis: a REPL front-end and an optional full-screen TUI front-end,
// both built on the same lookup core. Neither front-end mutates the
// Analysis — this is a viewer, not a second editing surface over the
// symbol table (use the text symtab file for edits, per spec.md §6).
package symbrowse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/n64decomp/mipsdis/pkg/dis"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
)

// browser is the shared data layer both front-ends query. It holds no
// mutable state of its own beyond the Analysis it was built from.
type browser struct {
	an *dis.Analysis
}

func newBrowser(an *dis.Analysis) *browser {
	return &browser{an: an}
}

// sectionSummary is one line of the top-level section list.
type sectionSummary struct {
	Index     int
	Name      string
	Kind      context.SectionKind
	VRAM      uint32
	Functions int
}

func (b *browser) sections() []sectionSummary {
	out := make([]sectionSummary, 0, len(b.an.Sections))
	for i, sa := range b.an.Sections {
		out = append(out, sectionSummary{
			Index:     i,
			Name:      sa.Section.Name,
			Kind:      sa.Section.Kind,
			VRAM:      sa.Section.VRAM,
			Functions: len(sa.Functions),
		})
	}
	return out
}

// functionSummary is one line of a per-section function list.
type functionSummary struct {
	VRAM        uint32
	Name        string
	Handwritten bool
	Instrs      int
}

// functions lists every function in the section at index idx, or every
// function across every section when idx is negative.
func (b *browser) functions(idx int) ([]functionSummary, error) {
	var out []functionSummary
	for i, sa := range b.an.Sections {
		if idx >= 0 && i != idx {
			continue
		}
		for _, fn := range sa.Functions {
			name := "(unnamed)"
			if sym, ok := b.an.Context.Find(context.Key{Category: sa.Section.Category, ID: sa.Section.ID, VRAM: fn.Boundary.VRAM}); ok && sym.Name != "" {
				name = sym.Name
			}
			out = append(out, functionSummary{
				VRAM:        fn.Boundary.VRAM,
				Name:        name,
				Handwritten: fn.Boundary.Handwritten,
				Instrs:      fn.Boundary.EndIndex - fn.Boundary.StartIndex,
			})
		}
	}
	if idx >= 0 && idx >= len(b.an.Sections) {
		return nil, fmt.Errorf("section index %d out of range (0..%d)", idx, len(b.an.Sections)-1)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VRAM < out[j].VRAM })
	return out, nil
}

// lookup resolves a query that is either a bare symbol name or a
// "0x..."-prefixed VRAM, searching every overlay namespace the Analysis
// touched. It returns every match, since a name collision across distinct
// overlay namespaces is expected (spec.md Glossary).
func (b *browser) lookup(query string) []*context.ContextSymbol {
	if vram, ok := parseHexAddr(query); ok {
		var out []*context.ContextSymbol
		for ns := range b.namespaces() {
			if sym, ok := b.an.Context.Find(context.Key{Category: ns.category, ID: ns.id, VRAM: vram}); ok {
				out = append(out, sym)
			}
		}
		return out
	}

	var out []*context.ContextSymbol
	for ns := range b.namespaces() {
		for _, sym := range b.an.Context.All(ns.category, ns.id) {
			if sym.Name == query {
				out = append(out, sym)
			}
		}
	}
	return out
}

type nsKey struct {
	category context.OverlayCategory
	id       context.OverlayID
}

func (b *browser) namespaces() map[nsKey]struct{} {
	out := make(map[nsKey]struct{})
	for _, sa := range b.an.Sections {
		out[nsKey{sa.Section.Category, sa.Section.ID}] = struct{}{}
	}
	return out
}

func parseHexAddr(s string) (uint32, bool) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func formatSymbol(sym *context.ContextSymbol) string {
	size := "?"
	if sym.HasSize {
		size = fmt.Sprintf("%d", sym.Size)
	}
	name := sym.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("0x%08X %-24s %-16s size=%-6s refs=%d", sym.Key.VRAM, name, sym.Type, size, sym.ReferenceCount)
}
