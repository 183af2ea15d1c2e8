// Package dis ties the Decoder, Section Analyzer, Hi/Lo Pairer, Function
// Splitter/Rodata Migrator and Dialect/Workaround layer together into the
// single phase-ordered pipeline spec.md §5 describes: decode -> section
// analyze -> pair -> migrate -> emit. Emission (assembly-text rendering) is
// an external driver's job (spec.md §1 Non-goals); this package stops at a
// completed Analysis a driver like cmd/disas or cmd/symbrowse can walk.
package dis

import (
	"fmt"
	"sort"
	"sync"

	"github.com/n64decomp/mipsdis/pkg/dis/config"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/dialect"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
	"github.com/n64decomp/mipsdis/pkg/dis/function"
	"github.com/n64decomp/mipsdis/pkg/dis/hilo"
	"github.com/n64decomp/mipsdis/pkg/dis/section"
	"github.com/n64decomp/mipsdis/pkg/dis/symtab"
)

// FunctionAnalysis is everything computed for one function the Function
// Splitter carved out of a .text Section (spec.md §4.F, §4.E, §4.G).
type FunctionAnalysis struct {
	Boundary    function.Boundary
	HiLo        *hilo.Overlay
	Workarounds *dialect.Result
}

// SectionAnalysis is everything computed for one input Section.
type SectionAnalysis struct {
	Section   section.Section
	Text      *section.TextResult // nil for non-.text Sections
	Data      *section.DataResult // nil for non-.rodata/.data Sections
	Functions []FunctionAnalysis  // only populated for .text Sections
}

// Analysis is the completed result of one Analyze call: the Global
// Context, every walked Section, and the rodata migration decided for each
// overlay namespace (spec.md §6 "a single Analysis owns its Context, all
// Sections, and all Symbols"). Analysis is read-only once Analyze returns;
// nothing further mutates the Context.
type Analysis struct {
	Config      config.Config
	Context     *context.Context
	Diagnostics *diag.Collector
	Sections    []*SectionAnalysis

	// Migrations maps an overlay namespace to its rodata-migration result
	// (spec.md §4.F), keyed the same way the Context shards its symbols.
	Migrations map[namespace]function.Migration
}

type namespace struct {
	category context.OverlayCategory
	id       context.OverlayID
}

// Migration looks up the rodata migration computed for one function's
// start VRAM within an overlay namespace, or false if that function
// migrated nothing.
func (a *Analysis) Migration(category context.OverlayCategory, id context.OverlayID, functionVRAM uint32) ([]*context.ContextSymbol, bool) {
	m, ok := a.Migrations[namespace{category, id}]
	if !ok {
		return nil, false
	}
	syms, ok := m[functionVRAM]
	return syms, ok
}

// Analyze runs the full pipeline over sections under cfg. userSymbols, if
// non-nil, is applied to the Context before analysis begins so that
// user-provided names/types freeze against automatic promotion from the
// first getOrCreate onward (spec.md §6 "user-provided symbol table
// entries always win").
func Analyze(sections []section.Section, cfg config.Config, userSymbols []symtab.Entry) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dis: %w", err)
	}

	ctx := context.New()
	if len(userSymbols) > 0 {
		symtab.Apply(ctx, userSymbols)
	}

	diags := diag.NewCollector()
	an := &Analysis{
		Config:      cfg,
		Context:     ctx,
		Diagnostics: diags,
		Migrations:  make(map[namespace]function.Migration),
	}

	byNamespace := make(map[namespace][]*SectionAnalysis)
	for _, sec := range sections {
		sa := &SectionAnalysis{Section: sec}
		an.Sections = append(an.Sections, sa)
		ns := namespace{sec.Category, sec.ID}
		byNamespace[ns] = append(byNamespace[ns], sa)
	}

	// Phase: decode + section-analyze. Independent Sections are safe to
	// walk concurrently (spec.md §5 "parallelism... at the granularity of
	// independent Sections"); the Context's per-shard locking is what
	// makes that safe even across overlapping VRAM ranges in different
	// namespaces. .text walks first within a namespace, since .rodata
	// pointer detection and .bss sizing both depend on its output.
	walkTextSections(an.Sections, cfg, ctx, diags)

	textRanges := collectTextRanges(an.Sections)
	walkDataSections(an.Sections, cfg, ctx, textRanges, diags)
	walkBssSections(an.Sections, cfg, ctx)

	// Phase: function split + hi/lo pair + workaround, per namespace. Pairing
	// across functions in the same Section is independent work (spec.md §5
	// "independent functions within a section during the pairing phase,
	// joined before migration"); Split itself is sequential per Section
	// since it needs the whole call-target set first.
	for ns, secs := range byNamespace {
		ranges := namespaceRanges(secs)
		for _, sa := range secs {
			if sa.Text == nil {
				continue
			}
			entries := entriesWithin(sa.Section, sa.Text.CallTargets)
			bounds := function.Split(sa.Text.Instructions, sa.Text.VRAMs, entries, cfg)
			for _, b := range bounds {
				vram := b.VRAM
				sym := ctx.GetOrCreate(context.Key{Category: ns.category, ID: ns.id, VRAM: vram})
				ctx.PromoteType(sym, context.TypeFunction, func(from, to context.SymbolType) {
					diags.Advisoryf("function", vram, "cannot promote %s to %s: incompatible with existing type", from, to)
				})
			}
			sa.Functions = make([]FunctionAnalysis, len(bounds))

			pairFunctionsConcurrently(sa, bounds, ctx, ns, ranges, cfg, diags)
		}

		bounds := allBoundaries(secs)
		if m := function.Migrate(ctx, ns.category, ns.id, bounds, cfg); m != nil {
			an.Migrations[ns] = m
		}
	}

	return an, nil
}

func walkTextSections(sections []*SectionAnalysis, cfg config.Config, ctx *context.Context, diags *diag.Collector) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, sa := range sections {
		if sa.Section.Kind != context.SectionText {
			continue
		}
		sa := sa
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := diag.NewCollector()
			res, err := section.WalkText(sa.Section, cfg, ctx, local)
			mu.Lock()
			defer mu.Unlock()
			diags.Merge(local)
			if err != nil {
				diags.Warnf("dis", sa.Section.VRAM, "text walk failed: %v", err)
				return
			}
			sa.Text = res
		}()
	}
	wg.Wait()
}

func walkDataSections(sections []*SectionAnalysis, cfg config.Config, ctx *context.Context, textRanges map[namespace]section.TextRange, diags *diag.Collector) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, sa := range sections {
		if sa.Section.Kind != context.SectionData && sa.Section.Kind != context.SectionRodata {
			continue
		}
		sa := sa
		tr := textRanges[namespace{sa.Section.Category, sa.Section.ID}]
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := diag.NewCollector()
			res, err := section.WalkData(sa.Section, cfg, ctx, tr, local)
			mu.Lock()
			defer mu.Unlock()
			diags.Merge(local)
			if err != nil {
				diags.Warnf("dis", sa.Section.VRAM, "data walk failed: %v", err)
				return
			}
			sa.Data = res
		}()
	}
	wg.Wait()
}

// walkBssSections runs strictly after text/data (spec.md §5 "across
// sections, .text analysis must precede .bss symbol sizing"), so it is
// deliberately sequential rather than fanned out alongside the other two.
func walkBssSections(sections []*SectionAnalysis, cfg config.Config, ctx *context.Context) {
	for _, sa := range sections {
		if sa.Section.Kind != context.SectionBss {
			continue
		}
		section.WalkBss(sa.Section, cfg, ctx)
	}
}

func collectTextRanges(sections []*SectionAnalysis) map[namespace]section.TextRange {
	out := make(map[namespace]section.TextRange)
	for _, sa := range sections {
		if sa.Section.Kind != context.SectionText {
			continue
		}
		ns := namespace{sa.Section.Category, sa.Section.ID}
		r := out[ns]
		if r.Start == r.End {
			r = section.TextRange{Start: sa.Section.VRAM, End: sa.Section.End()}
		} else {
			if sa.Section.VRAM < r.Start {
				r.Start = sa.Section.VRAM
			}
			if sa.Section.End() > r.End {
				r.End = sa.Section.End()
			}
		}
		out[ns] = r
	}
	return out
}

func namespaceRanges(secs []*SectionAnalysis) []hilo.Range {
	ranges := make([]hilo.Range, 0, len(secs))
	for _, sa := range secs {
		ranges = append(ranges, hilo.Range{Start: sa.Section.VRAM, End: sa.Section.End()})
	}
	return ranges
}

func entriesWithin(sec section.Section, targets []uint32) []uint32 {
	var out []uint32
	for _, t := range targets {
		if sec.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

func allBoundaries(secs []*SectionAnalysis) []function.Boundary {
	var out []function.Boundary
	for _, sa := range secs {
		for _, fa := range sa.Functions {
			out = append(out, fa.Boundary)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VRAM < out[j].VRAM })
	return out
}

func pairFunctionsConcurrently(sa *SectionAnalysis, bounds []function.Boundary, ctx *context.Context, ns namespace, ranges []hilo.Range, cfg config.Config, diags *diag.Collector) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	w := dialect.New(cfg.CompilerWorkaround)

	for i, b := range bounds {
		i, b := i, b
		sa.Functions[i].Boundary = b
		wg.Add(1)
		go func() {
			defer wg.Done()
			instrs := sa.Text.Instructions[b.StartIndex:b.EndIndex]
			vrams := sa.Text.VRAMs[b.StartIndex:b.EndIndex]

			local := diag.NewCollector()
			overlay := hilo.Pair(instrs, vrams, ctx, ns.category, ns.id, ranges, cfg.GPValue, cfg.HasGPValue, local)
			result := w.Apply(instrs)

			mu.Lock()
			defer mu.Unlock()
			diags.Merge(local)
			sa.Functions[i].HiLo = overlay
			sa.Functions[i].Workarounds = result
		}()
	}
	wg.Wait()
}
