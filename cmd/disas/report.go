package disas

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/n64decomp/mipsdis/pkg/dis"
	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/diag"
)

// Color definitions mirroring cmd/cpu/debug.go's palette, reused here for
// the analysis report instead of the live debugger's register/PC display.
var (
	colorHeader  = color.New(color.FgWhite, color.Bold, color.Underline)
	colorAddr    = color.New(color.FgCyan)
	colorSymbol  = color.New(color.FgGreen)
	colorType    = color.New(color.FgMagenta)
	colorWarning = color.New(color.FgYellow, color.Bold)
	colorError   = color.New(color.FgRed, color.Bold)
	colorSection = color.New(color.FgBlue, color.Bold)
)

// printReport renders a completed Analysis as a human-readable debug
// report: per-section function boundaries, rodata migrations and the
// diagnostic log, in that order.
func printReport(w io.Writer, an *dis.Analysis) {
	for _, sa := range an.Sections {
		colorSection.Fprintf(w, "== section %s (%s) @ 0x%08X ==\n", sa.Section.Name, sa.Section.Kind, sa.Section.VRAM)

		switch {
		case sa.Text != nil:
			for _, fn := range sa.Functions {
				printFunction(w, an, sa, fn)
			}
		case sa.Data != nil:
			for _, sym := range sa.Data.Symbols {
				fmt.Fprint(w, "  ")
				colorAddr.Fprintf(w, "0x%08X ", sym.Key.VRAM)
				colorSymbol.Fprintf(w, "%-24s ", symbolName(sym))
				colorType.Fprintf(w, "%s\n", sym.Type)
			}
		}
	}

	fmt.Fprintln(w)
	printDiagnostics(w, an.Diagnostics)
}

func printFunction(w io.Writer, an *dis.Analysis, sa *dis.SectionAnalysis, fn dis.FunctionAnalysis) {
	fmt.Fprint(w, "  ")
	colorAddr.Fprintf(w, "0x%08X ", fn.Boundary.VRAM)
	name := "(unnamed)"
	if sym, ok := an.Context.Find(context.Key{Category: sa.Section.Category, ID: sa.Section.ID, VRAM: fn.Boundary.VRAM}); ok {
		name = symbolName(sym)
	}
	tag := ""
	if fn.Boundary.Handwritten {
		tag = " (handwritten)"
	}
	colorSymbol.Fprintf(w, "%s%s\n", name, tag)

	if fn.Workarounds != nil {
		for i, c := range fn.Workarounds.Collapsed {
			fmt.Fprintf(w, "      workaround: collapsed %s at index %d (span %d)\n", c.Mnemonic, i, c.Span)
		}
	}

	migrated, ok := an.Migration(sa.Section.Category, sa.Section.ID, fn.Boundary.VRAM)
	if !ok {
		return
	}
	for _, sym := range migrated {
		fmt.Fprint(w, "      ")
		colorAddr.Fprintf(w, "0x%08X ", sym.Key.VRAM)
		colorSymbol.Fprintf(w, "%-24s ", symbolName(sym))
		colorType.Fprintf(w, "%s", sym.Type)
		fmt.Fprintln(w, " (migrated)")
	}
}

func symbolName(sym *context.ContextSymbol) string {
	if sym.Name != "" {
		return sym.Name
	}
	return "(unnamed)"
}

func printDiagnostics(w io.Writer, diags *diag.Collector) {
	entries := diags.Entries()
	if len(entries) == 0 {
		colorHeader.Fprintln(w, "no diagnostics")
		return
	}
	colorHeader.Fprintf(w, "diagnostics (%d)\n", len(entries))
	for _, e := range entries {
		switch e.Severity {
		case diag.SeverityWarning:
			colorWarning.Fprintln(w, e.String())
		default:
			fmt.Fprintln(w, e.String())
		}
	}
}
