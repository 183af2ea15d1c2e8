package symbrowse

import (
	"os"
	"path/filepath"

	"github.com/n64decomp/mipsdis/pkg/dis"
	"github.com/n64decomp/mipsdis/pkg/dis/driver"
	"github.com/n64decomp/mipsdis/pkg/dis/symtab"
	"github.com/spf13/cobra"
)

var (
	manifestPath string
	presetPath   string
	symtabPath   string
	useTUI       bool
)

func init() {
	SymbrowseCmd.Flags().StringVar(&manifestPath, "manifest", "", "section manifest (YAML) to analyze (required)")
	SymbrowseCmd.Flags().StringVar(&presetPath, "preset", "", "dialect/ABI config preset file (YAML); defaults to config.Default()")
	SymbrowseCmd.Flags().StringVar(&symtabPath, "symtab", "", "existing text symbol table to seed the Context with")
	SymbrowseCmd.Flags().BoolVar(&useTUI, "tui", false, "launch the full-screen tview browser instead of the readline REPL")
	_ = SymbrowseCmd.MarkFlagRequired("manifest")
}

// SymbrowseCmd is the interactive, read-only counterpart to `disas
// analyze`: instead of printing one report and exiting, it builds the
// same Analysis and lets the user poke at it — list sections, list
// functions, look up a symbol by name or address — either through a
// readline REPL or a full-screen tview split view.
var SymbrowseCmd = &cobra.Command{
	Use:   "symbrowse",
	Short: "Interactively browse a pkg/dis Analysis (read-only)",
	Long: `symbrowse runs the same manifest/preset/symtab-driven Analyze pipeline
as "disas analyze" but, instead of printing a single report, opens an
interactive read-only browser over the result: list sections and
functions, and look symbols up by name or VRAM.

It never parses ELF/ROM containers and never writes back to the symbol
table — that remains the job of a text symtab file edited by hand or by
another tool (spec.md §6).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := driver.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		sections, err := m.ToSections(filepath.Dir(manifestPath))
		if err != nil {
			return err
		}

		cfg, err := driver.LoadPreset(presetPath)
		if err != nil {
			return err
		}

		var userSymbols []symtab.Entry
		if symtabPath != "" {
			f, err := os.Open(symtabPath)
			if err != nil {
				return err
			}
			defer f.Close()
			userSymbols, err = symtab.Read(f)
			if err != nil {
				return err
			}
		}

		an, err := dis.Analyze(sections, cfg, userSymbols)
		if err != nil {
			return err
		}

		b := newBrowser(an)
		if useTUI {
			return runTUI(b)
		}
		return runREPL(b, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
