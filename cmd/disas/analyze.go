package disas

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
	outPath      string
)

func init() {
	analyzeCmd.Flags().StringVar(&manifestPath, "manifest", "", "section manifest (YAML) to analyze (required)")
	analyzeCmd.Flags().StringVar(&presetPath, "preset", "", "dialect/ABI config preset file (YAML); defaults to config.Default()")
	analyzeCmd.Flags().StringVar(&symtabPath, "symtab", "", "existing text symbol table to seed the Context with")
	analyzeCmd.Flags().StringVar(&outPath, "out", "", "where to write the debug report; defaults to stdout")
	_ = analyzeCmd.MarkFlagRequired("manifest")

	DisasCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis pipeline over a manifest and print a debug report",
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

		w := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		printReport(w, an)
		return nil
	},
}
