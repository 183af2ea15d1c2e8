// Package disas is the thin CLI driver around the analysis core
// (pkg/dis): it loads a section manifest and a dialect config preset off
// disk, runs Analyze, and prints a debug report. It does not parse ELF or
// ROM containers and does not pretty-print final assembly text — both are
// explicitly external-collaborator concerns (spec.md §1 Non-goals); feed
// it pre-extracted raw section dumps instead.
package disas

import "github.com/spf13/cobra"

// DisasCmd is mounted onto the root command tree in cmd/root.go, alongside
// cmd/symbrowse.
var DisasCmd = &cobra.Command{
	Use:   "disas",
	Short: "Run the matching MIPS disassembler's analysis core over a section manifest",
	Long: `disas drives pkg/dis's Analyze pipeline: Decoder, Section Analyzer,
Hi/Lo Pairer, Function Splitter and Rodata Migrator over a set of raw
section dumps described by a manifest file.

This command is a debugging harness, not a production toolchain front-end:
it prints a text report of the resulting Analysis rather than emitting
matching assembly source.`,
}
