// Package symtab implements the text symbol table format spec.md §6
// describes for persisting a run's discovered/user-supplied symbols
// across runs: "a line-oriented table keyed by VRAM... schema is
// `name,vram,type,size,segment` with `#`-comments permitted".
package symtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/n64decomp/mipsdis/pkg/dis/context"
)

// Entry is one row of the text symbol table.
type Entry struct {
	Name    string
	VRAM    uint32
	Type    context.SymbolType
	Size    uint32
	HasSize bool
	// Segment is the free-form overlay segment tag (e.g. "actor/en_item00"),
	// serialized as "<category>/<id>", or "" for the non-overlaid namespace.
	Segment string
}

func (e Entry) category() context.OverlayCategory {
	cat, _, _ := strings.Cut(e.Segment, "/")
	return context.OverlayCategory(cat)
}

func (e Entry) id() context.OverlayID {
	_, id, _ := strings.Cut(e.Segment, "/")
	return context.OverlayID(id)
}

// Read parses the text symbol table format from r: 5 comma-separated
// fields per row (`name,vram,type,size,segment`, size/segment may be
// empty), with `#`-prefixed comment lines and blank lines ignored. A
// malformed row is reported as an error: a wrong field count by
// encoding/csv with its line number; an unparsable vram/size or unknown
// type name with the row's position among the data rows (comment and
// blank lines not counted) — this
// is a driver-time configuration error (spec.md §7), not a diagnostic,
// since a broken user symbol file means the run cannot honor the user's
// intent at all.
func Read(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("symtab: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, fields := range rows {
		lineNo := i + 1

		vram, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("symtab: row %d: bad vram %q: %w", lineNo, fields[1], err)
		}

		typ, err := parseType(fields[2])
		if err != nil {
			return nil, fmt.Errorf("symtab: row %d: %w", lineNo, err)
		}

		e := Entry{Name: fields[0], VRAM: uint32(vram), Type: typ, Segment: fields[4]}
		if fields[3] != "" {
			size, err := strconv.ParseUint(fields[3], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("symtab: row %d: bad size %q: %w", lineNo, fields[3], err)
			}
			e.Size, e.HasSize = uint32(size), true
		}

		entries = append(entries, e)
	}
	return entries, nil
}

// Write serializes entries as the text symbol table format, sorted by
// (segment, vram) for deterministic output — the teacher's writer
// (programfilewriter.go) sorts before emitting for the same reason: stable
// diffs across runs.
func Write(w io.Writer, entries []Entry) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Segment != sorted[j].Segment {
			return sorted[i].Segment < sorted[j].Segment
		}
		return sorted[i].VRAM < sorted[j].VRAM
	})

	if _, err := fmt.Fprintln(w, "# name,vram,type,size,segment"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	for _, e := range sorted {
		size := ""
		if e.HasSize {
			size = strconv.FormatUint(uint64(e.Size), 10)
		}
		row := []string{e.Name, fmt.Sprintf("0x%08X", e.VRAM), e.Type.String(), size, e.Segment}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Apply loads entries into ctx as user-overridden ContextSymbols (spec.md
// §6 "user-supplied symbols... carry the user-override flag").
func Apply(ctx *context.Context, entries []Entry) {
	for _, e := range entries {
		key := context.Key{Category: e.category(), ID: e.id(), VRAM: e.VRAM}
		sym := ctx.GetOrCreate(key)
		ctx.SetUserOverride(sym, e.Name, e.Type, e.Size)
	}
}

// Dump builds the Entry list for every symbol currently known in one
// overlay namespace, for round-tripping via Write.
func Dump(ctx *context.Context, category context.OverlayCategory, id context.OverlayID) []Entry {
	segment := string(category)
	if id != "" {
		segment += "/" + string(id)
	}

	syms := ctx.All(category, id)
	entries := make([]Entry, len(syms))
	for i, s := range syms {
		entries[i] = Entry{
			Name: s.Name, VRAM: s.Key.VRAM, Type: s.Type,
			Size: s.Size, HasSize: s.HasSize, Segment: segment,
		}
	}
	return entries
}

func parseType(s string) (context.SymbolType, error) {
	switch strings.ToUpper(s) {
	case "FUNCTION":
		return context.TypeFunction, nil
	case "BYTE":
		return context.TypeByte, nil
	case "SHORT":
		return context.TypeShort, nil
	case "WORD":
		return context.TypeWord, nil
	case "FLOAT":
		return context.TypeFloat, nil
	case "DOUBLE":
		return context.TypeDouble, nil
	case "CSTRING":
		return context.TypeCString, nil
	case "JUMPTABLE":
		return context.TypeJumpTable, nil
	case "JUMPTABLE_LABEL":
		return context.TypeJumpTableLabel, nil
	case "BRANCH_LABEL":
		return context.TypeBranchLabel, nil
	case "POINTER":
		return context.TypePointer, nil
	case "UNKNOWN", "":
		return context.TypeUnknown, nil
	default:
		return context.TypeUnknown, fmt.Errorf("unknown symbol type %q", s)
	}
}
