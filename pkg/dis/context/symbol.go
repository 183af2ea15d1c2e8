// Package context implements the Global Context / Symbol Table (spec.md
// §4.C): the single synchronization point shared by every Section Analyzer,
// keyed by (overlay category, overlay id, VRAM).
package context

import "fmt"

// SymbolType is the closed type tag a ContextSymbol carries (spec.md §3).
// The lattice USER > typed > UNKNOWN governs PromoteType: UNKNOWN may be
// promoted to any typed value; typed values may only be promoted by a user
// override, never by another inferred type, except that the provisional
// POINTER may become JUMPTABLE or JUMPTABLE_LABEL (spec.md §4.C, §8
// invariant 4).
type SymbolType uint

const (
	TypeUnknown SymbolType = iota
	TypeFunction
	TypeByte
	TypeShort
	TypeWord
	TypeFloat
	TypeDouble
	TypeCString
	TypeJumpTable
	TypeJumpTableLabel
	TypeBranchLabel
	TypePointer
)

func (t SymbolType) String() string {
	switch t {
	case TypeUnknown:
		return "UNKNOWN"
	case TypeFunction:
		return "FUNCTION"
	case TypeByte:
		return "BYTE"
	case TypeShort:
		return "SHORT"
	case TypeWord:
		return "WORD"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeCString:
		return "CSTRING"
	case TypeJumpTable:
		return "JUMPTABLE"
	case TypeJumpTableLabel:
		return "JUMPTABLE_LABEL"
	case TypeBranchLabel:
		return "BRANCH_LABEL"
	case TypePointer:
		return "POINTER"
	default:
		return "UNKNOWN"
	}
}

// isCompatiblePromotion reports whether `to` may replace `from` under the
// monotonic lattice: UNKNOWN -> anything is always fine; anything -> the
// same type is a no-op; POINTER -> JUMPTABLE/JUMPTABLE_LABEL is allowed
// (see below); any other typed -> typed transition is an
// incompatible promotion and is rejected (spec.md §4.C, §7 "Type
// conflicts... recorded as a non-fatal diagnostic; the existing type
// wins").
func isCompatiblePromotion(from, to SymbolType) bool {
	if from == to {
		return true
	}
	if from == TypeUnknown {
		return true
	}
	// A POINTER is a provisional guess the .rodata walk makes before it has
	// enough evidence to tell a plain pointer apart from a jump table; the
	// later, more specific jump-table finding always wins: JUMPTABLE for the
	// table's first word, JUMPTABLE_LABEL for the rest (spec.md §4.D).
	if from == TypePointer && (to == TypeJumpTable || to == TypeJumpTableLabel) {
		return true
	}
	return false
}

// Section names the owning section kind of a symbol (spec.md §3).
type SectionKind uint

const (
	SectionUnknown SectionKind = iota
	SectionText
	SectionData
	SectionRodata
	SectionBss
)

func (s SectionKind) String() string {
	switch s {
	case SectionText:
		return ".text"
	case SectionData:
		return ".data"
	case SectionRodata:
		return ".rodata"
	case SectionBss:
		return ".bss"
	default:
		return "?"
	}
}

// OverlayCategory groups overlays that compete for the same VRAM range —
// for instance every "actor" overlay in an N64 game is one category, every
// "scene" overlay another. At most one overlay in a category is resident
// at a time (spec.md Glossary).
type OverlayCategory string

// OverlayID identifies one overlay within its category. The empty overlay
// ID is reserved for non-overlaid (always-resident) code and data.
type OverlayID string

// Key uniquely identifies a ContextSymbol's storage slot: spec.md §3's
// invariant is "within one (category, id) namespace, VRAM addresses are
// unique keys" — so Key is exactly that triple.
type Key struct {
	Category OverlayCategory
	ID       OverlayID
	VRAM     uint32
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s@0x%08X", k.Category, k.ID, k.VRAM)
}

// Origin records which analysis phase created or last promoted a symbol,
// and why — the supplemented "debug-info-shaped provenance" SPEC_FULL.md
// adds, repurposing the teacher's debug-info attachment shape for analysis
// triage instead of DWARF line tables.
type Origin struct {
	Phase  string // "config" | "text-walk" | "data-walk" | "hilo-pair"
	Detail string
}

// ContextSymbol is the authoritative record for one named address
// (spec.md §3).
type ContextSymbol struct {
	Key Key

	Name string
	Type SymbolType

	// Size is the symbol's size in bytes; 0 means unknown.
	Size     uint32
	HasSize  bool
	Section  SectionKind

	// AccessedAs records the width/type the load/store instructions that
	// reference this symbol actually use, which may be more specific than
	// Type for a still-UNKNOWN .bss/.data symbol (spec.md §3).
	AccessedAs SymbolType

	ReferenceCount int
	Referrers      map[uint32]struct{}

	// UserOverride marks a symbol whose Name/Type/Size came from user
	// configuration; such fields never change again (spec.md §3, §4.C).
	UserOverride bool

	Origin Origin
}

func newContextSymbol(key Key) *ContextSymbol {
	return &ContextSymbol{
		Key:       key,
		Type:      TypeUnknown,
		Referrers: make(map[uint32]struct{}),
		Origin:    Origin{Phase: "text-walk", Detail: "auto-created stub"},
	}
}

// AddReferrer grows the referrer set and bumps the reference count
// (spec.md §4.C addReferrer). Adding the same referrer twice is a no-op
// for the set but still counted, matching "reference count" as a call
// counter distinct from set cardinality.
func (s *ContextSymbol) AddReferrer(fromVRAM uint32) {
	s.ReferenceCount++
	s.Referrers[fromVRAM] = struct{}{}
}

// ReferrerVRAMs returns the set of addresses that reference this symbol.
func (s *ContextSymbol) ReferrerVRAMs() []uint32 {
	out := make([]uint32, 0, len(s.Referrers))
	for vram := range s.Referrers {
		out = append(out, vram)
	}
	return out
}

// Contains reports whether vram falls within [Key.VRAM, Key.VRAM+Size) —
// used by FindContaining for range lookups. A symbol with unknown size
// never contains anything but its own start address.
func (s *ContextSymbol) Contains(vram uint32) bool {
	if vram == s.Key.VRAM {
		return true
	}
	if !s.HasSize || s.Size == 0 {
		return false
	}
	return vram > s.Key.VRAM && vram < s.Key.VRAM+s.Size
}
