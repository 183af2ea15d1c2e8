// Package section implements the Section Analyzer (spec.md §4.D): the
// per-section walk that turns raw bytes into decoded instructions or typed
// data symbols and feeds the Global Context.
package section

import (
	"github.com/n64decomp/mipsdis/pkg/dis/context"
)

// Section is one contiguous, independently-walkable chunk of a ROM/overlay
// image: a .text, .data, .rodata or .bss range belonging to one overlay
// namespace (spec.md §3, §4.D). Sections in different (Category, ID)
// namespaces are always safe to walk concurrently; the Global Context's
// per-shard locking (spec.md §5) is what makes that safe even though they
// may share VRAM ranges.
type Section struct {
	Kind     context.SectionKind
	Category context.OverlayCategory
	ID       context.OverlayID

	// VRAM is the address the first byte of Data is mapped at.
	VRAM uint32
	Data []byte

	// Name labels the section in reports and the symbrowse views; the
	// walks in this package do not create a symbol from it.
	Name string
}

// Size returns the section's length in bytes.
func (s Section) Size() uint32 {
	return uint32(len(s.Data))
}

// End returns the address one past the section's last byte.
func (s Section) End() uint32 {
	return s.VRAM + s.Size()
}

// Contains reports whether vram falls within this section's mapped range.
func (s Section) Contains(vram uint32) bool {
	return vram >= s.VRAM && vram < s.End()
}
