// Package driver holds the shared, non-core loading logic every CLI
// front-end (cmd/disas, cmd/symbrowse) needs: turning a YAML section
// manifest and a YAML config preset into the types pkg/dis.Analyze takes.
// It exists so both front-ends load sections/config identically rather
// than each reimplementing its own parser.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/n64decomp/mipsdis/pkg/dis/context"
	"github.com/n64decomp/mipsdis/pkg/dis/section"
	"gopkg.in/yaml.v3"
)

// SectionEntry is one row of a manifest file: a raw byte dump, the VRAM it
// loads at, and which overlay namespace and section kind it belongs to.
type SectionEntry struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"` // text | data | rodata | bss
	Category string `yaml:"category"`
	ID       string `yaml:"id"`
	VRAM     string `yaml:"vram"` // "0x80000400"
	File     string `yaml:"file"` // path relative to the manifest's directory
}

// Manifest is the top-level manifest document shape.
type Manifest struct {
	Sections []SectionEntry `yaml:"sections"`
}

// LoadManifest reads and parses a manifest file off disk.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("driver: parsing manifest %s: %w", path, err)
	}
	if len(m.Sections) == 0 {
		return nil, fmt.Errorf("driver: manifest %s declares no sections", path)
	}
	return &m, nil
}

func parseSectionKind(s string) (context.SectionKind, error) {
	switch strings.ToLower(s) {
	case "text":
		return context.SectionText, nil
	case "data":
		return context.SectionData, nil
	case "rodata":
		return context.SectionRodata, nil
	case "bss":
		return context.SectionBss, nil
	default:
		return context.SectionUnknown, fmt.Errorf("unknown section kind %q", s)
	}
}

// ToSections resolves every manifest entry into a loaded section.Section,
// reading each entry's raw bytes relative to the manifest file's own
// directory. .bss entries need no File (their bytes are never inspected).
// The manifest has no size field, so a .bss entry with no File becomes a
// zero-length section that covers no addresses.
func (m *Manifest) ToSections(manifestDir string) ([]section.Section, error) {
	out := make([]section.Section, 0, len(m.Sections))
	for _, e := range m.Sections {
		kind, err := parseSectionKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("driver: section %q: %w", e.Name, err)
		}

		vram, err := strconv.ParseUint(strings.TrimPrefix(e.VRAM, "0x"), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("driver: section %q: bad vram %q: %w", e.Name, e.VRAM, err)
		}

		var data []byte
		if e.File != "" {
			data, err = os.ReadFile(filepath.Join(manifestDir, e.File))
			if err != nil {
				return nil, fmt.Errorf("driver: section %q: %w", e.Name, err)
			}
		}

		out = append(out, section.Section{
			Kind:     kind,
			Category: context.OverlayCategory(e.Category),
			ID:       context.OverlayID(e.ID),
			VRAM:     uint32(vram),
			Data:     data,
			Name:     e.Name,
		})
	}
	return out, nil
}
