// Package diag implements the non-fatal diagnostic collection spec.md §7
// describes: "the core returns success plus a diagnostic collection rather
// than short-circuiting". Decode anomalies, type conflicts and boundary
// ambiguities all land here instead of as Go errors.
package diag

import "fmt"

// Severity classifies how serious a diagnostic is. None of these stop
// analysis — only configuration errors (§7) return a plain error instead
// of a diagnostic.
type Severity uint

const (
	SeverityInfo Severity = iota
	SeverityAdvisory
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityAdvisory:
		return "advisory"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Entry is one diagnostic record: which component raised it, where
// (if address-scoped) and what happened.
type Entry struct {
	Severity  Severity
	Component string
	VRAM      uint32
	HasVRAM   bool
	Message   string
}

func (e Entry) String() string {
	if e.HasVRAM {
		return fmt.Sprintf("[%s] %s @ 0x%08X: %s", e.Severity, e.Component, e.VRAM, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Component, e.Message)
}

// Collector accumulates diagnostics across an analysis run. It is not
// safe for concurrent writes from multiple goroutines without external
// synchronization — each Section Analyzer owns its own Collector and
// results are merged after the parallel phase joins (spec.md §5).
type Collector struct {
	entries []Entry
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(e Entry) {
	c.entries = append(c.entries, e)
}

func (c *Collector) Infof(component, format string, args ...any) {
	c.Add(Entry{Severity: SeverityInfo, Component: component, Message: fmt.Sprintf(format, args...)})
}

func (c *Collector) Advisoryf(component string, vram uint32, format string, args ...any) {
	c.Add(Entry{Severity: SeverityAdvisory, Component: component, VRAM: vram, HasVRAM: true, Message: fmt.Sprintf(format, args...)})
}

func (c *Collector) Warnf(component string, vram uint32, format string, args ...any) {
	c.Add(Entry{Severity: SeverityWarning, Component: component, VRAM: vram, HasVRAM: true, Message: fmt.Sprintf(format, args...)})
}

// Entries returns every diagnostic recorded so far, in emission order.
func (c *Collector) Entries() []Entry {
	return c.entries
}

// Merge appends another Collector's entries onto this one — used to join
// per-Section or per-function Collectors after a parallel phase (spec.md §5).
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.entries = append(c.entries, other.entries...)
}

// HasWarnings reports whether any SeverityWarning entry was recorded.
func (c *Collector) HasWarnings() bool {
	for _, e := range c.entries {
		if e.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
