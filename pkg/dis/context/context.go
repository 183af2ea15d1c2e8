package context

import (
	"hash/fnv"
	"sort"
	"sync"
)

// shardCount is the number of independent lock/map buckets the Context
// shards across. Spec.md §5 calls for "a concurrent hash map keyed on
// (category, id, vram), with per-bucket locking" rather than one global
// mutex, so that Section Analyzers working disjoint overlays don't
// serialize on each other.
const shardCount = 64

type shard struct {
	mu      sync.Mutex
	symbols map[Key]*ContextSymbol
}

// Context is the Global Context / Symbol Table (spec.md §4.C): the single
// shared map every Section Analyzer and the Hi/Lo Pairer reads from and
// writes into, namespaced by overlay category+id so that two overlays
// which both use VRAM 0x80400000 never collide.
type Context struct {
	shards [shardCount]*shard

	// crossCategoryWhitelist records (from, to) category pairs explicitly
	// permitted to resolve into each other's namespace — spec.md §9's Open
	// Question ("should cross-overlay symbol resolution ever be allowed")
	// is resolved here as "no, unless explicitly whitelisted" (see
	// DESIGN.md).
	mu                    sync.RWMutex
	crossCategoryWhitelist map[[2]OverlayCategory]bool
}

// New creates an empty Context.
func New() *Context {
	c := &Context{crossCategoryWhitelist: make(map[[2]OverlayCategory]bool)}
	for i := range c.shards {
		c.shards[i] = &shard{symbols: make(map[Key]*ContextSymbol)}
	}
	return c
}

func (c *Context) shardFor(k Key) *shard {
	h := fnv.New32a()
	h.Write([]byte(k.Category))
	h.Write([]byte(k.ID))
	var buf [4]byte
	buf[0] = byte(k.VRAM)
	buf[1] = byte(k.VRAM >> 8)
	buf[2] = byte(k.VRAM >> 16)
	buf[3] = byte(k.VRAM >> 24)
	h.Write(buf[:])
	return c.shards[h.Sum32()%shardCount]
}

// AllowCrossCategory whitelists symbol lookups originating in `from` to
// resolve into `to`'s namespace (spec.md §9 Open Question resolution).
func (c *Context) AllowCrossCategory(from, to OverlayCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crossCategoryWhitelist[[2]OverlayCategory{from, to}] = true
}

func (c *Context) crossCategoryAllowed(from, to OverlayCategory) bool {
	if from == to {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.crossCategoryWhitelist[[2]OverlayCategory{from, to}]
}

// GetOrCreate returns the symbol at key, creating an UNKNOWN stub if one
// doesn't already exist (spec.md §4.C getOrCreate).
func (c *Context) GetOrCreate(key Key) *ContextSymbol {
	sh := c.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if s, ok := sh.symbols[key]; ok {
		return s
	}
	s := newContextSymbol(key)
	sh.symbols[key] = s
	return s
}

// Find looks up a symbol by exact (category, id, vram); it does not create
// one and does not consult cross-category whitelisting (that's Find's
// caller's job via FindContaining/ResolveFrom).
func (c *Context) Find(key Key) (*ContextSymbol, bool) {
	sh := c.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s, ok := sh.symbols[key]
	return s, ok
}

// FindContaining looks up the symbol whose [vram, vram+size) range covers
// the given address within one namespace — spec.md §4.C's interval lookup,
// with "largest size wins" as the tie-break when multiple stub symbols
// could technically contain the address (can happen transiently before
// sizes are finalized).
func (c *Context) FindContaining(category OverlayCategory, id OverlayID, vram uint32) (*ContextSymbol, bool) {
	var best *ContextSymbol
	for _, sh := range c.shards {
		sh.mu.Lock()
		for k, s := range sh.symbols {
			if k.Category != category || k.ID != id {
				continue
			}
			if !s.Contains(vram) {
				continue
			}
			if best == nil || s.Size > best.Size {
				best = s
			}
		}
		sh.mu.Unlock()
	}
	return best, best != nil
}

// ResolveFrom looks a key up the way a referencing instruction would: a
// key in the referencing instruction's own category resolves directly; a
// key in any other category resolves only if that (from, to) pair was
// whitelisted with AllowCrossCategory, per spec.md §9.
func (c *Context) ResolveFrom(fromCategory OverlayCategory, key Key) (*ContextSymbol, bool) {
	if !c.crossCategoryAllowed(fromCategory, key.Category) {
		return nil, false
	}
	return c.Find(key)
}

// PromoteType attempts to move a symbol's type forward in the monotonic
// lattice (spec.md §4.C promoteType). A UserOverride symbol never changes.
// An incompatible promotion (typed -> different typed, non-user) is
// rejected and reported through diagCallback so the caller can record a
// diagnostic without this package importing diag and creating a cycle.
func (c *Context) PromoteType(s *ContextSymbol, to SymbolType, diagCallback func(from, to SymbolType)) bool {
	sh := c.shardFor(s.Key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if s.UserOverride {
		return false
	}
	if s.Type == to {
		return true
	}
	if !isCompatiblePromotion(s.Type, to) {
		if diagCallback != nil {
			diagCallback(s.Type, to)
		}
		return false
	}
	s.Type = to
	return true
}

// SetUserOverride forcibly sets name/type/size from user configuration and
// freezes the symbol against further automatic promotion (spec.md §4.C,
// §6 "user-provided symbol table entries always win").
func (c *Context) SetUserOverride(s *ContextSymbol, name string, t SymbolType, size uint32) {
	sh := c.shardFor(s.Key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s.Name = name
	s.Type = t
	s.Size = size
	s.HasSize = size > 0
	s.UserOverride = true
	s.Origin = Origin{Phase: "config", Detail: "user symbol table entry"}
}

// AddReferrer records fromVRAM as a referrer of the symbol at key, creating
// the symbol if it doesn't exist yet (a forward reference to code/data not
// yet walked is still a reference).
func (c *Context) AddReferrer(key Key, fromVRAM uint32) *ContextSymbol {
	s := c.GetOrCreate(key)
	sh := c.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s.AddReferrer(fromVRAM)
	return s
}

// All returns every symbol in one (category, id) namespace, sorted by VRAM
// — used by the text symtab writer (spec.md §6) and the TUI browser.
func (c *Context) All(category OverlayCategory, id OverlayID) []*ContextSymbol {
	var out []*ContextSymbol
	for _, sh := range c.shards {
		sh.mu.Lock()
		for k, s := range sh.symbols {
			if k.Category == category && k.ID == id {
				out = append(out, s)
			}
		}
		sh.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.VRAM < out[j].Key.VRAM })
	return out
}
