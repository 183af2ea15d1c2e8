package context

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_GetOrCreateIsIdempotent(t *testing.T) {
	c := New()
	key := Key{Category: "actor", ID: "en_item00", VRAM: 0x80600000}

	a := c.GetOrCreate(key)
	b := c.GetOrCreate(key)
	assert.Same(t, a, b)
	assert.Equal(t, TypeUnknown, a.Type)
}

func TestContext_FindContainingPrefersLargestRange(t *testing.T) {
	c := New()
	outer := c.GetOrCreate(Key{Category: "", ID: "", VRAM: 0x80000100})
	outer.Size, outer.HasSize = 0x40, true

	inner := c.GetOrCreate(Key{Category: "", ID: "", VRAM: 0x80000108})
	inner.Size, inner.HasSize = 0x4, true

	found, ok := c.FindContaining("", "", 0x80000108)
	require.True(t, ok)
	assert.Equal(t, uint32(0x80000100), found.Key.VRAM, "largest containing range wins the tie")
}

func TestContext_PromoteTypeMonotonicLattice(t *testing.T) {
	c := New()
	s := c.GetOrCreate(Key{VRAM: 0x80001000})

	var rejected bool
	ok := c.PromoteType(s, TypeWord, func(from, to SymbolType) { rejected = true })
	assert.True(t, ok)
	assert.Equal(t, TypeWord, s.Type)
	assert.False(t, rejected)

	ok = c.PromoteType(s, TypeFloat, func(from, to SymbolType) { rejected = true })
	assert.False(t, ok, "WORD -> FLOAT is not a valid promotion once typed")
	assert.True(t, rejected)
	assert.Equal(t, TypeWord, s.Type, "type is unchanged after a rejected promotion")
}

func TestContext_UserOverrideIsFrozen(t *testing.T) {
	c := New()
	s := c.GetOrCreate(Key{VRAM: 0x80002000})
	c.SetUserOverride(s, "gPlayerHealth", TypeWord, 4)

	ok := c.PromoteType(s, TypeFloat, nil)
	assert.False(t, ok)
	assert.Equal(t, "gPlayerHealth", s.Name)
	assert.True(t, s.UserOverride)
}

func TestContext_CrossCategoryResolutionRequiresWhitelist(t *testing.T) {
	c := New()
	target := Key{Category: "scene", ID: "ddan", VRAM: 0x80700000}
	c.GetOrCreate(target)

	_, ok := c.ResolveFrom("actor", target)
	assert.False(t, ok, "no cross-category resolution without an explicit whitelist entry")

	c.AllowCrossCategory("actor", "scene")
	found, ok := c.ResolveFrom("actor", target)
	require.True(t, ok)
	assert.Equal(t, target, found.Key)
}

func TestContext_ConcurrentAddReferrerIsSafe(t *testing.T) {
	c := New()
	key := Key{VRAM: 0x80003000}

	var wg sync.WaitGroup
	for i := uint32(0); i < 200; i++ {
		wg.Add(1)
		go func(from uint32) {
			defer wg.Done()
			c.AddReferrer(key, from)
		}(i)
	}
	wg.Wait()

	s, ok := c.Find(key)
	require.True(t, ok)
	assert.Equal(t, 200, s.ReferenceCount)
	assert.Len(t, s.Referrers, 200)
}
