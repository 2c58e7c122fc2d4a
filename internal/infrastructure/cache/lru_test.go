package cache

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/domain/entity"
)

var _ port.Cache[string, *entity.Icon] = (*LRU[string, *entity.Icon])(nil)

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = cache.Get("notfound")
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	assert.Equal(t, 3, cache.Len())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	cache := NewLRU[string, int](2, WithEvictCallback(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Get("a") // a is now most recent
	cache.Set("c", 3)

	_, ok := cache.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, uint64(1), cache.Evictions())
}

func TestLRU_UpdateExisting(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("a", 100)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 100, val)
	assert.Equal(t, 2, cache.Len())
	assert.Zero(t, cache.Evictions())
}

func TestLRU_RemoveAndPurge(t *testing.T) {
	cache := NewLRU[string, int](3)
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	cache.Remove("b")
	cache.Remove("notfound")
	assert.Equal(t, 2, cache.Len())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Zero(t, cache.Evictions())
}

func TestLRU_Shrink(t *testing.T) {
	cache := NewLRU[string, int](10)
	for i, k := range []string{"a", "b", "c", "d"} {
		cache.Set(k, i)
	}

	assert.Equal(t, 3, cache.Shrink(1))
	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("d")
	assert.True(t, ok, "most recent entry survives")

	assert.Equal(t, 1, cache.Shrink(-5))
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, uint64(4), cache.Evictions())
}

func TestLRU_DefaultCapacity(t *testing.T) {
	cache := NewLRU[int, int](0)
	for i := 0; i < DefaultCapacity+10; i++ {
		cache.Set(i, i)
	}
	assert.Equal(t, DefaultCapacity, cache.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, int](100)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			cache.Set(i+100, i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Get(i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Remove(i + 50)
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, cache.Len(), 100)
}

func TestLRU_IconValues(t *testing.T) {
	cache := NewLRU[string, *entity.Icon](2)
	icon := &entity.Icon{Key: "example.com.ico", Image: image.NewRGBA(image.Rect(0, 0, 16, 16))}

	cache.Set(icon.Key, icon)

	got, ok := cache.Get("example.com.ico")
	require.True(t, ok)
	assert.Same(t, icon, got)
}
