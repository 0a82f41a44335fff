package cache_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/1ShivamPandey/apnafinance/internal/cache"
	"github.com/1ShivamPandey/apnafinance/internal/model"
)

func result(totalStocks int) *model.PortfolioData {
	return &model.PortfolioData{TotalStocks: totalStocks}
}

func TestResultCache_GetPut(t *testing.T) {
	t.Run("returns a stored result", func(t *testing.T) {
		c := cache.NewResultCache(4, time.Minute)
		c.Put("a", result(3))

		got, ok := c.Get("a")

		if !ok {
			t.Fatal("Expected a cache hit")
		}
		if got.TotalStocks != 3 {
			t.Errorf("Expected TotalStocks 3, got %d", got.TotalStocks)
		}
	})

	t.Run("misses on an unknown key", func(t *testing.T) {
		c := cache.NewResultCache(4, time.Minute)

		if _, ok := c.Get("missing"); ok {
			t.Error("Expected a miss for an unknown key")
		}
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		c := cache.NewResultCache(4, time.Minute)
		c.Put("a", result(1))
		c.Put("a", result(2))

		got, ok := c.Get("a")

		if !ok {
			t.Fatal("Expected a cache hit")
		}
		if got.TotalStocks != 2 {
			t.Errorf("Expected the replacement value, got TotalStocks %d", got.TotalStocks)
		}
		if c.Len() != 1 {
			t.Errorf("Expected 1 entry after overwrite, got %d", c.Len())
		}
	})
}

func TestResultCache_Expiry(t *testing.T) {
	t.Run("drops an expired entry on access", func(t *testing.T) {
		c := cache.NewResultCache(4, time.Millisecond)
		c.Put("a", result(1))

		time.Sleep(5 * time.Millisecond)

		if _, ok := c.Get("a"); ok {
			t.Error("Expected a miss after the TTL elapsed")
		}
		if c.Len() != 0 {
			t.Errorf("Expected expired entry to be removed, got Len %d", c.Len())
		}
	})

	t.Run("sweep removes only expired entries", func(t *testing.T) {
		c := cache.NewResultCache(4, 50*time.Millisecond)
		c.Put("old", result(1))

		time.Sleep(60 * time.Millisecond)
		c.Put("fresh", result(2))

		removed := c.Sweep()

		if removed != 1 {
			t.Errorf("Expected 1 entry swept, got %d", removed)
		}
		if _, ok := c.Get("fresh"); !ok {
			t.Error("Expected the fresh entry to survive the sweep")
		}
		if c.Len() != 1 {
			t.Errorf("Expected 1 entry after sweep, got %d", c.Len())
		}
	})
}

func TestResultCache_Eviction(t *testing.T) {
	t.Run("evicts the least recently used entry when full", func(t *testing.T) {
		c := cache.NewResultCache(3, time.Minute)
		c.Put("a", result(1))
		c.Put("b", result(2))
		c.Put("c", result(3))

		// Touch "a" so "b" becomes the eviction candidate.
		if _, ok := c.Get("a"); !ok {
			t.Fatal("Expected a hit for 'a'")
		}

		c.Put("d", result(4))

		if _, ok := c.Get("b"); ok {
			t.Error("Expected 'b' to have been evicted")
		}
		for _, key := range []string{"a", "c", "d"} {
			if _, ok := c.Get(key); !ok {
				t.Errorf("Expected %q to survive eviction", key)
			}
		}
		if c.Len() != 3 {
			t.Errorf("Expected Len 3, got %d", c.Len())
		}
	})

	t.Run("never exceeds its capacity", func(t *testing.T) {
		c := cache.NewResultCache(2, time.Minute)
		for i := 0; i < 10; i++ {
			c.Put(fmt.Sprintf("key-%d", i), result(i))
		}

		if c.Len() != 2 {
			t.Errorf("Expected Len 2, got %d", c.Len())
		}
	})
}

func TestKey(t *testing.T) {
	t.Run("is deterministic for identical content", func(t *testing.T) {
		a := cache.Key([]byte("same bytes"))
		b := cache.Key([]byte("same bytes"))

		if a != b {
			t.Errorf("Expected identical keys, got %q and %q", a, b)
		}
	})

	t.Run("differs for different content", func(t *testing.T) {
		a := cache.Key([]byte("one"))
		b := cache.Key([]byte("two"))

		if a == b {
			t.Error("Expected different keys for different content")
		}
	})

	t.Run("is a hex sha-256 digest", func(t *testing.T) {
		key := cache.Key([]byte("abc"))

		if len(key) != 64 {
			t.Errorf("Expected 64 hex characters, got %d", len(key))
		}
		if key != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
			t.Errorf("Unexpected digest for 'abc': %s", key)
		}
	})
}
