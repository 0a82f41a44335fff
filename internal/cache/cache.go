// Package cache holds the bounded in-memory cache of processed upload
// results. A repeat upload of the same file skips workbook decoding and the
// upstream price fetches entirely.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/1ShivamPandey/apnafinance/internal/model"
)

// entry is one cached result together with its expiry.
type entry struct {
	key       string
	value     *model.PortfolioData
	expiresAt time.Time
}

// ResultCache is a bounded, TTL'd cache of upload results keyed by content
// hash. When full it evicts the least recently used entry; expired entries
// are dropped on access and by the periodic sweep. Safe for concurrent use.
type ResultCache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	order      *list.List // front = most recently used
	entries    map[string]*list.Element
}

// NewResultCache creates a cache holding at most maxEntries results, each
// valid for ttl after insertion.
func NewResultCache(maxEntries int, ttl time.Duration) *ResultCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &ResultCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

// Key derives the cache key for an upload: the hex SHA-256 of the file
// bytes. Hashing the content, rather than trusting the client's file name
// and size, means two different files can never collide on a key.
func Key(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached result for key, if present and not expired, and
// marks it as recently used. Expired entries are removed on the spot.
func (c *ResultCache) Get(key string) (*model.PortfolioData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	ent := elem.Value.(*entry)
	if time.Now().After(ent.expiresAt) {
		c.remove(elem)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return ent.value, true
}

// Put stores a result under key, refreshing the expiry if the key already
// exists. When the cache is full the least recently used entry is evicted.
func (c *ResultCache) Put(key string, value *model.PortfolioData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	for c.order.Len() >= c.maxEntries {
		c.remove(c.order.Back())
	}

	elem := c.order.PushFront(&entry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.entries[key] = elem
}

// Sweep removes every expired entry and reports how many were dropped. The
// background scheduler calls this periodically so stale results do not sit
// in memory until their key happens to be requested again.
func (c *ResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0

	var next *list.Element
	for elem := c.order.Front(); elem != nil; elem = next {
		next = elem.Next()
		if now.After(elem.Value.(*entry).expiresAt) {
			c.remove(elem)
			removed++
		}
	}
	return removed
}

// Len reports the number of entries currently held, expired or not.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// remove drops an element from both the order list and the key index.
// Callers must hold the mutex.
func (c *ResultCache) remove(elem *list.Element) {
	if elem == nil {
		return
	}
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*entry).key)
}
