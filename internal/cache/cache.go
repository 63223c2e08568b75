// Package cache memoizes fuzzy.Score results for repeated (needle,
// haystack) pairs: a mutex-guarded map avoiding rescoring of candidates
// when an interactive query returns to a string it has already been
// (for example after a backspace). A new needle is always a cache miss.
package cache

import (
	"sync"

	"golang.org/x/crypto/blake2b"

	"fzmatch/pkg/fuzzy"
)

// key is a content hash of a needle plus a haystack, used instead of the
// raw strings so cache entries can be compared and logged without
// retaining candidate text twice over. The needle is hashed as given:
// fuzzy.Score treats an upper-case needle character as matching only
// upper-case haystack characters, so differently-cased needles can score
// differently and must not share an entry.
type key [blake2b.Size256]byte

func makeKey(needle string, haystack string) key {
	h, _ := blake2b.New256(nil) // nil key and matching size never error
	h.Write([]byte(needle))
	h.Write([]byte{0})
	h.Write([]byte(haystack))
	var k key
	copy(k[:], h.Sum(nil))
	return k
}

// ScoreCache is a bounded, concurrency-safe (needle, haystack) -> score
// cache. The zero value is not usable; construct with New.
type ScoreCache struct {
	mu       sync.Mutex
	capacity int
	order    []key
	entries  map[key]fuzzy.Score
}

// New returns a ScoreCache holding at most capacity entries, evicting the
// oldest insertion once full (a simple FIFO, suited to a query cache
// whose working set turns over as the user types).
func New(capacity int) *ScoreCache {
	if capacity <= 0 {
		capacity = 4096
	}
	return &ScoreCache{
		capacity: capacity,
		entries:  make(map[key]fuzzy.Score, capacity),
	}
}

// Get returns the cached score for (needle, haystack), if present.
func (c *ScoreCache) Get(needle, haystack string) (fuzzy.Score, bool) {
	k := makeKey(needle, haystack)
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[k]
	return s, ok
}

// Put records the score for (needle, haystack), evicting the oldest entry
// if the cache is at capacity.
func (c *ScoreCache) Put(needle, haystack string, score fuzzy.Score) {
	k := makeKey(needle, haystack)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[k]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, k)
	}
	c.entries[k] = score
}

// Len reports the number of entries currently cached.
func (c *ScoreCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
