// Cache and Delta implement spec §4.11's delta protocol: each full
// response is stored under a generated result id, bounded to the last few
// responses; a delta request against a known id gets back a minimal edit
// list instead of the full token stream.
package semtok

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize is spec §4.11's "K ≈ 5".
const cacheSize = 5

// Cache stores the last cacheSize full semantic-token responses per
// document, keyed by a generated result id. It is guarded by its own lock
// per spec §5 ("Semantic-token delta cache is guarded by its own
// synchronous lock"): golang-lru/v2's Cache takes its own internal lock on
// every operation, so internal/lspserver, which owns exactly one Cache per
// document, calls into it after releasing that document's read lock.
type Cache struct {
	entries *lru.Cache[string, []uint32]
}

// NewCache builds an empty Cache (spec §3 "the cache is bounded (keep the
// last N, evict FIFO)"; golang-lru's default eviction is least-recently-used
// rather than strict FIFO, but since entries are only ever written once and
// read at most once before a new full response supersedes them, LRU and
// FIFO coincide in practice here).
func NewCache() *Cache {
	c, _ := lru.New[string, []uint32](cacheSize)
	return &Cache{entries: c}
}

// Store records an already-encoded full response under a freshly generated
// result id and returns it. Caching the encoded form (not the raw Tokens)
// matters: a Token's Start is a byte offset into the document version it
// was computed from, so once a later edit produces a new version, only the
// already-encoded Δline/Δchar stream remains meaningful to diff against.
func (c *Cache) Store(data []uint32) string {
	id := uuid.NewString()
	c.entries.Add(id, data)
	return id
}

// Take removes and returns the encoded response cached under id, or (nil,
// false) if id is unknown or already superseded (spec §4.11 "Unknown prior
// id -> return full tokens with a new id").
func (c *Cache) Take(id string) ([]uint32, bool) {
	data, ok := c.entries.Get(id)
	if ok {
		c.entries.Remove(id)
	}
	return data, ok
}
