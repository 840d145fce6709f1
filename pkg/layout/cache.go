package layout

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// fingerprintPrecision is the rounding applied to coordinates before
// hashing; edits smaller than this reuse the cached adjacency.
const fingerprintPrecision = 1e-4

// Fingerprint hashes the rounded geometry of rooms plus the exact
// tolerance. Any geometric edit to a room changes the fingerprint; renames
// and opening edits do not.
func Fingerprint(rooms []plan.Room, tolerance float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(math.Round(v/fingerprintPrecision))))
		d.Write(buf[:])
	}

	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(tolerance))
	d.Write(buf[:])
	for _, r := range rooms {
		put(r.X)
		put(r.Y)
		put(r.Width)
		put(r.Height)
		d.WriteString(r.ID)
	}
	return d.Sum64()
}

// Cache memoizes ResolveAdjacency keyed by Fingerprint. It is safe for
// concurrent use. Results are returned as copies.
type Cache struct {
	mu      sync.Mutex
	limit   int
	entries map[uint64]*SharedWallMap
	hits    int
	misses  int
}

// NewCache creates a cache holding at most limit results. When full, the
// cache is cleared before the next insert.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = 64
	}
	return &Cache{limit: limit, entries: make(map[uint64]*SharedWallMap)}
}

// Resolve returns the adjacency of rooms, computing it on a miss.
func (c *Cache) Resolve(rooms []plan.Room, tolerance float64) *SharedWallMap {
	key := Fingerprint(rooms, tolerance)

	c.mu.Lock()
	if m, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return m.Clone()
	}
	c.misses++
	c.mu.Unlock()

	m := ResolveAdjacency(rooms, tolerance)

	c.mu.Lock()
	if len(c.entries) >= c.limit {
		c.entries = make(map[uint64]*SharedWallMap)
	}
	c.entries[key] = m.Clone()
	c.mu.Unlock()

	return m
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
