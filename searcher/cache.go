package searcher

import "colorwars/game"

type bound uint8

const (
	exact bound = iota
	lowerBound // search failed high, the true score is at least the stored one
	upperBound // search failed low, the true score is at most the stored one
)

type cacheKey struct {
	fingerprint game.Fingerprint
	player      game.PlayerID
	opponent    game.PlayerID
	depth       int
	maximizing  bool
	allowEmpty  bool
}

type cacheEntry struct {
	score int
	move  game.Move
	found bool // false for leaves without a move
	bound bound
}

// usable reports whether the entry settles a node searched with the given window.
func (e cacheEntry) usable(alpha, beta int) bool {
	switch e.bound {
	case exact:
		return true
	case lowerBound:
		return e.score >= beta
	case upperBound:
		return e.score <= alpha
	default:
		return false
	}
}

// Cache memoizes searched positions across searches. It never evicts on its
// own; call Clear to bound memory or at new-game boundaries.
type Cache struct {
	entries map[cacheKey]cacheEntry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]cacheEntry)}
}

func (c *Cache) Len() int {
	return len(c.entries)
}

func (c *Cache) Clear() {
	c.entries = make(map[cacheKey]cacheEntry)
}

func (c *Cache) lookup(key cacheKey) (cacheEntry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

func (c *Cache) store(key cacheKey, e cacheEntry) {
	c.entries[key] = e
}
