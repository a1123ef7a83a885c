package catalog

import (
	"sync"

	"kacip-storefront/models"
)

const (
	popularKey = "popular_items"
	newKey     = "new_items"
)

func categoryKey(c models.Category) string { return "category_" + string(c) }

// queryCache memoizes derived collections. Keys are bounded (categories plus two flags) so
// nothing is ever evicted; Store.InvalidateCache is the only way entries go away.
type queryCache struct {
	mu      sync.Mutex
	entries map[string][]models.MenuItem
	hits    int
	misses  int
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string][]models.MenuItem)}
}

func (c *queryCache) get(key string) ([]models.MenuItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *queryCache) set(key string, items []models.MenuItem) {
	c.mu.Lock()
	c.entries[key] = items
	c.mu.Unlock()
}

func (c *queryCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string][]models.MenuItem)
	c.mu.Unlock()
}

// CacheStats is exposed on the admin dashboard
type CacheStats struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

func (c *queryCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
