// Package catalog holds the canonical menu and answers filtered queries over it.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kacip-storefront/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("menu item not found")
	ErrDuplicateID = errors.New("menu item id already exists")
	ErrInvalidItem = errors.New("invalid menu item")
)

// Store is the catalog for one application. Collections returned by the cached queries are
// shared between callers and must be treated as read-only.
type Store struct {
	mu       sync.RWMutex
	items    []models.MenuItem
	cache    *queryCache
	validate *validator.Validate
	now      func() time.Time
}

// NewStore copies items into a new catalog
func NewStore(items []models.MenuItem) *Store {
	s := &Store{
		cache:    newQueryCache(),
		validate: validator.New(),
		now:      time.Now,
	}
	s.items = make([]models.MenuItem, len(items))
	for i, it := range items {
		s.items[i] = it.Clone()
	}
	return s
}

// All returns every item in catalog order
func (s *Store) All() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MenuItem(nil), s.items...)
}

// GetByID returns the first item with the given id
func (s *Store) GetByID(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return models.MenuItem{}, false
}

// GetByCategory returns the items of one category in catalog order
func (s *Store) GetByCategory(category models.Category) []models.MenuItem {
	return s.cached(categoryKey(category), func(it models.MenuItem) bool {
		return it.Category == category
	})
}

func (s *Store) GetPopular() []models.MenuItem {
	return s.cached(popularKey, func(it models.MenuItem) bool { return it.IsPopular })
}

func (s *Store) GetNew() []models.MenuItem {
	return s.cached(newKey, func(it models.MenuItem) bool { return it.IsNew })
}

// Search matches query against name or description, case-insensitively.
// A blank query returns the whole catalog.
func (s *Store) Search(query string) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []models.MenuItem{}
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.Description), q) {
			result = append(result, it)
		}
	}
	return result
}

// InvalidateCache drops every memoized collection
func (s *Store) InvalidateCache() {
	s.cache.clear()
}

func (s *Store) CacheStats() CacheStats {
	return s.cache.stats()
}

// cached filters under the read lock so a concurrent mutation cannot slip a stale
// collection into the cache after it was invalidated.
func (s *Store) cached(key string, keep func(models.MenuItem) bool) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.cache.get(key); ok {
		return v
	}
	result := []models.MenuItem{}
	for _, it := range s.items {
		if keep(it) {
			result = append(result, it)
		}
	}
	s.cache.set(key, result)
	return result
}

// ── Admin mutations ─────────────────────────────────────────────────────────

// Create adds an item, generating an id when none is given
func (s *Store) Create(item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.validate.Struct(item); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(item.ID) >= 0 {
		return models.MenuItem{}, ErrDuplicateID
	}
	item.UpdatedAt = s.now()
	s.items = append(s.items, item.Clone())
	s.cache.clear()
	return item, nil
}

// Update replaces the item with the given id. The id itself never changes.
func (s *Store) Update(id string, item models.MenuItem) (models.MenuItem, error) {
	item.ID = id
	if err := s.validate.Struct(item); err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	item.UpdatedAt = s.now()
	s.items[i] = item.Clone()
	s.cache.clear()
	return item, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.cache.clear()
	return nil
}

// SetAvailability flips whether an item can be ordered
func (s *Store) SetAvailability(id string, available bool) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.MenuItem{}, ErrNotFound
	}
	s.items[i].IsAvailable = available
	s.items[i].UpdatedAt = s.now()
	s.cache.clear()
	return s.items[i].Clone(), nil
}

func (s *Store) indexLocked(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// MenuStats backs the admin menu page counters
type MenuStats struct {
	Total      int                     `json:"total"`
	ByCategory map[models.Category]int `json:"by_category"`
	Popular    int                     `json:"popular"`
	New        int                     `json:"new"`
	Available  int                     `json:"available"`
}

func (s *Store) Stats() MenuStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := MenuStats{Total: len(s.items), ByCategory: map[models.Category]int{}}
	for _, c := range models.Categories {
		st.ByCategory[c] = 0
	}
	for _, it := range s.items {
		st.ByCategory[it.Category]++
		if it.IsPopular {
			st.Popular++
		}
		if it.IsNew {
			st.New++
		}
		if it.IsAvailable {
			st.Available++
		}
	}
	return st
}
