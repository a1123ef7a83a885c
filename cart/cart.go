// Package cart owns one client's shopping cart and keeps it in durable storage.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"kacip-storefront/models"
	"kacip-storefront/storage"
)

// persistTimeout bounds a single storage write; a slow medium never stalls a mutation for long
const persistTimeout = 2 * time.Second

// Snapshot is the read-only view handed to subscribers and the view layer
type Snapshot struct {
	Lines      []Line  `json:"items"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}

// Manager is linearized by its mutex: every mutation applies, persists and then notifies
// subscribers before the next one starts.
type Manager struct {
	mu      sync.Mutex
	lines   []Line
	store   storage.KV
	key     string
	log     *log.Logger
	subs    map[int]func(Snapshot)
	nextSub int
}

// New builds a manager and rehydrates it from store. Unreadable or corrupt data yields an
// empty cart; it is logged, never returned.
func New(ctx context.Context, store storage.KV, key string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		store: store,
		key:   key,
		log:   logger,
		subs:  make(map[int]func(Snapshot)),
	}
	m.lines = m.load(ctx)
	return m
}

func (m *Manager) load(ctx context.Context) []Line {
	data, err := m.store.Get(ctx, m.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		m.log.Printf("cart: failed to load %s from storage: %v", m.key, err)
		return nil
	}
	lines, err := Decode(data)
	if err != nil {
		m.log.Printf("cart: discarding corrupt cart %s: %v", m.key, err)
		return nil
	}
	return lines
}

// AddItem merges by id: an existing line gains exactly one, otherwise a new line with
// quantity 1 snapshots the item as it is right now.
func (m *Manager) AddItem(ctx context.Context, item models.MenuItem) {
	m.mutate(ctx, func() bool {
		if i := m.indexLocked(item.ID); i >= 0 {
			m.lines[i].Quantity++
			return true
		}
		m.lines = append(m.lines, Line{MenuItem: item.Clone(), Quantity: 1})
		return true
	})
}

// RemoveItem deletes the line for itemID; a missing id is a no-op
func (m *Manager) RemoveItem(ctx context.Context, itemID string) {
	m.mutate(ctx, func() bool { return m.removeLocked(itemID) })
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line, and an id that is
// not in the cart is ignored.
func (m *Manager) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	m.mutate(ctx, func() bool {
		if quantity <= 0 {
			return m.removeLocked(itemID)
		}
		i := m.indexLocked(itemID)
		if i < 0 || m.lines[i].Quantity == quantity {
			return false
		}
		m.lines[i].Quantity = quantity
		return true
	})
}

func (m *Manager) Clear(ctx context.Context) {
	m.mutate(ctx, func() bool {
		if len(m.lines) == 0 {
			return false
		}
		m.lines = nil
		return true
	})
}

// Subtract takes the given lines out of the cart in one mutation: each matching line loses
// the given quantity and is dropped once it reaches zero. Items added after the lines were
// read stay in the cart.
func (m *Manager) Subtract(ctx context.Context, lines []Line) {
	m.mutate(ctx, func() bool {
		changed := false
		for _, l := range lines {
			i := m.indexLocked(l.ID)
			if i < 0 || l.Quantity <= 0 {
				continue
			}
			m.lines[i].Quantity -= l.Quantity
			if m.lines[i].Quantity <= 0 {
				m.removeLocked(l.ID)
			}
			changed = true
		}
		return changed
	})
}

// TotalItems is the sum of quantities, not the number of lines
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalItems(m.lines)
}

func (m *Manager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return totalPrice(m.lines)
}

// Lines returns a copy of the current lines in insertion order
func (m *Manager) Lines() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyLines(m.lines)
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every change. Callbacks run while the
// manager is locked, in mutation order, and must not call back into it. The returned func
// unsubscribes.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) mutate(ctx context.Context, apply func() bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !apply() {
		return
	}
	m.persistLocked(ctx)

	snap := m.snapshotLocked()
	for _, fn := range m.subs {
		fn(snap)
	}
}

func (m *Manager) persistLocked(ctx context.Context) {
	data, err := Encode(m.lines)
	if err != nil {
		m.log.Printf("cart: failed to encode %s: %v", m.key, err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := m.store.Set(ctx, m.key, data); err != nil {
		m.log.Printf("cart: failed to save %s to storage: %v", m.key, err)
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		Lines:      copyLines(m.lines),
		TotalItems: totalItems(m.lines),
		TotalPrice: totalPrice(m.lines),
	}
}

func (m *Manager) removeLocked(itemID string) bool {
	i := m.indexLocked(itemID)
	if i < 0 {
		return false
	}
	m.lines = append(m.lines[:i:i], m.lines[i+1:]...)
	return true
}

func (m *Manager) indexLocked(itemID string) int {
	for i, l := range m.lines {
		if l.ID == itemID {
			return i
		}
	}
	return -1
}

func totalItems(lines []Line) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func totalPrice(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{MenuItem: l.MenuItem.Clone(), Quantity: l.Quantity}
	}
	return out
}
