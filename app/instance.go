// Package app wires the per-client application context: one cart, one session, one
// notification channel and one live event stream per client id.
package app

import (
	"sync"
	"time"

	"kacip-storefront/cart"
	"kacip-storefront/catalog"
	"kacip-storefront/debounce"
	"kacip-storefront/models"
	"kacip-storefront/notify"
	"kacip-storefront/session"
)

// SearchResult is published when a debounced typeahead query settles
type SearchResult struct {
	Query string            `json:"query"`
	Items []models.MenuItem `json:"items"`
}

// Instance is everything one client owns. Components are built once by the Registry and
// injected into each other there.
type Instance struct {
	ClientID string
	Cart     *cart.Manager
	Session  *session.Holder
	Notices  *notify.Channel
	Events   *Bus

	catalog   *catalog.Store
	typeahead *debounce.Debouncer[string]
	restored  chan struct{}
	unwatch   []func()

	mu       sync.Mutex
	lastSeen time.Time
}

// Search feeds the typeahead. Results arrive on Events once the input has been quiet for
// the configured delay.
func (i *Instance) Search(query string) {
	i.typeahead.Trigger(query)
}

// Restored is closed once the persisted session has been checked
func (i *Instance) Restored() <-chan struct{} {
	return i.restored
}

func (i *Instance) watch(searchDelay time.Duration) {
	i.typeahead = debounce.New(searchDelay, func(q string) {
		i.Events.Publish(Event{Type: EventSearch, Data: SearchResult{Query: q, Items: i.catalog.Search(q)}})
	})
	i.unwatch = append(i.unwatch,
		i.Cart.Subscribe(func(s cart.Snapshot) {
			i.Events.Publish(Event{Type: EventCart, Data: s})
		}),
		i.Session.Subscribe(func(s session.Snapshot) {
			i.Events.Publish(Event{Type: EventSession, Data: s})
		}),
		i.Notices.Subscribe(func(m notify.Message) {
			i.Events.Publish(Event{Type: EventNotification, Data: m})
		}),
	)
}

func (i *Instance) touch(now time.Time) {
	i.mu.Lock()
	i.lastSeen = now
	i.mu.Unlock()
}

func (i *Instance) idleSince() time.Time {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastSeen
}

func (i *Instance) close() {
	i.typeahead.Stop()
	for _, fn := range i.unwatch {
		fn()
	}
}
