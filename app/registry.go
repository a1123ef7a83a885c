package app

import (
	"context"
	"log"
	"sync"
	"time"

	"kacip-storefront/cart"
	"kacip-storefront/catalog"
	"kacip-storefront/identity"
	"kacip-storefront/notify"
	"kacip-storefront/session"
	"kacip-storefront/storage"
)

// restoreTimeout bounds the background session check of a new instance
const restoreTimeout = 10 * time.Second

// Deps are shared by every client instance
type Deps struct {
	Catalog     *catalog.Store
	Identity    identity.Backend
	Storage     storage.KV
	Logger      *log.Logger
	NoticeTTL   time.Duration
	SearchDelay time.Duration
}

// Registry builds client instances on first use and keeps them until they go idle
type Registry struct {
	deps   Deps
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time

	mu        sync.Mutex
	instances map[string]*Instance
}

func NewRegistry(deps Deps) *Registry {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Registry{
		deps:      deps,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
		instances: make(map[string]*Instance),
	}
}

// Get returns the instance for clientID, creating it on first use. A new instance loads its
// cart from storage right away and checks any persisted session in the background. The
// storage read happens outside the registry lock; if two requests race to create the same
// client the first insert wins.
func (r *Registry) Get(ctx context.Context, clientID string) *Instance {
	r.mu.Lock()
	if inst, ok := r.instances[clientID]; ok {
		inst.touch(r.now())
		r.mu.Unlock()
		return inst
	}
	r.mu.Unlock()

	built := r.build(ctx, clientID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok := r.instances[clientID]; ok {
		inst.touch(r.now())
		return inst
	}

	built.watch(r.deps.SearchDelay)
	built.touch(r.now())
	r.instances[clientID] = built

	go func() {
		defer close(built.restored)
		rctx, cancel := context.WithTimeout(r.ctx, restoreTimeout)
		defer cancel()
		if err := built.Session.Restore(rctx); err != nil && err != session.ErrSuperseded {
			r.deps.Logger.Printf("app: restore session for client %s: %v", clientID, err)
		}
	}()
	return built
}

// build assembles an unwatched instance. Nothing is subscribed or started until it is inserted.
func (r *Registry) build(ctx context.Context, clientID string) *Instance {
	notices := notify.NewChannel(r.deps.NoticeTTL)
	return &Instance{
		ClientID: clientID,
		Cart:     cart.New(ctx, r.deps.Storage, storage.ClientKey(clientID, "cart"), r.deps.Logger),
		Session: session.New(r.deps.Identity, r.deps.Storage, session.Keys{
			User:  storage.ClientKey(clientID, "user"),
			Token: storage.ClientKey(clientID, "token"),
		}, notices, r.deps.Logger),
		Notices:  notices,
		Events:   NewBus(),
		catalog:  r.deps.Catalog,
		restored: make(chan struct{}),
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Sweep drops instances that have not been used for maxIdle and have no live stream
// attached. Their state stays in storage and is reloaded on next use.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, inst := range r.instances {
		if inst.idleSince().After(cutoff) || inst.Events.Subscribers() > 0 {
			continue
		}
		inst.close()
		delete(r.instances, id)
		n++
	}
	return n
}

// Close stops every instance and cancels pending session restores
func (r *Registry) Close() {
	r.cancel()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, inst := range r.instances {
		inst.close()
		delete(r.instances, id)
	}
}
