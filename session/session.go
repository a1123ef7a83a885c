// Package session holds the signed-in identity of one client and keeps it in durable storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"kacip-storefront/identity"
	"kacip-storefront/notify"
	"kacip-storefront/storage"
)

// ErrSuperseded is returned to a login or restore whose result arrived after a newer
// session request had already started. Its result is discarded.
var ErrSuperseded = errors.New("session request superseded by a newer one")

type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Keys are the storage keys the session is persisted under
type Keys struct {
	User  string
	Token string
}

// Snapshot is what the view layer sees. IsAdmin is computed from the user's role and is
// never true without an authenticated user.
type Snapshot struct {
	State           State              `json:"state"`
	User            *identity.Identity `json:"user"`
	IsAuthenticated bool               `json:"is_authenticated"`
	IsAdmin         bool               `json:"is_admin"`
}

// Holder owns one client's session. Backend calls run without the lock held; every
// request takes a sequence number when it starts and only the newest request may settle.
type Holder struct {
	backend identity.Backend
	store   storage.KV
	keys    Keys
	sink    notify.Sink
	log     *log.Logger

	mu      sync.Mutex
	seq     uint64
	state   State
	user    *identity.Identity
	token   string
	// settled is the last state a request finished in; storage always agrees with it
	settled fields
	subs    map[int]func(Snapshot)
	nextSub int
}

func New(backend identity.Backend, store storage.KV, keys Keys, sink notify.Sink, logger *log.Logger) *Holder {
	if logger == nil {
		logger = log.Default()
	}
	return &Holder{
		backend: backend,
		store:   store,
		keys:    keys,
		sink:    sink,
		log:     logger,
		state:   StateAnonymous,
		settled: fields{state: StateAnonymous},
		subs:    make(map[int]func(Snapshot)),
	}
}

// Login signs in with the backend. Success persists the session; failure returns to the
// last settled session, persists nothing and reports the reason to the notification sink.
func (h *Holder) Login(ctx context.Context, email, password string) (identity.Identity, error) {
	h.mu.Lock()
	h.seq++
	seq := h.seq
	h.state = StateAuthenticating
	h.publishLocked()
	h.mu.Unlock()

	id, token, err := h.backend.Login(ctx, email, password)

	h.mu.Lock()
	if seq != h.seq {
		h.mu.Unlock()
		return identity.Identity{}, ErrSuperseded
	}
	if err != nil {
		h.state, h.user, h.token = h.settled.state, h.settled.user, h.settled.token
		h.publishLocked()
		h.mu.Unlock()

		h.sink.Notify(loginFailure(err), notify.Error)
		return identity.Identity{}, err
	}

	h.state = StateAuthenticated
	h.user = &id
	h.token = token
	h.persistLocked(ctx)
	h.settleLocked()
	h.publishLocked()
	h.mu.Unlock()

	h.sink.Notify(fmt.Sprintf("Welcome back, %s!", id.Name), notify.Success)
	return id, nil
}

// Logout always signs out locally, clearing memory and storage first. The remote call is
// best-effort: its error is logged and returned but never undoes the local sign-out.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.seq++
	token := h.token
	h.state = StateAnonymous
	h.user = nil
	h.token = ""
	h.clearPersistedLocked(ctx)
	h.settleLocked()
	h.publishLocked()
	h.mu.Unlock()

	h.sink.Notify("Logged out successfully", notify.Success)

	if token == "" {
		return nil
	}
	if err := h.backend.Logout(ctx, token); err != nil {
		h.log.Printf("session: remote logout failed: %v", err)
		return fmt.Errorf("remote logout: %w", err)
	}
	return nil
}

// Restore rehydrates the session from a persisted token at startup. An invalid token is
// cleared silently and the session stays anonymous.
func (h *Holder) Restore(ctx context.Context) error {
	token, err := h.store.Get(ctx, h.keys.Token)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && len(token) == 0) {
		return nil
	}
	if err != nil {
		h.log.Printf("session: failed to read persisted token: %v", err)
		return nil
	}

	h.mu.Lock()
	h.seq++
	seq := h.seq
	h.state = StateAuthenticating
	h.publishLocked()
	h.mu.Unlock()

	id, err := h.backend.CurrentUser(ctx, string(token))

	h.mu.Lock()
	defer h.mu.Unlock()
	if seq != h.seq {
		return ErrSuperseded
	}
	if err != nil {
		h.log.Printf("session: discarding persisted session: %v", err)
		h.state, h.user, h.token = StateAnonymous, nil, ""
		h.clearPersistedLocked(ctx)
		h.settleLocked()
		h.publishLocked()
		return nil
	}

	h.state = StateAuthenticated
	h.user = &id
	h.token = string(token)
	h.persistLocked(ctx)
	h.settleLocked()
	h.publishLocked()
	return nil
}

func (h *Holder) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Holder) IsAuthenticated() bool {
	return h.Snapshot().IsAuthenticated
}

func (h *Holder) IsAdmin() bool {
	return h.Snapshot().IsAdmin
}

// Token returns the bearer credential of the current session, or "" when anonymous
func (h *Holder) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

// Subscribe registers fn to receive a snapshot on every state change. Callbacks run with
// the holder locked and must not call back into it.
func (h *Holder) Subscribe(fn func(Snapshot)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

type fields struct {
	state State
	user  *identity.Identity
	token string
}

func (h *Holder) settleLocked() {
	h.settled = fields{state: h.state, user: h.user, token: h.token}
}

func (h *Holder) snapshotLocked() Snapshot {
	s := Snapshot{State: h.state}
	if h.state == StateAuthenticated && h.user != nil {
		u := *h.user
		s.User = &u
		s.IsAuthenticated = true
		s.IsAdmin = u.IsAdmin()
	}
	return s
}

func (h *Holder) publishLocked() {
	if len(h.subs) == 0 {
		return
	}
	snap := h.snapshotLocked()
	for _, fn := range h.subs {
		fn(snap)
	}
}

func (h *Holder) persistLocked(ctx context.Context) {
	data, err := json.Marshal(h.user)
	if err != nil {
		h.log.Printf("session: failed to encode user: %v", err)
		return
	}
	if err := h.store.Set(ctx, h.keys.User, data); err != nil {
		h.log.Printf("session: failed to save user: %v", err)
	}
	if err := h.store.Set(ctx, h.keys.Token, []byte(h.token)); err != nil {
		h.log.Printf("session: failed to save token: %v", err)
	}
}

func (h *Holder) clearPersistedLocked(ctx context.Context) {
	for _, key := range []string{h.keys.User, h.keys.Token} {
		if err := h.store.Delete(ctx, key); err != nil {
			h.log.Printf("session: failed to clear %s: %v", key, err)
		}
	}
}

func loginFailure(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Login timed out. Please try again."
	default:
		return "Login failed. Please try again later."
	}
}
