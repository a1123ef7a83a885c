package identity

import (
	"context"
	"sync"
	"time"

	"kacip-storefront/models"

	"github.com/google/uuid"
)

// DemoDelay is the simulated round trip of the demo backend
const DemoDelay = time.Second

const (
	DemoEmail    = "admin@kacip.com"
	DemoPassword = "admin123"
)

// DemoBackend knows a single admin account and hands out opaque tokens for it. Every call
// waits out the configured delay, or returns early when ctx is done.
type DemoBackend struct {
	delay time.Duration

	mu     sync.Mutex
	tokens map[string]Identity
}

func NewDemoBackend(delay time.Duration) *DemoBackend {
	return &DemoBackend{delay: delay, tokens: make(map[string]Identity)}
}

var demoAdmin = Identity{
	ID:    "1",
	Name:  "Admin User",
	Email: DemoEmail,
	Role:  models.RoleAdmin,
}

func (b *DemoBackend) Login(ctx context.Context, email, password string) (Identity, string, error) {
	if err := b.wait(ctx); err != nil {
		return Identity{}, "", err
	}
	if email != DemoEmail || password != DemoPassword {
		return Identity{}, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	b.mu.Lock()
	b.tokens[token] = demoAdmin
	b.mu.Unlock()
	return demoAdmin, token, nil
}

func (b *DemoBackend) Logout(ctx context.Context, token string) error {
	if err := b.wait(ctx); err != nil {
		return err
	}
	b.mu.Lock()
	delete(b.tokens, token)
	b.mu.Unlock()
	return nil
}

func (b *DemoBackend) CurrentUser(ctx context.Context, token string) (Identity, error) {
	if err := b.wait(ctx); err != nil {
		return Identity{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.tokens[token]
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}

func (b *DemoBackend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
