// Package notify is the transient, stacking message channel the storefront shows to a client.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Error   Severity = "error"
)

// DefaultTTL is how long a message stays visible
const DefaultTTL = 3 * time.Second

// Sink accepts fire-and-forget user-facing messages
type Sink interface {
	Notify(message string, severity Severity)
}

type Message struct {
	ID        uint64    `json:"id"`
	Text      string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Channel keeps messages in arrival order; each one expires on its own after ttl.
type Channel struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	nextID   uint64
	messages []Message
	subs     map[int]func(Message)
	nextSub  int
}

func NewChannel(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{
		ttl:  ttl,
		now:  time.Now,
		subs: make(map[int]func(Message)),
	}
}

// WithClock replaces the time source, for tests
func (c *Channel) WithClock(now func() time.Time) *Channel {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

func (c *Channel) Notify(text string, severity Severity) {
	c.mu.Lock()
	c.pruneLocked()
	c.nextID++
	at := c.now()
	msg := Message{
		ID:        c.nextID,
		Text:      text,
		Severity:  severity,
		CreatedAt: at,
		ExpiresAt: at.Add(c.ttl),
	}
	c.messages = append(c.messages, msg)
	subs := c.subscribers()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(msg)
	}
}

// Active returns the messages that have not expired yet, oldest first
func (c *Channel) Active() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked()
	return append([]Message(nil), c.messages...)
}

// Dismiss drops a message before its timeout
func (c *Channel) Dismiss(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return true
		}
	}
	return false
}

// Subscribe registers fn for every new message. The returned func unsubscribes.
func (c *Channel) Subscribe(fn func(Message)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Channel) pruneLocked() {
	now := c.now()
	kept := c.messages[:0]
	for _, m := range c.messages {
		if now.Before(m.ExpiresAt) {
			kept = append(kept, m)
		}
	}
	c.messages = kept
}

func (c *Channel) subscribers() []func(Message) {
	out := make([]func(Message), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}
