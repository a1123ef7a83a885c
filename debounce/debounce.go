// Package debounce delays a call until its input has been quiet for a while.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay matches the storefront search box
const DefaultDelay = 300 * time.Millisecond

// Debouncer delivers only the last value triggered within delay of the previous one.
// fn runs on the timer goroutine, or on the caller's goroutine for Flush.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	armed   bool
	gen     uint64
	stopped bool
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger replaces the pending value and restarts the quiet period
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush delivers the pending value right away. It reports whether anything was pending.
func (d *Debouncer[T]) Flush() bool {
	v, ok := d.take(0, false)
	if ok {
		d.fn(v)
	}
	return ok
}

// Pending reports whether a value is waiting for its quiet period to end
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Stop drops any pending value; later triggers are ignored
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.disarmLocked()
}

func (d *Debouncer[T]) fire(gen uint64) {
	if v, ok := d.take(gen, true); ok {
		d.fn(v)
	}
}

// take claims the pending value. When matchGen is set, a timer from an older trigger gets
// nothing.
func (d *Debouncer[T]) take(gen uint64, matchGen bool) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var zero T
	if !d.armed || (matchGen && gen != d.gen) {
		return zero, false
	}
	v := d.pending
	d.disarmLocked()
	return v, true
}

func (d *Debouncer[T]) disarmLocked() {
	var zero T
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = zero
	d.armed = false
	d.gen++
}
