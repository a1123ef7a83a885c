package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = 40 * time.Millisecond

func collect() (chan string, func(string)) {
	ch := make(chan string, 10)
	return ch, func(s string) { ch <- s }
}

func TestTrigger_DeliversLastValueOnce(t *testing.T) {
	got, fn := collect()
	d := New(testDelay, fn)

	d.Trigger("l")
	d.Trigger("la")
	d.Trigger("lat")

	select {
	case v := <-got:
		assert.Equal(t, "lat", v)
	case <-time.After(time.Second):
		t.Fatal("debounced value never delivered")
	}

	select {
	case v := <-got:
		t.Fatalf("unexpected second delivery %q", v)
	case <-time.After(3 * testDelay):
	}
	assert.False(t, d.Pending())
}

func TestFlush(t *testing.T) {
	got, fn := collect()
	d := New(time.Hour, fn)

	assert.False(t, d.Flush(), "nothing pending yet")

	d.Trigger("mocha")
	require.True(t, d.Pending())
	require.True(t, d.Flush())
	assert.Equal(t, "mocha", <-got)
	assert.False(t, d.Pending())
	assert.False(t, d.Flush())
}

func TestStop_DropsPendingAndIgnoresLaterTriggers(t *testing.T) {
	got, fn := collect()
	d := New(testDelay, fn)

	d.Trigger("espresso")
	d.Stop()
	d.Trigger("latte")

	select {
	case v := <-got:
		t.Fatalf("stopped debouncer delivered %q", v)
	case <-time.After(3 * testDelay):
	}
	assert.False(t, d.Pending())
}

func TestNew_DefaultDelay(t *testing.T) {
	d := New(0, func(int) {})
	assert.Equal(t, DefaultDelay, d.delay)
}
