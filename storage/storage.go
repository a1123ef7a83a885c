// Package storage holds the durable key/value media a client context persists its cart and
// session into.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type KV interface {
	// Get returns the stored value or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

// ClientKey namespaces a per-client storage key, e.g. client:<id>:cart
func ClientKey(clientID, name string) string {
	return "client:" + clientID + ":" + name
}
