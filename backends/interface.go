// Package backends defines the storage port shared by all bucket-state
// adapters. Values are opaque strings; an empty string means the key is
// absent (never written, deleted, or TTL-expired).
package backends

import (
	"context"
	"time"
)

// Backend is the storage contract for distributed bucket state.
//
// CheckAndSet is the only mutation the rate-limit service uses on the hot
// path: all replicas serialize their writes per key through it, so a
// stored value can never be silently overwritten by a stale reader.
type Backend interface {
	// Get retrieves the value for key. Returns "" with a nil error when
	// the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// CheckAndSet atomically sets key to newValue only if the current
	// value equals oldValue. oldValue == "" means "set only if the key
	// does not exist". Returns true if the write was applied. TTL is
	// refreshed on every successful write.
	CheckAndSet(ctx context.Context, key, oldValue, newValue string, ttl time.Duration) (bool, error)

	// Set unconditionally stores value with the given TTL. Used by
	// tooling and tests, not by the decision path.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
