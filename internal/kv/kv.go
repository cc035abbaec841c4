// Package kv defines the persistent key-value store contract the ledger,
// account directory and session manager persist through. Backends live in
// subpackages; selection happens in internal/backend.
package kv

import "context"

// Store is a synchronous string key-value store. There is no atomicity
// across keys: callers do whole-value read-modify-write and tolerate a
// failed Set by keeping their in-memory state authoritative.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
