// Package backend selects and constructs the persistent key-value store
// the application runs on.
package backend

import "pft/internal/kv"

// Type identifies a store backend.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
	Redis  Type = "redis"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite, Redis:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result bundles a constructed store with its optional cleanup function.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Config holds everything needed to construct any backend.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Redis specific
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
