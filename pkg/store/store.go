// Package store persists raw feed responses between API calls.
//
// A [Store] maps a response filename (see feeds.Request.Filename) to the
// exact bytes the API returned. When the API later answers 304 Not Modified
// the client reads those bytes back and decodes them again.
//
// Backends:
//   - [Null]: keeps nothing; every Get is a miss
//   - [File]: one file per response in a directory
//   - [Redis]: one key per response in a Redis database
package store

import (
	"context"
	"fmt"
)

// Type selects a storage backend.
type Type string

// Supported store types.
const (
	TypeNone  Type = "none"
	TypeFile  Type = "file"
	TypeRedis Type = "redis"
)

// ParseType parses a store type name. The empty string means [TypeNone].
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case "", TypeNone:
		return TypeNone, nil
	case TypeFile, TypeRedis:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown store type %q", s)
}

// Store is a byte store keyed by response filename.
type Store interface {
	// Get returns the stored bytes. A missing entry is (nil, false, nil).
	Get(ctx context.Context, name string) ([]byte, bool, error)
	// Set stores data under name, replacing any previous entry.
	Set(ctx context.Context, name string, data []byte) error
	// Delete removes name. Deleting a missing entry is not an error.
	Delete(ctx context.Context, name string) error
	// Close releases backend resources.
	Close() error
}
