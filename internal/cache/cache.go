// Package cache stores raw search-provider responses so repeated lookups for
// the same engine and query do not burn paid API calls across process
// restarts.
//
// The Store interface is injectable: the file backend reproduces the simple
// read-whole/write-whole JSON document the service started with, while the
// memory, redis and bolt backends move concurrency safety into the backend
// (atomic per-key puts) for deployments that need it. Entries are never
// deleted when they expire; a stale entry is simply ignored and overwritten
// by the next successful live fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL is how long a cached provider response stays valid. Hotel and
// ticket prices move slowly enough that a month-old quote is still a usable
// estimate.
const DefaultTTL = 30 * 24 * time.Hour

// Key derives the cache key for a lookup. It is the exact concatenation of
// engine and query with no normalization: callers must pass identical query
// strings to hit the cache. Lookup parameters beyond engine and query (dates,
// traveler counts) are deliberately not part of the key, so those variations
// share one cached response.
func Key(engine, query string) string {
	return engine + "_" + query
}

// Entry is one cached provider response.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch milliseconds
}

// Valid reports whether the entry is fresh at the given instant. The boundary
// is strict: an entry exactly ttl old is stale.
func (e *Entry) Valid(now time.Time, ttl time.Duration) bool {
	return now.UnixMilli()-e.Timestamp < ttl.Milliseconds()
}

// NewEntry stamps payload with the current time.
func NewEntry(payload json.RawMessage, now time.Time) *Entry {
	return &Entry{
		Data:      payload,
		Timestamp: now.UnixMilli(),
	}
}

// Store is a key/value backend for cached lookups. Implementations decide
// their own concurrency guarantees; Get returns (nil, false, nil) for a
// missing key.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Put(ctx context.Context, key string, entry *Entry) error
	Close() error
}
