// Package cachetable stores compiled artifacts keyed by realized cache
// keys.
//
// The table owns key realization: a key without guaranteed constants is
// looked up by its primary prefix alone; a key with guaranteed constants is
// additionally scoped by session handle and the realized constant
// fingerprint, so equal-looking computations from different sessions never
// share an artifact. Capacity and eviction policy are left to the embedding
// system.
package cachetable

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"compilecache/internal/cachekey"
)

// LookupKey realizes the table key for a CacheKey.
//
// Realizing a constant-bearing key invokes the deferred fingerprint
// provider, so the first lookup for such a key pays the content-folding
// cost; later lookups reuse the memoized value.
func LookupKey(key cachekey.CacheKey) string {
	if !key.HasGuaranteedConst {
		return key.Prefix
	}
	return key.Prefix + "|" + key.SessionHandle + "|" + key.GuaranteedConstFingerprint()
}

// Entry is one stored compilation result.
type Entry struct {
	// LookupKey is the realized key the entry is stored under.
	LookupKey string

	// DebugString is carried from the CacheKey for diagnostics.
	DebugString string

	// Artifact is the compiled artifact, opaque to the table.
	Artifact []byte
}

// Table is an in-memory artifact store.
type Table struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	log     *logrus.Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*Entry),
		log:     logrus.WithField("component", "cachetable"),
	}
}

// Has checks whether an artifact exists for the given key.
func (t *Table) Has(key cachekey.CacheKey) bool {
	lookup := LookupKey(key)

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[lookup]
	return ok
}

// Get retrieves the entry for the given key. Returns nil if the entry does
// not exist.
func (t *Table) Get(key cachekey.CacheKey) *Entry {
	lookup := LookupKey(key)

	t.mu.RLock()
	entry, ok := t.entries[lookup]
	t.mu.RUnlock()

	t.log.WithFields(logrus.Fields{
		"key": lookup,
		"hit": ok,
	}).Debug("cache lookup")
	return entry
}

// Put stores an artifact under the given key, replacing any existing entry.
func (t *Table) Put(key cachekey.CacheKey, artifact []byte) error {
	if key.Prefix == "" {
		return errors.New("cache key has an empty prefix")
	}
	lookup := LookupKey(key)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[lookup] = &Entry{
		LookupKey:   lookup,
		DebugString: key.DebugString,
		Artifact:    artifact,
	}
	return nil
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
