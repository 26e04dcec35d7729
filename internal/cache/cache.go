// Package cache provides the resolution caches. Every resolver run owns
// an in-memory cache keyed by (template identity, normalized argument
// list); an optional sqlite-backed store persists entries across runs.
package cache

import (
	"strings"
	"sync"

	"github.com/univc/univc/internal/kinds"
)

// Entry is one cached resolution outcome.
type Entry struct {
	Selected   string // description of the selected definition
	ResultKind kinds.Kind
}

// Key builds the canonical cache key for an instantiation request.
func Key(template string, canonicalArgs []string) string {
	return template + "<" + strings.Join(canonicalArgs, ", ") + ">"
}

// Memory is the per-run cache. Safe for concurrent readers and writers
// so independent files can resolve in parallel against a shared store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]Entry{}}
}

func (m *Memory) Get(key string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e, ok
}

func (m *Memory) Put(key string, e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
}

// Len reports the number of cached resolutions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
