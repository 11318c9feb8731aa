package storage

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryStore keeps entries in-process. It backs unit tests and carries the
// same decode semantics as the database-backed store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	schema int
	value  []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if entry.schema != SchemaVersion {
		return &CorruptStateError{Key: key, Schema: entry.schema}
	}
	if err := json.Unmarshal(entry.value, dest); err != nil {
		return &CorruptStateError{Key: key, Schema: entry.schema, Err: err}
	}
	return nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{schema: SchemaVersion, value: raw}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	return keys, nil
}

// SetRaw stores pre-encoded bytes under an arbitrary schema version. Tests
// use it to simulate state written by other (or broken) writers.
func (m *MemoryStore) SetRaw(key string, schema int, value []byte) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{schema: schema, value: value}
	m.mu.Unlock()
}
