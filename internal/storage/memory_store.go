package storage

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps entries in a map. A positive quota caps the summed length
// of keys and values, like a browser storage area.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	size  int
	quota int
}

func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]string),
		quota: quota,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.size + len(value)
	if old, ok := m.data[key]; ok {
		size -= len(old)
	} else {
		size += len(key)
	}
	if m.quota > 0 && size > m.quota {
		return ErrQuotaExceeded
	}

	m.data[key] = value
	m.size = size
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.data[key]; ok {
		m.size -= len(key) + len(old)
		delete(m.data, key)
	}
	return nil
}

func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// Load replaces the content wholesale. The quota is not enforced here so a
// snapshot written under a larger quota still loads.
func (m *MemoryStore) Load(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string, len(entries))
	m.size = 0
	for k, v := range entries {
		m.data[k] = v
		m.size += len(k) + len(v)
	}
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryStore) Restore() error { return nil }
func (m *MemoryStore) Persist() error { return nil }
func (m *MemoryStore) Close()         {}
