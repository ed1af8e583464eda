package repository

import (
	"context"
	"sync"
)

// MemoryCache is the fallback cache used when redis is disabled. When it is
// full an arbitrary entry makes room for the new one.
type MemoryCache struct {
	mu         sync.RWMutex
	maxEntries int
	data       map[string]string
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &MemoryCache{
		maxEntries: maxEntries,
		data:       make(map[string]string),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		for k := range m.data {
			delete(m.data, k)
			break
		}
	}
	m.data[key] = value
	return nil
}
