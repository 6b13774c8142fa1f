package cache

import (
	"context"
	"fmt"
	"sync"
)

var (
	ErrKeyNotFound = fmt.Errorf("key not found")
)

// KeyValueStore is the device key-value storage. Values are opaque strings.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys []string) error
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.RLock()
	defer m.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.Lock()
	defer m.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.Lock()
	defer m.Unlock()

	delete(m.values, key)
	return nil
}

func (m *MemoryStore) MultiRemove(_ context.Context, keys []string) error {
	m.Lock()
	defer m.Unlock()

	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
