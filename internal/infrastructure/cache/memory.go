package cache

import (
	"sync"
	"time"
)

// MemoryStore is a simple in-memory key-value store with optional expiration
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	stop  chan struct{}
	once  sync.Once
}

type memoryItem struct {
	value      []byte
	expireTime time.Time // zero means the item never expires
}

func (it *memoryItem) expired(now time.Time) bool {
	return !it.expireTime.IsZero() && now.After(it.expireTime)
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]*memoryItem),
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Set stores a copy of value; an expiration of zero keeps it forever
func (ms *MemoryStore) Set(key string, value []byte, expiration time.Duration) {
	item := &memoryItem{value: append([]byte(nil), value...)}
	if expiration > 0 {
		item.expireTime = time.Now().Add(expiration)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.items[key] = item
}

// Get retrieves a copy of the value stored under key
func (ms *MemoryStore) Get(key string) ([]byte, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[key]
	if !exists || item.expired(time.Now()) {
		return nil, false
	}
	return append([]byte(nil), item.value...), true
}

// Delete removes a key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.stop) })
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := time.Now()
			for key, item := range ms.items {
				if item.expired(now) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}
