package collectionutils

import "sync"

// SafeMap is a map guarded by an RWMutex, safe for concurrent use.
type SafeMap[K comparable, V any] struct {
	data map[K]V
	mu   sync.RWMutex
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		data: make(map[K]V),
	}
}

func (safeMap *SafeMap[K, V]) Store(key K, value V) {
	safeMap.mu.Lock()
	defer safeMap.mu.Unlock()
	safeMap.data[key] = value
}

func (safeMap *SafeMap[K, V]) Get(key K) (V, bool) {
	safeMap.mu.RLock()
	defer safeMap.mu.RUnlock()
	value, exists := safeMap.data[key]

	return value, exists
}

func (safeMap *SafeMap[K, V]) Delete(key K) {
	safeMap.mu.Lock()
	defer safeMap.mu.Unlock()
	delete(safeMap.data, key)
}
