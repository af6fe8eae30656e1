package memory

import (
	"sync"

	"bookshop/domain/shared"
)

// ledger Insertion-ordered, identity-indexed entity collection
type ledger[K comparable, E shared.Entity[K]] struct {
	mu      sync.RWMutex
	order   []K
	entries map[K]E
}

func newLedger[K comparable, E shared.Entity[K]]() *ledger[K, E] {
	return &ledger[K, E]{entries: make(map[K]E)}
}

// put Stores e; reports whether the identity was new
func (l *ledger[K, E]) put(e E) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := e.Identity()
	_, exists := l.entries[key]
	if !exists {
		l.order = append(l.order, key)
	}
	l.entries[key] = e
	return !exists
}

// insert Stores e only when its identity is new
func (l *ledger[K, E]) insert(e E) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := e.Identity()
	if _, exists := l.entries[key]; exists {
		return false
	}
	l.order = append(l.order, key)
	l.entries[key] = e
	return true
}

func (l *ledger[K, E]) get(key K) (E, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.entries[key]
	return e, ok
}

func (l *ledger[K, E]) all() []E {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]E, 0, len(l.order))
	for _, key := range l.order {
		result = append(result, l.entries[key])
	}
	return result
}

func (l *ledger[K, E]) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}
