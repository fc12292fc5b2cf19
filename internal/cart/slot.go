package cart

import (
	"context"
	"fmt"
	"sync"
)

// SlotKey is the fixed name of the cart slot.
const SlotKey = "feda-shop-cart"

// SessionSlotKey scopes the slot to one session.
func SessionSlotKey(sessionID string) string { return SlotKey + ":" + sessionID }

// SlotStore is a key/value area holding one serialized cart per key.
type SlotStore interface {
	// Get returns the stored payload; ok is false when nothing is stored under key.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Put overwrites the payload stored under key.
	Put(ctx context.Context, key string, data []byte) error
}

// PersistenceError reports a failed slot read (hydration) or write (save).
// Neither is fatal: a failed read starts an empty cart, a failed write keeps
// the in-memory state and is retried on the next mutation.
type PersistenceError struct {
	Op  string // "read" | "write"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cart slot %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MemorySlots keeps slots in process memory.
type MemorySlots struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{data: make(map[string][]byte)}
}

func (m *MemorySlots) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (m *MemorySlots) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}
