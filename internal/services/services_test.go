package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"fedashop/internal/cart"
	"fedashop/internal/domain"
	"fedashop/internal/services"
	"fedashop/internal/store"
)

func seeded() *store.Memory {
	return store.NewMemory(store.Seed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)
}

func itemIDs(v services.CartView) []string {
	out := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		out = append(out, it.ID)
	}
	return out
}

func ids(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

// spyStore counts CreateOrder calls and can be told to fail them.
type spyStore struct {
	store.Storage
	mu       sync.Mutex
	creates  int
	failWith error
}

func (s *spyStore) CreateOrder(ctx context.Context, o domain.NewOrder) (domain.Order, error) {
	s.mu.Lock()
	s.creates++
	fail := s.failWith
	s.mu.Unlock()
	if fail != nil {
		return domain.Order{}, fail
	}
	return s.Storage.CreateOrder(ctx, o)
}

// brokenSlots fails every write.
type brokenSlots struct{ cart.SlotStore }

func (brokenSlots) Put(context.Context, string, []byte) error { return errors.New("quota exceeded") }

// flakySlots fails the next failGets reads.
type flakySlots struct {
	cart.SlotStore
	mu       sync.Mutex
	failGets int
	reads    int
}

func (f *flakySlots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	f.reads++
	fail := f.failGets > 0
	if fail {
		f.failGets--
	}
	f.mu.Unlock()
	if fail {
		return nil, false, errors.New("connection refused")
	}
	return f.SlotStore.Get(ctx, key)
}

func (f *flakySlots) gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}
