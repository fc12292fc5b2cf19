package cart

import (
	"context"
	"sync"
)

// Session is the single writer of one cart. It hydrates the cart from its slot
// once, then writes the full cart back after every dispatched action.
type Session struct {
	mu       sync.Mutex
	cart     Cart
	slots    SlotStore
	key      string
	hydrated bool // slot read succeeded, or held an unusable payload
	dirty    bool // last write failed
}

// Open hydrates a session from slots[key]. The returned session is always
// non-nil; a non-nil error is a *PersistenceError with Op "read".
//
// A payload that does not decode is dropped and the session starts empty.
// A failed read leaves the session unhydrated: it neither writes nor
// accepts actions until a later read succeeds, so the stored cart survives
// a backend outage.
func Open(ctx context.Context, slots SlotStore, key string) (*Session, error) {
	s := &Session{slots: slots, key: key}
	return s, s.hydrate(ctx)
}

// Hydrate retries the slot read of an unhydrated session. It is a no-op
// once the session has loaded.
func (s *Session) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrate(ctx)
}

// Hydrated reports whether the slot has been read.
func (s *Session) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

func (s *Session) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	data, ok, err := s.slots.Get(ctx, s.key)
	if err != nil {
		return &PersistenceError{Op: "read", Key: s.key, Err: err}
	}
	s.hydrated = true
	if !ok {
		return nil
	}
	lines, err := Decode(data)
	if err != nil {
		return &PersistenceError{Op: "read", Key: s.key, Err: err}
	}
	s.cart = Reduce(s.cart, Load{Lines: lines})
	return nil
}

// Dispatch applies a and saves the resulting cart. The new cart is returned
// even when saving fails; the error is then a *PersistenceError with Op "write".
// An unhydrated session first retries its read; if that fails a is not
// applied and the read error is returned.
func (s *Session) Dispatch(ctx context.Context, a Action) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		if err := s.hydrate(ctx); !s.hydrated {
			return s.cart, err
		}
	}
	s.cart = Reduce(s.cart, a)
	return s.cart, s.save(ctx)
}

// Snapshot returns the current cart.
func (s *Session) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Saved reports whether the last write reached the slot.
func (s *Session) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.dirty
}

// Key is the slot key this session writes to.
func (s *Session) Key() string { return s.key }

func (s *Session) save(ctx context.Context) error {
	data, err := Encode(s.cart)
	if err == nil {
		err = s.slots.Put(ctx, s.key, data)
	}
	if err != nil {
		s.dirty = true
		return &PersistenceError{Op: "write", Key: s.key, Err: err}
	}
	s.dirty = false
	return nil
}

// Checkout hands the current cart to place while holding the session, so no
// mutation can slip in between the snapshot and the clear. When place fails
// its error is returned and the cart is kept. When it succeeds the cart is
// cleared; the returned error is then only a save failure, if any. An
// unhydrated session that still cannot read its slot returns the read error
// without calling place.
func (s *Session) Checkout(ctx context.Context, place func(Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		if err := s.hydrate(ctx); !s.hydrated {
			return err
		}
	}
	if err := place(s.cart); err != nil {
		return err
	}
	s.cart = Reduce(s.cart, Clear{})
	return s.save(ctx)
}
