package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"fedashop/internal/cart"
	"fedashop/internal/domain"
	applog "fedashop/internal/log"
	"fedashop/internal/metrics"
	"fedashop/internal/store"
	"fedashop/internal/validate"
)

// idleSession is how long an untouched session stays cached before the next
// sweep drops it. A dropped session rehydrates from its slot.
const idleSession = 30 * time.Minute

type CartService struct {
	Slots cart.SlotStore
	Store store.Storage

	mu       sync.Mutex
	sessions map[string]*entry
	opening  singleflight.Group
	now      func() time.Time
}

type entry struct {
	sess *cart.Session
	seen time.Time
}

func NewCartService(slots cart.SlotStore, st store.Storage) *CartService {
	return &CartService{
		Slots:    slots,
		Store:    st,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// CartView is the cart as returned to clients.
type CartView struct {
	Items      []CartItem   `json:"items"`
	TotalItems int          `json:"totalItems"`
	TotalPrice domain.Money `json:"totalPrice"`
	Saved      bool         `json:"saved"`
}

type CartItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    domain.Money `json:"price"`
	ImageURL string       `json:"imageUrl"`
	Quantity int          `json:"quantity"`
	Subtotal domain.Money `json:"subtotal"`
}

func viewOf(c cart.Cart, saved bool) CartView {
	items := make([]CartItem, 0, c.Len())
	for _, l := range c.Lines() {
		items = append(items, CartItem{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    domain.NewMoney(l.UnitPrice),
			ImageURL: l.ImageURL,
			Quantity: l.Quantity,
			Subtotal: domain.NewMoney(l.Subtotal()),
		})
	}
	return CartView{
		Items:      items,
		TotalItems: c.TotalItemCount(),
		TotalPrice: domain.NewMoney(c.TotalPrice()),
		Saved:      saved,
	}
}

// Session returns the cart session of sid, hydrating it from its slot the
// first time. Concurrent first requests for one sid share a single slot read,
// and the read runs without holding the registry lock. An undecodable slot is
// logged and the session starts empty. When the slot cannot be read the read
// *cart.PersistenceError is returned and nothing is cached, so the next
// request reads again.
func (s *CartService) Session(ctx context.Context, sid string) (*cart.Session, error) {
	s.mu.Lock()
	if e, ok := s.sessions[sid]; ok {
		e.seen = s.now()
		s.mu.Unlock()
		return e.sess, nil
	}
	s.mu.Unlock()

	v, err, _ := s.opening.Do(sid, func() (interface{}, error) {
		sess, err := cart.Open(ctx, s.Slots, cart.SessionSlotKey(sid))
		if err != nil {
			metrics.CartSlotErrors.WithLabelValues("read").Inc()
			applog.Warn("cart.hydrate", err, map[string]any{"sid": sid, "hydrated": sess.Hydrated()})
		}
		if !sess.Hydrated() {
			return nil, err
		}
		return s.keep(sid, sess), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cart.Session), nil
}

// keep caches sess under sid unless another session got there first, and
// returns the cached one.
func (s *CartService) keep(sid string, sess *cart.Session) *cart.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if e, ok := s.sessions[sid]; ok {
		e.seen = now
		return e.sess
	}
	s.sweep(now)
	s.sessions[sid] = &entry{sess: sess, seen: now}
	return sess
}

func (s *CartService) sweep(now time.Time) {
	for sid, e := range s.sessions {
		if now.Sub(e.seen) > idleSession && e.sess.Saved() {
			delete(s.sessions, sid)
		}
	}
}

// View returns the session cart. It fails with a read *cart.PersistenceError
// while the slot cannot be read.
func (s *CartService) View(ctx context.Context, sid string) (CartView, error) {
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return CartView{}, err
	}
	return viewOf(sess.Snapshot(), sess.Saved()), nil
}

// Add puts one unit of productID in the cart, copying name, price and image
// from the catalog.
func (s *CartService) Add(ctx context.Context, sid, productID string) (CartView, error) {
	p, err := s.Store.GetByID(ctx, productID)
	if err != nil {
		return CartView{}, err
	}
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return CartView{}, err
	}
	if l, ok := sess.Snapshot().Line(p.ID); ok {
		if err := validate.Quantity(l.Quantity + 1); err != nil {
			return CartView{}, err
		}
	}
	return s.dispatch(ctx, sid, cart.AddItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price.Decimal,
		ImageURL:  p.ImageURL,
	})
}

// SetQuantity replaces the quantity of a line; qty <= 0 removes it and a qty
// above validate.MaxQty is rejected.
func (s *CartService) SetQuantity(ctx context.Context, sid, productID string, qty int) (CartView, error) {
	if err := validate.Quantity(qty); err != nil {
		return CartView{}, err
	}
	return s.dispatch(ctx, sid, cart.SetQuantity{ProductID: productID, Quantity: qty})
}

func (s *CartService) Remove(ctx context.Context, sid, productID string) (CartView, error) {
	return s.dispatch(ctx, sid, cart.RemoveItem{ProductID: productID})
}

func (s *CartService) Clear(ctx context.Context, sid string) (CartView, error) {
	return s.dispatch(ctx, sid, cart.Clear{})
}

// dispatch applies a to the session cart. A failed save still returns the new
// view, with Saved false, together with the write *cart.PersistenceError. When
// the slot cannot be read a is not applied and the read error is returned.
func (s *CartService) dispatch(ctx context.Context, sid string, a cart.Action) (CartView, error) {
	sess, err := s.Session(ctx, sid)
	if err != nil {
		return CartView{}, err
	}
	c, err := sess.Dispatch(ctx, a)
	metrics.CartMutations.WithLabelValues(cart.ActionName(a)).Inc()

	var perr *cart.PersistenceError
	if errors.As(err, &perr) {
		metrics.CartSlotErrors.WithLabelValues(perr.Op).Inc()
		applog.Warn("cart.save", err, map[string]any{"sid": sid, "action": cart.ActionName(a)})
	}
	return viewOf(c, err == nil), err
}
