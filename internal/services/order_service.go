package services

import (
	"context"
	"errors"
	"fmt"

	"fedashop/internal/cart"
	"fedashop/internal/domain"
	applog "fedashop/internal/log"
	"fedashop/internal/metrics"
	"fedashop/internal/store"
	"fedashop/internal/validate"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

type OrderService struct {
	Store store.Storage
	Carts *CartService
}

func NewOrderService(st store.Storage, carts *CartService) *OrderService {
	return &OrderService{Store: st, Carts: carts}
}

// Checkout places an order for the session cart of sid and clears the cart.
//
// An empty cart fails with ErrEmptyCart and invalid details with a
// *validate.ValidationError; neither reaches the store. If the store fails the
// cart is kept so the customer can retry. A cart slot that cannot be read
// fails with its read *cart.PersistenceError. A cart that cannot be saved
// after clearing is logged and does not fail the order.
func (s *OrderService) Checkout(ctx context.Context, sid string, details domain.CustomerDetails) (domain.Order, error) {
	sess, err := s.Carts.Session(ctx, sid)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("failed").Inc()
		return domain.Order{}, err
	}
	if sess.Snapshot().IsEmpty() {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		return domain.Order{}, ErrEmptyCart
	}
	if err := validate.Customer(details); err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		return domain.Order{}, err
	}

	var order domain.Order
	err = sess.Checkout(ctx, func(c cart.Cart) error {
		// re-checked under the session lock
		if c.IsEmpty() {
			return ErrEmptyCart
		}
		items, err := cart.Encode(c)
		if err != nil {
			return err
		}
		order, err = s.Store.CreateOrder(ctx, domain.NewOrder{
			CustomerDetails: details,
			TotalAmount:     domain.NewMoney(c.TotalPrice()),
			Items:           string(items),
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})

	var perr *cart.PersistenceError
	switch {
	case errors.As(err, &perr):
		metrics.CartSlotErrors.WithLabelValues(perr.Op).Inc()
		applog.Warn("cart.save", err, map[string]any{"sid": sid, "action": "clear", "order_id": order.ID})
	case errors.Is(err, ErrEmptyCart):
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		return domain.Order{}, err
	case err != nil:
		metrics.OrdersTotal.WithLabelValues("failed").Inc()
		return domain.Order{}, err
	}

	metrics.OrdersTotal.WithLabelValues("placed").Inc()
	metrics.OrderAmount.Observe(order.TotalAmount.InexactFloat64())
	return order, nil
}

// Create stores a raw order submission carrying its own items and total.
func (s *OrderService) Create(ctx context.Context, in domain.NewOrder) (domain.Order, error) {
	if err := validate.Order(in); err != nil {
		metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		return domain.Order{}, err
	}
	o, err := s.Store.CreateOrder(ctx, in)
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("failed").Inc()
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	metrics.OrdersTotal.WithLabelValues("placed").Inc()
	metrics.OrderAmount.Observe(o.TotalAmount.InexactFloat64())
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (domain.Order, error) {
	return s.Store.GetOrderByID(ctx, id)
}
