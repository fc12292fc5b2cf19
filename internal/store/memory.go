package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fedashop/internal/domain"
)

// Memory keeps products and orders in insertion-ordered maps for the life of
// the process.
type Memory struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	productIDs []string
	orders     map[string]domain.Order
	orderIDs   []string

	now func() time.Time
}

// NewMemory returns a store holding products in the given order.
func NewMemory(products ...domain.Product) *Memory {
	m := &Memory{
		products: make(map[string]domain.Product, len(products)),
		orders:   make(map[string]domain.Order),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, p := range products {
		m.putProduct(p)
	}
	return m
}

func (m *Memory) ListAll(_ context.Context) ([]domain.Product, error) {
	return m.filter(func(domain.Product) bool { return true }), nil
}

func (m *Memory) GetByID(_ context.Context, id string) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return p.Category == category }), nil
}

func (m *Memory) ListFeatured(_ context.Context) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return p.Featured }), nil
}

func (m *Memory) Search(_ context.Context, query string) ([]domain.Product, error) {
	return m.filter(func(p domain.Product) bool { return Matches(p, query) }), nil
}

func (m *Memory) InsertProduct(_ context.Context, in domain.NewProduct) (domain.Product, error) {
	p := domain.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         domain.NewMoney(in.Price.Decimal),
		ImageURL:      in.ImageURL,
		Category:      in.Category,
		InStock:       in.InStock,
		StockQuantity: in.StockQuantity,
		Rating:        in.Rating,
		ReviewCount:   in.ReviewCount,
		Featured:      in.Featured,
		CreatedAt:     m.now(),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putProduct(p)
	return p, nil
}

// CreateOrder stores the submission as a pending order. Product ids and stock
// are not checked.
func (m *Memory) CreateOrder(_ context.Context, in domain.NewOrder) (domain.Order, error) {
	o := domain.Order{
		ID:              uuid.NewString(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		City:            in.City,
		PostalCode:      in.PostalCode,
		PaymentMethod:   in.PaymentMethod,
		TotalAmount:     domain.NewMoney(in.TotalAmount.Decimal),
		Status:          domain.OrderStatusPending,
		Items:           in.Items,
		CreatedAt:       m.now(),
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	m.orderIDs = append(m.orderIDs, o.ID)
	return o, nil
}

func (m *Memory) GetOrderByID(_ context.Context, id string) (domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

// putProduct must be called with mu held (or before m is shared).
func (m *Memory) putProduct(p domain.Product) {
	if _, exists := m.products[p.ID]; !exists {
		m.productIDs = append(m.productIDs, p.ID)
	}
	m.products[p.ID] = p
}

func (m *Memory) filter(keep func(domain.Product) bool) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Product{}
	for _, id := range m.productIDs {
		if p := m.products[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}
