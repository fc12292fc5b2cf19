// Package store defines the catalog and order storage contract and its
// in-memory implementation.
package store

import (
	"context"
	"errors"
	"strings"

	"fedashop/internal/domain"
)

// ErrNotFound is returned by id lookups that miss.
var ErrNotFound = errors.New("not found")

// Storage is the catalog and order store shared by every request.
type Storage interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	InsertProduct(ctx context.Context, p domain.NewProduct) (domain.Product, error)

	CreateOrder(ctx context.Context, o domain.NewOrder) (domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
}

// Matches reports whether q occurs in the name or description of p, ignoring
// case. Every Storage searches with it.
func Matches(p domain.Product, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
