package services

import (
	"context"

	"fedashop/internal/domain"
	"fedashop/internal/store"
)

type InventoryService struct {
	Store store.Storage
}

func NewInventoryService(s store.Storage) *InventoryService {
	return &InventoryService{Store: s}
}

// CheckAvailability converts stock -> IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
// A product flagged out of stock reports 0 whatever its quantity.
func (s *InventoryService) CheckAvailability(ctx context.Context, productID string) (domain.Availability, error) {
	p, err := s.Store.GetByID(ctx, productID)
	if err != nil {
		return domain.Availability{}, err
	}
	qty := p.StockQuantity
	if !p.InStock {
		qty = 0
	}

	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}, nil
}
