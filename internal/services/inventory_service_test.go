package services_test

import (
	"context"
	"errors"
	"testing"

	"fedashop/internal/domain"
	"fedashop/internal/services"
	"fedashop/internal/store"
)

func TestInventoryService_CheckAvailability(t *testing.T) {
	st := seeded()
	ctx := context.Background()
	svc := services.NewInventoryService(st)

	low, err := st.InsertProduct(ctx, domain.NewProduct{Name: "a", Description: "a", ImageURL: "a", Category: "skincare", InStock: true, StockQuantity: 3})
	if err != nil {
		t.Fatal(err)
	}
	flagged, err := st.InsertProduct(ctx, domain.NewProduct{Name: "b", Description: "b", ImageURL: "b", Category: "skincare", InStock: false, StockQuantity: 10})
	if err != nil {
		t.Fatal(err)
	}
	empty, err := st.InsertProduct(ctx, domain.NewProduct{Name: "c", Description: "c", ImageURL: "c", Category: "skincare", InStock: true})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		id     string
		status string
		qty    int
	}{
		{"1", "IN_STOCK", 25},
		{low.ID, "LOW_STOCK", 3},
		{flagged.ID, "OUT_OF_STOCK", 0},
		{empty.ID, "OUT_OF_STOCK", 0},
	}
	for _, tc := range cases {
		a, err := svc.CheckAvailability(ctx, tc.id)
		if err != nil {
			t.Fatal(err)
		}
		if a.Status != tc.status || a.Qty != tc.qty {
			t.Fatalf("%s: want %s(%d), got %+v", tc.id, tc.status, tc.qty, a)
		}
	}

	if _, err := svc.CheckAvailability(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
