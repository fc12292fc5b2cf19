package store

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedashop/internal/domain"
)

func seeded() *Memory { return NewMemory(Seed(time.Now().UTC())...) }

func ids(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestListAllKeepsInsertionOrder(t *testing.T) {
	all, err := seeded().ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(all))
}

func TestGetByID(t *testing.T) {
	m := seeded()
	p, err := m.GetByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "essential-oils", p.Category)
	assert.Equal(t, "120.00", p.Price.String())

	_, err = m.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByCategoryExactMatch(t *testing.T) {
	m := seeded()
	skin, err := m.ListByCategory(context.Background(), "skincare")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5", "7"}, ids(skin))

	upper, err := m.ListByCategory(context.Background(), "SKINCARE")
	require.NoError(t, err)
	assert.Empty(t, upper)
}

func TestListFeatured(t *testing.T) {
	f, err := seeded().ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(f))
}

func TestSearchHoney(t *testing.T) {
	m := seeded()
	got, err := m.Search(context.Background(), "عسل")
	require.NoError(t, err)

	all, _ := m.ListAll(context.Background())
	var want []string
	for _, p := range all {
		if strings.Contains(p.Name, "عسل") || strings.Contains(p.Description, "عسل") {
			want = append(want, p.ID)
		}
	}
	// honey itself (2) and the clay mask made with honey (7)
	assert.Equal(t, []string{"2", "7"}, want)
	assert.Equal(t, want, ids(got))
}

func TestSearchCaseInsensitive(t *testing.T) {
	m := NewMemory(domain.Product{ID: "a", Name: "Argan Oil", Description: "cold pressed"})
	got, err := m.Search(context.Background(), "ARGAN")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(got))

	got, _ = m.Search(context.Background(), "PRESSED")
	assert.Equal(t, []string{"a"}, ids(got))

	got, _ = m.Search(context.Background(), "nothing")
	assert.Empty(t, got)
}

func TestSearchFoldsNonASCIICase(t *testing.T) {
	m := NewMemory(
		domain.Product{ID: "e", Name: "Éclat Serum", Description: "brightening"},
		domain.Product{ID: "p", Name: "Pure Oil", Description: "100% AÇAÍ"},
	)
	got, err := m.Search(context.Background(), "éclat")
	require.NoError(t, err)
	assert.Equal(t, []string{"e"}, ids(got))

	got, _ = m.Search(context.Background(), "açaí")
	assert.Equal(t, []string{"p"}, ids(got))
	got, _ = m.Search(context.Background(), "100%")
	assert.Equal(t, []string{"p"}, ids(got))
}

func TestInsertProduct(t *testing.T) {
	m := seeded()
	p, err := m.InsertProduct(context.Background(), domain.NewProduct{
		Name: "ماء الورد", Description: "ماء ورد طائفي", Price: domain.MustMoney("30"),
		ImageURL: "rose.jpg", Category: "skincare", InStock: true, StockQuantity: 4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := m.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ماء الورد", got.Name)

	all, _ := m.ListAll(context.Background())
	assert.Equal(t, p.ID, all[len(all)-1].ID)
}

func TestCreateOrderForcesPending(t *testing.T) {
	m := seeded()
	o, err := m.CreateOrder(context.Background(), domain.NewOrder{
		CustomerDetails: domain.CustomerDetails{CustomerName: "محمد", PaymentMethod: domain.PaymentCashOnDelivery},
		TotalAmount:     domain.MustMoney("150"),
		Items:           `[]`,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.NotEmpty(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	got, err := m.GetOrderByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	_, err = m.GetOrderByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderConcurrentIDsUnique(t *testing.T) {
	m := seeded()
	const n = 200
	var wg sync.WaitGroup
	idc := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := m.CreateOrder(context.Background(), domain.NewOrder{Items: `[]`})
			if err == nil {
				idc <- o.ID
			}
		}()
	}
	wg.Wait()
	close(idc)

	seen := map[string]bool{}
	for id := range idc {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
