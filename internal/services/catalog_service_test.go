package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fedashop/internal/domain"
	"fedashop/internal/services"
	"fedashop/internal/validate"
)

func TestCatalogList_SortKeys(t *testing.T) {
	svc := services.NewCatalogService(seeded())
	ctx := context.Background()

	cases := map[string][]string{
		"":           {"1", "2", "3", "4", "5", "6", "7", "8"},
		"featured":   {"1", "2", "3", "4", "5", "6", "7", "8"},
		"price-low":  {"5", "8", "4", "7", "2", "6", "3", "1"},
		"price-high": {"1", "3", "6", "2", "7", "4", "8", "5"},
		"rating":     {"1", "2", "3", "5", "7", "8", "4", "6"},
	}
	for key, want := range cases {
		ps, err := svc.List(ctx, "", false, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, ids(ps), "sort=%q", key)
	}
}

func TestCatalogList_FeaturedFirstIsStable(t *testing.T) {
	ps := []domain.Product{
		{ID: "a"}, {ID: "b", Featured: true}, {ID: "c"}, {ID: "d", Featured: true},
	}
	services.SortProducts(ps, "")
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(ps))

	services.SortProducts(ps, "featured")
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(ps))
}

func TestCatalogList_NameUsesArabicCollation(t *testing.T) {
	svc := services.NewCatalogService(seeded())
	ps, err := svc.List(context.Background(), "", false, "name")
	require.NoError(t, err)
	require.Len(t, ps, 8)

	col := collate.New(language.Arabic)
	for i := 1; i < len(ps); i++ {
		assert.LessOrEqual(t, col.CompareString(ps[i-1].Name, ps[i].Name), 0)
	}
}

func TestCatalogList_CategoryAndFeatured(t *testing.T) {
	svc := services.NewCatalogService(seeded())
	ctx := context.Background()

	ps, err := svc.List(ctx, "skincare", false, "price-low")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "7", "1"}, ids(ps))

	ps, err = svc.List(ctx, "skincare", true, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "5"}, ids(ps))

	ps, err = svc.List(ctx, "", true, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(ps))

	ps, err = svc.List(ctx, "Skincare", false, "")
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestCatalogCategories(t *testing.T) {
	svc := services.NewCatalogService(seeded())
	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []services.Category{
		{Slug: "skincare", Label: "العناية بالبشرة", Count: 3},
		{Slug: "organic-foods", Label: domain.Categories["organic-foods"], Count: 3},
		{Slug: "essential-oils", Label: domain.Categories["essential-oils"], Count: 1},
		{Slug: "herbal-remedies", Label: domain.Categories["herbal-remedies"], Count: 1},
	}, cats)
}

func TestCatalogInsert_Validates(t *testing.T) {
	svc := services.NewCatalogService(seeded())
	ctx := context.Background()

	_, err := svc.Insert(ctx, domain.NewProduct{Name: "x", StockQuantity: -1})
	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "stockQuantity")

	p, err := svc.Insert(ctx, domain.NewProduct{
		Name:          "زيت الأرغان",
		Description:   "زيت أرغان مغربي",
		Price:         domain.MustMoney("99.50"),
		ImageURL:      "argan.jpg",
		Category:      "essential-oils",
		InStock:       true,
		StockQuantity: 3,
	})
	require.NoError(t, err)
	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "99.50", got.Price.String())
}
