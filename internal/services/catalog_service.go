package services

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"fedashop/internal/domain"
	"fedashop/internal/store"
	"fedashop/internal/validate"
)

type CatalogService struct {
	Store store.Storage
}

func NewCatalogService(s store.Storage) *CatalogService {
	return &CatalogService{Store: s}
}

// Category is a slug with its storefront label.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Categories lists the known categories plus any open-set category found on a
// product, in catalog order.
func (s *CatalogService) Categories(ctx context.Context) ([]Category, error) {
	all, err := s.Store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := map[string]int{}
	var out []Category
	for _, p := range all {
		i, ok := idx[p.Category]
		if !ok {
			label := domain.Categories[p.Category]
			if label == "" {
				label = p.Category
			}
			idx[p.Category] = len(out)
			out = append(out, Category{Slug: p.Category, Label: label})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out, nil
}

// List returns the whole catalog, or one category, or only featured products,
// ordered by sortKey.
func (s *CatalogService) List(ctx context.Context, category string, featuredOnly bool, sortKey string) ([]domain.Product, error) {
	var (
		ps  []domain.Product
		err error
	)
	switch {
	case category != "":
		ps, err = s.Store.ListByCategory(ctx, category)
	case featuredOnly:
		ps, err = s.Store.ListFeatured(ctx)
	default:
		ps, err = s.Store.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if featuredOnly && category != "" {
		ps = featured(ps)
	}
	SortProducts(ps, sortKey)
	return ps, nil
}

func (s *CatalogService) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.Store.ListFeatured(ctx)
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Store.ListByCategory(ctx, category)
}

func (s *CatalogService) Search(ctx context.Context, q string) ([]domain.Product, error) {
	return s.Store.Search(ctx, q)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.Store.GetByID(ctx, id)
}

// Insert validates and stores a new product.
func (s *CatalogService) Insert(ctx context.Context, in domain.NewProduct) (domain.Product, error) {
	if err := validate.Product(in); err != nil {
		return domain.Product{}, err
	}
	return s.Store.InsertProduct(ctx, in)
}

// SortProducts orders ps in place. Ties keep catalog order; an empty key
// leaves ps as it is.
func SortProducts(ps []domain.Product, key string) {
	switch key {
	case "price-low":
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.LessThan(ps[j].Price.Decimal) })
	case "price-high":
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.GreaterThan(ps[j].Price.Decimal) })
	case "name":
		col := collate.New(language.Arabic)
		sort.SliceStable(ps, func(i, j int) bool { return col.CompareString(ps[i].Name, ps[j].Name) < 0 })
	case "rating":
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating.GreaterThan(ps[j].Rating) })
	case "featured":
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Featured && !ps[j].Featured })
	}
}

func featured(ps []domain.Product) []domain.Product {
	out := ps[:0]
	for _, p := range ps {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
