package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fedashop/internal/cart"
	"fedashop/internal/services"
	"fedashop/internal/store"
)

type Deps struct {
	CategoryHandler  *CategoryHandler
	ProductHandler   *ProductHandler
	InventoryHandler *InventoryHandler
	SearchHandler    *SearchHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
}

func NewDeps(st store.Storage, slots cart.SlotStore) *Deps {
	catalogSvc := services.NewCatalogService(st)
	invSvc := services.NewInventoryService(st)
	cartSvc := services.NewCartService(slots, st)
	orderSvc := services.NewOrderService(st, cartSvc)

	return &Deps{
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc},
	}
}

// Register mounts the JSON API under /api.
func (d *Deps) Register(r fiber.Router) {
	api := r.Group("/api")

	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/featured", d.ProductHandler.Featured)
	api.Get("/products/search", d.SearchHandler.Search)
	api.Get("/products/category/:category", d.CategoryHandler.Products)
	api.Get("/products/:id", d.ProductHandler.Detail)
	api.Get("/products/:id/availability", d.InventoryHandler.Check)
	api.Post("/products", d.ProductHandler.Create)
	api.Get("/categories", d.CategoryHandler.List)

	api.Get("/cart", d.CartHandler.View)
	api.Post("/cart/items", d.CartHandler.Add)
	api.Put("/cart/items/:id", d.CartHandler.SetQuantity)
	api.Delete("/cart/items/:id", d.CartHandler.Remove)
	api.Delete("/cart", d.CartHandler.Clear)

	api.Post("/checkout", d.OrderHandler.Checkout)
	api.Post("/orders", d.OrderHandler.Create)
	api.Get("/orders/:id", d.OrderHandler.View)
}
