package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categories maps the catalog category slugs to their storefront labels.
var Categories = map[string]string{
	"skincare":        "العناية بالبشرة",
	"herbal-remedies": "الأعشاب الطبيعية",
	"organic-foods":   "الأطعمة العضوية",
	"essential-oils":  "الزيوت العطرية",
}

type Product struct {
	ID            string          `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Description   string          `db:"description" json:"description"`
	Price         Money           `db:"price" json:"price"`
	ImageURL      string          `db:"image_url" json:"imageUrl"`
	Category      string          `db:"category" json:"category"`
	InStock       bool            `db:"in_stock" json:"inStock"`
	StockQuantity int             `db:"stock_quantity" json:"stockQuantity"`
	Rating        decimal.Decimal `db:"rating" json:"rating"`
	ReviewCount   int             `db:"review_count" json:"reviewCount"`
	Featured      bool            `db:"featured" json:"featured"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

// NewProduct is the caller-supplied part of a Product; the store assigns
// ID and CreatedAt.
type NewProduct struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Price         Money           `json:"price"`
	ImageURL      string          `json:"imageUrl" validate:"required"`
	Category      string          `json:"category" validate:"required,max=50"`
	InStock       bool            `json:"inStock"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"reviewCount" validate:"gte=0"`
	Featured      bool            `json:"featured"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty"`
}
