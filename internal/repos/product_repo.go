package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"fedashop/internal/domain"
	"fedashop/internal/store"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Price         domain.Money    `db:"price"`
	ImageURL      string          `db:"image_url"`
	Category      string          `db:"category"`
	InStock       bool            `db:"in_stock"`
	StockQuantity int             `db:"stock_quantity"`
	Rating        decimal.Decimal `db:"rating"`
	ReviewCount   int             `db:"review_count"`
	Featured      bool            `db:"featured"`
	CreatedAt     string          `db:"created_at"`
}

const productCols = `id, name, description, price, image_url, category, in_stock,
    stock_quantity, rating, review_count, featured, created_at`

const insertProductSQL = `
  INSERT INTO products(` + productCols + `)
  VALUES(:id, :name, :description, :price, :image_url, :category, :in_stock,
    :stock_quantity, :rating, :review_count, :featured, :created_at)`

func toProductRow(p domain.Product) productRow {
	return productRow{
		ID: p.ID, Name: p.Name, Description: p.Description,
		Price: domain.NewMoney(p.Price.Decimal), ImageURL: p.ImageURL, Category: p.Category,
		InStock: p.InStock, StockQuantity: p.StockQuantity, Rating: p.Rating,
		ReviewCount: p.ReviewCount, Featured: p.Featured,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r productRow) product() domain.Product {
	created, _ := time.Parse(time.RFC3339Nano, r.CreatedAt)
	return domain.Product{
		ID: r.ID, Name: r.Name, Description: r.Description,
		Price: r.Price, ImageURL: r.ImageURL, Category: r.Category,
		InStock: r.InStock, StockQuantity: r.StockQuantity, Rating: r.Rating,
		ReviewCount: r.ReviewCount, Featured: r.Featured, CreatedAt: created,
	}
}

func (r *ProductRepo) list(ctx context.Context, where string, args ...any) ([]domain.Product, error) {
	var rows []productRow
	q := `SELECT ` + productCols + ` FROM products`
	if where != "" {
		q += ` WHERE ` + where
	}
	q += ` ORDER BY rowid`
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.product())
	}
	return out, nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, "")
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return row.product(), nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.list(ctx, `category = ?`, category)
}

func (r *ProductRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `featured = 1`)
}

// Search matches q as a plain substring with store.Matches. SQLite's LOWER
// folds ASCII only, so the filter runs here.
func (r *ProductRepo) Search(ctx context.Context, q string) ([]domain.Product, error) {
	all, err := r.list(ctx, "")
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if store.Matches(p, q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) InsertProduct(ctx context.Context, in domain.NewProduct) (domain.Product, error) {
	p := domain.Product{
		ID: uuid.NewString(), Name: in.Name, Description: in.Description,
		Price: in.Price, ImageURL: in.ImageURL, Category: in.Category,
		InStock: in.InStock, StockQuantity: in.StockQuantity, Rating: in.Rating,
		ReviewCount: in.ReviewCount, Featured: in.Featured, CreatedAt: time.Now().UTC(),
	}
	if _, err := r.db.NamedExecContext(ctx, insertProductSQL, toProductRow(p)); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
