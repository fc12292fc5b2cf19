package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	applog "fedashop/internal/log"
	"fedashop/internal/store"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// a second connection to ":memory:" would see an empty database
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the starter catalog (idempotent; safe to run every start)
	if err := seedProducts(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  price TEXT NOT NULL,
  image_url TEXT NOT NULL,
  category TEXT NOT NULL CHECK (length(category) <= 50),
  in_stock INTEGER NOT NULL DEFAULT 1,
  stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
  rating TEXT NOT NULL DEFAULT '0',
  review_count INTEGER NOT NULL DEFAULT 0 CHECK (review_count >= 0),
  featured INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  shipping_address TEXT NOT NULL,
  city TEXT NOT NULL,
  postal_code TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  total_amount TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  items TEXT NOT NULL,          -- JSON snapshot of the cart lines
  created_at TEXT NOT NULL
);

-- Cart slots (one serialized cart per session)
CREATE TABLE IF NOT EXISTS cart_slots(
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedProducts inserts the starter catalog rows that are missing.
func seedProducts(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	seed := store.Seed(time.Now().UTC())
	inserted := 0
	for _, p := range seed {
		res, err := tx.NamedExec(insertProductSQL+` ON CONFLICT(id) DO NOTHING`, toProductRow(p))
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	if inserted > 0 {
		applog.Event("seed.products", map[string]any{"inserted": inserted})
	}
	return tx.Commit()
}
