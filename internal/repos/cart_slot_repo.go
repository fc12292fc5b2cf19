package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"fedashop/internal/cart"
)

// SQLiteSlots keeps serialized carts in the cart_slots table.
type SQLiteSlots struct{ db *sqlx.DB }

var _ cart.SlotStore = (*SQLiteSlots)(nil)

func NewSQLiteSlots(db *sqlx.DB) *SQLiteSlots { return &SQLiteSlots{db: db} }

func (r *SQLiteSlots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM cart_slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (r *SQLiteSlots) Put(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_slots(key, payload, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}
