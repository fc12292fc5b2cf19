package repos

import (
	"github.com/jmoiron/sqlx"

	"fedashop/internal/store"
)

// SQLStore serves the catalog and orders from sqlite tables.
type SQLStore struct {
	*ProductRepo
	*OrderRepo
}

var _ store.Storage = (*SQLStore)(nil)

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{ProductRepo: NewProductRepo(db), OrderRepo: NewOrderRepo(db)}
}
