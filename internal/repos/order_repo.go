package repos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fedashop/internal/domain"
	"fedashop/internal/store"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	ID              string       `db:"id"`
	CustomerName    string       `db:"customer_name"`
	CustomerEmail   string       `db:"customer_email"`
	CustomerPhone   string       `db:"customer_phone"`
	ShippingAddress string       `db:"shipping_address"`
	City            string       `db:"city"`
	PostalCode      string       `db:"postal_code"`
	PaymentMethod   string       `db:"payment_method"`
	TotalAmount     domain.Money `db:"total_amount"`
	Status          string       `db:"status"`
	Items           string       `db:"items"`
	CreatedAt       string       `db:"created_at"`
}

// CreateOrder inserts a new pending order. The id, status and timestamp are
// always assigned here.
func (r *OrderRepo) CreateOrder(ctx context.Context, in domain.NewOrder) (domain.Order, error) {
	o := domain.Order{
		ID:              uuid.NewString(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		City:            in.City,
		PostalCode:      in.PostalCode,
		PaymentMethod:   in.PaymentMethod,
		TotalAmount:     domain.NewMoney(in.TotalAmount.Decimal),
		Status:          domain.OrderStatusPending,
		Items:           in.Items,
		CreatedAt:       time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
	  INSERT INTO orders
	    (id, customer_name, customer_email, customer_phone, shipping_address, city,
	     postal_code, payment_method, total_amount, status, items, created_at)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.ShippingAddress, o.City,
		o.PostalCode, string(o.PaymentMethod), o.TotalAmount.StringFixed(2), o.Status, o.Items,
		o.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, customer_name, customer_email, customer_phone, shipping_address, city,
		       postal_code, payment_method, total_amount, status, items, created_at
		FROM orders
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, store.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	created, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
	return domain.Order{
		ID:              row.ID,
		CustomerName:    row.CustomerName,
		CustomerEmail:   row.CustomerEmail,
		CustomerPhone:   row.CustomerPhone,
		ShippingAddress: row.ShippingAddress,
		City:            row.City,
		PostalCode:      row.PostalCode,
		PaymentMethod:   domain.PaymentMethod(row.PaymentMethod),
		TotalAmount:     row.TotalAmount,
		Status:          row.Status,
		Items:           row.Items,
		CreatedAt:       created,
	}, nil
}
