package domain

import (
	"encoding/json"
	"time"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit-card"
	PaymentBankTransfer   PaymentMethod = "bank-transfer"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentBankTransfer, PaymentCashOnDelivery:
		return true
	}
	return false
}

const OrderStatusPending = "pending"

type Order struct {
	ID              string        `db:"id" json:"id"`
	CustomerName    string        `db:"customer_name" json:"customerName"`
	CustomerEmail   string        `db:"customer_email" json:"customerEmail"`
	CustomerPhone   string        `db:"customer_phone" json:"customerPhone"`
	ShippingAddress string        `db:"shipping_address" json:"shippingAddress"`
	City            string        `db:"city" json:"city"`
	PostalCode      string        `db:"postal_code" json:"postalCode"`
	PaymentMethod   PaymentMethod `db:"payment_method" json:"paymentMethod"`
	TotalAmount     Money         `db:"total_amount" json:"totalAmount"`
	Status          string        `db:"status" json:"status"`
	// Items is the JSON text of the cart lines at submission time.
	Items     string    `db:"items" json:"items"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// OrderItem is one element of Order.Items.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"imageUrl"`
}

// DecodeItems parses the frozen item snapshot.
func (o Order) DecodeItems() ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CustomerDetails are the checkout form fields.
type CustomerDetails struct {
	CustomerName    string        `json:"customerName" validate:"min=2"`
	CustomerEmail   string        `json:"customerEmail" validate:"email"`
	CustomerPhone   string        `json:"customerPhone" validate:"min=10"`
	ShippingAddress string        `json:"shippingAddress" validate:"min=10"`
	City            string        `json:"city" validate:"min=2"`
	PostalCode      string        `json:"postalCode" validate:"min=5"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"oneof=credit-card bank-transfer cash-on-delivery"`
}

// NewOrder is an order submission before the store stamps ID, Status and CreatedAt.
type NewOrder struct {
	CustomerDetails
	TotalAmount Money  `json:"totalAmount"`
	Items       string `json:"items" validate:"required"`
}
