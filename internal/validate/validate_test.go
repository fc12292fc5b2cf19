package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedashop/internal/domain"
)

func validCustomer() domain.CustomerDetails {
	return domain.CustomerDetails{
		CustomerName:    "محمد أحمد",
		CustomerEmail:   "mohammed@example.sa",
		CustomerPhone:   "0551234567",
		ShippingAddress: "شارع الملك فهد، حي العليا",
		City:            "الرياض",
		PostalCode:      "12345",
		PaymentMethod:   domain.PaymentCashOnDelivery,
	}
}

func TestCustomerValid(t *testing.T) {
	assert.NoError(t, Customer(validCustomer()))
}

func TestCustomerFieldErrors(t *testing.T) {
	c := domain.CustomerDetails{
		CustomerName:    "م",
		CustomerEmail:   "not-an-email",
		CustomerPhone:   "055",
		ShippingAddress: "قصير",
		City:            "ج",
		PostalCode:      "123",
		PaymentMethod:   "paypal",
	}
	err := Customer(c)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, f := range []string{"customerName", "customerEmail", "customerPhone", "shippingAddress", "city", "postalCode", "paymentMethod"} {
		assert.Contains(t, verr.Fields, f)
	}
	assert.Equal(t, "المدينة مطلوبة", verr.Fields["city"])
}

func TestCustomerCountsCharactersNotBytes(t *testing.T) {
	c := validCustomer()
	c.City = "جدة" // 3 letters, 6 bytes
	assert.NoError(t, Customer(c))
	c.City = "ج" // 1 letter, 2 bytes
	assert.Error(t, Customer(c))
}

func TestOrder(t *testing.T) {
	o := domain.NewOrder{CustomerDetails: validCustomer(), TotalAmount: domain.MustMoney("150"), Items: `[{"id":"1"}]`}
	require.NoError(t, Order(o))

	o.Items = `{"id":"1"}`
	o.TotalAmount = domain.MustMoney("-1")
	var verr *ValidationError
	require.ErrorAs(t, Order(o), &verr)
	assert.Contains(t, verr.Fields, "items")
	assert.Contains(t, verr.Fields, "totalAmount")

	o.Items = ""
	require.ErrorAs(t, Order(o), &verr)
	assert.Contains(t, verr.Fields, "items")
}

func TestProduct(t *testing.T) {
	p := domain.NewProduct{
		Name: "ماء الورد", Description: "ماء ورد طائفي", Price: domain.MustMoney("30"),
		ImageURL: "rose.jpg", Category: "skincare", Rating: decimal.RequireFromString("4.5"),
	}
	require.NoError(t, Product(p))

	p.Rating = decimal.RequireFromString("5.5")
	p.Price = domain.MustMoney("-2")
	p.StockQuantity = -1
	p.Name = ""
	var verr *ValidationError
	require.ErrorAs(t, Product(p), &verr)
	for _, f := range []string{"rating", "price", "stockQuantity", "name"} {
		assert.Contains(t, verr.Fields, f)
	}
}

func TestQ(t *testing.T) {
	q, ok := Q("  عسل ")
	assert.True(t, ok)
	assert.Equal(t, "عسل", q)

	for _, in := range []string{"100%", "O'Neil", "vitamin-c + e", "<script>"} {
		q, ok = Q(in)
		assert.True(t, ok, in)
		assert.Equal(t, in, q)
	}

	_, ok = Q("   ")
	assert.False(t, ok)
	_, ok = Q(strings.Repeat("ع", MaxQLen))
	assert.True(t, ok)
	_, ok = Q(strings.Repeat("ع", MaxQLen+1))
	assert.False(t, ok)
}

func TestIDCategorySort(t *testing.T) {
	_, ok := ID("3f1c2b4e-0000-4000-8000-000000000000")
	assert.True(t, ok)
	_, ok = ID("../etc")
	assert.False(t, ok)

	for _, in := range []string{"organic-foods", "Skincare", "Skin Care", "عناية"} {
		c, ok := Category(in)
		assert.True(t, ok, in)
		assert.Equal(t, in, c)
	}
	_, ok = Category(" ")
	assert.False(t, ok)
	_, ok = Category(strings.Repeat("a", MaxCategoryLen+1))
	assert.False(t, ok)

	s, ok := Sort("")
	assert.True(t, ok)
	assert.Empty(t, s)
	s, ok = Sort("featured")
	assert.True(t, ok)
	assert.Equal(t, "featured", s)
	_, ok = Sort("cheapest")
	assert.False(t, ok)
}

func TestQuantity(t *testing.T) {
	for _, n := range []int{-2, 0, 3, MaxQty} {
		assert.NoError(t, Quantity(n), n)
	}

	var verr *ValidationError
	require.ErrorAs(t, Quantity(MaxQty+1), &verr)
	assert.Equal(t, map[string]string{"quantity": "الكمية يجب ألا تتجاوز 999"}, verr.Fields)
	require.ErrorAs(t, Quantity(100000), &verr)
}
