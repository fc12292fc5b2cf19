package validate

import (
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"fedashop/internal/domain"
)

// ValidationError lists every failing field with a display message. Keys are
// the JSON field names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, seen := e.Fields[field]; !seen {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Storefront messages, per field.
var messages = map[string]string{
	"customerName":    "اسم العميل مطلوب",
	"customerEmail":   "بريد إلكتروني صحيح مطلوب",
	"customerPhone":   "رقم هاتف صحيح مطلوب",
	"shippingAddress": "عنوان الشحن مطلوب",
	"city":            "المدينة مطلوبة",
	"postalCode":      "الرمز البريدي مطلوب",
	"paymentMethod":   "يرجى اختيار طريقة الدفع",
	"items":           "عناصر الطلب مطلوبة",
	"totalAmount":     "المبلغ الإجمالي غير صالح",
	"name":            "اسم المنتج مطلوب",
	"description":     "وصف المنتج مطلوب",
	"imageUrl":        "رابط الصورة مطلوب",
	"category":        "الفئة مطلوبة",
	"price":           "السعر غير صالح",
	"rating":          "التقييم يجب أن يكون بين 0 و 5",
	"stockQuantity":   "الكمية يجب ألا تكون سالبة",
	"reviewCount":     "عدد المراجعات يجب ألا يكون سالباً",
	"quantity":        "الكمية يجب ألا تتجاوز 999",
}

func message(field string) string {
	if m, ok := messages[field]; ok {
		return m
	}
	return "قيمة غير صالحة"
}

func collect(s any) *ValidationError {
	verr := &ValidationError{}
	err := v.Struct(s)
	var fes validator.ValidationErrors
	if errors.As(err, &fes) {
		for _, fe := range fes {
			verr.add(fe.Field(), message(fe.Field()))
		}
	}
	return verr
}

// Customer checks the checkout form fields.
func Customer(d domain.CustomerDetails) error {
	return collect(d).orNil()
}

// Order checks a raw order submission: customer fields, a non-negative total
// and items holding a JSON array.
func Order(o domain.NewOrder) error {
	verr := collect(o)
	if o.TotalAmount.IsNegative() {
		verr.add("totalAmount", message("totalAmount"))
	}
	if o.Items != "" {
		var items []json.RawMessage
		if json.Unmarshal([]byte(o.Items), &items) != nil {
			verr.add("items", message("items"))
		}
	}
	return verr.orNil()
}

var five = decimal.NewFromInt(5)

// Product checks a product insert.
func Product(p domain.NewProduct) error {
	verr := collect(p)
	if p.Price.IsNegative() {
		verr.add("price", message("price"))
	}
	if p.Rating.IsNegative() || p.Rating.GreaterThan(five) {
		verr.add("rating", message("rating"))
	}
	return verr.orNil()
}
