package domain

import (
	"database/sql/driver"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount rendered with two fractional digits, like a
// numeric(10,2) column.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money { return Money{d.Round(2)} }

// MustMoney parses s and panics on malformed input. Seed data only.
func MustMoney(s string) Money { return Money{decimal.RequireFromString(s)} }

func (m Money) String() string { return m.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

// Value stores the amount as fixed two-digit text.
func (m Money) Value() (driver.Value, error) { return m.StringFixed(2), nil }
