// Package cart holds the shopping cart state, the reducer that moves it from
// one state to the next, and the session adapter that mirrors it into a
// persistence slot.
package cart

import "github.com/shopspring/decimal"

// Line is one product-and-quantity pair.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Quantity  int
}

// Subtotal is UnitPrice x Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an insertion-ordered sequence of lines with at most one line per
// product id. The zero value is an empty cart. A Cart is never mutated in
// place; every transition produces a new one.
type Cart struct {
	lines []Line
}

// New returns a cart holding a copy of lines.
func New(lines ...Line) Cart {
	return Cart{lines: clone(lines)}
}

// Lines returns a copy of the cart lines.
func (c Cart) Lines() []Line { return clone(c.lines) }

func (c Cart) Len() int { return len(c.lines) }

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Line returns the line for productID, if any.
func (c Cart) Line(productID string) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// TotalItemCount sums the quantities of every line.
func (c Cart) TotalItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums unit price x quantity over every line.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c Cart) index(productID string) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func clone(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
