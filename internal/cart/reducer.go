package cart

import "github.com/shopspring/decimal"

// Action is a cart transition. The set of actions is closed: only the types
// declared in this file implement it.
type Action interface {
	apply(Cart) Cart
	name() string
}

// Reduce returns the cart that results from applying a to c. c is left untouched.
func Reduce(c Cart, a Action) Cart {
	return a.apply(c)
}

// ActionName is the stable label of an action, used for logs and metrics.
func ActionName(a Action) string { return a.name() }

// AddItem adds one unit of a product, appending a new line on first add.
type AddItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string
}

func (a AddItem) apply(c Cart) Cart {
	out := c.Lines()
	if i := c.index(a.ProductID); i >= 0 {
		out[i].Quantity++
		return Cart{lines: out}
	}
	out = append(out, Line{
		ProductID: a.ProductID,
		Name:      a.Name,
		UnitPrice: a.UnitPrice,
		ImageURL:  a.ImageURL,
		Quantity:  1,
	})
	return Cart{lines: out}
}

func (AddItem) name() string { return "add" }

// RemoveItem drops the line for ProductID. Absent ids leave the cart unchanged.
type RemoveItem struct {
	ProductID string
}

func (a RemoveItem) apply(c Cart) Cart {
	i := c.index(a.ProductID)
	if i < 0 {
		return c
	}
	out := make([]Line, 0, len(c.lines)-1)
	out = append(out, c.lines[:i]...)
	out = append(out, c.lines[i+1:]...)
	return Cart{lines: out}
}

func (RemoveItem) name() string { return "remove" }

// SetQuantity replaces the quantity of a line. A quantity <= 0 removes it.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

func (a SetQuantity) apply(c Cart) Cart {
	if a.Quantity <= 0 {
		return RemoveItem{ProductID: a.ProductID}.apply(c)
	}
	i := c.index(a.ProductID)
	if i < 0 {
		return c
	}
	out := c.Lines()
	out[i].Quantity = a.Quantity
	return Cart{lines: out}
}

func (SetQuantity) name() string { return "set_quantity" }

// Clear empties the cart.
type Clear struct{}

func (Clear) apply(Cart) Cart { return Cart{} }

func (Clear) name() string { return "clear" }

// Load replaces the whole cart. It trusts its input; callers hydrating from
// storage go through Decode first.
type Load struct {
	Lines []Line
}

func (a Load) apply(Cart) Cart { return New(a.Lines...) }

func (Load) name() string { return "load" }
