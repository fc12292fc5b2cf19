package cart

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// storedLine is the slot representation of a Line: {id, name, price, imageUrl, quantity}
// with price as a JSON number.
type storedLine struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	ImageURL string      `json:"imageUrl"`
	Quantity int         `json:"quantity"`
}

// Encode serializes c into the slot representation. An empty cart encodes as [].
func Encode(c Cart) ([]byte, error) {
	out := make([]storedLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, storedLine{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    json.Number(l.UnitPrice.String()),
			ImageURL: l.ImageURL,
			Quantity: l.Quantity,
		})
	}
	return json.Marshal(out)
}

// Decode parses a slot payload and checks the line invariants: non-empty id,
// quantity >= 1, price >= 0 and at most one line per id.
func Decode(data []byte) ([]Line, error) {
	var in []storedLine
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	seen := make(map[string]struct{}, len(in))
	lines := make([]Line, 0, len(in))
	for i, s := range in {
		if s.ID == "" {
			return nil, fmt.Errorf("line %d: missing id", i)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Quantity < 1 {
			return nil, fmt.Errorf("line %d: quantity %d < 1", i, s.Quantity)
		}
		price, err := decimal.NewFromString(s.Price.String())
		if err != nil {
			return nil, fmt.Errorf("line %d: price: %w", i, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("line %d: negative price %s", i, price)
		}
		lines = append(lines, Line{
			ProductID: s.ID,
			Name:      s.Name,
			UnitPrice: price,
			ImageURL:  s.ImageURL,
			Quantity:  s.Quantity,
		})
	}
	return lines, nil
}
