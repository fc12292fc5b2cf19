package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// MaxQLen and MaxCategoryLen are rune counts.
const (
	MaxQLen        = 100
	MaxCategoryLen = 50
)

// Q validates a search query: trimmed, non-empty and at most MaxQLen runes.
// Any text is accepted; the query is only ever a bound parameter.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && utf8.RuneCountInString(s) <= MaxQLen
}

// ID validates a simple resource identifier (product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Category validates a category filter. Categories are whatever products were
// stored with, so any non-empty value within MaxCategoryLen runes is accepted
// and matched exactly.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && utf8.RuneCountInString(s) <= MaxCategoryLen
}

// Sort keys accepted by product listings.
var sortKeys = map[string]bool{
	"featured": true, "price-low": true, "price-high": true, "name": true, "rating": true,
}

// Sort validates a listing sort key. Empty is valid and keeps store order.
func Sort(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == "" || sortKeys[s]
}

// MaxQty caps a single line quantity.
const MaxQty = 999

// Quantity rejects a line quantity above MaxQty. Values <= 0 are allowed and
// mean "remove".
func Quantity(n int) error {
	if n > MaxQty {
		verr := &ValidationError{}
		verr.add("quantity", message("quantity"))
		return verr
	}
	return nil
}
