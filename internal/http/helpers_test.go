package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"fedashop/internal/cart"
	"fedashop/internal/http/handlers"
	"fedashop/internal/store"
)

// Minimal app with the full API over a seeded memory store
func newAPIApp(t *testing.T, slots cart.SlotStore) (*fiber.App, *store.Memory) {
	t.Helper()
	st := store.NewMemory(store.Seed(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))...)
	if slots == nil {
		slots = cart.NewMemorySlots()
	}
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	handlers.NewDeps(st, slots).Register(app)
	return app, st
}

// client carries the sid cookie between requests like a browser would.
type client struct {
	t   *testing.T
	app *fiber.App
	sid *http.Cookie
}

func (c *client) do(method, path string, body any) (int, []byte) {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				c.t.Fatal(err)
			}
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sid != nil {
		req.AddCookie(c.sid)
	}
	resp, err := c.app.Test(req, -1)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			c.sid = ck
		}
	}
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

type productJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

type cartJSON struct {
	Cart struct {
		Items []struct {
			ID       string `json:"id"`
			Price    string `json:"price"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
		TotalItems int    `json:"totalItems"`
		TotalPrice string `json:"totalPrice"`
	} `json:"cart"`
	Saved   bool   `json:"saved"`
	Warning string `json:"warning"`
}

type orderJSON struct {
	ID            string `json:"id"`
	TotalAmount   string `json:"totalAmount"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	Items         string `json:"items"`
}

func productIDs(ps []productJSON) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func checkoutBody() map[string]any {
	return map[string]any{
		"customerName":    "فاطمة علي",
		"customerEmail":   "fatima@example.sa",
		"customerPhone":   "0551234567",
		"shippingAddress": "طريق الملك عبدالعزيز، حي النزهة",
		"city":            "جدة",
		"postalCode":      "23523",
		"paymentMethod":   "cash-on-delivery",
	}
}

// brokenSlots accepts reads and fails every write.
type brokenSlots struct{ cart.SlotStore }

func (brokenSlots) Put(context.Context, string, []byte) error {
	return errors.New("storage quota exceeded")
}

// flakySlots fails the next n reads after fail(n).
type flakySlots struct {
	cart.SlotStore
	mu      sync.Mutex
	pending int
}

func (f *flakySlots) fail(n int) {
	f.mu.Lock()
	f.pending = n
	f.mu.Unlock()
}

func (f *flakySlots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	failing := f.pending > 0
	if failing {
		f.pending--
	}
	f.mu.Unlock()
	if failing {
		return nil, false, errors.New("connection refused")
	}
	return f.SlotStore.Get(ctx, key)
}
