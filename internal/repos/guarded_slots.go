package repos

import (
	"context"
	"time"

	"github.com/sony/gobreaker"

	"fedashop/internal/cart"
	applog "fedashop/internal/log"
	"fedashop/internal/metrics"
)

// GuardedSlots puts a circuit breaker in front of a remote slot store so an
// outage fails cart reads and writes fast instead of stalling every request.
type GuardedSlots struct {
	next cart.SlotStore
	cb   *gobreaker.CircuitBreaker
}

var _ cart.SlotStore = (*GuardedSlots)(nil)

func NewGuardedSlots(name string, next cart.SlotStore) *GuardedSlots {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // trial requests allowed while half-open
		Interval:    15 * time.Second, // window to track failures
		Timeout:     30 * time.Second, // time to wait before half-open
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(cbName).Set(stateValue(to))
			applog.Event("breaker.state", map[string]any{
				"breaker": cbName, "from": from.String(), "to": to.String(),
			})
		},
	})
	metrics.BreakerState.WithLabelValues(name).Set(0)
	return &GuardedSlots{next: next, cb: cb}
}

type loaded struct {
	data []byte
	ok   bool
}

func (g *GuardedSlots) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := g.cb.Execute(func() (interface{}, error) {
		data, ok, err := g.next.Get(ctx, key)
		return loaded{data: data, ok: ok}, err
	})
	if err != nil {
		return nil, false, err
	}
	l := res.(loaded)
	return l.data, l.ok, nil
}

func (g *GuardedSlots) Put(ctx context.Context, key string, data []byte) error {
	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, g.next.Put(ctx, key, data)
	})
	return err
}

// State is the breaker state name: closed, open or half-open.
func (g *GuardedSlots) State() string { return g.cb.State().String() }

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
