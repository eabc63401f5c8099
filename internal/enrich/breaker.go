package enrich

import (
	"time"

	"github.com/sony/gobreaker"
)

// newBreaker returns the circuit breaker wrapped around every enrichment
// call. Five consecutive failures open the circuit for 30 seconds; while
// open, calls fail fast and the affected words are dropped like any other
// per-word failure.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}
