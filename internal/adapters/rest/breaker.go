package rest

import (
	"time"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker builds the breaker wired in front of the API
// transport. Trips after 5+ requests with a 60% failure ratio; half-open
// after 10s. There is no retry anywhere; a tripped breaker just turns
// calls into immediate connection failures until the API recovers.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}
