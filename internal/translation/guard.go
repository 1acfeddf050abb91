package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
)

// failureThreshold consecutive failures open the breaker for the rest of
// a typical run.
const failureThreshold = 3

// requestTimeout bounds a single backend call
const requestTimeout = 30 * time.Second

// ErrUnavailable is returned once the backend has failed repeatedly
var ErrUnavailable = errors.New("translation backend unavailable")

// Guard protects a Suggester with a rate limiter and a circuit breaker
type Guard struct {
	next    Suggester
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuard wraps next. requestsPerSecond <= 0 disables rate limiting.
func NewGuard(next Suggester, requestsPerSecond float64) *Guard {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	settings := gobreaker.Settings{
		Name:        "suggest",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
	}

	return &Guard{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Suggest waits for the rate limiter and calls the wrapped Suggester unless
// the breaker is open, in which case it fails fast with ErrUnavailable.
func (g *Guard) Suggest(ctx context.Context, text string, lang language.Tag) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.Suggest(ctx, text, lang)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", errors.Join(ErrUnavailable, err)
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
