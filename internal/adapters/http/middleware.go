package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"nockpoint/internal/domain"
)

const (
	// Rate limiting configuration.
	DefaultRateLimit = 10
	DefaultRateBurst = 20

	headerRequestID = "X-Request-ID"
	headerUserAgent = "User-Agent"
)

// RateLimit blocks each request until limiter admits it or ctx ends.
func RateLimit(limiter *rate.Limiter) domain.RequestDecorator {
	return func(ctx context.Context, _ http.Header) error {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() == nil {
				// The limiter gives up early when the wait would outlast the deadline.
				return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
			}
			return err
		}
		return nil
	}
}

// NewLimiter builds a limiter, falling back to the defaults for
// non-positive values.
func NewLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultRateBurst
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// RequestID tags each request with a fresh correlation id unless one is present.
func RequestID() domain.RequestDecorator {
	return func(_ context.Context, header http.Header) error {
		if header.Get(headerRequestID) == "" {
			header.Set(headerRequestID, uuid.NewString())
		}
		return nil
	}
}

// UserAgent identifies the client build.
func UserAgent(version string) domain.RequestDecorator {
	agent := "nockpoint/" + version
	return func(_ context.Context, header http.Header) error {
		header.Set(headerUserAgent, agent)
		return nil
	}
}
