package api

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitTransport ограничивает частоту исходящих запросов.
// Запрос ждет свободный токен или отмену контекста.
type rateLimitTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip implements http.RoundTripper
func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.base.RoundTrip(req)
}

// WithRateLimit ограничивает клиента r запросами в секунду с пачкой до burst.
// r <= 0 отключает ограничение.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(o *options) {
		if r <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(r, burst)
	}
}
