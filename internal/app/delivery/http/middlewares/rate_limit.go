package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every client IP at MaxRequests per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// ReloadRateLimit guards manual reloads, which are far more expensive than
// queries.
func (m *Middlewares) ReloadRateLimit() func(next http.Handler) http.Handler {
	app := m.InternalConfig.App
	limiter := NewRateLimiter(
		m.Log,
		app.ReloadRateLimit,
		time.Duration(app.ReloadRateLimitPeriodInSeconds)*time.Second,
		time.Duration(app.ReloadRateLimitBlockInSeconds)*time.Second,
	)
	return limiter.Limit
}
