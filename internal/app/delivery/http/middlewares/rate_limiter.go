package middlewares

import (
	"net"
	"net/http"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter allows each client IP a burst of requests refilled one per
// period. A client that runs out is blocked for blockTime.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		now := r.now()
		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, blockedUntil.Sub(now))
				return
			}
			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		if !limiter.AllowN(now, 1) {
			r.blocked[ip] = now.Add(r.blockTime)
			r.mu.Unlock()
			r.log.Warn("RateLimiter.Limit blocking client",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.Duration(constvars.LoggingDurationKey, r.blockTime),
			)
			r.reject(w, r.blockTime)
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, retryAfter time.Duration) {
	seconds := int(retryAfter.Round(time.Second).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
}
