package middleware

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/logging"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Idle buckets expire from the cache.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters *cache.Cache
}

func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: cache.New(10*time.Minute, 5*time.Minute),
	}
}

func (l *RateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, found := l.limiters.Get(ip); found {
		limiter := v.(*rate.Limiter)
		// touch so active clients keep their bucket
		l.limiters.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(ip, limiter)
	return limiter
}

func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.getLimiter(ip).Allow() {
			logging.FromContext(r.Context()).Warnw("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			common.RespondError(w, time.Now(), errors.New("too many requests"), "", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
