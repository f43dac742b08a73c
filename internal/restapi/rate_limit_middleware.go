package restapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"railbooking.org/internal/models"
)

// RateLimitMiddleware provides per-API-key rate limiting. Stop ends its
// cleanup goroutine.
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
	exemptKeys  map[string]bool
	disabled    bool
	done        chan struct{}
	stopped     chan struct{}
	stopOnce    sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware allowing
// ratePerSecond requests per interval for each API key, with an equal burst.
// A ratePerSecond of zero or less disables limiting and starts no goroutine.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, exemptKeys ...string) *RateLimitMiddleware {
	if ratePerSecond <= 0 {
		return &RateLimitMiddleware{disabled: true}
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rate.Every(interval / time.Duration(ratePerSecond)),
		burstSize:   ratePerSecond,
		cleanupTick: time.NewTicker(5 * time.Minute),
		exemptKeys:  make(map[string]bool, len(exemptKeys)),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	for _, key := range exemptKeys {
		middleware.exemptKeys[key] = true
	}

	go middleware.cleanup()

	return middleware
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[apiKey]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[apiKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[apiKey] = limiter

	return limiter
}

// Handler wraps next with the limiter. A disabled limiter returns next unchanged.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if rl == nil || rl.disabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = "__no_key__"
		}

		if rl.exemptKeys[apiKey] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(apiKey).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := int(math.Ceil(1 / float64(rl.rateLimit)))
	if retryAfter < 1 {
		retryAfter = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(models.NewErrorResponse(
		http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil))
}

// cleanup periodically drops limiters that have refilled completely, i.e. idle keys.
func (rl *RateLimitMiddleware) cleanup() {
	defer close(rl.stopped)

	for {
		select {
		case <-rl.done:
			return
		case <-rl.cleanupTick.C:
			rl.dropIdleLimiters()
		}
	}
}

func (rl *RateLimitMiddleware) dropIdleLimiters() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burstSize) {
			delete(rl.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	if rl == nil || rl.disabled {
		return
	}

	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
	<-rl.stopped
}
