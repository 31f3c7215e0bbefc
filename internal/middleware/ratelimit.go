// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Routes with their own rate limit buckets.
const (
	RouteLogin    = "login"
	RouteTwoFA    = "2fa_verify"
	sweepInterval = 5 * time.Minute
)

// RateLimitConfig configures a RateLimiter.
type RateLimitConfig struct {
	Limit  int           // attempts allowed per Window, per route and client
	Window time.Duration // sliding window length
	// TrustProxy makes X-Forwarded-For and X-Real-IP identify the client.
	// Leave it off unless a reverse proxy sets those headers.
	TrustProxy bool
}

// bucketKey scopes attempts to one route and one client, so a flood of
// logins does not lock anybody out of second-factor verification.
type bucketKey struct {
	route  string
	client string
}

// RateLimiter throttles credential endpoints with a sliding window.
type RateLimiter struct {
	cfg RateLimitConfig
	now func() time.Time

	mu      sync.Mutex
	buckets map[bucketKey][]time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter returns a limiter and starts its background sweep. Call
// Stop when done.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return newRateLimiter(cfg, time.Now)
}

func newRateLimiter(cfg RateLimitConfig, now func() time.Time) *RateLimiter {
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	rl := &RateLimiter{
		cfg:     cfg,
		now:     now,
		buckets: make(map[bucketKey][]time.Time),
		stopCh:  make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Limit returns middleware counting requests against route's buckets.
// Requests are keyed by the signed-in user when a session is present and by
// client address otherwise.
func (rl *RateLimiter) Limit(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{route: route, client: rl.clientKey(r)}
			if wait := rl.take(key); wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take records an attempt. It returns zero when the attempt is allowed, or
// how long until the oldest attempt in the window expires.
func (rl *RateLimiter) take(key bucketKey) time.Duration {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := live(rl.buckets[key], now.Add(-rl.cfg.Window))
	if len(hits) >= rl.cfg.Limit {
		rl.buckets[key] = hits
		return hits[0].Add(rl.cfg.Window).Sub(now)
	}
	rl.buckets[key] = append(hits, now)
	return 0
}

// live drops the leading timestamps at or before cutoff. Timestamps are
// appended in order, so the survivors are a suffix.
func live(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep forgets clients with no attempts inside the window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.cfg.Window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, hits := range rl.buckets {
		if hits = live(hits, cutoff); len(hits) == 0 {
			delete(rl.buckets, key)
		} else {
			rl.buckets[key] = hits
		}
	}
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if sess := SessionFromCtx(r.Context()); sess != nil {
		return "user:" + sess.UserID.String()
	}
	return "ip:" + clientIP(r, rl.cfg.TrustProxy)
}

// clientIP returns the address of the caller. Forwarding headers are only
// honoured when trustProxy is set, since clients can send them directly.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// retryAfterSeconds rounds wait up to whole seconds, minimum one.
func retryAfterSeconds(wait time.Duration) int {
	return max(1, int(math.Ceil(wait.Seconds())))
}
