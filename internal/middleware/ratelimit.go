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

	"golang.org/x/time/rate"
)

// limiterEntry is one client's token bucket.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides per-IP token bucket rate limiting.
type RateLimiter struct {
	mu      sync.RWMutex
	clients map[string]*limiterEntry
	rate    rate.Limit
	burst   int
	idle    time.Duration // entries unused this long are dropped
	stopCh  chan struct{}
	now     func() time.Time
	// trustProxy keys clients by forwarding headers instead of RemoteAddr.
	trustProxy bool
}

// NewRateLimiter creates a rate limiter that allows rps requests per second
// per client with bursts of up to burst. X-Forwarded-For and X-Real-IP are
// only honored when trustProxy is set, i.e. when a reverse proxy in front of
// the server overwrites them. It starts a background goroutine to drop idle
// clients.
func NewRateLimiter(rps float64, burst int, trustProxy bool) *RateLimiter {
	rl := &RateLimiter{
		clients:    make(map[string]*limiterEntry),
		rate:       rate.Limit(rps),
		burst:      burst,
		idle:       10 * time.Minute,
		stopCh:     make(chan struct{}),
		now:        time.Now,
		trustProxy: trustProxy,
	}

	// Periodic cleanup of idle entries every 5 minutes.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// get returns the limiter for key, creating one if needed.
func (rl *RateLimiter) get(key string) *rate.Limiter {
	now := rl.now()

	rl.mu.RLock()
	entry, exists := rl.clients[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Double-check after acquiring write lock.
		entry, exists = rl.clients[key]
		if !exists {
			entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
			rl.clients[key] = entry
		}
		entry.lastSeen = now
		rl.mu.Unlock()
		return entry.limiter
	}

	rl.mu.Lock()
	entry.lastSeen = now
	rl.mu.Unlock()
	return entry.limiter
}

// allow reports whether key may make a request now.
func (rl *RateLimiter) allow(key string) bool {
	return rl.get(key).Allow()
}

// cleanup removes entries with no recent activity.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-rl.idle)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.clients {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r, rl.trustProxy)) {
			retry := 1
			if rl.rate > 0 {
				retry = max(1, int(math.Ceil(1/float64(rl.rate))))
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Rate limit exceeded. Please slow down.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the address requests are limited by. Without a trusted
// proxy it is always the connection's address, since clients control the
// forwarding headers. Behind one, the rightmost X-Forwarded-For entry is the
// address the proxy itself saw.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if idx := strings.LastIndexByte(xff, ','); idx != -1 {
				xff = xff[idx+1:]
			}
			if ip := strings.TrimSpace(xff); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	// Strip the port from RemoteAddr.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
