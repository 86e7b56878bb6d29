// Package ratelimit implements a per-client fixed-window rate limiter
// for the shop API. A small shop till makes a handful of requests a
// minute; anything past the limit is assumed to be a misbehaving client.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type Limiter struct {
	mu                sync.Mutex
	clients           map[string]*window
	requestsPerMinute int
}

type window struct {
	start    time.Time
	requests int
}

// NewLimiter creates a limiter allowing requestsPerMinute requests per
// client IP. Values below 1 fall back to 60.
func NewLimiter(requestsPerMinute int) *Limiter {
	if requestsPerMinute < 1 {
		requestsPerMinute = 60
	}
	return &Limiter{
		clients:           make(map[string]*window),
		requestsPerMinute: requestsPerMinute,
	}
}

// Allow reports whether a request from the given client fits in the
// current window. Stale windows are pruned inline so the client map
// stays bounded without a cleanup goroutine.
func (rl *Limiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[clientIP]
	if !ok || now.Sub(w.start) > time.Minute {
		if len(rl.clients) > 1024 {
			rl.prune(now)
		}
		rl.clients[clientIP] = &window{start: now, requests: 1}
		return true
	}

	w.requests++
	return w.requests <= rl.requestsPerMinute
}

// ActiveClients returns the number of currently tracked clients.
func (rl *Limiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

func (rl *Limiter) prune(now time.Time) {
	cutoff := now.Add(-10 * time.Minute)
	for ip, w := range rl.clients {
		if w.start.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// Middleware rejects over-limit requests with 429 and a Retry-After hint.
func (rl *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
