package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ipWindow tracks one client's request count inside the current window.
type ipWindow struct {
	count   int
	resetAt time.Time
}

// RateLimit caps each client IP at limit requests per window and answers
// 429 beyond that. Counters live in process memory.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*ipWindow)

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		w, ok := windows[ip]
		if !ok || now.After(w.resetAt) {
			w = &ipWindow{resetAt: now.Add(window)}
			windows[ip] = w
		}
		if w.count >= limit {
			return false
		}
		w.count++
		return true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(clientIP(r)) {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the address a limit bucket is keyed on: the first valid
// X-Forwarded-For hop when present, otherwise the remote address with or
// without its port.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
