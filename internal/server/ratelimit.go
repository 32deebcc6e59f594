package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientIdleTimeout is how long a client's bucket is kept after its last
// request
const clientIdleTimeout = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client address. Buckets of
// clients idle for longer than the idle timeout are dropped on a later
// request.
type IPRateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewIPRateLimiter allows r requests per second per client with bursts of b
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		r:         r,
		b:         b,
		idle:      clientIdleTimeout,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.idle {
		i.sweep(now)
	}

	v, exists := i.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle clients. Callers hold mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, v := range i.visitors {
		if now.Sub(v.lastSeen) >= i.idle {
			delete(i.visitors, ip)
		}
	}
	i.lastSweep = now
}

// Clients returns the number of tracked client addresses
func (i *IPRateLimiter) Clients() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.visitors)
}

// LimitMiddleware rejects requests over the limit with 429
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(clientIP(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests, try again later")
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
