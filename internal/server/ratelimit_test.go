package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewIPRateLimiter(0, 1)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		l.getLimiter(ip)
	}
	assert.Equal(t, 3, l.Clients())

	// one client stays active past the first half of the timeout
	clock = clock.Add(clientIdleTimeout / 2)
	l.getLimiter("10.0.0.1")

	clock = clock.Add(clientIdleTimeout / 2)
	l.getLimiter("10.0.0.4")
	assert.Equal(t, 2, l.Clients())
	_, kept := l.visitors["10.0.0.1"]
	assert.True(t, kept)
	_, dropped := l.visitors["10.0.0.2"]
	assert.False(t, dropped)
}

func TestIPRateLimiter_EvictedClientStartsWithFullBurst(t *testing.T) {
	l := NewIPRateLimiter(0, 1)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	send := func() int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sections", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	clock = clock.Add(clientIdleTimeout)
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, 1, l.Clients())
}
