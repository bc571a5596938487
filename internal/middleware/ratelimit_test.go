package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move the limiter's notion of now
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(limit int, period time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(RateLimitConfig{Limit: limit, Period: period})
	rl.now = clock.Now
	return rl, clock
}

func TestNewRateLimiter_DefaultConfig(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{})

	if rl.limit != 5 {
		t.Errorf("expected default limit 5, got %d", rl.limit)
	}
	if rl.period != time.Hour {
		t.Errorf("expected default period 1h, got %v", rl.period)
	}
}

func TestAllow_ExhaustsWindow(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(2, time.Minute)

	for i, wantRemaining := range []int{1, 0} {
		allowed, remaining, _ := rl.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if remaining != wantRemaining {
			t.Errorf("request %d: expected remaining %d, got %d", i+1, wantRemaining, remaining)
		}
	}

	if allowed, _, _ := rl.Allow("10.0.0.1"); allowed {
		t.Error("third request should be denied")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(1, time.Minute)

	if allowed, _, _ := rl.Allow("a"); !allowed {
		t.Error("first request for a should be allowed")
	}
	if allowed, _, _ := rl.Allow("b"); !allowed {
		t.Error("first request for b should be allowed")
	}
}

func TestAllow_WindowResets(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(1, time.Minute)

	rl.Allow("a")
	if allowed, _, _ := rl.Allow("a"); allowed {
		t.Fatal("second request should be denied")
	}

	clock.Advance(time.Minute)

	if allowed, _, _ := rl.Allow("a"); !allowed {
		t.Error("request after window should be allowed")
	}
	if len(rl.windows) != 1 {
		t.Errorf("expected expired window to be replaced, have %d", len(rl.windows))
	}
}

func TestRateLimit_Middleware_Returns429WithRetryAfter(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(1, time.Minute)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/seed", nil)
		req.RemoteAddr = "192.0.2.1:4321"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	if rr := send(); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr := send()
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Errorf("expected Retry-After 60, got %q", rr.Header().Get("Retry-After"))
	}
	if rr.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("expected X-RateLimit-Limit 1, got %q", rr.Header().Get("X-RateLimit-Limit"))
	}
}

func TestClientIP_StripsPort(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	if got := clientIP(req); got != "192.0.2.1" {
		t.Errorf("expected 192.0.2.1, got %q", got)
	}

	req.RemoteAddr = "unix"
	if got := clientIP(req); got != "unix" {
		t.Errorf("expected raw addr, got %q", got)
	}
}
