package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows up to limit per window", func(t *testing.T) {
		rl := NewRateLimiter(3, time.Minute)

		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.True(t, rl.Allow("b"))
		assert.Equal(t, 0, rl.Remaining("a"))
		assert.Equal(t, 2, rl.Remaining("b"))
		assert.Equal(t, 3, rl.Remaining("c"))
	})

	t.Run("resets after window", func(t *testing.T) {
		now := time.Now()
		rl := NewRateLimiter(1, time.Minute)
		rl.now = func() time.Time { return now }

		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))

		now = now.Add(time.Minute)
		assert.True(t, rl.Allow("a"))
	})

	t.Run("cleanup drops idle clients", func(t *testing.T) {
		now := time.Now()
		rl := NewRateLimiter(1, time.Minute)
		rl.now = func() time.Time { return now }
		rl.Allow("a")

		now = now.Add(3 * time.Minute)
		rl.cleanup()

		assert.Empty(t, rl.clients)
	})

	t.Run("run stops with context", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			rl.Run(ctx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newTestRouter(RateLimit(NewRateLimiter(2, time.Minute)))

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, want, w.Code, "request %d", i+1)
		if want == http.StatusOK {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		} else {
			assert.Contains(t, w.Body.String(), "Too many requests")
		}
	}
}
