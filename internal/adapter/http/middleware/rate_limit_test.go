package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoginRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", NewLoginRateLimiter(2).RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do("10.0.0.1") != http.StatusOK || do("10.0.0.1") != http.StatusOK {
		t.Fatalf("expected burst of 2 to pass")
	}
	if got := do("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", got)
	}
	if got := do("10.0.0.2"); got != http.StatusOK {
		t.Fatalf("other IPs must not be limited, got %d", got)
	}
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clock := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewPerMinuteRateLimiter(5)
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep.Store(clock.UnixNano())

	r := gin.New()
	r.POST("/chats", limiter.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	do := func(ip string) {
		req := httptest.NewRequest(http.MethodPost, "/chats", nil)
		req.RemoteAddr = ip + ":1234"
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	t.Run("explicit sweep keeps active buckets", func(t *testing.T) {
		do("10.0.0.1")
		clock = clock.Add(9 * time.Minute)
		do("10.0.0.2")

		if removed := limiter.Sweep(5 * time.Minute); removed != 1 {
			t.Fatalf("expected 1 idle bucket removed, got %d", removed)
		}
		if limiter.Len() != 1 {
			t.Fatalf("expected the active bucket to stay, got %d", limiter.Len())
		}
	})

	t.Run("requests sweep idle buckets once the interval passes", func(t *testing.T) {
		for n := 0; n < 50; n++ {
			do(fmt.Sprintf("10.1.0.%d", n))
		}
		if limiter.Len() != 51 {
			t.Fatalf("expected 51 tracked IPs, got %d", limiter.Len())
		}

		clock = clock.Add(limiterIdleTTL + time.Second)
		do("10.2.0.1")
		if limiter.Len() != 1 {
			t.Fatalf("expected only the fresh bucket after sweep, got %d", limiter.Len())
		}
	})
}
