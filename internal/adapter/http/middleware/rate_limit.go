package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"gadget_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL must exceed the time a bucket needs to refill completely.
	limiterIdleTTL = 10 * time.Minute
	sweepInterval  = time.Minute
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many attempts, please wait a minute and try again", http.StatusTooManyRequests)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// IPRateLimiter keeps one token bucket per client IP. Buckets unused for
// limiterIdleTTL are swept while serving requests.
type IPRateLimiter struct {
	limiters  sync.Map
	rate      rate.Limit
	burst     int
	now       func() time.Time
	lastSweep atomic.Int64
}

func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	i := &IPRateLimiter{rate: r, burst: burst, now: time.Now}
	i.lastSweep.Store(i.now().UnixNano())
	return i
}

// NewPerMinuteRateLimiter allows perMinute requests per IP per minute.
func NewPerMinuteRateLimiter(perMinute int) *IPRateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return NewIPRateLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}

// NewLoginRateLimiter allows perMinute attempts per IP per minute.
func NewLoginRateLimiter(perMinute int) *IPRateLimiter {
	return NewPerMinuteRateLimiter(perMinute)
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := i.now().UnixNano()
	v, ok := i.limiters.Load(ip)
	if !ok {
		fresh := &limiterEntry{limiter: rate.NewLimiter(i.rate, i.burst)}
		v, _ = i.limiters.LoadOrStore(ip, fresh)
	}
	entry := v.(*limiterEntry)
	entry.lastSeen.Store(now)
	return entry.limiter
}

// Sweep drops buckets not used within idle and returns how many were removed.
func (i *IPRateLimiter) Sweep(idle time.Duration) int {
	cutoff := i.now().Add(-idle).UnixNano()
	removed := 0
	i.limiters.Range(func(key, v any) bool {
		if v.(*limiterEntry).lastSeen.Load() < cutoff {
			i.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len is the number of tracked IPs.
func (i *IPRateLimiter) Len() int {
	n := 0
	i.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (i *IPRateLimiter) maybeSweep() {
	now := i.now().UnixNano()
	last := i.lastSweep.Load()
	if now-last < int64(sweepInterval) || !i.lastSweep.CompareAndSwap(last, now) {
		return
	}
	if removed := i.Sweep(limiterIdleTTL); removed > 0 {
		log.Printf("[middleware] rate limiter swept idle=%d", removed)
	}
}

func (i *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		i.maybeSweep()
		ip := c.ClientIP()
		if !i.getLimiter(ip).Allow() {
			log.Printf("[middleware] rate limit exceeded ip=%s path=%s", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
