package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter applies a token bucket per client IP. Idle buckets are swept
// periodically so the map does not grow without bound.
type IPRateLimiter struct {
	mu     sync.RWMutex
	limits map[string]*rate.Limiter
	r      rate.Limit
	b      int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	l := &IPRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
	}

	go l.cleanup()

	return l
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limits[ip]
	l.mu.RUnlock()

	if !exists {
		l.mu.Lock()
		limiter, exists = l.limits[ip]
		if !exists {
			limiter = rate.NewLimiter(l.r, l.b)
			l.limits[ip] = limiter
		}
		l.mu.Unlock()
	}

	return limiter
}

// cleanup removes limiters whose bucket is full again, meaning the IP has been
// idle long enough to refill completely.
func (l *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(3 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		for ip, limiter := range l.limits {
			if limiter.TokensAt(time.Now()) >= float64(limiter.Burst()) {
				delete(l.limits, ip)
			}
		}
		l.mu.Unlock()
	}
}

// Limit rejects requests over the per-IP budget with 429.
func (l *IPRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		if !l.getLimiter(ip).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
