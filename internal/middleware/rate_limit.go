package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// RateLimit applies a per-IP token bucket, used on the login route to
// slow down password guessing. perMinute <= 0 disables the limiter.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.Mutex
		limiters = map[string]*ipLimiter{}
	)
	limit := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute/2 + 1

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		for key, l := range limiters {
			if now.After(l.expires) {
				delete(limiters, key)
			}
		}

		if l, ok := limiters[ip]; ok {
			l.expires = now.Add(5 * time.Minute)
			return l.limiter
		}
		l := &ipLimiter{
			limiter: rate.NewLimiter(limit, burst),
			expires: now.Add(5 * time.Minute),
		}
		limiters[ip] = l
		return l.limiter
	}

	return func(c *gin.Context) {
		if !get(c.ClientIP()).Allow() {
			util.Error(c, http.StatusTooManyRequests, util.CodeRateLimited, "too many attempts, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
