package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/softspace/pkg/response"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter 按客户端 IP 的令牌桶
type KeyedLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func NewKeyedLimiter(rps float64, burst int) *KeyedLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{visitors: make(map[string]*visitor), limit: rate.Limit(rps), burst: burst}
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	v, ok := k.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.visitors[key] = v
	}
	v.lastSeen = time.Now()
	k.mu.Unlock()
	return v.limiter.Allow()
}

// Prune 删除空闲超过 idle 的桶
func (k *KeyedLimiter) Prune(idle time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	n := 0
	for key, v := range k.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(k.visitors, key)
			n++
		}
	}
	return n
}

// RateLimit rps <= 0 时不限流
func RateLimit(k *KeyedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if k == nil || k.limit <= 0 {
			c.Next()
			return
		}
		if !k.Allow(c.ClientIP()) {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
