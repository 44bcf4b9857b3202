package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go-blog-server/internal/config"
	"go-blog-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// AuthRateLimitMiddleware 登录/注册接口的按 IP 限流。
// Redis 可用时使用共享的固定窗口计数，否则退回进程内令牌桶。
func AuthRateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if rdb := service.GetRedisClient(); rdb != nil {
			if redisWindowAllow(c.Request.Context(), rdb, ip, cfg.AuthBurst) {
				c.Next()
			} else {
				tooManyRequests(c)
			}
			return
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.AuthRPS), cfg.AuthBurst)
		})

		if !limiter.getLimiter(ip).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// redisWindowAllow 按 IP 的 1 秒固定窗口计数，窗口内最多 burst 次。
// Redis 出错时放行，限流降级而不是阻断业务。
func redisWindowAllow(ctx context.Context, rdb *redis.Client, ip string, burst int) bool {
	if burst <= 0 {
		burst = 1
	}

	key := service.RedisKey("ratelimit", "auth", ip)
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		_ = rdb.Expire(ctx, key, time.Second).Err()
	}
	return count <= int64(burst)
}

func tooManyRequests(c *gin.Context) {
	c.String(http.StatusTooManyRequests, "Too many requests, please try again later.")
	c.Abort()
}
