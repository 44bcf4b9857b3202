package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-blog-server/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// withConfigEnv 以覆盖的环境变量重新加载配置，
// 用例结束并还原环境后再恢复配置快照。
func withConfigEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	dir := t.TempDir()
	// 先注册恢复动作：t.Setenv 的还原先执行，这里的重载后执行
	t.Cleanup(func() { config.InitConfig(dir) })
	for k, v := range kv {
		t.Setenv(k, v)
	}
	config.InitConfig(dir)
}

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", AuthRateLimitMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

// 测试内容：验证同一 IP 超过突发额度后返回 429。
func TestAuthRateLimit_BurstExceeded(t *testing.T) {
	withConfigEnv(t, map[string]string{
		"GO_BLOG_RATELIMIT_ENABLED":    "true",
		"GO_BLOG_RATELIMIT_AUTH_BURST": "3",
	})

	r := newLimitedRouter()

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	for i := 0; i < 3; i++ {
		if codes[i] != http.StatusOK {
			t.Fatalf("期望第 %d 个请求通过，实际为 %d", i+1, codes[i])
		}
	}
	if codes[4] != http.StatusTooManyRequests {
		t.Fatalf("期望超额请求返回 429，实际为 %v", codes)
	}
}

// 测试内容：验证限流关闭时请求不受限制。
func TestAuthRateLimit_Disabled(t *testing.T) {
	withConfigEnv(t, map[string]string{
		"GO_BLOG_RATELIMIT_ENABLED": "false",
	})

	r := newLimitedRouter()

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("期望全部通过，第 %d 个请求为 %d", i+1, w.Code)
		}
	}
}

// 测试内容：验证不同 IP 各自独立限流。
func TestIPRateLimiter_PerIP(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1)

	if !l.getLimiter("1.1.1.1").Allow() {
		t.Fatalf("期望 1.1.1.1 首个请求通过")
	}
	if l.getLimiter("1.1.1.1").Allow() {
		t.Fatalf("期望 1.1.1.1 第二个请求被限")
	}
	if !l.getLimiter("2.2.2.2").Allow() {
		t.Fatalf("期望 2.2.2.2 不受 1.1.1.1 影响")
	}
}
