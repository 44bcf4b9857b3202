package middleware

import (
	"go-blog-server/internal/config"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为静态资源添加 Cache-Control 头
func StaticCacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := config.Get().Upload.CacheControl
		if cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
