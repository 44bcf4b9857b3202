package middleware

import (
	"fmt"
	"net/http"

	"go-blog-server/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通表单请求体大小（2MB）
func BodyLimitMiddleware() gin.HandlerFunc {
	const maxBytes = 2 * 1024 * 1024

	return func(c *gin.Context) {
		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制带头像上传的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 5
		}
		// 额外预留 1MB 给表单其余字段
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.String(http.StatusRequestEntityTooLarge, fmt.Sprintf("File is too large (max %dMB).", maxSizeMB))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
