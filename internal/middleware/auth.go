package middleware

import (
	"net/http"
	"net/url"

	"go-blog-server/internal/consts"
	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"
	"go-blog-server/internal/session"
	"go-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// LoadUser 解析会话 Cookie 并把当前用户挂到上下文。
// 令牌缺失、过期或用户已不存在时静默放行为匿名请求。
func LoadUser(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := session.Token(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(claims.ID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(consts.ContextUserKey, user)
		c.Set(consts.ContextUserIDKey, user.ID)
		c.Next()
	}
}

// RequireLogin 要求已登录会话，否则带 next 参数重定向到登录页
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); ok {
			c.Next()
			return
		}

		session.AddFlash(c, "Please log in to access that page.", consts.FlashInfo)
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
	}
}

// CurrentUser 取出 LoadUser 挂载的当前用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(consts.ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
