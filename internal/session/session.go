// Package session 实现基于 Cookie 的登录会话与一次性 Flash 消息。
// 会话凭据是签名的 JWT，服务端不保存会话状态。
package session

import (
	"time"

	"go-blog-server/internal/config"
	"go-blog-server/internal/model"
	"go-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// Login 为用户建立登录会话。
// remember 为 true 时签发长效令牌并下发持久 Cookie，
// 否则为浏览器会话 Cookie（随浏览器关闭失效）。
func Login(c *gin.Context, user *model.User, remember bool) error {
	cfg := config.Get()

	duration := time.Hour * time.Duration(cfg.Session.ExpirationHours)
	maxAge := 0 // 浏览器会话 Cookie
	if remember {
		duration = 24 * time.Hour * time.Duration(cfg.Session.RememberDays)
		maxAge = int(duration.Seconds())
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Username, remember, duration)
	if err != nil {
		return err
	}

	c.SetCookie(cfg.Session.CookieName, token, maxAge, "/", "", cfg.Session.CookieSecure, true)
	return nil
}

// Logout 终止当前会话
func Logout(c *gin.Context) {
	cfg := config.Get()
	c.SetCookie(cfg.Session.CookieName, "", -1, "/", "", cfg.Session.CookieSecure, true)
}

// Token 取出请求携带的会话令牌
func Token(c *gin.Context) (string, bool) {
	cfg := config.Get()
	token, err := c.Cookie(cfg.Session.CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
