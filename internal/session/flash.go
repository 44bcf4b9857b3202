package session

import (
	"encoding/base64"
	"encoding/json"

	"go-blog-server/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "blog_flash"
	// 同一请求内累积的待写 Flash 列表在 gin.Context 上的键
	pendingFlashesKey = "pending_flashes"
)

// Flash 一次性用户通知，下一次渲染展示后即被丢弃
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// AddFlash 追加一条 Flash 消息，写入响应 Cookie
func AddFlash(c *gin.Context, message, category string) {
	var flashes []Flash
	if v, ok := c.Get(pendingFlashesKey); ok {
		if list, ok2 := v.([]Flash); ok2 {
			flashes = list
		}
	}
	flashes = append(flashes, Flash{Message: message, Category: category})
	c.Set(pendingFlashesKey, flashes)

	data, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(data)
	c.SetCookie(flashCookieName, encoded, 300, "/", "", config.Get().Session.CookieSecure, true)
}

// TakeFlashes 读取请求中携带的 Flash 消息并清除 Cookie
func TakeFlashes(c *gin.Context) []Flash {
	encoded, err := c.Cookie(flashCookieName)
	if err != nil || encoded == "" {
		return nil
	}

	// 读后即清
	c.SetCookie(flashCookieName, "", -1, "/", "", config.Get().Session.CookieSecure, true)

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
