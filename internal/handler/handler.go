package handler

import (
	"go-blog-server/internal/middleware"
	"go-blog-server/internal/service"
	"go-blog-server/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler 持有全部业务服务，负责视图渲染
type Handler struct {
	services *service.Services
}

func New(services *service.Services) *Handler {
	return &Handler{services: services}
}

// render 统一渲染入口：注入标题、Flash 消息与当前用户。
// extra 用于同一请求内直接展示的消息（如登录失败），不经过 Cookie。
func (h *Handler) render(c *gin.Context, status int, name, title string, data gin.H, extra ...session.Flash) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title

	flashes := session.TakeFlashes(c)
	flashes = append(flashes, extra...)
	data["Flashes"] = flashes

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
	}

	c.HTML(status, name, data)
}
