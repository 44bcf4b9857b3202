package router

import (
	"go-blog-server/internal/handler"
	"go-blog-server/internal/middleware"
	"go-blog-server/internal/repository"
	"go-blog-server/internal/service"

	"github.com/gin-gonic/gin"
)

// InitRouter 注册全部页面路由
func InitRouter(r *gin.Engine, repos *repository.Repositories, services *service.Services) {
	// 全局安全标头 + 会话解析
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.LoadUser(repos.User))

	h := handler.New(services)

	// 认证限流：登录/注册接口复用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimitMiddleware()
	formLimit := middleware.BodyLimitMiddleware()

	r.GET("/", h.Home)
	r.GET("/home", h.Home)
	r.GET("/about", h.About)

	r.GET("/register", h.ShowRegister)
	r.POST("/register", authLimiter, formLimit, h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", authLimiter, formLimit, h.Login)
	r.GET("/logout", h.Logout)

	account := r.Group("/account", middleware.RequireLogin())
	account.GET("", h.ShowAccount)
	account.POST("", middleware.UploadBodyLimitMiddleware(), h.UpdateAccount)
}
