package handler

import (
	"log"
	"net/http"
	"strings"

	"go-blog-server/internal/consts"
	"go-blog-server/internal/forms"
	"go-blog-server/internal/middleware"
	"go-blog-server/internal/session"

	"github.com/gin-gonic/gin"
)

// ShowRegister 渲染注册表单，已登录用户直接回首页
func (h *Handler) ShowRegister(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	h.render(c, http.StatusOK, "register.html", "Register", gin.H{
		"Form":   &forms.RegistrationForm{},
		"Errors": forms.FieldErrors{},
	})
}

// Register 处理注册提交。成功后跳转登录页，不自动建立会话。
func (h *Handler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	var form forms.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad request.")
		return
	}

	errs := form.Validate()
	if len(errs) == 0 {
		conflicts, err := form.CheckConflicts(h.services.Users)
		if err != nil {
			log.Printf("注册唯一性检查失败: %v\n", err)
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		errs = conflicts
	}

	if len(errs) > 0 {
		h.render(c, http.StatusOK, "register.html", "Register", gin.H{
			"Form":   &form,
			"Errors": errs,
		})
		return
	}

	defaultAvatar := h.services.Avatar.DefaultName()
	if _, err := h.services.Auth.Register(form.Username, form.Email, form.Password, defaultAvatar); err != nil {
		log.Printf("创建用户失败: %v\n", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	session.AddFlash(c, "Account created! You can now login.", consts.FlashSuccess)
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin 渲染登录表单，已登录用户直接回首页
func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	h.render(c, http.StatusOK, "login.html", "Login", gin.H{
		"Form":   &forms.LoginForm{},
		"Errors": forms.FieldErrors{},
		"Next":   c.Query("next"),
	})
}

// Login 处理登录提交。
// 凭据错误只给出统一提示，不区分邮箱不存在与密码错误。
func (h *Handler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad request.")
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		h.render(c, http.StatusOK, "login.html", "Login", gin.H{
			"Form":   &form,
			"Errors": errs,
			"Next":   c.Query("next"),
		})
		return
	}

	user, ok := h.services.Auth.Authenticate(form.Email, form.Password)
	if !ok {
		h.render(c, http.StatusOK, "login.html", "Login", gin.H{
			"Form":   &form,
			"Errors": forms.FieldErrors{},
			"Next":   c.Query("next"),
		}, session.Flash{
			Message:  "Log in unsuccessful, please check email & password",
			Category: consts.FlashDanger,
		})
		return
	}

	if err := session.Login(c, user, form.Remember); err != nil {
		log.Printf("签发会话令牌失败: %v\n", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	session.AddFlash(c, "Welcome back!", consts.FlashSuccess)
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
}

// Logout 终止会话并回首页
func (h *Handler) Logout(c *gin.Context) {
	session.Logout(c)
	c.Redirect(http.StatusFound, "/home")
}

// safeNext 只接受站内相对路径，杜绝开放重定向
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/home"
	}
	return next
}
