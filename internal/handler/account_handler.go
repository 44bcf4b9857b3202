package handler

import (
	"log"
	"mime/multipart"
	"net/http"

	"go-blog-server/internal/consts"
	"go-blog-server/internal/forms"
	"go-blog-server/internal/middleware"
	"go-blog-server/internal/session"

	"github.com/gin-gonic/gin"
)

// ShowAccount 渲染账户页，表单预填当前用户名与邮箱
func (h *Handler) ShowAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.render(c, http.StatusOK, "account.html", "Account", gin.H{
		"Form":     &forms.AccountForm{Username: user.Username, Email: user.Email},
		"Errors":   forms.FieldErrors{},
		"ImageURL": h.services.Avatar.URLFor(user.ImageFile),
	})
}

// UpdateAccount 处理账户资料提交。
// 校验或唯一性失败时不做任何变更，原地重渲染并标注出错字段。
func (h *Handler) UpdateAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.AccountForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Bad request.")
		return
	}

	// 头像文件可选，未提交时为 nil
	var upload *multipart.FileHeader
	if file, err := c.FormFile("acct_image"); err == nil && file != nil && file.Size > 0 {
		upload = file
	}

	errs := form.Validate()
	if upload != nil {
		if _, err := h.services.Avatar.ValidateUpload(upload); err != nil {
			errs["acct_image"] = err.Error()
		}
	}
	if len(errs) == 0 {
		conflicts, err := form.CheckConflicts(h.services.Users, user)
		if err != nil {
			log.Printf("账户唯一性检查失败: %v\n", err)
			c.String(http.StatusInternalServerError, "Something went wrong.")
			return
		}
		errs = conflicts
	}

	if len(errs) > 0 {
		h.render(c, http.StatusOK, "account.html", "Account", gin.H{
			"Form":     &form,
			"Errors":   errs,
			"ImageURL": h.services.Avatar.URLFor(user.ImageFile),
		})
		return
	}

	if err := h.services.Profile.UpdateAccount(user, form.Username, form.Email, upload); err != nil {
		log.Printf("更新账户失败: %v\n", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	session.AddFlash(c, "Your account has been updated!", consts.FlashSuccess)
	c.Redirect(http.StatusFound, "/account")
}
