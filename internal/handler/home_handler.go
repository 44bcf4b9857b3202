package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home 首页，按发布时间倒序展示全部文章
func (h *Handler) Home(c *gin.Context) {
	posts, err := h.services.Post.ListRecent(0)
	if err != nil {
		log.Printf("查询文章列表失败: %v\n", err)
		c.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}

	h.render(c, http.StatusOK, "home.html", "", gin.H{
		"Posts": posts,
	})
}

// About 静态关于页
func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", "About", nil)
}
