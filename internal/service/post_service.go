package service

import (
	"log"
	"time"

	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"
)

// PostService 首页文章列表
type PostService struct {
	posts repository.PostStore
}

func NewPostService(posts repository.PostStore) *PostService {
	return &PostService{posts: posts}
}

// ListRecent 按发布时间倒序取文章
func (s *PostService) ListRecent(limit int) ([]model.Post, error) {
	return s.posts.ListRecent(limit)
}

// SeedSampleData 在文章表为空时写入示例文章，保证新部署首页有内容
func (s *PostService) SeedSampleData() {
	sample := []model.Post{
		{
			Title:    "Blog Post 1",
			Content:  "First post content",
			Author:   "Harry Ellerm",
			PostedAt: time.Date(2018, time.April, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:    "Blog Post 2",
			Content:  "Second post content",
			Author:   "Jane Doe",
			PostedAt: time.Date(2018, time.April, 22, 0, 0, 0, 0, time.UTC),
		},
	}
	if err := s.posts.Seed(sample); err != nil {
		log.Printf("⚠️ 示例文章写入失败: %v", err)
	}
}
