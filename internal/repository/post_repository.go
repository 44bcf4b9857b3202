package repository

import "go-blog-server/internal/model"

type PostStore interface {
	ListRecent(limit int) ([]model.Post, error)
	Count() (int64, error)
	Seed(posts []model.Post) error
}
