package repository

import (
	"go-blog-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func (r *PostRepository) ListRecent(limit int) ([]model.Post, error) {
	var posts []model.Post
	query := r.db.Order("posted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Seed 仅在文章表为空时写入示例数据
func (r *PostRepository) Seed(posts []model.Post) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&posts).Error
}
