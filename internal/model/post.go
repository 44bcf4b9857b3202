package model

import (
	"time"

	"gorm.io/gorm"
)

// Post 首页展示的博客文章。示例数据在建表后由 PostStore.Seed 写入，
// 首页始终走持久层查询，不存在进程级可变文章列表。
type Post struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Title     string         `json:"title" gorm:"not null;size:255"`
	Content   string         `json:"content" gorm:"not null"`
	Author    string         `json:"author" gorm:"not null;size:64"`
	PostedAt  time.Time      `json:"posted_at"`
}
