package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	Username  string         `json:"username" gorm:"unique;not null;size:20"`
	Email     string         `json:"email" gorm:"unique;not null;index;size:255"`
	Password  string         `json:"-" gorm:"not null"`
	ImageFile string         `json:"image_file" gorm:"not null"` // 当前头像文件名，默认为共享占位图
}
