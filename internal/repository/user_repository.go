package repository

import (
	"go-blog-server/internal/consts"
	"go-blog-server/internal/model"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Save(user *model.User) error
	FieldExists(field consts.UserField, value string, excludeUserID *uint) (bool, error)
	CountAll() (int64, error)
}
