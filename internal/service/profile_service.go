package service

import (
	"mime/multipart"

	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"
)

// ProfileService 账户资料更新编排
type ProfileService struct {
	users   repository.UserStore
	avatars *AvatarService
}

func NewProfileService(users repository.UserStore, avatars *AvatarService) *ProfileService {
	return &ProfileService{users: users, avatars: avatars}
}

// UpdateAccount 将校验通过的资料提交应用到当前用户。
//
// 有新头像时按两阶段执行：先写入新文件，提交数据库引用，
// 提交成功后再尽力删除旧文件。头像保存失败只降级为保留旧头像，
// 不影响用户名/邮箱的更新；数据库提交失败则回收新文件并还原引用。
func (s *ProfileService) UpdateAccount(user *model.User, username, email string, upload *multipart.FileHeader) error {
	oldImage := user.ImageFile
	newImage := oldImage

	if upload != nil {
		newImage = s.avatars.Replace(upload, oldImage)
	}

	user.Username = username
	user.Email = email
	user.ImageFile = newImage

	if err := s.users.Save(user); err != nil {
		if newImage != oldImage {
			// 引用未提交成功，回收已写入的新文件
			s.avatars.Remove(newImage)
		}
		user.ImageFile = oldImage
		return err
	}

	if newImage != oldImage {
		// 引用已持久化，旧文件只做尽力清理
		s.avatars.Remove(oldImage)
	}
	return nil
}
