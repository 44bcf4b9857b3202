package service

import "go-blog-server/internal/repository"

// Services 聚合全部业务服务，main 中手工装配。
// Users 直接暴露存储层查询能力，表单唯一性检查显式依赖它。
type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Avatar  *AvatarService
	Post    *PostService
	Users   repository.UserStore
}

func NewServices(repos *repository.Repositories) *Services {
	avatars := NewAvatarService()
	return &Services{
		Auth:    NewAuthService(repos.User),
		Profile: NewProfileService(repos.User, avatars),
		Avatar:  avatars,
		Post:    NewPostService(repos.Post),
		Users:   repos.User,
	}
}
