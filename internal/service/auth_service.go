package service

import (
	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 注册与登录凭据校验。
// 会话建立由 session 包负责，注册成功不会自动建立会话。
type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register 创建新用户。结构性校验与唯一性检查由调用方先行完成，
// 这里只负责哈希密码并落库。密码永远不会以明文存储。
func (s *AuthService) Register(username, email, password, defaultAvatar string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		ImageFile: defaultAvatar,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate 按邮箱查找用户并校验密码。
// 无论邮箱不存在还是密码错误都返回同样的失败结果，不泄露具体原因。
func (s *AuthService) Authenticate(email, password string) (*model.User, bool) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, false
	}
	return user, true
}
