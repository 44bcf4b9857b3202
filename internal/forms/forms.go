// Package forms 承载各视图的表单结构与校验。
//
// 结构性校验（长度、格式）与唯一性校验是分开的两步：Validate 只做纯解析层面
// 的检查，不接触任何存储；CheckConflicts 显式接收一个 UserStore 查询能力，
// 由调用方决定何时执行。
package forms

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"go-blog-server/internal/consts"
	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"
)

// FieldErrors 以字段名为键的校验错误，渲染时内联到对应输入框下方
type FieldErrors map[string]string

const (
	usernameMinLen = 2
	usernameMaxLen = 20
)

func validateUsername(username string) string {
	n := utf8.RuneCountInString(username)
	if n < usernameMinLen || n > usernameMaxLen {
		return "Username must be between 2 and 20 characters long."
	}
	return ""
}

func validateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required."
	}
	// 只接受纯地址，不接受 "Name <a@b>" 形式
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Invalid email address."
	}
	return ""
}

// RegistrationForm 注册表单
type RegistrationForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// Validate 结构性校验，不做唯一性检查
func (f *RegistrationForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if msg := validateUsername(f.Username); msg != "" {
		errs["username"] = msg
	}
	if msg := validateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}
	if f.Password == "" {
		errs["password"] = "Password is required."
	}
	if f.ConfirmPassword != f.Password {
		errs["confirm_password"] = "Passwords must match."
	}
	return errs
}

// CheckConflicts 检查用户名/邮箱是否已被占用
func (f *RegistrationForm) CheckConflicts(store repository.UserStore) (FieldErrors, error) {
	errs := FieldErrors{}

	taken, err := store.FieldExists(consts.UserFieldUsername, f.Username, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		errs["username"] = "That username is already taken. Please try another!"
	}

	taken, err = store.FieldExists(consts.UserFieldEmail, f.Email, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		errs["email"] = "An account already exists for " + f.Email
	}

	return errs, nil
}

// LoginForm 登录表单
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember bool   `form:"remember"`
}

func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if msg := validateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}
	if f.Password == "" {
		errs["password"] = "Password is required."
	}
	return errs
}

// AccountForm 账户资料更新表单。头像文件不在此结构内，
// 由 handler 从 multipart 表单单独取出。
type AccountForm struct {
	Username string `form:"username"`
	Email    string `form:"email"`
}

func (f *AccountForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if msg := validateUsername(f.Username); msg != "" {
		errs["username"] = msg
	}
	if msg := validateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}
	return errs
}

// CheckConflicts 检查提交值是否与其他账户冲突。
// 提交值与当前用户现值相同时跳过检查。
func (f *AccountForm) CheckConflicts(store repository.UserStore, current *model.User) (FieldErrors, error) {
	errs := FieldErrors{}

	if f.Username != current.Username {
		taken, err := store.FieldExists(consts.UserFieldUsername, f.Username, &current.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["username"] = "That username is already taken. Please try another!"
		}
	}

	if f.Email != current.Email {
		taken, err := store.FieldExists(consts.UserFieldEmail, f.Email, &current.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["email"] = "An account already exists for " + f.Email
		}
	}

	return errs, nil
}
