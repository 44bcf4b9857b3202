package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Go Blog Server"

	// ApplicationVersion 后端版本号
	ApplicationVersion = "1.0.0"
)

// gin.Context 上挂载当前用户信息使用的键
const (
	ContextUserKey   = "current_user"
	ContextUserIDKey = "current_user_id"
)

// UserField 用户表可做唯一性检查的字段
type UserField string

const (
	UserFieldUsername UserField = "username"
	UserFieldEmail    UserField = "email"
)

// Flash 消息分类，渲染时映射到样式
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)
