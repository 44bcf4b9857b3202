package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type SessionConfig struct {
	Secret          string `mapstructure:"secret"`
	CookieName      string `mapstructure:"cookie_name"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	RememberDays    int    `mapstructure:"remember_days"`
	CookieSecure    bool   `mapstructure:"cookie_secure"`
}

type UploadConfig struct {
	Path            string `mapstructure:"path"`
	URLPrefix       string `mapstructure:"url_prefix"`
	DefaultAvatar   string `mapstructure:"default_avatar"`
	MaxSizeMB       int    `mapstructure:"max_size_mb"`
	AllowExtensions string `mapstructure:"allow_extensions"`
	CacheControl    string `mapstructure:"cache_control"`
}

type RateLimitConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceSessionSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/go_blog.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "go_blog")
	v.SetDefault("database.ssl", false)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "blog_session")
	v.SetDefault("session.expiration_hours", 24)
	v.SetDefault("session.remember_days", 30)
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("upload.path", "static/images")
	v.SetDefault("upload.url_prefix", "/static/images/")
	v.SetDefault("upload.default_avatar", "default.jpg")
	v.SetDefault("upload.max_size_mb", 5)
	v.SetDefault("upload.allow_extensions", ".jpg,.jpeg,.png")
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.auth_rps", 2)
	v.SetDefault("ratelimit.auth_burst", 5)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "go_blog")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 GO_BLOG_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 GO_BLOG_SERVER_PORT
	v.SetEnvPrefix("GO_BLOG")

	// 允许自动查找环境变量
	v.AutomaticEnv()

	// 解决层级分隔符问题：将 key 中的 "." 替换为 "_"
	// 这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 初始加载配置
	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	// 安全检查
	if tempConfig.Server.Mode == "release" {
		if tempConfig.Session.Secret == "" || tempConfig.Session.Secret == "go_blog_secret" {
			log.Println("❌ [安全严重错误] 生产模式(release)下必须设置安全的 Session Secret！")
		}
	} else {
		if tempConfig.Session.Secret == "" {
			log.Println("⚠️ [开发模式警告] 未设置 Session Secret，将使用默认不安全密钥进行开发")
			tempConfig.Session.Secret = "go_blog_secret"
		}
	}

	// 原子替换全局配置
	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}

func enforceSessionSecretSafety() {
	// 首次启动安全检查：如果是 release 模式，拦截不安全的 Session Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.Session.Secret == "" || curr.Session.Secret == "go_blog_secret" {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 Session Secret！\n请设置环境变量 GO_BLOG_SESSION_SECRET 或在配置文件中指定 session.secret")
		}
	}
}
