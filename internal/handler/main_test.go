package handler_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-blog-server/internal/config"
	"go-blog-server/internal/testutils"
)

// 模板目录的绝对路径，在用例切换工作目录前解析好
var testTemplatesGlob string

// 测试内容：为 handler 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "go-blog-handler-config-*")
	if err != nil {
		panic(err)
	}

	abs, err := filepath.Abs("../../web/templates")
	if err != nil {
		panic(err)
	}
	testTemplatesGlob = filepath.Join(abs, "*.html")

	envs := []testutils.SavedEnv{
		testutils.SetEnv("GO_BLOG_SERVER_MODE", "debug"),
		testutils.SetEnv("GO_BLOG_SESSION_SECRET", "test_secret"),
		testutils.SetEnv("GO_BLOG_UPLOAD_PATH", "static/images"),
		testutils.SetEnv("GO_BLOG_REDIS_ENABLED", "false"),
		testutils.SetEnv("GO_BLOG_RATELIMIT_ENABLED", "false"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
