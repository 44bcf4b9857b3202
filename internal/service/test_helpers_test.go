package service

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"go-blog-server/internal/repository"
	"go-blog-server/internal/testutils"

	"gorm.io/gorm"
)

var testServices *Services

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
	)
	testServices = NewServices(repos)
	return gdb
}

// chdirTemp 切换到临时工作目录，使相对的上传目录落在测试沙箱内。
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	return tmp
}

func mustFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("acct_image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入分段失败: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/account", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["acct_image"]
	if len(fhs) != 1 {
		t.Fatalf("期望 1 file header，实际为 %d", len(fhs))
	}
	return fhs[0]
}
