package handler_test

import (
	"html/template"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"go-blog-server/internal/config"
	"go-blog-server/internal/model"
	"go-blog-server/internal/repository"
	"go-blog-server/internal/router"
	"go-blog-server/internal/service"
	"go-blog-server/internal/testutils"
	"go-blog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var testServices *service.Services

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
	)
	testServices = service.NewServices(repos)

	r := gin.New()
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	}).ParseGlob(testTemplatesGlob))
	r.SetHTMLTemplate(tmpl)

	router.InitRouter(r, repos, testServices)
	return r
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

func mustCreateUser(t *testing.T, username, email, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	u := &model.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		ImageFile: testServices.Avatar.DefaultName(),
	}
	if err := testServices.Users.Create(u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func sessionCookieFor(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(user.ID, user.Username, false, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return &http.Cookie{Name: config.Get().Session.CookieName, Value: token}
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPage(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// postMultipart 提交带头像文件的账户表单。
func postMultipart(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileField, filename string, content []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body strings.Builder
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("写入字段失败: %v", err)
		}
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("写入文件内容失败: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("关闭 writer 失败: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body.String()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
