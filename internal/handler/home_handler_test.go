package handler_test

import (
	"net/http"
	"strings"
	"testing"
)

// 测试内容：验证首页按发布时间倒序展示文章列表。
func TestHome_ListsPosts(t *testing.T) {
	r := setupTestRouter(t)
	testServices.Post.SeedSampleData()

	for _, path := range []string{"/", "/home"} {
		w := getPage(r, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: 期望 200，实际为 %d", path, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Blog Post 1") || !strings.Contains(body, "Blog Post 2") {
			t.Fatalf("%s: 期望展示示例文章", path)
		}
		// 较新的文章排在前面
		if strings.Index(body, "Blog Post 2") > strings.Index(body, "Blog Post 1") {
			t.Fatalf("%s: 期望按发布时间倒序", path)
		}
		if !strings.Contains(body, "April 22, 2018") {
			t.Fatalf("%s: 期望格式化的发布日期", path)
		}
	}
}

// 测试内容：验证没有文章时首页给出空态提示。
func TestHome_Empty(t *testing.T) {
	r := setupTestRouter(t)

	w := getPage(r, "/home")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "No posts yet.") {
		t.Fatalf("期望空态提示，实际为 %d", w.Code)
	}
}

// 测试内容：验证关于页可访问。
func TestAbout(t *testing.T) {
	r := setupTestRouter(t)

	w := getPage(r, "/about")
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "About") {
		t.Fatalf("期望关于页内容")
	}
}

// 测试内容：验证导航栏按登录状态切换链接。
func TestNav_ReflectsSession(t *testing.T) {
	r := setupTestRouter(t)

	anon := getPage(r, "/home")
	if !strings.Contains(anon.Body.String(), `href="/login"`) || strings.Contains(anon.Body.String(), `href="/logout"`) {
		t.Fatalf("期望匿名导航展示登录入口")
	}

	u := mustCreateUser(t, "alice", "alice@example.com", "pw")
	authed := getPage(r, "/home", sessionCookieFor(t, u))
	if !strings.Contains(authed.Body.String(), `href="/logout"`) || !strings.Contains(authed.Body.String(), `href="/account"`) {
		t.Fatalf("期望已登录导航展示账户与登出入口")
	}
}
