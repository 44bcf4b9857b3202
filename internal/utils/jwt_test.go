package utils

import (
	"strings"
	"testing"
	"time"
)

// 测试内容：验证会话令牌签发后可以解析并还原声明。
func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42, "alice", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken 错误: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken 错误: %v", err)
	}
	if claims.ID != 42 || claims.Username != "alice" || !claims.Remember {
		t.Fatalf("非预期声明: %+v", claims)
	}
	if claims.Type != "session" {
		t.Fatalf("期望 session 类型，实际为 %q", claims.Type)
	}
	if claims.RegisteredClaims.ID == "" {
		t.Fatalf("期望 jti 非空")
	}
}

// 测试内容：验证每个令牌携带唯一的 jti。
func TestSessionToken_UniqueJTI(t *testing.T) {
	t1, _ := GenerateSessionToken(1, "a", false, time.Hour)
	t2, _ := GenerateSessionToken(1, "a", false, time.Hour)

	c1, err1 := ParseSessionToken(t1)
	c2, err2 := ParseSessionToken(t2)
	if err1 != nil || err2 != nil {
		t.Fatalf("解析令牌失败: %v %v", err1, err2)
	}
	if c1.RegisteredClaims.ID == c2.RegisteredClaims.ID {
		t.Fatalf("期望 jti 不同，实际相同: %q", c1.RegisteredClaims.ID)
	}
}

// 测试内容：验证过期令牌解析失败。
func TestSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken(1, "alice", false, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken 错误: %v", err)
	}
	if _, err := ParseSessionToken(token); err == nil {
		t.Fatalf("期望过期令牌解析失败")
	}
}

// 测试内容：验证被篡改的令牌解析失败。
func TestSessionToken_Tampered(t *testing.T) {
	token, err := GenerateSessionToken(1, "alice", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken 错误: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("非预期令牌格式: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := ParseSessionToken(tampered); err == nil {
		t.Fatalf("期望篡改令牌解析失败")
	}
}
