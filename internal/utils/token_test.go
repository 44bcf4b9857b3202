package utils

import (
	"regexp"
	"testing"
)

// 测试内容：验证随机十六进制串的长度与字符集。
func TestRandomHex_LengthAndCharset(t *testing.T) {
	s, err := RandomHex(8)
	if err != nil {
		t.Fatalf("RandomHex 错误: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(s) {
		t.Fatalf("非预期随机串: %q", s)
	}
}

// 测试内容：验证连续生成的随机串不重复。
func TestRandomHex_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s, err := RandomHex(8)
		if err != nil {
			t.Fatalf("RandomHex 错误: %v", err)
		}
		if seen[s] {
			t.Fatalf("期望随机串不重复，实际重复: %q", s)
		}
		seen[s] = true
	}
}
