package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHex 生成 n 字节的加密随机数并编码为十六进制字符串。
// 头像文件名使用 RandomHex(8)，即 16 个十六进制字符。
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
