//go:build !embed

package main

import (
	"io/fs"
	"os"
)

// GetWebAssets 开发模式直接从磁盘读取 web 目录
// 编译时不带 tags 就会走这里，改模板无需重新编译
func GetWebAssets() fs.FS {
	return os.DirFS("web")
}
