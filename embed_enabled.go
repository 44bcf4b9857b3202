//go:build embed

package main

import (
	"embed"
	"io/fs"
)

//go:embed all:web
var embedFS embed.FS

// GetWebAssets 返回模板与静态资源的文件系统
// 编译时带上 -tags embed 就会走这里，资源打进二进制
func GetWebAssets() fs.FS {
	// 获取 embedFS 下的 "web" 子目录作为根目录
	f, err := fs.Sub(embedFS, "web")
	if err != nil {
		panic(err)
	}
	return f
}
