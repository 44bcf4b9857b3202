package service

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go-blog-server/internal/config"
	"go-blog-server/internal/utils"

	"github.com/disintegration/imaging"
)

// 头像统一缩放到的边界框（像素），保持宽高比，不放大
const thumbnailSize = 125

// AvatarService 负责头像文件的存储与清理。
//
// 更换头像是显式的两阶段操作：先写入新文件，由调用方提交数据库引用，
// 提交成功后再尽力删除旧文件。删除永远不是成功的前置条件。
type AvatarService struct{}

func NewAvatarService() *AvatarService {
	return &AvatarService{}
}

func (s *AvatarService) dir() string {
	dir := config.Get().Upload.Path
	if dir == "" {
		dir = "static/images"
	}
	return dir
}

// DefaultName 共享占位头像的文件名
func (s *AvatarService) DefaultName() string {
	name := config.Get().Upload.DefaultAvatar
	if name == "" {
		name = "default.jpg"
	}
	return name
}

// ValidateUpload 验证上传的头像文件（大小、后缀、内容）。
// 返回文件扩展名（小写，如 .jpg）。
func (s *AvatarService) ValidateUpload(file *multipart.FileHeader) (string, error) {
	cfg := config.Get()

	maxSizeMB := cfg.Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", fmt.Errorf("File is too large (max %dMB).", maxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", errors.New("File type could not be determined.")
	}

	allowed := false
	for _, allowExt := range strings.Split(cfg.Upload.AllowExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errors.New("Only jpg and png images are allowed.")
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return "", errors.New("Unable to open the uploaded file.")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return "", errors.New(msg)
	}

	return ext, nil
}

// Save 将上传的图片缩放后以全新的随机文件名写入存储目录。
// 文件名为 16 个十六进制字符加原始扩展名。
func (s *AvatarService) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	token, err := utils.RandomHex(8)
	if err != nil {
		return "", err
	}
	newName := token + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = src.Close() }()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	// 缩放到边界框内，小于边界框的图片保持原尺寸
	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)

	dst := filepath.Join(s.dir(), newName)
	if err := imaging.Save(thumb, dst); err != nil {
		return "", fmt.Errorf("save image %s: %w", dst, err)
	}

	return newName, nil
}

// Replace 保存新头像并返回应引用的文件名。
// 解码、缩放或写盘失败时记录日志并返回原头像名（降级为不更换）。
// 旧文件的删除由调用方在引用提交成功后通过 Remove 执行。
func (s *AvatarService) Replace(file *multipart.FileHeader, oldName string) string {
	newName, err := s.Save(file)
	if err != nil {
		log.Printf("保存头像失败，保留旧头像 %q: %v\n", oldName, err)
		return oldName
	}
	return newName
}

// Remove 尽力删除存储目录中的头像文件。
// 共享占位头像永远不会被删除；文件不存在不视为错误。
func (s *AvatarService) Remove(name string) {
	if name == "" || name == s.DefaultName() {
		return
	}
	// 文件名由服务端生成，这里再保险过滤路径分隔符
	if name != filepath.Base(name) {
		log.Printf("拒绝删除非法头像文件名 %q\n", name)
		return
	}

	path := filepath.Join(s.dir(), name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("删除旧头像 %s 失败: %v\n", path, err)
	}
}

// EnsureDefault 创建存储目录，并在共享占位头像缺失时生成一张纯色占位图
func (s *AvatarService) EnsureDefault() error {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create image dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, s.DefaultName())
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat default avatar: %w", err)
	}

	placeholder := imaging.New(thumbnailSize, thumbnailSize, color.NRGBA{R: 0x6c, G: 0x75, B: 0x7d, A: 0xff})
	if err := imaging.Save(placeholder, path); err != nil {
		return fmt.Errorf("write default avatar: %w", err)
	}
	log.Printf("✅ 已生成默认头像 %s", path)
	return nil
}

// URLFor 头像文件的访问路径
func (s *AvatarService) URLFor(name string) string {
	prefix := config.Get().Upload.URLPrefix
	if prefix == "" {
		prefix = "/static/images/"
	}
	return prefix + name
}
