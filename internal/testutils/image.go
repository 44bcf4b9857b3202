package testutils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// PNGImage 生成指定尺寸的 PNG 编码图片数据，用于上传类测试。
func PNGImage(w, h int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, testPattern(w, h))
	return buf.Bytes()
}

// JPEGImage 生成指定尺寸的 JPEG 编码图片数据。
func JPEGImage(w, h int) []byte {
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, testPattern(w, h), &jpeg.Options{Quality: 80})
	return buf.Bytes()
}

// MinimalPNG 返回一张 1x1 的 PNG 图片。
func MinimalPNG() []byte {
	return PNGImage(1, 1)
}

func testPattern(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0x80, A: 0xff})
		}
	}
	return img
}
