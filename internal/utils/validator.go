package utils

import (
	"io"
	"net/http"
)

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	_, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Unable to read the uploaded file."
	}

	// 重置读取位置
	if _, err := reader.Seek(0, 0); err != nil {
		return false, "Unable to read the uploaded file."
	}

	contentType := http.DetectContentType(buffer)

	allowedTypes := map[string]map[string]bool{
		"image/jpeg": {".jpg": true, ".jpeg": true},
		"image/png":  {".png": true},
	}

	if exts, ok := allowedTypes[contentType]; ok {
		if exts[ext] {
			return true, ""
		}
	}

	return false, "File content (" + contentType + ") does not match its extension (" + ext + ")."
}
