package imaging

import (
	"path/filepath"
	"strings"
)

var heicMimeTypes = map[string]bool{
	"image/heic":          true,
	"image/heif":          true,
	"image/heic-sequence": true,
	"image/heif-sequence": true,
}

// IsHEIC hem MIME türüne hem dosya uzantısına bakar. İkisi de tek başına
// eksik veya yanlış olabildiği için iki kontrol birden yapılır.
func IsHEIC(mimeType, filename string) bool {
	if heicMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))] {
		return true
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".heic", ".heif":
		return true
	}
	return false
}
