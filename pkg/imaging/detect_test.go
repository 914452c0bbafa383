package imaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentu-app/momentu-backend/pkg/imaging"
)

func TestIsHEIC(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
		want     bool
	}{
		{"heic mime", "image/heic", "photo.jpg", true},
		{"heif mime", "image/heif", "photo.jpg", true},
		{"heic sequence mime", "image/heic-sequence", "burst.bin", true},
		{"heif sequence mime", "image/heif-sequence", "burst.bin", true},
		{"mime with whitespace and case", "  Image/HEIC ", "photo.jpg", true},
		{"heic extension with generic mime", "application/octet-stream", "IMG_0042.HEIC", true},
		{"heif extension", "application/octet-stream", "photo.heif", true},
		{"extension alone is enough", "", "vacation.heic", true},
		{"plain jpeg", "image/jpeg", "photo.jpg", false},
		{"png", "image/png", "screenshot.png", false},
		{"heic in basename only", "image/jpeg", "heic_notes.txt", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imaging.IsHEIC(tt.mimeType, tt.filename))
		})
	}
}
