package imaging

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/adrium/goheif"
)

// Transcoder, HEIC/HEIF içeriğini JPEG'e çeviren dış işbirlikçi.
type Transcoder interface {
	DecodeHEIC(data []byte, quality int) ([]byte, error)
}

// TranscodeResult, dönüşüm sonucunu açık bir etiketle taşır: ya gerçekten
// çevrilmiş JPEG byte'ları, ya da nedeniyle birlikte orijinal byte'lara
// geri düşüş.
type TranscodeResult struct {
	Data           []byte
	Converted      bool
	FallbackReason string
}

// Transcode, dönüşüm başarısız olursa gönderimi iptal etmek yerine orijinal
// byte'larla devam eder; başarısızlık nedeni sonuçta raporlanır.
func Transcode(t Transcoder, data []byte, quality int) TranscodeResult {
	jpegData, err := t.DecodeHEIC(data, quality)
	if err != nil {
		return TranscodeResult{Data: data, FallbackReason: err.Error()}
	}
	return TranscodeResult{Data: jpegData, Converted: true}
}

type HeifTranscoder struct{}

func NewHeifTranscoder() *HeifTranscoder {
	return &HeifTranscoder{}
}

func (t *HeifTranscoder) DecodeHEIC(data []byte, quality int) ([]byte, error) {
	img, err := goheif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode heif image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode transcoded jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
