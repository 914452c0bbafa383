package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const (
	DefaultMaxDimension = 1920
	DefaultTargetBytes  = 1 << 20

	// Kademeli kalite araması: 90'dan başlar, hedef boyuta inene ya da
	// tabana çarpana kadar 10'ar düşer. En fazla 9 deneme yapar.
	StartQuality = 90
	MinQuality   = 10
	QualityStep  = 10
)

type CompressOptions struct {
	MaxDimension int
	TargetBytes  int64
}

type CompressResult struct {
	Data     []byte
	Width    int
	Height   int
	Quality  int
	Attempts int
}

// Compress, kaynak görüntüyü boyut sınırlı bir JPEG'e çevirir.
// En uzun kenar MaxDimension'ı aşıyorsa önce küçültülür (asla büyütülmez),
// ardından kademeli kalite aramasıyla TargetBytes tavanına inilmeye çalışılır.
// Taban kaliteye inildiğinde sonuç hâlâ büyük olsa bile kabul edilir.
func Compress(data []byte, opts CompressOptions) (*CompressResult, error) {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.TargetBytes <= 0 {
		opts.TargetBytes = DefaultTargetBytes
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// resize.Thumbnail en-boy oranını korur ve yalnızca küçültür.
	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
		img = resize.Thumbnail(uint(opts.MaxDimension), uint(opts.MaxDimension), img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	quality := StartQuality
	attempts := 0
	for {
		buf.Reset()
		attempts++
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode jpeg at quality %d: %w", quality, err)
		}
		if int64(buf.Len()) <= opts.TargetBytes || quality <= MinQuality {
			break
		}
		quality -= QualityStep
	}

	out := img.Bounds()
	return &CompressResult{
		Data:     append([]byte(nil), buf.Bytes()...),
		Width:    out.Dx(),
		Height:   out.Dy(),
		Quality:  quality,
		Attempts: attempts,
	}, nil
}
