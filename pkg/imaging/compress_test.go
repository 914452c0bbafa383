package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentu-app/momentu-backend/pkg/imaging"
)

// makeJPEG, yüksek frekanslı desenle doldurulmuş bir test JPEG'i üretir.
// Desen, görüntünün düşük kalitelerde bile anlamlı boyutta kalmasını sağlar.
func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x*7 + y*13) % 256),
				G: uint8((x*3 + y*29) % 256),
				B: uint8((x*17 + y*5) % 256),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func TestCompress_DownscalesOversizedImage(t *testing.T) {
	data := makeJPEG(t, 3000, 4000)

	result, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: 1920,
		TargetBytes:  1 << 20,
	})
	require.NoError(t, err)

	// En uzun kenar 1920'ye iner, en-boy oranı korunur.
	assert.Equal(t, 1920, result.Height)
	assert.Equal(t, 1440, result.Width)

	// Kalite araması ya hedefe iner ya da tabanda durur; asla başarısız olmaz.
	if int64(len(result.Data)) > 1<<20 {
		assert.Equal(t, imaging.MinQuality, result.Quality)
	}
	assert.GreaterOrEqual(t, result.Quality, imaging.MinQuality)
	assert.LessOrEqual(t, result.Quality, imaging.StartQuality)
	assert.LessOrEqual(t, result.Attempts, 9)
}

func TestCompress_SmallImageFirstAttempt(t *testing.T) {
	data := makeJPEG(t, 80, 60)

	result, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: 1920,
		TargetBytes:  1 << 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, imaging.StartQuality, result.Quality)
	assert.LessOrEqual(t, int64(len(result.Data)), int64(1<<20))
}

func TestCompress_NeverUpscales(t *testing.T) {
	data := makeJPEG(t, 640, 480)

	result, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: 1920,
		TargetBytes:  1 << 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 480, result.Height)
}

func TestCompress_QualityFloorStopsSearch(t *testing.T) {
	data := makeJPEG(t, 1920, 1920)

	// Ulaşılamayacak kadar küçük hedef: arama tabana iner ve sonuç yine döner.
	result, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: 1920,
		TargetBytes:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, imaging.MinQuality, result.Quality)
	assert.Equal(t, 9, result.Attempts)
	assert.NotEmpty(t, result.Data)
}

func TestCompress_DefaultsApplied(t *testing.T) {
	data := makeJPEG(t, 100, 100)

	result, err := imaging.Compress(data, imaging.CompressOptions{})
	require.NoError(t, err)

	assert.Equal(t, 100, result.Width)
	assert.NotEmpty(t, result.Data)
}

func TestCompress_RejectsInvalidData(t *testing.T) {
	_, err := imaging.Compress([]byte("not an image"), imaging.CompressOptions{})
	assert.Error(t, err)
}
