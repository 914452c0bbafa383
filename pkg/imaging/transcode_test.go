package imaging_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/momentu-app/momentu-backend/pkg/imaging"
)

type mockTranscoder struct {
	mock.Mock
}

func (m *mockTranscoder) DecodeHEIC(data []byte, quality int) ([]byte, error) {
	args := m.Called(data, quality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestTranscode_Success(t *testing.T) {
	transcoder := new(mockTranscoder)
	source := []byte("heic-bytes")
	converted := []byte("jpeg-bytes")
	transcoder.On("DecodeHEIC", source, 92).Return(converted, nil)

	result := imaging.Transcode(transcoder, source, 92)

	assert.True(t, result.Converted)
	assert.Equal(t, converted, result.Data)
	assert.Empty(t, result.FallbackReason)
	transcoder.AssertExpectations(t)
}

func TestTranscode_FallsBackToOriginalOnError(t *testing.T) {
	transcoder := new(mockTranscoder)
	source := []byte("corrupt-heic")
	transcoder.On("DecodeHEIC", source, 92).Return(nil, errors.New("unsupported brand"))

	result := imaging.Transcode(transcoder, source, 92)

	// Dönüşüm hatası gönderimi düşürmez: orijinal byte'lar nedeniyle döner.
	assert.False(t, result.Converted)
	assert.Equal(t, source, result.Data)
	assert.Contains(t, result.FallbackReason, "unsupported brand")
	transcoder.AssertExpectations(t)
}
