package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/momentu-app/momentu-backend/pkg/storage"
)

func TestPhotoKey(t *testing.T) {
	capturedAt := time.Date(2026, 6, 14, 20, 31, 5, 123_000_000, time.UTC)

	key := storage.PhotoKey(capturedAt)
	assert.Regexp(t, `^photos/2026-06-14T20-31-05\.123_[0-9a-f]{8}\.jpg$`, key)

	// Aynı an için üretilen anahtarlar rastgele sonekle ayrışır.
	assert.NotEqual(t, key, storage.PhotoKey(capturedAt))
}
