package storage

import (
	"context"
	"io"
)

// ObjectStorage, yükleme hattının kullandığı nesne deposu işbirlikçisi.
type ObjectStorage interface {
	Put(ctx context.Context, key string, reader io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
