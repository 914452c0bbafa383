package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoKey, zaman damgası + rastgele sonek ile tekil bir nesne anahtarı
// üretir. Sonek, aynı milisaniyede gelen gönderimlerin çakışmaması için
// yeterli; tek bir etkinliğin gönderim hızında çakışma olasılığı ihmal
// edilebilir düzeydedir.
func PhotoKey(capturedAt time.Time) string {
	timestamp := capturedAt.UTC().Format("2006-01-02T15-04-05.000")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("photos/%s_%s.jpg", timestamp, suffix)
}
