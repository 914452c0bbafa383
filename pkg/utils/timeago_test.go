package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/momentu-app/momentu-backend/pkg/utils"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 6, 14, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero value", time.Time{}, "agora"},
		{"just now", now, "0 minutos"},
		{"one minute", now.Add(-1 * time.Minute), "1 minuto"},
		{"several minutes", now.Add(-45 * time.Minute), "45 minutos"},
		{"one hour", now.Add(-1 * time.Hour), "1 hora"},
		{"several hours", now.Add(-23 * time.Hour), "23 horas"},
		{"older than a day", time.Date(2026, 6, 12, 20, 15, 0, 0, time.UTC), "12/06 20:15"},
		{"future timestamp", now.Add(10 * time.Minute), "14/06 22:40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.TimeAgo(tt.t, now))
		})
	}
}
