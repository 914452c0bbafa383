package utils

import (
	"fmt"
	"time"
)

// TimeAgo, verilen an ile şimdi arasındaki farkı istemcinin gösterdiği
// biçimde üretir: 60 dakikaya kadar dakika, 24 saate kadar saat, sonrası
// sabit "dd/MM HH:mm" biçimi. Sıfır değer "agora", gelecekteki anlar ise
// doğrudan biçimlenmiş tarih döner.
func TimeAgo(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "agora"
	}

	diff := now.Sub(t)
	if diff < 0 {
		return t.Format("02/01 15:04")
	}

	minutes := int(diff.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d %s", minutes, plural(minutes, "minuto", "minutos"))
	}

	hours := int(diff.Hours())
	if hours < 24 {
		return fmt.Sprintf("%d %s", hours, plural(hours, "hora", "horas"))
	}

	return t.Format("02/01 15:04")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
