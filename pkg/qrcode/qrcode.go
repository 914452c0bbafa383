package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRService, albüm davet bağlantıları için QR kod üretir.
type QRService struct {
	baseURL string // site kökü, örn: "https://momentu.app"
}

func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// JoinURL, albüm kodunu katılma rotasına gömer: <site>/m/<kod>.
func (s *QRService) JoinURL(eventCode string) string {
	return fmt.Sprintf("%s/m/%s", s.baseURL, eventCode)
}

// GenerateJoinQR, katılma bağlantısı için PNG formatında QR kod bayt dizisi oluşturur.
func (s *QRService) GenerateJoinQR(eventCode string, size int) ([]byte, error) {
	png, err := qrcode.Encode(s.JoinURL(eventCode), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
