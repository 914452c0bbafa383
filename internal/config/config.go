package config

import (
	"os"
	"strconv"
	"time"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

// ImagingConfig, yükleme hattının sıkıştırma sınırları.
type ImagingConfig struct {
	MaxDimension     int   // en uzun kenar (px), asla büyütme yapılmaz
	TargetBytes      int64 // sıkıştırma döngüsünün hedef tavanı
	TranscodeQuality int   // HEIC -> JPEG dönüşüm kalitesi
}

// RecapConfig, slayt gösterisi motorunun zamanlama ve ses ayarları.
type RecapConfig struct {
	SlideInterval time.Duration
	AudioTrackURL string
	AudioVolume   float64
}

type Config struct {
	Port      string
	WSPort    string
	PublicURL string
	R2        R2Config
	Imaging   ImagingConfig
	Recap     RecapConfig
	Resend    struct {
		APIKey      string
		FromAddress string
		FromName    string
	}
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.WSPort = getEnv("WS_PORT", "8081")
	cfg.PublicURL = getEnv("PUBLIC_URL", "https://momentu.app")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// Imaging config
	cfg.Imaging.MaxDimension = getEnvInt("IMAGE_MAX_DIMENSION", 1920)
	cfg.Imaging.TargetBytes = int64(getEnvInt("IMAGE_TARGET_BYTES", 1024*1024))
	cfg.Imaging.TranscodeQuality = getEnvInt("IMAGE_TRANSCODE_QUALITY", 92)

	// Recap config
	cfg.Recap.SlideInterval = time.Duration(getEnvInt("RECAP_SLIDE_INTERVAL_MS", 4000)) * time.Millisecond
	cfg.Recap.AudioTrackURL = getEnv("RECAP_AUDIO_TRACK_URL", "/music.mp3")
	cfg.Recap.AudioVolume = 0.5

	// Resend config
	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Resend.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
