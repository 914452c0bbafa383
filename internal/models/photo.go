package models

import (
	"time"
)

// PhotoAsset, bir etkinliğe gönderilmiş tek fotoğrafı temsil eder.
// JSON alan adları mobil istemcinin feed dokümanlarıyla aynı tutuldu.
type PhotoAsset struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EventID    string    `json:"event_id" gorm:"index;not null"`
	StorageKey string    `json:"-" gorm:"not null"`
	PhotoURL   string    `json:"photo" gorm:"not null"`
	Caption    string    `json:"title"`
	CapturedAt time.Time `json:"time" gorm:"not null"`
	Submitter  Submitter `json:"user" gorm:"embedded;embeddedPrefix:submitter_"`
	Likes      []string  `json:"likes" gorm:"type:json;serializer:json"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	Quality    int       `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LikedBy, userID'nin likes listesinde olup olmadığını kontrol eder.
func (p *PhotoAsset) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

type SubmitCaptureRequest struct {
	Caption  string `json:"caption"`
	Snapshot string `json:"snapshot"` // base64 JPEG kamera karesi (galeri yüklemelerinde boş)
}

type PhotoResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	PhotoURL   string    `json:"photo"`
	Caption    string    `json:"title"`
	Submitter  Submitter `json:"user"`
	LikeCount  int       `json:"like_count"`
	Liked      bool      `json:"liked"`
	CapturedAt time.Time `json:"time"`
	TimeAgo    string    `json:"time_ago"`
}

type ToggleLikeResponse struct {
	PhotoID   string   `json:"photo_id"`
	Likes     []string `json:"likes"`
	LikeCount int      `json:"like_count"`
	Liked     bool     `json:"liked"`
}
