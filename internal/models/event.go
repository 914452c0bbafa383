package models

import (
	"time"
)

// Event, paylaşılan bir albümü temsil eder. Katılımcılar kısa koda
// sahip herkes olabilir; kod davet QR'ının içine gömülür.
type Event struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	HostID    string    `json:"host_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Code      string    `json:"code" gorm:"unique;not null"`
	CoverURL  string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventParticipant, events_users koleksiyonunun karşılığı.
type EventParticipant struct {
	EventID  string    `json:"event_id" gorm:"primaryKey;type:varchar(36)"`
	UserID   string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	JoinedAt time.Time `json:"joined_at"`
}

type CreateEventRequest struct {
	Title    string `json:"title" validate:"required"`
	CoverURL string `json:"image"`
}

type JoinEventRequest struct {
	Code string `json:"code" validate:"required"`
}

type EventResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Code         string      `json:"code"`
	CoverURL     string      `json:"image"`
	PhotoCount   int64       `json:"photo_count"`
	Participants []Submitter `json:"participants"`
	CreatedAt    time.Time   `json:"created_at"`
}
