package models

import (
	"time"
)

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DisplayName string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"unique;not null"`
	Password    string    `json:"-" gorm:"not null"`
	AvatarURL   string    `json:"photo"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Submitter, fotoğraf gönderim anında dondurulan kullanıcı anlık görüntüsü.
// Canlı bir referans değildir; kullanıcı profili sonradan değişse bile
// fotoğrafın üzerindeki kopya aynı kalır.
type Submitter struct {
	ID          string `json:"id" gorm:"not null"`
	DisplayName string `json:"name" gorm:"not null"`
	AvatarURL   string `json:"photo"`
}

// Snapshot, kullanıcının o anki denormalize kopyasını üretir.
func (u *User) Snapshot() Submitter {
	return Submitter{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

type UpdateProfileRequest struct {
	DisplayName string `json:"name" validate:"required"`
	AvatarURL   string `json:"photo"`
}
