package repository

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/momentu-app/momentu-backend/internal/models"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.PhotoAsset) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id string) (*models.PhotoAsset, error) {
	var photo models.PhotoAsset
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByEventDesc, feed için en yeniden en eskiye sıralı liste döner.
func (r *PhotoRepository) ListByEventDesc(eventID string) ([]models.PhotoAsset, error) {
	var photos []models.PhotoAsset
	err := r.db.Where("event_id = ?", eventID).Order("captured_at DESC").Find(&photos).Error
	return photos, err
}

// ListByEventAsc, recap için en eskiden en yeniye sıralı liste döner.
// Feed'in tersi sıralama bilinçli bir ayrımdır.
func (r *PhotoRepository) ListByEventAsc(eventID string) ([]models.PhotoAsset, error) {
	var photos []models.PhotoAsset
	err := r.db.Where("event_id = ?", eventID).Order("captured_at ASC").Find(&photos).Error
	return photos, err
}

// UpdateLikes, yalnızca likes kolonunu günceller; like toggle'ın ihtiyaç
// duyduğu kısmi alan yazımı budur.
func (r *PhotoRepository) UpdateLikes(id string, likes []string) error {
	likesJSON, err := json.Marshal(likes)
	if err != nil {
		return err
	}

	return r.db.Model(&models.PhotoAsset{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"likes":      likesJSON,
			"updated_at": time.Now(),
		}).Error
}

func (r *PhotoRepository) CountByEventID(eventID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PhotoAsset{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
