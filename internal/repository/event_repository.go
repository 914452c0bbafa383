package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/momentu-app/momentu-backend/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByCode(code string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("code = ?", code).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) AddParticipant(eventID, userID string) error {
	participant := &models.EventParticipant{
		EventID:  eventID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	// Tekrar katılma çağrıları hata üretmesin
	return r.db.Where(models.EventParticipant{EventID: eventID, UserID: userID}).
		FirstOrCreate(participant).Error
}

// GetParticipants, events_users karşılığı: katılımcıların anlık görüntüleri.
func (r *EventRepository) GetParticipants(eventID string) ([]models.Submitter, error) {
	var participants []models.Submitter

	rows, err := r.db.Raw(`
		SELECT u.id, u.display_name, u.avatar_url
		FROM event_participants ep
		JOIN users u ON u.id = ep.user_id
		WHERE ep.event_id = ?
		ORDER BY ep.joined_at ASC`, eventID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Submitter
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.AvatarURL); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, nil
}

func (r *EventRepository) GetUserEvents(userID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Raw(`
		SELECT e.* FROM events e
		JOIN event_participants ep ON ep.event_id = e.id
		WHERE ep.user_id = ?
		ORDER BY e.created_at DESC`, userID).Scan(&events).Error
	return events, err
}
