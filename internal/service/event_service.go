package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/repository"
	"github.com/momentu-app/momentu-backend/pkg/qrcode"
	"github.com/momentu-app/momentu-backend/pkg/utils"
)

const eventCodeLength = 6

type EventService struct {
	eventRepo *repository.EventRepository
	photoRepo *repository.PhotoRepository
	qrService *qrcode.QRService
}

func NewEventService(eventRepo *repository.EventRepository, photoRepo *repository.PhotoRepository, qrService *qrcode.QRService) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		photoRepo: photoRepo,
		qrService: qrService,
	}
}

func (s *EventService) CreateEvent(hostID string, req models.CreateEventRequest) (*models.Event, error) {
	// Tekil albüm kodu üret
	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:        uuid.NewString(),
		HostID:    hostID,
		Title:     req.Title,
		Code:      code,
		CoverURL:  req.CoverURL,
		CreatedAt: time.Now(),
	}

	createdEvent, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	// Albümü açan kişi ilk katılımcıdır
	if err := s.eventRepo.AddParticipant(createdEvent.ID, hostID); err != nil {
		return nil, err
	}

	return createdEvent, nil
}

func (s *EventService) generateUniqueCode() (string, error) {
	for i := 0; i < 5; i++ {
		code := utils.GenerateEventCode(eventCodeLength)
		exists, err := s.eventRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("failed to generate a unique event code")
}

// JoinEvent, kullanıcıyı koda sahip albüme katılımcı olarak ekler.
func (s *EventService) JoinEvent(userID string, code string) (*models.Event, error) {
	event, err := s.eventRepo.GetByCode(code)
	if err != nil {
		return nil, errors.New("event not found")
	}

	if err := s.eventRepo.AddParticipant(event.ID, userID); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) GetEvent(eventID string) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, errors.New("event not found")
	}

	participants, err := s.eventRepo.GetParticipants(eventID)
	if err != nil {
		return nil, err
	}

	photoCount, err := s.photoRepo.CountByEventID(eventID)
	if err != nil {
		return nil, err
	}

	return &models.EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Code:         event.Code,
		CoverURL:     event.CoverURL,
		PhotoCount:   photoCount,
		Participants: participants,
		CreatedAt:    event.CreatedAt,
	}, nil
}

func (s *EventService) GetUserEvents(userID string) ([]models.Event, error) {
	return s.eventRepo.GetUserEvents(userID)
}

// GetJoinQR, albümün davet bağlantısını PNG QR kod olarak döner.
func (s *EventService) GetJoinQR(eventID string, size int) ([]byte, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, errors.New("event not found")
	}

	return s.qrService.GenerateJoinQR(event.Code, size)
}
