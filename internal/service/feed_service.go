package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/pkg/utils"
)

type FeedPhotoStore interface {
	GetByID(id string) (*models.PhotoAsset, error)
	ListByEventDesc(eventID string) ([]models.PhotoAsset, error)
	UpdateLikes(id string, likes []string) error
}

// LikeNotifier, feed duyurularına ek olarak beğeni değişimini payload'ıyla
// yayınlayabilen hub işbirlikçisi.
type LikeNotifier interface {
	FeedNotifier
	NotifyLikeToggle(eventID string, result *models.ToggleLikeResponse)
}

// likeEntry, bir fotoğrafın yerel beğeni durumu. Backend yazımından önce
// iyimser olarak güncellenir; yazım düşerse birebir eski haline döner.
type likeEntry struct {
	eventID string
	likes   []string
}

type FeedService struct {
	photos   FeedPhotoStore
	notifier LikeNotifier
	logger   *zap.Logger

	mu        sync.Mutex
	likeState map[string]*likeEntry // photoID -> son bilinen beğeni listesi
}

func NewFeedService(photos FeedPhotoStore, notifier LikeNotifier, logger *zap.Logger) *FeedService {
	return &FeedService{
		photos:    photos,
		notifier:  notifier,
		logger:    logger,
		likeState: make(map[string]*likeEntry),
	}
}

// GetEventFeed, etkinliğin fotoğraflarını en yeniden en eskiye listeler.
func (s *FeedService) GetEventFeed(eventID, viewerID string) ([]models.PhotoResponse, error) {
	photos, err := s.photos.ListByEventDesc(eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]models.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		responses = append(responses, models.PhotoResponse{
			ID:         photo.ID,
			EventID:    photo.EventID,
			PhotoURL:   photo.PhotoURL,
			Caption:    photo.Caption,
			Submitter:  photo.Submitter,
			LikeCount:  len(photo.Likes),
			Liked:      photo.LikedBy(viewerID),
			CapturedAt: photo.CapturedAt,
			TimeAgo:    utils.TimeAgo(photo.CapturedAt, now),
		})
	}

	return responses, nil
}

// ToggleLike, userID'yi fotoğrafın beğeni kümesinde varsa çıkarır, yoksa
// ekler. Hızlı çift çağrı (double-tap) altında toplam etki sıfırdır: iki
// toggle üyeliği başlangıç durumuna döndürür. Güncelleme önce yerel duruma
// iyimser yazılır; backend yazımı düşerse yerel durum birebir geri alınır.
func (s *FeedService) ToggleLike(photoID, userID string) (*models.ToggleLikeResponse, error) {
	if photoID == "" || userID == "" {
		return nil, errors.New("photo id and user id are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.likeState[photoID]
	if !ok {
		photo, err := s.photos.GetByID(photoID)
		if err != nil {
			return nil, err
		}
		entry = &likeEntry{eventID: photo.EventID, likes: photo.Likes}
		s.likeState[photoID] = entry
	}

	prev := append([]string(nil), entry.likes...)

	// Küme semantiği: her kullanıcı kimliği en fazla bir kez görünür.
	next := make([]string, 0, len(entry.likes)+1)
	liked := false
	for _, id := range entry.likes {
		if id == userID {
			liked = true
			continue
		}
		next = append(next, id)
	}
	if !liked {
		next = append(next, userID)
	}

	entry.likes = next

	if err := s.photos.UpdateLikes(photoID, next); err != nil {
		// İyimser güncelleme birebir geri alınır.
		entry.likes = prev
		s.logger.Warn("like toggle write failed, local state rolled back",
			zap.String("photo_id", photoID),
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	result := &models.ToggleLikeResponse{
		PhotoID:   photoID,
		Likes:     next,
		LikeCount: len(next),
		Liked:     !liked,
	}

	s.notifier.NotifyFeedRefresh(entry.eventID)
	s.notifier.NotifyLikeToggle(entry.eventID, result)

	return result, nil
}

// Likes, fotoğrafın bilinen beğeni listesini döner; yerel durum yoksa
// backend'den okunur.
func (s *FeedService) Likes(photoID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.likeState[photoID]; ok {
		return append([]string(nil), entry.likes...), nil
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		return nil, err
	}
	return photo.Likes, nil
}
