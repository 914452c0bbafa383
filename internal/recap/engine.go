// Package recap, bir etkinliğin fotoğraflarını kronolojik sırayla, arka
// plan müziği ve slayt başına belirlenimci animasyonlarla oynatan zamanlı
// gösterim motorudur.
package recap

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/config"
	"github.com/momentu-app/momentu-backend/internal/models"
)

var (
	ErrNoPhotos        = errors.New("no photos in event")
	ErrSessionNotFound = errors.New("recap session not found")
	ErrAudioReleased   = errors.New("audio handle released")
)

// PhotoLister, recap'in fotoğraf listesini çektiği işbirlikçi.
type PhotoLister interface {
	ListByEventAsc(eventID string) ([]models.PhotoAsset, error)
}

type Engine struct {
	mu       sync.Mutex
	sessions map[string]*Session
	photos   PhotoLister
	cfg      config.RecapConfig
	logger   *zap.Logger

	// Testlerde sahte ses kontrolcüsü takılabilsin diye alan olarak tutulur.
	newAudio func() AudioController
}

func NewEngine(photos PhotoLister, cfg config.RecapConfig, logger *zap.Logger) *Engine {
	e := &Engine{
		sessions: make(map[string]*Session),
		photos:   photos,
		cfg:      cfg,
		logger:   logger,
	}
	e.newAudio = func() AudioController {
		return NewLoopingTrack(cfg.AudioTrackURL, cfg.AudioVolume)
	}
	return e
}

// Start, etkinliğin tüm fotoğraflarını çekip yeni bir oturum açar ve
// otomatik oynatmayı başlatır. Boş liste ErrNoPhotos ile döner; istemci
// bunun üzerine boş durum görünümünü gösterir.
func (e *Engine) Start(eventID string) (*Session, error) {
	photos, err := e.photos.ListByEventAsc(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recap photos: %w", err)
	}
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}

	session := newSession(uuid.NewString(), eventID, photos, e.cfg.SlideInterval, e.newAudio(), e.logger)

	e.mu.Lock()
	e.sessions[session.ID] = session
	e.mu.Unlock()

	session.begin()

	e.logger.Info("recap session started",
		zap.String("session_id", session.ID),
		zap.String("event_id", eventID),
		zap.Int("photos", session.PhotoCount()))

	return session, nil
}

func (e *Engine) Get(sessionID string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (e *Engine) TogglePlay(sessionID string) (State, error) {
	session, err := e.Get(sessionID)
	if err != nil {
		return "", err
	}
	return session.TogglePlay(), nil
}

// Close, oturumu kapatıp motordan düşürür. Bilinmeyen (ya da zaten
// kapatılmış) oturum için sessizce başarılı sayılır.
func (e *Engine) Close(sessionID string) {
	e.mu.Lock()
	session, ok := e.sessions[sessionID]
	delete(e.sessions, sessionID)
	e.mu.Unlock()

	if ok {
		session.Close()
	}
}
