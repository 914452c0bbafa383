package recap

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/models"
)

type State string

const (
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateClosed  State = "closed"
)

// Frame, o anki slaytın istemciye gönderilen sunum durumu.
type Frame struct {
	SessionID     string            `json:"session_id"`
	EventID       string            `json:"event_id"`
	Index         int               `json:"index"`
	Total         int               `json:"total"`
	Photo         models.PhotoAsset `json:"photo"`
	Transition    TransitionType    `json:"transition"`
	IdleAnimation IdleAnimation     `json:"idle_animation"`
	LikeMarkers   []LikeMarker      `json:"like_markers,omitempty"`
	Playing       bool              `json:"playing"`
	Audio         AudioState        `json:"audio"`
}

// Session, tek bir recap gösteriminin durum makinesi. Oturum başına tam
// bir zamanlayıcı ve bir ses tutamacı vardır; Close ikisini de bırakır.
type Session struct {
	ID      string
	EventID string

	mu       sync.Mutex
	photos   []models.PhotoAsset // oturum boyunca değişmez
	index    int
	state    State
	interval time.Duration
	audio    AudioController
	timer    *time.Timer
	frames   chan Frame
	logger   *zap.Logger
}

func newSession(id, eventID string, photos []models.PhotoAsset, interval time.Duration, audio AudioController, logger *zap.Logger) *Session {
	// Sıralama oturum başında bir kez kurulur: en eskiden en yeniye.
	// Feed'in tersi olan bu sıra bilinçli bir ayrımdır.
	sorted := make([]models.PhotoAsset, len(photos))
	copy(sorted, photos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CapturedAt.Before(sorted[j].CapturedAt)
	})

	return &Session{
		ID:       id,
		EventID:  eventID,
		photos:   sorted,
		interval: interval,
		audio:    audio,
		frames:   make(chan Frame, 16),
		logger:   logger,
	}
}

// begin, otomatik oynatmayı başlatır. Ses başlatılamazsa (autoplay engeli
// gibi) gösterim sessiz devam eder.
func (s *Session) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StatePlaying
	if err := s.audio.Play(); err != nil {
		s.logger.Warn("recap audio failed to start, continuing without sound",
			zap.String("session_id", s.ID), zap.Error(err))
	}
	s.armTimer()
	s.emitFrame()
}

// advance yalnızca dahili zamanlayıcıdan, oynatma sürerken tetiklenir.
// Son slayttan sonra başa sarar; gösteri kendi kendine asla durmaz.
func (s *Session) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return
	}

	s.index = (s.index + 1) % len(s.photos)
	s.emitFrame()
	s.armTimer()
}

// TogglePlay, oynatma durumunu çevirir. Duraklatma zamanlayıcıyı ve sesi
// durdurur; devam etme sesi kaldığı yerden sürdürür. Slayt süresi devam
// sonrasında sıfırdan başlar (bilinen sadeleştirme).
func (s *Session) TogglePlay() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		s.stopTimer()
		s.audio.Pause()
	case StatePaused:
		s.state = StatePlaying
		if err := s.audio.Play(); err != nil {
			s.logger.Warn("recap audio failed to resume",
				zap.String("session_id", s.ID), zap.Error(err))
		}
		s.armTimer()
	}
	s.emitFrame()
	return s.state
}

// Close, oturumu kapatır: zamanlayıcı durur, ses serbest bırakılır,
// frame kanalı kapanır. Tekrarlanan çağrılar güvenlidir.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	s.stopTimer()
	s.audio.Release()
	close(s.frames)
}

// Frames, slayt değişimlerinde üretilen kareleri taşır.
func (s *Session) Frames() <-chan Frame {
	return s.frames
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

func (s *Session) PhotoCount() int {
	return len(s.photos)
}

// mutex altında çağrılır
func (s *Session) armTimer() {
	s.stopTimer()
	s.timer = time.AfterFunc(s.interval, s.advance)
}

// mutex altında çağrılır
func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// mutex altında çağrılır
func (s *Session) emitFrame() {
	if s.state == StateClosed || len(s.photos) == 0 {
		return
	}

	photo := s.photos[s.index]
	frame := Frame{
		SessionID:     s.ID,
		EventID:       s.EventID,
		Index:         s.index,
		Total:         len(s.photos),
		Photo:         photo,
		Transition:    TransitionFor(s.index),
		IdleAnimation: IdleAnimationFor(s.index),
		LikeMarkers:   LikeMarkers(len(photo.Likes)),
		Playing:       s.state == StatePlaying,
		Audio:         s.audio.State(),
	}

	select {
	case s.frames <- frame:
	default:
		// Tüketici geride kaldıysa kare düşürülür; sonraki kare durumu taşır.
	}
}

func (s *Session) timerActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
