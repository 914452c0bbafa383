package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/config"
	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/pkg/imaging"
	"github.com/momentu-app/momentu-backend/pkg/storage"
)

// CaptureStep, yükleme hattının hangi adımda düştüğünü adlandırır.
type CaptureStep string

const (
	StepValidate  CaptureStep = "validate"
	StepTranscode CaptureStep = "transcode"
	StepCompress  CaptureStep = "compress"
	StepUpload    CaptureStep = "upload"
	StepMetadata  CaptureStep = "metadata"
)

// CaptureError, gönderimin hangi adımda başarısız olduğunu taşıyan yapısal hata.
type CaptureError struct {
	Step CaptureStep
	Err  error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s failed: %v", e.Step, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// CaptureSource, kamera karesi ya da galeriden seçilmiş dosya.
type CaptureSource struct {
	Data       []byte
	MimeType   string
	Filename   string
	FromCamera bool // kamera kareleri her zaman JPEG'dir, HEIC tespiti atlanır
}

// PendingCapture, tek bir yakalama oturumunun geçici durumu. Yükleme ya da
// metadata yazımı düşerse korunur; kullanıcı kaynağı yeniden seçmeden
// tekrar deneyebilir. İptal ya da başarılı gönderim sonrası atılır.
type PendingCapture struct {
	SessionID string
	EventID   string
	Submitter models.Submitter
	Caption   string

	SourceBytes             []byte
	SourceMime              string
	SourceFilename          string
	IsHEIC                  bool
	TranscodedBytes         []byte
	TranscodeFallbackReason string

	CompressedBytes []byte
	MimeType        string
	Quality         int
	Width           int
	Height          int
	CreatedAt       time.Time
}

// Capture service'in işbirlikçi arayüzleri; testlerde sahteleriyle değiştirilir.
type PhotoCreator interface {
	Create(photo *models.PhotoAsset) error
}

type EventGetter interface {
	GetByID(id string) (*models.Event, error)
}

type FeedNotifier interface {
	NotifyFeedRefresh(eventID string)
}

type CaptureService struct {
	photos     PhotoCreator
	events     EventGetter
	storage    storage.ObjectStorage
	transcoder imaging.Transcoder
	notifier   FeedNotifier
	cfg        config.ImagingConfig
	logger     *zap.Logger

	mu      sync.Mutex
	pending map[string]*PendingCapture // yakalama oturumu başına en fazla bir
}

func NewCaptureService(
	photos PhotoCreator,
	events EventGetter,
	objectStorage storage.ObjectStorage,
	transcoder imaging.Transcoder,
	notifier FeedNotifier,
	cfg config.ImagingConfig,
	logger *zap.Logger,
) *CaptureService {
	return &CaptureService{
		photos:     photos,
		events:     events,
		storage:    objectStorage,
		transcoder: transcoder,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger,
		pending:    make(map[string]*PendingCapture),
	}
}

// SubmitCapture, hattın tamamını tek çağrıda koşar:
// tespit -> dönüştürme -> sıkıştırma -> yükleme -> metadata.
func (s *CaptureService) SubmitCapture(
	ctx context.Context,
	source CaptureSource,
	eventID string,
	submitter models.Submitter,
	caption string,
) (*models.PhotoAsset, error) {
	sessionID := uuid.NewString()

	if _, err := s.Stage(sessionID, source, eventID, submitter, caption); err != nil {
		return nil, err
	}
	return s.Submit(ctx, sessionID)
}

// Stage, kaynağı yükleme adayına dönüştürür ve oturumun bekleyen gönderimi
// olarak saklar. Ağ çağrısı yapılmaz; bu noktaya kadar iptal maliyetsizdir.
func (s *CaptureService) Stage(
	sessionID string,
	source CaptureSource,
	eventID string,
	submitter models.Submitter,
	caption string,
) (*PendingCapture, error) {
	// Girdi hataları her türlü yan etkiden önce döner.
	if submitter.ID == "" {
		return nil, &CaptureError{Step: StepValidate, Err: errors.New("missing submitter context")}
	}
	if eventID == "" {
		return nil, &CaptureError{Step: StepValidate, Err: errors.New("missing event context")}
	}
	if len(source.Data) == 0 {
		return nil, &CaptureError{Step: StepValidate, Err: errors.New("empty capture source")}
	}

	pc := &PendingCapture{
		SessionID:      sessionID,
		EventID:        eventID,
		Submitter:      submitter,
		Caption:        caption,
		SourceBytes:    source.Data,
		SourceMime:     source.MimeType,
		SourceFilename: source.Filename,
		CreatedAt:      time.Now(),
	}

	data := source.Data
	mimeType := source.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	// 1. adım: biçim tespiti. Kamera kareleri her zaman JPEG sayılır.
	if !source.FromCamera && imaging.IsHEIC(source.MimeType, source.Filename) {
		pc.IsHEIC = true

		// 2. adım: dönüştürme. Başarısızlık gönderimi düşürmez; orijinal
		// byte'larla devam edilir ve neden raporlanır.
		result := imaging.Transcode(s.transcoder, data, s.cfg.TranscodeQuality)
		if result.Converted {
			pc.TranscodedBytes = result.Data
			data = result.Data
			mimeType = "image/jpeg"
		} else {
			pc.TranscodeFallbackReason = result.FallbackReason
			s.logger.Warn("heic transcode failed, continuing with source bytes",
				zap.String("session_id", sessionID),
				zap.String("filename", source.Filename),
				zap.String("reason", result.FallbackReason))
		}
	}

	// 3. adım: kademeli kalite araması. Kaynak çözülemezse dokunulmamış
	// blob yüklenir; gönderim yine düşürülmez.
	compressed, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: s.cfg.MaxDimension,
		TargetBytes:  s.cfg.TargetBytes,
	})
	if err != nil {
		s.logger.Warn("compression failed, uploading source bytes untouched",
			zap.String("session_id", sessionID), zap.Error(err))
		pc.CompressedBytes = data
		pc.MimeType = mimeType
	} else {
		pc.CompressedBytes = compressed.Data
		pc.MimeType = "image/jpeg"
		pc.Quality = compressed.Quality
		pc.Width = compressed.Width
		pc.Height = compressed.Height
	}

	s.mu.Lock()
	s.pending[sessionID] = pc
	s.mu.Unlock()

	return pc, nil
}

// Submit, bekleyen gönderimi yükler ve metadata kaydını yazar. Sıralama
// değişmezi: metadata ancak yükleme tamamlandıktan sonra yazılır, bir
// fotoğraf kaydının arkasında her zaman gerçek byte'lar vardır.
func (s *CaptureService) Submit(ctx context.Context, sessionID string) (*models.PhotoAsset, error) {
	s.mu.Lock()
	pc := s.pending[sessionID]
	s.mu.Unlock()

	if pc == nil {
		return nil, &CaptureError{Step: StepValidate, Err: errors.New("no pending capture for session")}
	}

	if _, err := s.events.GetByID(pc.EventID); err != nil {
		return nil, &CaptureError{Step: StepValidate, Err: errors.New("event not found")}
	}

	capturedAt := time.Now()
	key := storage.PhotoKey(capturedAt)

	// 4. adım: yükleme. Düşerse bekleyen gönderim korunur.
	if err := s.storage.Put(ctx, key, bytes.NewReader(pc.CompressedBytes)); err != nil {
		return nil, &CaptureError{Step: StepUpload, Err: err}
	}

	photo := &models.PhotoAsset{
		ID:         uuid.NewString(),
		EventID:    pc.EventID,
		StorageKey: key,
		PhotoURL:   s.storage.PublicURL(key),
		Caption:    pc.Caption,
		CapturedAt: capturedAt,
		Submitter:  pc.Submitter,
		Likes:      []string{},
		FileSize:   int64(len(pc.CompressedBytes)),
		MimeType:   pc.MimeType,
		Quality:    pc.Quality,
	}

	// 5. adım: metadata. Bu adım düşerse yüklenen blob öksüz kalır;
	// bilinen, otomatik temizlenmeyen bir boşluk.
	if err := s.photos.Create(photo); err != nil {
		s.logger.Error("photo metadata write failed, storage object orphaned",
			zap.String("session_id", sessionID),
			zap.String("key", key),
			zap.Error(err))
		return nil, &CaptureError{Step: StepMetadata, Err: err}
	}

	s.mu.Lock()
	delete(s.pending, sessionID)
	s.mu.Unlock()

	s.notifier.NotifyFeedRefresh(pc.EventID)
	return photo, nil
}

// Cancel, bekleyen gönderimi hiçbir backend çağrısı yapmadan atar.
func (s *CaptureService) Cancel(sessionID string) {
	s.mu.Lock()
	delete(s.pending, sessionID)
	s.mu.Unlock()
}

// Pending, oturumun bekleyen gönderimini döner (yoksa nil).
func (s *CaptureService) Pending(sessionID string) *PendingCapture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[sessionID]
}

// DecodeSnapshot, kamera işbirlikçisinin ürettiği base64 JPEG karesini
// çözer. "data:image/jpeg;base64," öneki varsa atılır.
func DecodeSnapshot(snapshot string) ([]byte, error) {
	if idx := strings.Index(snapshot, "base64,"); idx >= 0 {
		snapshot = snapshot[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to decode camera snapshot: %w", err)
	}
	return data, nil
}
