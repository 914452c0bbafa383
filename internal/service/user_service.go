package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/config"
	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/repository"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
	"github.com/momentu-app/momentu-backend/pkg/imaging"
	"github.com/momentu-app/momentu-backend/pkg/storage"
)

type UserService struct {
	userRepo    *repository.UserRepository
	storage     storage.ObjectStorage
	deviceStore *devicestore.Store
	cfg         config.ImagingConfig
	logger      *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	objectStorage storage.ObjectStorage,
	deviceStore *devicestore.Store,
	cfg config.ImagingConfig,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		storage:     objectStorage,
		deviceStore: deviceStore,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *UserService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile, profil bilgilerini günceller ve cihazdaki denormalize
// anlık görüntüyü tazeler.
func (s *UserService) UpdateProfile(userID string, req models.UpdateProfileRequest, deviceID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.DisplayName
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	if deviceID != "" {
		s.deviceStore.PutSnapshot(deviceID, user.Snapshot())
	}

	return user, nil
}

// UpdateAvatar, avatar görüntüsünü fotoğraf hattıyla aynı sıkıştırma
// kurallarından geçirip depoya yazar ve profili günceller.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, data []byte, deviceID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	compressed, err := imaging.Compress(data, imaging.CompressOptions{
		MaxDimension: s.cfg.MaxDimension,
		TargetBytes:  s.cfg.TargetBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process avatar image: %w", err)
	}

	key := fmt.Sprintf("avatars/%s_%s.jpg", user.ID, uuid.NewString()[:8])
	if err := s.storage.Put(ctx, key, bytes.NewReader(compressed.Data)); err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	user.AvatarURL = s.storage.PublicURL(key)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	if deviceID != "" {
		s.deviceStore.PutSnapshot(deviceID, user.Snapshot())
	}

	s.logger.Info("avatar updated", zap.String("user_id", userID), zap.String("key", key))
	return user, nil
}
