package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/internal/service"
)

type mockFeedPhotoStore struct {
	mock.Mock
}

func (m *mockFeedPhotoStore) GetByID(id string) (*models.PhotoAsset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhotoAsset), args.Error(1)
}

func (m *mockFeedPhotoStore) ListByEventDesc(eventID string) ([]models.PhotoAsset, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhotoAsset), args.Error(1)
}

func (m *mockFeedPhotoStore) UpdateLikes(id string, likes []string) error {
	args := m.Called(id, likes)
	return args.Error(0)
}

func newFeedFixture() (*mockFeedPhotoStore, *mockNotifier, *service.FeedService) {
	photos := new(mockFeedPhotoStore)
	notifier := new(mockNotifier)
	return photos, notifier, service.NewFeedService(photos, notifier, zap.NewNop())
}

func TestFeedService_GetEventFeed_NewestFirst(t *testing.T) {
	photos, _, svc := newFeedFixture()

	base := time.Now().Add(-2 * time.Hour)
	stored := []models.PhotoAsset{
		{ID: "p3", EventID: "event-1", CapturedAt: base.Add(90 * time.Minute), Likes: []string{"u1", "u2"}},
		{ID: "p2", EventID: "event-1", CapturedAt: base.Add(30 * time.Minute), Likes: []string{"u2"}},
		{ID: "p1", EventID: "event-1", CapturedAt: base, Likes: []string{}},
	}
	photos.On("ListByEventDesc", "event-1").Return(stored, nil)

	feed, err := svc.GetEventFeed("event-1", "u1")
	require.NoError(t, err)
	require.Len(t, feed, 3)

	// Depo sırası korunur: en yeni fotoğraf başta.
	assert.Equal(t, []string{"p3", "p2", "p1"}, []string{feed[0].ID, feed[1].ID, feed[2].ID})
	assert.Equal(t, 2, feed[0].LikeCount)
	assert.True(t, feed[0].Liked)
	assert.False(t, feed[1].Liked)
	assert.NotEmpty(t, feed[0].TimeAgo)
}

func TestFeedService_ToggleLike_AddsAndRemoves(t *testing.T) {
	photos, notifier, svc := newFeedFixture()

	photos.On("GetByID", "p1").Return(&models.PhotoAsset{
		ID:      "p1",
		EventID: "event-1",
		Likes:   []string{"other"},
	}, nil).Once()
	photos.On("UpdateLikes", "p1", []string{"other", "u1"}).Return(nil).Once()
	photos.On("UpdateLikes", "p1", []string{"other"}).Return(nil).Once()
	notifier.On("NotifyFeedRefresh", "event-1").Return()
	notifier.On("NotifyLikeToggle", "event-1", mock.Anything).Return()

	// İlk toggle ekler.
	result, err := svc.ToggleLike("p1", "u1")
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, []string{"other", "u1"}, result.Likes)
	assert.Equal(t, 2, result.LikeCount)

	// İkinci toggle çıkarır: çift dokunuşun net etkisi sıfır.
	result, err = svc.ToggleLike("p1", "u1")
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, []string{"other"}, result.Likes)

	photos.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "NotifyFeedRefresh", 2)
	notifier.AssertNumberOfCalls(t, "NotifyLikeToggle", 2)
}

func TestFeedService_ToggleLike_DeduplicatesMembership(t *testing.T) {
	photos, notifier, svc := newFeedFixture()

	// Eski veride çoğalmış üyelik tek toggle ile tamamen temizlenir.
	photos.On("GetByID", "p1").Return(&models.PhotoAsset{
		ID:      "p1",
		EventID: "event-1",
		Likes:   []string{"u1", "other", "u1"},
	}, nil).Once()
	photos.On("UpdateLikes", "p1", []string{"other"}).Return(nil).Once()
	notifier.On("NotifyFeedRefresh", "event-1").Return()
	notifier.On("NotifyLikeToggle", "event-1", mock.Anything).Return()

	result, err := svc.ToggleLike("p1", "u1")
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, []string{"other"}, result.Likes)
}

func TestFeedService_ToggleLike_RollsBackOnWriteFailure(t *testing.T) {
	photos, notifier, svc := newFeedFixture()

	photos.On("GetByID", "p1").Return(&models.PhotoAsset{
		ID:      "p1",
		EventID: "event-1",
		Likes:   []string{"other"},
	}, nil).Once()
	photos.On("UpdateLikes", "p1", []string{"other", "u1"}).Return(errors.New("write conflict")).Once()

	_, err := svc.ToggleLike("p1", "u1")
	require.Error(t, err)

	// Yerel durum birebir geri alınır; başarısız yazım duyuru da üretmez.
	likes, err := svc.Likes("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, likes)
	notifier.AssertNotCalled(t, "NotifyFeedRefresh", mock.Anything)
	notifier.AssertNotCalled(t, "NotifyLikeToggle", mock.Anything, mock.Anything)
}

func TestFeedService_ToggleLike_RequiresIDs(t *testing.T) {
	_, _, svc := newFeedFixture()

	_, err := svc.ToggleLike("", "u1")
	assert.Error(t, err)

	_, err = svc.ToggleLike("p1", "")
	assert.Error(t, err)
}

func TestFeedService_ToggleLike_UnknownPhoto(t *testing.T) {
	photos, _, svc := newFeedFixture()

	photos.On("GetByID", "ghost").Return(nil, errors.New("record not found"))

	_, err := svc.ToggleLike("ghost", "u1")
	assert.Error(t, err)
}
