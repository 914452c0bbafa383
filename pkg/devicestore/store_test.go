package devicestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentu-app/momentu-backend/internal/models"
	"github.com/momentu-app/momentu-backend/pkg/devicestore"
)

func TestStore_SnapshotLifecycle(t *testing.T) {
	store := devicestore.NewStore()

	_, ok := store.GetSnapshot("device-1")
	assert.False(t, ok)

	snapshot := models.Submitter{ID: "u1", DisplayName: "Ana", AvatarURL: "https://cdn/a.jpg"}
	store.PutSnapshot("device-1", snapshot)

	got, ok := store.GetSnapshot("device-1")
	assert.True(t, ok)
	assert.Equal(t, snapshot, got)

	// Profil değişiminde anlık görüntünün üzerine yazılır.
	updated := snapshot
	updated.DisplayName = "Ana Clara"
	store.PutSnapshot("device-1", updated)

	got, _ = store.GetSnapshot("device-1")
	assert.Equal(t, "Ana Clara", got.DisplayName)

	// Cihazlar birbirinden ayrıdır.
	_, ok = store.GetSnapshot("device-2")
	assert.False(t, ok)

	store.Remove("device-1")
	_, ok = store.GetSnapshot("device-1")
	assert.False(t, ok)
}
