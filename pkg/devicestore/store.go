// Package devicestore, istemcinin localStorage'ında tutulan cihaz-yerel
// anahtar/değer deposunun sunucu tarafı karşılığıdır. Kayıtlar cihaz
// kimliğiyle ayrışır; kimlik doğrulama ve profil değişikliklerinden sonra
// kullanıcının denormalize anlık görüntüsü bilinen tek anahtar altına yazılır.
package devicestore

import (
	"sync"

	"github.com/momentu-app/momentu-backend/internal/models"
)

// UserSnapshotKey, istemcinin kullandığı anahtar ile aynıdır.
const UserSnapshotKey = "@momentu/user"

type Store struct {
	mu      sync.RWMutex
	devices map[string]map[string]models.Submitter
}

func NewStore() *Store {
	return &Store{
		devices: make(map[string]map[string]models.Submitter),
	}
}

func (s *Store) PutSnapshot(deviceID string, snapshot models.Submitter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.devices[deviceID] == nil {
		s.devices[deviceID] = make(map[string]models.Submitter)
	}
	s.devices[deviceID][UserSnapshotKey] = snapshot
}

func (s *Store) GetSnapshot(deviceID string) (models.Submitter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kv, ok := s.devices[deviceID]
	if !ok {
		return models.Submitter{}, false
	}
	snapshot, ok := kv[UserSnapshotKey]
	return snapshot, ok
}

func (s *Store) Remove(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.devices, deviceID)
}
