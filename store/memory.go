package store

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/inventario/model"
)

// Memory is an in-memory Store backed by maps. It is safe for concurrent
// use; the single mutex makes the username uniqueness check and the insert
// one atomic step.
type Memory struct {
	mu         sync.RWMutex
	users      map[uint]model.User
	byUsername map[string]uint
	assets     map[uint]model.Asset
	nextUserID uint
	nextAsset  uint
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uint]model.User),
		byUsername: make(map[string]uint),
		assets:     make(map[uint]model.Asset),
		nextUserID: 1,
		nextAsset:  1,
	}
}

func (m *Memory) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := m.users[id]
	return &user, nil
}

func (m *Memory) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byUsername[user.Username]; taken {
		return ErrUsernameTaken
	}

	user.ID = m.nextUserID
	m.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	m.users[user.ID] = *user
	m.byUsername[user.Username] = user.ID
	return nil
}

func (m *Memory) ListAssets(_ context.Context) ([]model.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	assets := make([]model.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		assets = append(assets, a)
	}
	return assets, nil
}

func (m *Memory) FindAssetByID(_ context.Context, id uint) (*model.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	asset, ok := m.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &asset, nil
}

func (m *Memory) CreateAsset(_ context.Context, asset *model.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	asset.ID = m.nextAsset
	m.nextAsset++
	m.assets[asset.ID] = *asset
	return nil
}

func (m *Memory) UpdateAsset(_ context.Context, asset *model.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[asset.ID]; !ok {
		return ErrNotFound
	}
	m.assets[asset.ID] = *asset
	return nil
}

func (m *Memory) DeleteAsset(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[id]; !ok {
		return ErrNotFound
	}
	delete(m.assets, id)
	return nil
}
