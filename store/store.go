package store

import (
	"context"
	"errors"

	"github.com/kbukum/inventario/model"
)

// Sentinel errors returned by store implementations. Services translate
// them into the application error taxonomy at the boundary.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: record not found")

	// ErrUsernameTaken is returned by CreateUser when the username is
	// already registered. Implementations must detect this atomically with
	// the insert; a lookup followed by an insert is not enough.
	ErrUsernameTaken = errors.New("store: username already taken")
)

// UserStore persists user credentials.
type UserStore interface {
	// FindUserByUsername returns the user with the given username, or
	// ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)

	// CreateUser persists a new user and fills in its assigned ID.
	// Returns ErrUsernameTaken if the username is already registered.
	CreateUser(ctx context.Context, user *model.User) error
}

// AssetStore persists inventory assets.
type AssetStore interface {
	// ListAssets returns all assets. The slice is empty, never nil, when
	// there are no assets.
	ListAssets(ctx context.Context) ([]model.Asset, error)

	// FindAssetByID returns the asset with the given ID, or ErrNotFound.
	FindAssetByID(ctx context.Context, id uint) (*model.Asset, error)

	// CreateAsset persists a new asset and fills in its assigned ID.
	CreateAsset(ctx context.Context, asset *model.Asset) error

	// UpdateAsset overwrites the stored asset with the same ID.
	// Returns ErrNotFound if no such asset exists.
	UpdateAsset(ctx context.Context, asset *model.Asset) error

	// DeleteAsset removes the asset with the given ID.
	// Returns ErrNotFound if no such asset exists.
	DeleteAsset(ctx context.Context, id uint) error
}

// Store combines the capability interfaces implemented by every backend.
type Store interface {
	UserStore
	AssetStore
}
