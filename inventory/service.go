package inventory

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/model"
	"github.com/kbukum/inventario/store"
)

// AssetInput carries the client-writable asset fields. Using a dedicated
// input type rather than model.Asset means a client-supplied id or
// registeredAt can never leak into storage.
type AssetInput struct {
	HostName        string `json:"hostName"`
	OperatingSystem string `json:"operatingSystem"`
	Status          string `json:"status"`
}

// Service provides asset CRUD over an AssetStore.
type Service struct {
	assets store.AssetStore
	log    *logger.Logger
}

// NewService creates the inventory service.
func NewService(assets store.AssetStore, log *logger.Logger) *Service {
	return &Service{
		assets: assets,
		log:    log.WithComponent("inventory"),
	}
}

// List returns all assets.
func (s *Service) List(ctx context.Context) ([]model.Asset, error) {
	assets, err := s.assets.ListAssets(ctx)
	if err != nil {
		return nil, apperrors.Database("list_assets", err)
	}
	return assets, nil
}

// Get returns the asset with the given id.
func (s *Service) Get(ctx context.Context, id uint) (*model.Asset, error) {
	asset, err := s.assets.FindAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("asset", formatID(id))
		}
		return nil, apperrors.Database("find_asset", err)
	}
	return asset, nil
}

// Create registers a new asset. The id and registration timestamp are
// assigned here; the status defaults to "Active" when absent.
func (s *Service) Create(ctx context.Context, input AssetInput) (*model.Asset, error) {
	asset := &model.Asset{
		HostName:        input.HostName,
		OperatingSystem: input.OperatingSystem,
		Status:          input.Status,
		RegisteredAt:    time.Now().UTC(),
	}
	if asset.Status == "" {
		asset.Status = model.DefaultAssetStatus
	}

	if err := s.assets.CreateAsset(ctx, asset); err != nil {
		return nil, apperrors.Database("create_asset", err)
	}

	s.log.Info("asset created", logger.Fields(
		logger.FieldAssetID, asset.ID,
		"host_name", asset.HostName,
	))
	return asset, nil
}

// Update overwrites the writable fields of an existing asset. The
// registration timestamp is immutable.
func (s *Service) Update(ctx context.Context, id uint, input AssetInput) (*model.Asset, error) {
	asset, err := s.assets.FindAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("asset", formatID(id))
		}
		return nil, apperrors.Database("find_asset", err)
	}

	asset.HostName = input.HostName
	asset.OperatingSystem = input.OperatingSystem
	asset.Status = input.Status

	if err := s.assets.UpdateAsset(ctx, asset); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("asset", formatID(id))
		}
		return nil, apperrors.Database("update_asset", err)
	}
	return asset, nil
}

// Delete removes the asset with the given id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.assets.DeleteAsset(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("asset", formatID(id))
		}
		return apperrors.Database("delete_asset", err)
	}

	s.log.Info("asset deleted", logger.Fields(logger.FieldAssetID, id))
	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
