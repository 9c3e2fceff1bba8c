package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/model"
)

// Database is a GORM-backed Store using SQLite. Username uniqueness is
// enforced by the unique index on users.username; a violating insert is
// reported as ErrUsernameTaken, so the check-then-insert race between
// concurrent registrations resolves inside the database.
type Database struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDatabase opens (or creates) the SQLite database at cfg.Path and runs
// schema migrations for all models.
func NewDatabase(cfg Config) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	gl := gormlogger.Default.LogMode(gormlogger.Silent)
	if cfg.LogQueries {
		gl = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         gl,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Asset{}); err != nil {
		return nil, fmt.Errorf("store: auto migrate: %w", err)
	}

	return &Database{
		db:  db,
		log: logger.WithComponent("store"),
	}, nil
}

func (d *Database) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find user: %w", err)
	}
	return &user, nil
}

func (d *Database) CreateUser(ctx context.Context, user *model.User) error {
	err := d.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("store: create user: %w", err)
	}
	return nil
}

func (d *Database) ListAssets(ctx context.Context) ([]model.Asset, error) {
	assets := make([]model.Asset, 0)
	if err := d.db.WithContext(ctx).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("store: list assets: %w", err)
	}
	return assets, nil
}

func (d *Database) FindAssetByID(ctx context.Context, id uint) (*model.Asset, error) {
	var asset model.Asset
	err := d.db.WithContext(ctx).First(&asset, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find asset: %w", err)
	}
	return &asset, nil
}

func (d *Database) CreateAsset(ctx context.Context, asset *model.Asset) error {
	if err := d.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("store: create asset: %w", err)
	}
	return nil
}

func (d *Database) UpdateAsset(ctx context.Context, asset *model.Asset) error {
	res := d.db.WithContext(ctx).Model(&model.Asset{}).
		Where("id = ?", asset.ID).
		Select("host_name", "operating_system", "status").
		Updates(asset)
	if res.Error != nil {
		return fmt.Errorf("store: update asset: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *Database) DeleteAsset(ctx context.Context, id uint) error {
	res := d.db.WithContext(ctx).Delete(&model.Asset{}, id)
	if res.Error != nil {
		return fmt.Errorf("store: delete asset: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
