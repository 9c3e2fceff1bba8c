package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kbukum/inventario/model"
)

func TestMemoryCreateAndFindUser(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	user := &model.User{Username: "alice", PasswordHash: "digest"}
	if err := m.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned ID")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	found, err := m.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindUserByUsername: %v", err)
	}
	if found.ID != user.ID || found.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := m.FindUserByUsername(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.CreateUser(ctx, &model.User{Username: "alice"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err := m.CreateUser(ctx, &model.User{Username: "alice"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestMemoryConcurrentDuplicateRegistration(t *testing.T) {
	// N goroutines race to register the same username; exactly one may win.
	ctx := context.Background()
	m := NewMemory()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.CreateUser(ctx, &model.User{Username: "alice"})
		}()
	}
	wg.Wait()
	close(errs)

	var created, rejected int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrUsernameTaken):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", created)
	}
	if rejected != attempts-1 {
		t.Fatalf("expected %d rejections, got %d", attempts-1, rejected)
	}
}

func TestMemoryAssetLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	assets, err := m.ListAssets(ctx)
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if assets == nil || len(assets) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", assets)
	}

	asset := &model.Asset{
		HostName:        "SRV-01",
		OperatingSystem: "Debian 13",
		Status:          model.DefaultAssetStatus,
		RegisteredAt:    time.Now().UTC(),
	}
	if err := m.CreateAsset(ctx, asset); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	found, err := m.FindAssetByID(ctx, asset.ID)
	if err != nil {
		t.Fatalf("FindAssetByID: %v", err)
	}
	if found.HostName != "SRV-01" {
		t.Fatalf("unexpected asset: %+v", found)
	}

	found.Status = "In Maintenance"
	if err := m.UpdateAsset(ctx, found); err != nil {
		t.Fatalf("UpdateAsset: %v", err)
	}
	updated, err := m.FindAssetByID(ctx, asset.ID)
	if err != nil {
		t.Fatalf("FindAssetByID after update: %v", err)
	}
	if updated.Status != "In Maintenance" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := m.DeleteAsset(ctx, asset.ID); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	if _, err := m.FindAssetByID(ctx, asset.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryAssetNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.FindAssetByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.UpdateAsset(ctx, &model.Asset{ID: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.DeleteAsset(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryFindReturnsCopy(t *testing.T) {
	// Mutating a returned record must not change the stored one.
	ctx := context.Background()
	m := NewMemory()

	asset := &model.Asset{HostName: "SRV-01"}
	if err := m.CreateAsset(ctx, asset); err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}

	found, _ := m.FindAssetByID(ctx, asset.ID)
	found.HostName = "mutated"

	again, _ := m.FindAssetByID(ctx, asset.ID)
	if again.HostName != "SRV-01" {
		t.Fatal("store returned a reference to its internal record")
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Driver != DriverMemory {
		t.Fatalf("expected default driver memory, got %s", cfg.Driver)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := Config{Driver: "postgres"}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNewReturnsMemoryByDefault(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", s)
	}
}
