package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/kbukum/inventario/errors"
	"github.com/kbukum/inventario/store"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const validYAML = `
name: inventario
environment: development
auth:
  jwt:
    secret: unit-test-secret-0123456789abcdef
    issuer: inventario
    audience: inventario-clients
`

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(WithConfigFile(writeConfigFile(t, validYAML)))
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}

	if cfg.Name != "inventario" {
		t.Errorf("expected name inventario, got %s", cfg.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.JWT.TokenTTL != 8*time.Hour {
		t.Errorf("expected default token ttl 8h, got %s", cfg.Auth.JWT.TokenTTL)
	}
	if cfg.Store.Driver != store.DriverMemory {
		t.Errorf("expected default memory driver, got %s", cfg.Store.Driver)
	}
	if !cfg.Debug {
		t.Error("expected debug to default on in development")
	}
}

func TestLoadFailsWithoutSigningSecret(t *testing.T) {
	yaml := `
name: inventario
auth:
  jwt:
    issuer: inventario
    audience: inventario-clients
`
	_, err := Load(WithConfigFile(writeConfigFile(t, yaml)))
	if err == nil {
		t.Fatal("expected startup failure without a signing secret")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrCodeConfiguration {
		t.Fatalf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	yaml := `
name: inventario
environment: qa
auth:
  jwt:
    secret: unit-test-secret-0123456789abcdef
    issuer: inventario
    audience: inventario-clients
`
	if _, err := Load(WithConfigFile(writeConfigFile(t, yaml))); err == nil {
		t.Fatal("expected error for unknown environment")
	}
}

func TestEnvironmentVariableOverridesFile(t *testing.T) {
	t.Setenv("INVENTARIO_SERVER_PORT", "9090")
	t.Setenv("INVENTARIO_JWT_ISSUER", "issuer-from-env")

	cfg, err := Load(WithConfigFile(writeConfigFile(t, validYAML)))
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected env override 9090, got %d", cfg.Server.Port)
	}
	if cfg.Auth.JWT.Issuer != "issuer-from-env" {
		t.Errorf("expected env override for issuer, got %s", cfg.Auth.JWT.Issuer)
	}
}

func TestSecretFromEnvOnly(t *testing.T) {
	yaml := `
name: inventario
auth:
  jwt:
    issuer: inventario
    audience: inventario-clients
`
	t.Setenv("INVENTARIO_JWT_SECRET", "env-secret-0123456789abcdef012345")

	cfg, err := Load(WithConfigFile(writeConfigFile(t, yaml)))
	if err != nil {
		t.Fatalf("expected secret from environment to satisfy validation, got %v", err)
	}
	if cfg.Auth.JWT.Secret != "env-secret-0123456789abcdef012345" {
		t.Error("secret was not taken from the environment")
	}
}
