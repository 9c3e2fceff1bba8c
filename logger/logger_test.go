package logger

import (
	"errors"
	"testing"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "inventario")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "inventario" {
		t.Errorf("expected service 'inventario', got %q", l.service)
	}
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{
		Level:  "not-a-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "inventario")
	if l == nil {
		t.Fatal("expected non-nil logger despite invalid level")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc").WithComponent("store")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "svc" {
		t.Errorf("component logger lost service name: %q", l.service)
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("svc").WithError(errors.New("boom"))
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Fatalf("unexpected fields: %v", m)
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Fatalf("expected dangling key dropped, got %v", m)
	}
}
