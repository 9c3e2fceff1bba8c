package password

import (
	"strings"
	"testing"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := NewBcryptHasher(WithCost(4)) // min cost keeps the test fast

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := h.Verify("correct horse", hash); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Verify("battery staple", hash); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestBcryptSaltVaries(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))

	a, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
}

func TestBcryptAcceptsEmptyPassword(t *testing.T) {
	// No password policy: registration accepts any string, including empty.
	h := NewBcryptHasher(WithCost(4))

	hash, err := h.Hash("")
	if err != nil {
		t.Fatalf("Hash(\"\"): %v", err)
	}
	if err := h.Verify("", hash); err != nil {
		t.Fatalf("expected empty password to verify, got %v", err)
	}
	if err := h.Verify("not empty", hash); err == nil {
		t.Fatal("expected mismatch")
	}
}

func TestBcryptRejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected error for password over the bcrypt 72-byte limit")
	}
}

func TestBcryptVerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(WithCost(4))
	if err := h.Verify("anything", "not-a-bcrypt-digest"); err == nil {
		t.Fatal("expected error for malformed digest")
	}
}

func TestArgon2HashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(WithArgon2Memory(8 * 1024)) // small memory for tests

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected digest format: %s", hash)
	}
	if err := h.Verify("s3cret", hash); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Verify("wrong", hash); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestArgon2VerifyMalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	tests := []string{
		"",
		"plain",
		"$argon2id$bad",
		"$bcrypt$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=oops$c2FsdA$aGFzaA",
	}
	for _, digest := range tests {
		if err := h.Verify("pw", digest); err == nil {
			t.Errorf("expected error for malformed digest %q", digest)
		}
	}
}

func TestNewHasherFactory(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default is bcrypt", Config{}, "*password.BcryptHasher"},
		{"bcrypt", Config{Algorithm: AlgorithmBcrypt}, "*password.BcryptHasher"},
		{"argon2id", Config{Algorithm: AlgorithmArgon2id}, "*password.Argon2Hasher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHasher(tt.cfg)
			switch h.(type) {
			case *BcryptHasher:
				if tt.want != "*password.BcryptHasher" {
					t.Fatalf("got bcrypt, want %s", tt.want)
				}
			case *Argon2Hasher:
				if tt.want != "*password.Argon2Hasher" {
					t.Fatalf("got argon2, want %s", tt.want)
				}
			default:
				t.Fatalf("unexpected hasher type %T", h)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Algorithm: "md5"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}

	good := Config{}
	good.ApplyDefaults()
	if err := good.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}
