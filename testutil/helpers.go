package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/inventario/api"
	"github.com/kbukum/inventario/auth"
	"github.com/kbukum/inventario/auth/jwt"
	"github.com/kbukum/inventario/auth/password"
	"github.com/kbukum/inventario/inventory"
	"github.com/kbukum/inventario/logger"
	"github.com/kbukum/inventario/store"
)

// TestSecret is the HMAC key used by routers built with NewRouter.
const TestSecret = "test-secret-0123456789abcdef0123456789abcdef"

// NewLogger returns a quiet logger suitable for tests.
func NewLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Format: "console"}, "test")
}

// NewJWTService builds a token service with the test secret and the given
// lifetime. Zero ttl keeps the default.
func NewJWTService(t *testing.T, ttl time.Duration) *jwt.Service[*auth.Claims] {
	t.Helper()

	cfg := &jwt.Config{
		Secret:   TestSecret,
		Issuer:   "inventario-test",
		Audience: "inventario-clients",
		TokenTTL: ttl,
	}
	svc, err := jwt.NewService(cfg, func() *auth.Claims { return &auth.Claims{} })
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}
	return svc
}

// NewRouter assembles the full API on an in-memory store and returns the
// engine ready for ServeHTTP.
func NewRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := NewLogger()
	mem := store.NewMemory()
	hasher := password.NewBcryptHasher(password.WithCost(4))
	tokens := NewJWTService(t, 0)

	authSvc := auth.NewService(mem, hasher, tokens, log)
	inventorySvc := inventory.NewService(mem, log)

	r := gin.New()
	api.New(authSvc, inventorySvc, auth.NewValidator(tokens.ValidatorFunc()), log).Register(r)
	return r
}

// DoJSON performs a request against the engine with an optional JSON body
// and bearer token, and returns the recorder.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// DecodeJSON unmarshals the recorder body into out, failing the test on
// malformed JSON.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("response is not valid JSON: %v (body: %s)", err, rr.Body.String())
	}
}

// RegisterAndLogin creates a user through the HTTP surface and returns a
// valid bearer token for it.
func RegisterAndLogin(t *testing.T, r *gin.Engine, username, pass string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": pass}
	if rr := DoJSON(t, r, http.MethodPost, "/auth/register", creds, ""); rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rr.Code, rr.Body.String())
	}

	rr := DoJSON(t, r, http.MethodPost, "/auth/login", creds, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	DecodeJSON(t, rr, &resp)
	if resp.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Token
}
