package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/inventario/auth"
	"github.com/kbukum/inventario/auth/authctx"
	"github.com/kbukum/inventario/server/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------------------------------------------------------------------------
// Auth (access gate)
// ---------------------------------------------------------------------------

type staticClaims struct {
	Subject string
}

func acceptingValidator(claims *staticClaims) auth.TokenValidator {
	return auth.NewValidator(func(token string) (any, error) {
		if token == "valid-token" {
			return claims, nil
		}
		return nil, errors.New("invalid token")
	})
}

func gatedRouter(validator auth.TokenValidator) *gin.Engine {
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(middleware.Auth(validator))
	protected.GET("/resource", func(c *gin.Context) {
		claims, ok := authctx.Get[*staticClaims](c.Request.Context())
		if !ok {
			c.String(http.StatusInternalServerError, "claims missing from request context")
			return
		}
		c.String(http.StatusOK, claims.Subject)
	})
	return r
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := gatedRouter(acceptingValidator(&staticClaims{}))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/api/resource", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	var body map[string]map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"]["code"] != "UNAUTHENTICATED" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r := gatedRouter(acceptingValidator(&staticClaims{}))

	headers := []string{
		"valid-token",        // no scheme
		"Basic dXNlcjpwdw==", // wrong scheme
		"Bearer",             // no token
		"Bearer ",            // empty token
	}
	for _, h := range headers {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/resource", http.NoBody)
		req.Header.Set("Authorization", h)
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", h, rr.Code)
		}
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := gatedRouter(acceptingValidator(&staticClaims{}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/resource", http.NoBody)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuthPassesValidTokenAndAttachesClaims(t *testing.T) {
	r := gatedRouter(acceptingValidator(&staticClaims{Subject: "alice"}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/resource", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "alice" {
		t.Fatalf("expected claims subject in response, got %q", rr.Body.String())
	}
}

func TestAuthSchemeIsCaseInsensitive(t *testing.T) {
	r := gatedRouter(acceptingValidator(&staticClaims{Subject: "alice"}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/resource", http.NoBody)
	req.Header.Set("Authorization", "bearer valid-token")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for lowercase scheme, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestRecoveryNoPanic(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRecoveryPanic(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/boom", func(_ *gin.Context) { panic("test panic") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/boom", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "Internal server error" {
		t.Fatalf("unexpected error message: %s", body["error"])
	}
}

// ---------------------------------------------------------------------------
// RequestID
// ---------------------------------------------------------------------------

func TestRequestIDGeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id in response headers")
	}
}

func TestRequestIDPreservesExisting(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "custom-id-123")
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "custom-id-123" {
		t.Fatalf("expected custom-id-123, got %s", got)
	}
}

// ---------------------------------------------------------------------------
// CORS
// ---------------------------------------------------------------------------

func TestCORSSetsHeaders(t *testing.T) {
	cfg := middleware.CORSConfig{
		AllowedOrigins: []string{"https://example.com"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	r := gin.New()
	r.Use(middleware.CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("unexpected allow-origin: %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := middleware.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization"},
	}
	r := gin.New()
	r.Use(middleware.CORS(cfg))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("OPTIONS", "/", http.NoBody))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected wildcard allow-origin")
	}
}
