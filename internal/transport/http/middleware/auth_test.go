package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/auth"
	"github.com/paclead/platform-backend/internal/transport/http/middleware"
)

const (
	testKey   = "middleware-test-secret-32-chars!!"
	otherKey  = "different-key-that-is-32-chars!!"
	testScope = "12345678000199"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newIssuer(t *testing.T, key string, ttl time.Duration) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer([]byte(key), "HS256", ttl)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return issuer
}

// newEngine builds a minimal gin engine with the Auth middleware protecting
// GET /protected. The handler writes the scopeID from context so we can
// assert the claims were attached.
func newEngine(t *testing.T) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Auth(newIssuer(t, testKey, time.Hour)), func(c *gin.Context) {
		c.String(http.StatusOK, "%s", c.GetString(middleware.CtxScopeID))
	})
	return r
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	w := request(t, newEngine(t), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_NonBearerScheme_Returns401(t *testing.T) {
	w := request(t, newEngine(t), "Basic dXNlcjpwYXNz")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken_Returns401(t *testing.T) {
	w := request(t, newEngine(t), "Bearer not.a.jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ExpiredToken_Returns401(t *testing.T) {
	tok, err := newIssuer(t, testKey, -time.Hour).Issue("user-1", "a@b.com", testScope)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := request(t, newEngine(t), "Bearer "+tok)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_WrongSigningKey_Returns401(t *testing.T) {
	tok, err := newIssuer(t, otherKey, time.Hour).Issue("user-1", "a@b.com", testScope)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := request(t, newEngine(t), "Bearer "+tok)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_ValidToken_PassesAndSetsClaims(t *testing.T) {
	tok, err := newIssuer(t, testKey, time.Hour).Issue("user-abc", "a@b.com", testScope)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := request(t, newEngine(t), "Bearer "+tok)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != testScope {
		t.Errorf("body = %q, want scope %q", got, testScope)
	}
}
