package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/transport/http/handler"
	"github.com/paclead/platform-backend/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via
// method matching.
type fakeAuthUsecase struct {
	signup func(ctx context.Context, input usecase.SignupInput) (string, error)
	login  func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, input usecase.SignupInput) (string, error) {
	return f.signup(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return f.login(ctx, email, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Signup ----

func TestSignup_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/signup", `{bad json}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_MissingFields_Returns400(t *testing.T) {
	// No name, no password.
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/signup",
		`{"email":"a@b.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_ValidationError_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (string, error) {
			return "", fmt.Errorf("%w: cpf must have 11 digits", usecase.ErrValidation)
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/signup",
		`{"name":"Maria","cpf":"123","email":"maria@example.com","password":"s3cret"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "cpf must have 11 digits") {
		t.Errorf("body %q does not name the invalid field", w.Body.String())
	}
}

func TestSignup_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (string, error) {
			return "", domain.ErrDuplicateEmail
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/signup",
		`{"name":"Maria","cpf":"11144477735","email":"maria@example.com","password":"s3cret"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSignup_Success_ReturnsToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, input usecase.SignupInput) (string, error) {
			if input.CPF != "11144477735" {
				t.Errorf("cpf = %q, want passthrough", input.CPF)
			}
			return "signed.jwt.token", nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/signup",
		`{"name":"Maria","cpf":"11144477735","email":"maria@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Status      string `json:"status"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.AccessToken != "signed.jwt.token" {
		t.Errorf("response = %+v", resp)
	}
}

func TestSignup_InternalError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _ usecase.SignupInput) (string, error) {
			return "", errors.New("db down")
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/signup",
		`{"name":"Maria","cpf":"11144477735","email":"maria@example.com","password":"s3cret"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Login ----

func TestLogin_InvalidCredentials_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/login",
		`{"email":"maria@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLogin_Success_ReturnsToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, password string) (string, error) {
			if email != "maria@example.com" || password != "s3cret" {
				t.Errorf("credentials = %q/%q, want passthrough", email, password)
			}
			return "signed.jwt.token", nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/auth/login",
		`{"email":"maria@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "signed.jwt.token") {
		t.Errorf("body %q does not contain the token", w.Body.String())
	}
}

func TestLogin_MissingBody_Returns400(t *testing.T) {
	w := postJSON(t, newAuthEngine(&fakeAuthUsecase{}), "/api/auth/login", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
