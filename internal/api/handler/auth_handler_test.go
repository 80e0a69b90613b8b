package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/streamvault/identity-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, username, email, password string) (*domain.User, error)
	registerAdminFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn         func(ctx context.Context, username, password string) (*domain.Token, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerAdminFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	return s.loginFn(ctx, username, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "a@example.com" || password != "pw123secure" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{Username: username, Email: email, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"a@example.com","password":"pw123secure"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || !strings.Contains(resp.Message, "alice") {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"bob","email":"b@example.com","password":"pw123secure"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", "not-json")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/register", `{"username":"alice"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RegisterAdmin_Success(t *testing.T) {
	stub := &stubAuthService{
		registerAdminFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return &domain.User{Username: username, Roles: []string{domain.RoleAdmin}, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register-admin",
		`{"username":"root","email":"root@example.com","password":"pw123secure"}`)

	if err := h.RegisterAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	validTo := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Token, error) {
			if username != "alice" || password != "pw123secure" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.Token{Value: "token123", ValidTo: validTo}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"pw123secure"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" {
		t.Fatalf("expected token, got %q", resp.Token)
	}
	if !resp.ValidTo.Equal(validTo) {
		t.Fatalf("unexpected validTo: %v", resp.ValidTo)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Token, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"bad12345"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to reach the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*domain.Token, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set("username", "alice")
	c.Set("roles", []string{"Admin"})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp identityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "alice" || len(resp.Roles) != 1 || resp.Roles[0] != "Admin" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
