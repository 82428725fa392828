package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/booking-system/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	updateErr   error
	user        *domain.User
	users       []*domain.User
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (string, *domain.User, error) {
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	u := &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}
	return "issued-token", u, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "issued-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, id string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrUserNotFound
	}
	if s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubAuthService) ListUsers(_ context.Context) ([]*domain.User, error) {
	return s.users, nil
}

func (s *stubAuthService) UpdateRole(_ context.Context, _, id, role string) (*domain.User, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.User{ID: id, Role: role}, nil
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asIdentity(c echo.Context, userID, role string) {
	c.Set("user_id", userID)
	c.Set("role", role)
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"longenough1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "issued-token" || resp.User == nil || resp.User.Email != "ann@x.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing email", `{"name":"Ann","password":"longenough1"}`},
		{"bad email", `{"name":"Ann","email":"not-an-email","password":"longenough1"}`},
		{"short password", `{"name":"Ann","email":"ann@x.com","password":"short"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/api/auth/register", tc.body)
			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"longenough1"}`)

	// domain errors pass through for the central error handler to map
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"ann@x.com","password":"longenough1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "issued-token" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"ann@x.com","password":"wrongpass1"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		user: &domain.User{ID: "u1", Name: "Ann", Email: "ann@x.com", Role: domain.RoleUser},
	})
	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	asIdentity(c, "u1", domain.RoleUser)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Email != "ann@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password hash must never be serialized: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_MissingIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Me_VanishedSubject(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")
	asIdentity(c, "ghost", domain.RoleUser)

	if err := h.Me(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{users: []*domain.User{
		{ID: "u1", Email: "a@x.com", Role: domain.RoleUser},
		{ID: "u2", Email: "b@x.com", Role: domain.RoleAdmin},
	}})
	c, rec := newJSONContext(http.MethodGet, "/api/auth/users", "")
	asIdentity(c, "u2", domain.RoleAdmin)

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var users []*domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestAuthHandler_UpdateRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newJSONContext(http.MethodPut, "/api/auth/users/u1/role", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	asIdentity(c, "admin-1", domain.RoleAdmin)

	if err := h.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != "u1" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_UpdateRole_InvalidRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newJSONContext(http.MethodPut, "/api/auth/users/u1/role", `{"role":"owner"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	asIdentity(c, "admin-1", domain.RoleAdmin)

	err := h.UpdateRole(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
