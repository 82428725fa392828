package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/service"
)

type stubSubjectStore struct {
	users map[string]*domain.User
}

func (s *stubSubjectStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func authTestSetup() (echo.MiddlewareFunc, *service.TokenManager, *stubSubjectStore) {
	tokens := service.NewTokenManager("test-secret", time.Hour)
	store := &stubSubjectStore{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "ann@x.com", Role: domain.RoleUser},
	}}
	return Auth(tokens, store), tokens, store
}

func invokeGuard(guard echo.MiddlewareFunc, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := guard(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	guard, tokens, _ := authTestSetup()

	token, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, err := invokeGuard(guard, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got, _ := c.Get("user_id").(string); got != "user-1" {
		t.Fatalf("expected user_id in context, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != domain.RoleUser {
		t.Fatalf("expected role in context, got %q", got)
	}
}

func TestAuthMiddleware_SchemeCaseInsensitive(t *testing.T) {
	guard, tokens, _ := authTestSetup()

	token, _ := tokens.Issue("user-1", domain.RoleUser)
	if _, err := invokeGuard(guard, "bearer "+token); err != nil {
		t.Fatalf("lowercase scheme should be accepted, got %v", err)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	guard, _, _ := authTestSetup()

	_, err := invokeGuard(guard, "")
	assertUnauthorized(t, err)
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	guard, tokens, _ := authTestSetup()

	token, _ := tokens.Issue("user-1", domain.RoleUser)
	for _, header := range []string{"Basic " + token, token} {
		_, err := invokeGuard(guard, header)
		assertUnauthorized(t, err)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	guard, _, _ := authTestSetup()

	_, err := invokeGuard(guard, "Bearer not-a-token")
	assertUnauthorized(t, err)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	guard, _, _ := authTestSetup()

	// token signed with the guard's secret but already past its expiry
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": domain.RoleUser,
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, guardErr := invokeGuard(guard, "Bearer "+expired)
	assertUnauthorized(t, guardErr)
}

func TestAuthMiddleware_DeletedSubject(t *testing.T) {
	guard, tokens, store := authTestSetup()

	token, _ := tokens.Issue("user-1", domain.RoleUser)
	delete(store.users, "user-1")

	_, err := invokeGuard(guard, "Bearer "+token)
	assertUnauthorized(t, err)
}
