package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
)

// AuthService implements registration, login, and admin user management.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	activity ports.ActivitySink
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, activity ports.ActivitySink) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, activity: activity}
}

// NormalizeEmail lowercases and trims an email address. Applied before
// every lookup and before storage so the unique index operates on the
// canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an identity with role "user" and returns a freshly
// issued token alongside it. The role is never caller-controlled.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || len(password) < 8 {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return "", nil, err
	}

	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityUserRegistered,
		ActorID:   created.ID,
		SubjectID: created.ID,
		Timestamp: now,
	})

	return token, created, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser resolves the authenticated subject to its stored record.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListUsers returns all identities. Admin-gated at the transport layer.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateRole sets a user's role. Tokens already issued to that user keep
// the old role claim until they expire; the new role takes effect on the
// next login.
func (s *AuthService) UpdateRole(ctx context.Context, actorID, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityRoleChanged,
		ActorID:   actorID,
		SubjectID: id,
		Detail:    role,
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}
