package ports

import (
	"context"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// AuthService implements registration, login, and the admin-gated user
// management operations. Register and Login both return a freshly issued
// bearer token alongside the identity.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	CurrentUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, actorID, id, role string) (*domain.User, error)
}
