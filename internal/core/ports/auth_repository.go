package ports

import (
	"context"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// UserRepository defines persistence for identity records. Emails are
// stored normalized (lowercase, trimmed); uniqueness is enforced by the
// store itself via a unique index.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
