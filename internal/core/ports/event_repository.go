package ports

import (
	"context"
	"time"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// EventUpdate carries a partial update: nil fields are left untouched.
type EventUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Date        *time.Time
	Venue       *string
	Price       *float64
	Image       *string
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, update EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
