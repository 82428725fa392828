package ports

import (
	"context"
	"time"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// CreateEventInput carries all data needed to create an event.
type CreateEventInput struct {
	Name        string
	Description string
	Category    string
	Date        time.Time
	Venue       string
	Price       float64
	Image       string
}

// UpdateEventInput is a partial event update; nil fields are ignored.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Category    *string
	Date        *time.Time
	Venue       *string
	Price       *float64
	Image       *string
}

// EventService defines use-case operations for events.
type EventService interface {
	CreateEvent(ctx context.Context, actorID string, input CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, actorID, id string, input UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actorID, id string) error
}
