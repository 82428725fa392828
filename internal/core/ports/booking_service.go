package ports

import (
	"context"
	"time"

	"github.com/eventhub/booking-system/internal/core/domain"
)

// EventSummary is the slice of event data joined into booking views.
type EventSummary struct {
	ID       string
	Name     string
	Category string
	Date     time.Time
	Venue    string
	Price    float64
}

// BookingResult is returned after creating a booking.
type BookingResult struct {
	Booking *domain.Booking
	Event   EventSummary
}

// BookingDetail is one entry in a user's booking list. Event is nil when
// the referenced event has since been deleted.
type BookingDetail struct {
	ID        string
	EventID   string
	CreatedAt time.Time
	Event     *EventSummary
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, userID, eventID string) (*BookingResult, error)
	ListUserBookings(ctx context.Context, userID string) ([]BookingDetail, error)
}
