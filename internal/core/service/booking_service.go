package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
)

type bookingService struct {
	bookings ports.BookingRepository
	events   ports.EventRepository
	activity ports.ActivitySink
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(bookings ports.BookingRepository, events ports.EventRepository, activity ports.ActivitySink, log zerolog.Logger) ports.BookingService {
	return &bookingService{bookings: bookings, events: events, activity: activity, log: log}
}

// CreateBooking books the event for the authenticated user. The event
// must exist at booking time.
func (s *bookingService) CreateBooking(ctx context.Context, userID, eventID string) (*ports.BookingResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:    userID,
		EventID:   event.ID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityBookingCreated,
		ActorID:   userID,
		SubjectID: created.ID,
		Detail:    event.Name,
		Timestamp: created.CreatedAt,
	})

	s.log.Info().
		Str("booking_id", created.ID).
		Str("event_id", event.ID).
		Msg("booking created")

	return &ports.BookingResult{Booking: created, Event: eventSummary(event)}, nil
}

// ListUserBookings returns the caller's bookings with event details
// joined in. A booking whose event was deleted keeps a nil Event.
func (s *bookingService) ListUserBookings(ctx context.Context, userID string) ([]ports.BookingDetail, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]ports.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := ports.BookingDetail{
			ID:        b.ID,
			EventID:   b.EventID,
			CreatedAt: b.CreatedAt,
		}
		event, err := s.events.FindByID(ctx, b.EventID)
		switch {
		case err == nil:
			summary := eventSummary(event)
			detail.Event = &summary
		case errors.Is(err, domain.ErrEventNotFound):
			// event deleted after booking; keep the booking visible
		default:
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func eventSummary(e *domain.Event) ports.EventSummary {
	return ports.EventSummary{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Date:     e.Date,
		Venue:    e.Venue,
		Price:    e.Price,
	}
}
