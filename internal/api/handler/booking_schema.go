package handler

import (
	"time"

	"github.com/eventhub/booking-system/internal/core/ports"
)

type createBookingRequest struct {
	EventID string `json:"event_id" validate:"required"`
}

type eventSummaryResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue"`
	Price    float64   `json:"price"`
}

type bookingResponse struct {
	ID        string                `json:"id"`
	EventID   string                `json:"event_id"`
	CreatedAt time.Time             `json:"created_at"`
	Event     *eventSummaryResponse `json:"event"`
}

type bookingSummary struct {
	EventName      string  `json:"event_name"`
	PricePerTicket float64 `json:"price_per_ticket"`
}

type bookingCreatedResponse struct {
	Message string          `json:"message"`
	Booking bookingResponse `json:"booking"`
	Summary bookingSummary  `json:"summary"`
}

func toEventSummaryResponse(s *ports.EventSummary) *eventSummaryResponse {
	if s == nil {
		return nil
	}
	return &eventSummaryResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Date:     s.Date,
		Venue:    s.Venue,
		Price:    s.Price,
	}
}
