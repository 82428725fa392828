package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
)

type stubBookingService struct {
	createErr error
	details   []ports.BookingDetail
}

func (s *stubBookingService) CreateBooking(_ context.Context, userID, eventID string) (*ports.BookingResult, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &ports.BookingResult{
		Booking: &domain.Booking{
			ID:        "b1",
			UserID:    userID,
			EventID:   eventID,
			CreatedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
		},
		Event: ports.EventSummary{
			ID:       eventID,
			Name:     "GopherCon",
			Category: "conference",
			Venue:    "Moscone Center",
			Price:    349.99,
		},
	}, nil
}

func (s *stubBookingService) ListUserBookings(_ context.Context, _ string) ([]ports.BookingDetail, error) {
	return s.details, nil
}

func TestBookingHandler_Create(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, rec := newJSONContext(http.MethodPost, "/api/bookings", `{"event_id":"e1"}`)
	asIdentity(c, "user-1", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp bookingCreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "booking created" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Booking.ID != "b1" || resp.Booking.EventID != "e1" {
		t.Fatalf("unexpected booking: %+v", resp.Booking)
	}
	if resp.Summary.EventName != "GopherCon" || resp.Summary.PricePerTicket != 349.99 {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
}

func TestBookingHandler_Create_MissingEventID(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, _ := newJSONContext(http.MethodPost, "/api/bookings", `{}`)
	asIdentity(c, "user-1", domain.RoleUser)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBookingHandler_Create_UnknownEvent(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{createErr: domain.ErrEventNotFound})

	c, _ := newJSONContext(http.MethodPost, "/api/bookings", `{"event_id":"missing"}`)
	asIdentity(c, "user-1", domain.RoleUser)

	if err := h.Create(c); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestBookingHandler_Create_MissingIdentity(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, _ := newJSONContext(http.MethodPost, "/api/bookings", `{"event_id":"e1"}`)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBookingHandler_ListMine(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{details: []ports.BookingDetail{
		{
			ID:      "b1",
			EventID: "e1",
			Event:   &ports.EventSummary{ID: "e1", Name: "GopherCon"},
		},
		{
			ID:      "b2",
			EventID: "e2",
			// event deleted after booking
		},
	}})

	c, rec := newJSONContext(http.MethodGet, "/api/bookings/user", "")
	asIdentity(c, "user-1", domain.RoleUser)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(out))
	}
	if out[0].Event == nil || out[0].Event.Name != "GopherCon" {
		t.Fatalf("expected joined event, got %+v", out[0])
	}
	if out[1].Event != nil {
		t.Fatalf("deleted event must serialize as null, got %+v", out[1].Event)
	}
}

func TestBookingHandler_ListMine_Empty(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, rec := newJSONContext(http.MethodGet, "/api/bookings/user", "")
	asIdentity(c, "user-1", domain.RoleUser)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// empty list, not null
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
