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

type stubEventService struct {
	events    []*domain.Event
	createErr error
	updateErr error
	deleteErr error
	lastInput ports.CreateEventInput
}

func (s *stubEventService) CreateEvent(_ context.Context, _ string, input ports.CreateEventInput) (*domain.Event, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastInput = input
	return &domain.Event{
		ID:       "e1",
		Name:     input.Name,
		Category: input.Category,
		Date:     input.Date,
		Venue:    input.Venue,
		Price:    input.Price,
		Image:    input.Image,
	}, nil
}

func (s *stubEventService) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (s *stubEventService) ListEvents(_ context.Context) ([]*domain.Event, error) {
	return s.events, nil
}

func (s *stubEventService) UpdateEvent(_ context.Context, _, id string, input ports.UpdateEventInput) (*domain.Event, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	e := &domain.Event{ID: id, Name: "GopherCon"}
	if input.Venue != nil {
		e.Venue = *input.Venue
	}
	return e, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, _, _ string) error {
	return s.deleteErr
}

func TestEventHandler_List(t *testing.T) {
	h := NewEventHandler(&stubEventService{events: []*domain.Event{
		{ID: "e1", Name: "GopherCon"},
		{ID: "e2", Name: "DevOps Days"},
	}})
	c, rec := newJSONContext(http.MethodGet, "/api/events", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var events []*domain.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestEventHandler_Get(t *testing.T) {
	h := NewEventHandler(&stubEventService{events: []*domain.Event{{ID: "e1", Name: "GopherCon"}}})

	c, rec := newJSONContext(http.MethodGet, "/api/events/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newJSONContext(http.MethodGet, "/api/events/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventHandler_Create(t *testing.T) {
	svc := &stubEventService{}
	h := NewEventHandler(svc)

	body := `{"name":"GopherCon","description":"Go talks","category":"conference",` +
		`"date":"2026-10-01T09:00:00Z","venue":"Moscone Center","price":349.99,` +
		`"image":"data:image/png;base64,iVBORw0KGgo="}`
	c, rec := newJSONContext(http.MethodPost, "/api/events", body)
	asIdentity(c, "admin-1", domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.Date != time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC) {
		t.Fatalf("date not parsed: %v", svc.lastInput.Date)
	}
}

func TestEventHandler_Create_Validation(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing venue", `{"name":"X","description":"d","category":"c","date":"2026-10-01T09:00:00Z","image":"data:image/png;base64,x"}`},
		{"negative price", `{"name":"X","description":"d","category":"c","date":"2026-10-01T09:00:00Z","venue":"v","price":-5,"image":"data:image/png;base64,x"}`},
		{"external image url", `{"name":"X","description":"d","category":"c","date":"2026-10-01T09:00:00Z","venue":"v","image":"https://cdn.example.com/x.png"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/api/events", tc.body)
			asIdentity(c, "admin-1", domain.RoleAdmin)
			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestEventHandler_Create_MissingIdentity(t *testing.T) {
	h := NewEventHandler(&stubEventService{})
	c, _ := newJSONContext(http.MethodPost, "/api/events", `{}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestEventHandler_Update(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	c, rec := newJSONContext(http.MethodPut, "/api/events/e1", `{"venue":"Online"}`)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	asIdentity(c, "admin-1", domain.RoleAdmin)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var event domain.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if event.Venue != "Online" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestEventHandler_Update_NotFound(t *testing.T) {
	h := NewEventHandler(&stubEventService{updateErr: domain.ErrEventNotFound})

	c, _ := newJSONContext(http.MethodPut, "/api/events/missing", `{"venue":"Online"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	asIdentity(c, "admin-1", domain.RoleAdmin)

	if err := h.Update(c); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventHandler_Delete(t *testing.T) {
	h := NewEventHandler(&stubEventService{})

	c, rec := newJSONContext(http.MethodDelete, "/api/events/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")
	asIdentity(c, "admin-1", domain.RoleAdmin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "event removed" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}
