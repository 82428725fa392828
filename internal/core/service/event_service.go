package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
)

// EventCache abstracts the event-list cache (Redis). A miss is reported
// as (nil, nil). Cache failures are never fatal to the request.
type EventCache interface {
	GetList(ctx context.Context) ([]*domain.Event, error)
	SetList(ctx context.Context, events []*domain.Event) error
	Invalidate(ctx context.Context) error
}

type eventService struct {
	repo     ports.EventRepository
	cache    EventCache
	activity ports.ActivitySink
	log      zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, cache EventCache, activity ports.ActivitySink, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, cache: cache, activity: activity, log: log}
}

// CreateEvent validates and persists a new event, then invalidates the
// list cache.
func (s *eventService) CreateEvent(ctx context.Context, actorID string, input ports.CreateEventInput) (*domain.Event, error) {
	if !validInlineImage(input.Image) {
		return nil, domain.ErrInvalidImage
	}

	event := &domain.Event{
		Name:        strings.TrimLeft(input.Name, " \t\n\r"),
		Description: strings.TrimLeft(input.Description, " \t\n\r"),
		Category:    input.Category,
		Date:        input.Date.UTC(),
		Venue:       input.Venue,
		Price:       input.Price,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityEventCreated,
		ActorID:   actorID,
		SubjectID: created.ID,
		Detail:    created.Name,
		Timestamp: time.Now().UTC(),
	})

	return created, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

// ListEvents serves the public event list, backed by the cache.
func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	cached, err := s.cache.GetList(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("event cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, events); err != nil {
		s.log.Warn().Err(err).Msg("event cache write failed")
	}
	return events, nil
}

// UpdateEvent applies a partial update. Provided fields get the same
// validation as on create.
func (s *eventService) UpdateEvent(ctx context.Context, actorID, id string, input ports.UpdateEventInput) (*domain.Event, error) {
	if input.Image != nil && !validInlineImage(*input.Image) {
		return nil, domain.ErrInvalidImage
	}

	update := ports.EventUpdate{
		Category: input.Category,
		Venue:    input.Venue,
		Price:    input.Price,
		Image:    input.Image,
	}
	if input.Name != nil {
		name := strings.TrimLeft(*input.Name, " \t\n\r")
		update.Name = &name
	}
	if input.Description != nil {
		desc := strings.TrimLeft(*input.Description, " \t\n\r")
		update.Description = &desc
	}
	if input.Date != nil {
		date := input.Date.UTC()
		update.Date = &date
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityEventUpdated,
		ActorID:   actorID,
		SubjectID: id,
		Detail:    updated.Name,
		Timestamp: time.Now().UTC(),
	})

	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.activity.Submit(domain.ActivityEntry{
		Type:      domain.ActivityEventDeleted,
		ActorID:   actorID,
		SubjectID: id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *eventService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("event cache invalidation failed")
	}
}

// validInlineImage checks the inline upload carries a data:image/ URI.
func validInlineImage(image string) bool {
	return strings.HasPrefix(image, "data:image/")
}
