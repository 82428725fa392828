package handler

import (
	"time"

	"github.com/eventhub/booking-system/internal/core/ports"
)

type createEventRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category"    validate:"required"`
	Date        time.Time `json:"date"        validate:"required"`
	Venue       string    `json:"venue"       validate:"required"`
	Price       float64   `json:"price"       validate:"gte=0"`
	Image       string    `json:"image"       validate:"required,startswith=data:image/"`
}

// updateEventRequest is a partial update: absent fields stay untouched.
type updateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Date        *time.Time `json:"date"`
	Venue       *string    `json:"venue"`
	Price       *float64   `json:"price"       validate:"omitempty,gte=0"`
	Image       *string    `json:"image"       validate:"omitempty,startswith=data:image/"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toCreateEventInput(r createEventRequest) ports.CreateEventInput {
	return ports.CreateEventInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Venue:       r.Venue,
		Price:       r.Price,
		Image:       r.Image,
	}
}

func toUpdateEventInput(r updateEventRequest) ports.UpdateEventInput {
	return ports.UpdateEventInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Venue:       r.Venue,
		Price:       r.Price,
		Image:       r.Image,
	}
}
