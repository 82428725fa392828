package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/booking-system/internal/api/metrics"
	"github.com/eventhub/booking-system/internal/core/ports"
)

// BookingHandler handles ticket bookings for authenticated users.
type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/bookings — books an event for the caller.
//
// @Summary      Book an event
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Event to book"
// @Success      201   {object}  bookingCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.bookingService.CreateBooking(c.Request().Context(), userID, req.EventID)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(result.Event.Category).Inc()

	summary := result.Event
	return c.JSON(http.StatusCreated, bookingCreatedResponse{
		Message: "booking created",
		Booking: bookingResponse{
			ID:        result.Booking.ID,
			EventID:   result.Booking.EventID,
			CreatedAt: result.Booking.CreatedAt,
			Event:     toEventSummaryResponse(&summary),
		},
		Summary: bookingSummary{
			EventName:      result.Event.Name,
			PricePerTicket: result.Event.Price,
		},
	})
}

// ListMine handles GET /api/bookings/user — the caller's bookings with
// event details populated.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/bookings/user [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.bookingService.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]bookingResponse, 0, len(details))
	for _, d := range details {
		out = append(out, bookingResponse{
			ID:        d.ID,
			EventID:   d.EventID,
			CreatedAt: d.CreatedAt,
			Event:     toEventSummaryResponse(d.Event),
		})
	}
	return c.JSON(http.StatusOK, out)
}
