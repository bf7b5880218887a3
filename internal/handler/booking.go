package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// BookingHandler exposes ticket creation and booking. Booking a seated
// ticket books the seat as well; a taken seat rejects the whole request.
type BookingHandler struct {
	Store *store.Store
}

// NewBookingHandler constructs a BookingHandler. The store must be non-nil.
func NewBookingHandler(s *store.Store) *BookingHandler {
	if s == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Store: s}
}

type ticketResponse struct {
	ID       uint64  `json:"id"`
	EventID  uint64  `json:"event_id"`
	SeatID   uint64  `json:"seat_id,omitempty"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	IsBooked bool    `json:"is_booked"`
}

func ticketToResponse(t *model.Ticket) ticketResponse {
	return ticketResponse{
		ID:       t.ID,
		EventID:  t.EventID,
		SeatID:   t.SeatID,
		Category: t.Category.Name,
		Price:    t.Category.Price,
		IsBooked: t.IsBooked,
	}
}

// CreateTicket handles POST /v1/tickets. seat_id is optional; zero or
// absent means an unseated ticket.
func (h *BookingHandler) CreateTicket(c echo.Context) error {
	var body struct {
		EventID  uint64 `json:"event_id"`
		SeatID   uint64 `json:"seat_id"`
		Category struct {
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"category"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.EventID == 0 || body.Category.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id and category.name are required"})
	}
	if body.Category.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category.price must be >= 0"})
	}
	t, err := h.Store.AddTicket(model.NewTicket(body.EventID, body.SeatID, model.Category{
		Name:  body.Category.Name,
		Price: body.Category.Price,
	}))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, ticketToResponse(t))
}

// BookTicket handles POST /v1/tickets/:id/book. A second booking attempt
// returns 409 and leaves the flags untouched.
func (h *BookingHandler) BookTicket(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ticket id"})
	}
	t, err := h.Store.BookTicket(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ticketToResponse(t))
}

// ListEventTickets handles GET /v1/events/:id/tickets.
func (h *BookingHandler) ListEventTickets(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	tickets, err := h.Store.TicketsByEvent(id)
	if err != nil {
		return fail(c, err)
	}
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketToResponse(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": out})
}
