package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/codec"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// EventHandler exposes venue and event management. The model structs
// carry no JSON tags, so the handler defines its own response types with
// the wire field names.
type EventHandler struct {
	Store *store.Store
}

// NewEventHandler constructs an EventHandler. The store must be non-nil.
func NewEventHandler(s *store.Store) *EventHandler {
	if s == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Store: s}
}

type seatResponse struct {
	ID          uint64 `json:"id"`
	Row         int    `json:"row"`
	Number      int    `json:"number"`
	IsAvailable bool   `json:"is_available"`
}

type venueResponse struct {
	ID       uint64         `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	Capacity int            `json:"capacity"`
	Seats    []seatResponse `json:"seats"`
}

type eventResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	DateTime string `json:"date_time"`
	VenueID  uint64 `json:"venue_id"`
}

func venueToResponse(v *model.Venue) venueResponse {
	out := venueResponse{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		Capacity: v.Capacity,
		Seats:    make([]seatResponse, 0, len(v.Seats)),
	}
	for _, s := range v.Seats {
		out.Seats = append(out.Seats, seatResponse{
			ID: s.ID, Row: s.Row, Number: s.Number, IsAvailable: s.IsAvailable,
		})
	}
	return out
}

func eventToResponse(e *model.Event) eventResponse {
	return eventResponse{
		ID:       e.ID,
		Name:     e.Name,
		DateTime: e.DateTime.Format(codec.DateTimeLayout),
		VenueID:  e.VenueID,
	}
}

// CreateVenue handles POST /v1/venues. The body may list initial seats;
// more can be attached later via AddSeat.
func (h *EventHandler) CreateVenue(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Capacity int    `json:"capacity"`
		Seats    []struct {
			Row    int `json:"row"`
			Number int `json:"number"`
		} `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" || body.Capacity < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required and capacity must be >= 0"})
	}
	v := model.NewVenue(body.Name, body.Address, body.Capacity)
	for _, s := range body.Seats {
		v.AddSeat(model.NewSeat(s.Row, s.Number))
	}
	h.Store.AddVenue(v)
	return c.JSON(http.StatusCreated, venueToResponse(v))
}

// GetVenue handles GET /v1/venues/:id.
func (h *EventHandler) GetVenue(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	v, err := h.Store.Venue(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, venueToResponse(v))
}

// AddSeat handles POST /v1/venues/:id/seats.
func (h *EventHandler) AddSeat(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	var body struct {
		Row    int `json:"row"`
		Number int `json:"number"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seat, err := h.Store.AddSeat(id, model.NewSeat(body.Row, body.Number))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, seatResponse{
		ID: seat.ID, Row: seat.Row, Number: seat.Number, IsAvailable: seat.IsAvailable,
	})
}

// CreateEvent handles POST /v1/events. The date_time field uses the same
// ISO-8601 layout as the serialized documents.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		DateTime string `json:"date_time"`
		VenueID  uint64 `json:"venue_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" || body.VenueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and venue_id are required"})
	}
	dt, err := codec.ParseDateTime(body.DateTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date_time must be YYYY-MM-DDTHH:MM:SS"})
	}
	ev, err := h.Store.AddEvent(model.NewEvent(body.Name, dt, body.VenueID))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, eventToResponse(ev))
}

// ListEvents handles GET /v1/events.
func (h *EventHandler) ListEvents(c echo.Context) error {
	events := h.Store.ListEvents()
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, eventToResponse(e))
	}
	return c.JSON(http.StatusOK, echo.Map{"events": out})
}

// GetEvent handles GET /v1/events/:id.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ev, err := h.Store.Event(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, eventToResponse(ev))
}
