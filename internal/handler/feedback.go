package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// FeedbackHandler records and lists post-event ratings.
type FeedbackHandler struct {
	Store *store.Store
}

// NewFeedbackHandler constructs a FeedbackHandler. The store must be non-nil.
func NewFeedbackHandler(s *store.Store) *FeedbackHandler {
	if s == nil {
		panic("nil store passed to NewFeedbackHandler")
	}
	return &FeedbackHandler{Store: s}
}

type feedbackResponse struct {
	ID      uint64 `json:"id"`
	UserID  uint64 `json:"user_id"`
	EventID uint64 `json:"event_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func feedbackToResponse(fb *model.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:      fb.ID,
		UserID:  fb.UserID,
		EventID: fb.EventID,
		Rating:  fb.Rating,
		Comment: fb.Comment,
	}
}

// CreateFeedback handles POST /v1/feedback. Ratings outside [1,5] are
// rejected with 400.
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	var body struct {
		UserID  uint64 `json:"user_id"`
		EventID uint64 `json:"event_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == 0 || body.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and event_id are required"})
	}
	fb, err := h.Store.AddFeedback(body.UserID, body.EventID, body.Rating, body.Comment)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, feedbackToResponse(fb))
}

// ListEventFeedback handles GET /v1/events/:id/feedback.
func (h *FeedbackHandler) ListEventFeedback(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	items, err := h.Store.FeedbackByEvent(id)
	if err != nil {
		return fail(c, err)
	}
	out := make([]feedbackResponse, 0, len(items))
	for _, fb := range items {
		out = append(out, feedbackToResponse(fb))
	}
	return c.JSON(http.StatusOK, echo.Map{"feedback": out})
}
