package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// paramID parses the :id path parameter into a registry identifier.
func paramID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// fail maps a store or model error onto the matching HTTP response:
// not-found sentinels become 404, double-booking and double-payment
// become 409, invalid ratings become 400 and anything else 500.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrVenueNotFound),
		errors.Is(err, store.ErrSeatNotFound),
		errors.Is(err, store.ErrEventNotFound),
		errors.Is(err, store.ErrTicketNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrPaymentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrSeatAlreadyBooked),
		errors.Is(err, model.ErrTicketAlreadyBooked),
		errors.Is(err, model.ErrOrderAlreadyPaid):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidRating):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
