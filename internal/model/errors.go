// Package model defines the event-ticketing domain entities and the
// sentinel errors their state transitions can return. Higher layers such
// as handlers use these sentinels to map failures onto HTTP status codes.
package model

import "errors"

var (
	// Booking errors
	ErrSeatAlreadyBooked   = errors.New("seat is already booked")
	ErrTicketAlreadyBooked = errors.New("ticket is already booked")

	// Payment errors
	ErrOrderAlreadyPaid = errors.New("order is already paid")

	// Feedback errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
