// Package store keeps the whole entity graph in an in-memory registry
// keyed by identifiers, and persists the event portion of the graph to a
// flat JSON file. It replaces a database layer: entities reference each
// other by ID and are resolved through typed getters with not-found
// sentinels, which handlers translate into HTTP 404 responses.
package store

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrSeatNotFound    = errors.New("seat not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)
