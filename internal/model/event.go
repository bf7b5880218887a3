package model

import "time"

// Event represents a scheduled occurrence at a venue. The venue is linked
// by identifier and resolved through the store registry; events never
// share mutable venue state with each other.
//
// Fields:
//  ID       – registry identifier.
//  Name     – event name.
//  DateTime – scheduled date and time.
//  VenueID  – registry ID of the hosting venue.
type Event struct {
	ID       uint64
	Name     string
	DateTime time.Time
	VenueID  uint64
}

// NewEvent constructs an event scheduled at the given venue.
func NewEvent(name string, dateTime time.Time, venueID uint64) *Event {
	return &Event{Name: name, DateTime: dateTime, VenueID: venueID}
}
