// Package codec converts the event graph between its in-memory form and
// two interchangeable file representations: a nested key-value document
// (JSON) and a nested tagged-element document (XML). Both formats share
// the record types below, so a value round-trips losslessly through
// either encoding.
package codec

import "encoding/xml"

// Document is the root of both serialized forms. The JSON form is an
// object with a single "events" array; the XML form is an <events>
// element containing repeated <event> children.
type Document struct {
	XMLName xml.Name      `json:"-" xml:"events"`
	Events  []EventRecord `json:"events" xml:"event"`
}

// EventRecord carries one event with its venue and tickets. DateTime is
// kept as ISO-8601 text in both formats.
type EventRecord struct {
	Name     string         `json:"name" xml:"name"`
	DateTime string         `json:"date_time" xml:"date_time"`
	Venue    VenueRecord    `json:"venue" xml:"venue"`
	Tickets  []TicketRecord `json:"tickets" xml:"tickets>ticket"`
}

// VenueRecord carries the venue and its full seat inventory.
type VenueRecord struct {
	Name     string       `json:"name" xml:"name"`
	Address  string       `json:"address" xml:"address"`
	Capacity int          `json:"capacity" xml:"capacity"`
	Seats    []SeatRecord `json:"seats" xml:"seats>seat"`
}

// SeatRecord is a venue-level seat including its availability flag.
type SeatRecord struct {
	Row         int  `json:"row" xml:"row"`
	Number      int  `json:"number" xml:"number"`
	IsAvailable bool `json:"is_available" xml:"is_available"`
}

// SeatRef identifies the seat a ticket is bound to. It deliberately
// carries only the position: availability lives on the venue-level
// SeatRecord, and duplicating the flag here would let the two copies
// disagree within one document.
type SeatRef struct {
	Row    int `json:"row" xml:"row"`
	Number int `json:"number" xml:"number"`
}

// CategoryRecord is the ticket's price tier.
type CategoryRecord struct {
	Name  string  `json:"name" xml:"name"`
	Price float64 `json:"price" xml:"price"`
}

// TicketRecord carries one ticket with its category and seat reference.
type TicketRecord struct {
	Category CategoryRecord `json:"category" xml:"category"`
	Seat     SeatRef        `json:"seat" xml:"seat"`
	IsBooked bool           `json:"is_booked" xml:"is_booked"`
}
