package model

// Venue represents a physical location where events take place.  A venue
// holds an ordered seat inventory; seats are attached incrementally and
// never removed.
//
// Fields:
//  ID       – registry identifier.
//  Name     – venue name.
//  Address  – street address.
//  Capacity – maximum number of attendees.
//  Seats    – ordered list of seats, append-only.
type Venue struct {
	ID       uint64
	Name     string
	Address  string
	Capacity int
	Seats    []*Seat
}

// NewVenue constructs a venue with an empty seat inventory.
func NewVenue(name, address string, capacity int) *Venue {
	return &Venue{Name: name, Address: address, Capacity: capacity}
}

// AddSeat appends a seat to the venue's inventory. There is no duplicate
// check; the inventory order is the insertion order.
func (v *Venue) AddSeat(s *Seat) {
	v.Seats = append(v.Seats, s)
}
