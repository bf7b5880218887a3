package model

// Ticket grants the right to attend an event. A ticket is priced through
// its category and may optionally be bound to a specific seat (SeatID is
// zero when the ticket is unseated). Event and seat are identifier links
// resolved through the store registry; the category is embedded as a
// value.
type Ticket struct {
	ID       uint64
	EventID  uint64
	SeatID   uint64 // 0 when no seat is attached
	Category Category
	IsBooked bool
}

// NewTicket constructs an unbooked ticket for the given event.
func NewTicket(eventID, seatID uint64, category Category) *Ticket {
	return &Ticket{EventID: eventID, SeatID: seatID, Category: category}
}

// Book marks the ticket as booked. It returns ErrTicketAlreadyBooked on a
// second call; booking is a one-way transition.
func (t *Ticket) Book() error {
	if t.IsBooked {
		return ErrTicketAlreadyBooked
	}
	t.IsBooked = true
	return nil
}
