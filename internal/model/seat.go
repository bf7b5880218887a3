package model

// Seat describes an individually bookable position within a venue,
// identified by its row and number. A seat starts out available and can
// be booked exactly once; there is no way to release it again.
type Seat struct {
	ID          uint64
	Row         int
	Number      int
	IsAvailable bool
}

// NewSeat constructs an available seat at the given row and number.
func NewSeat(row, number int) *Seat {
	return &Seat{Row: row, Number: number, IsAvailable: true}
}

// Book marks the seat as taken. It returns ErrSeatAlreadyBooked when the
// seat is no longer available; the flag is left untouched in that case.
func (s *Seat) Book() error {
	if !s.IsAvailable {
		return ErrSeatAlreadyBooked
	}
	s.IsAvailable = false
	return nil
}
