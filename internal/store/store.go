package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// Store is the in-memory registry for all entities. IDs are assigned
// monotonically from a single counter so no two entities of any kind
// share an identifier. The mutex serializes access from concurrent HTTP
// requests; the domain objects themselves are only ever touched while it
// is held.
type Store struct {
	mu       sync.RWMutex
	nextID   uint64
	venues   map[uint64]*model.Venue
	events   map[uint64]*model.Event
	tickets  map[uint64]*model.Ticket
	users    map[uint64]*model.User
	orders   map[uint64]*model.Order
	payments map[uint64]*model.Payment
	feedback []*model.Feedback

	// insertion order for stable listings and snapshots
	eventIDs  []uint64
	ticketIDs []uint64
}

// New returns an empty registry.
func New() *Store {
	return &Store{
		venues:   make(map[uint64]*model.Venue),
		events:   make(map[uint64]*model.Event),
		tickets:  make(map[uint64]*model.Ticket),
		users:    make(map[uint64]*model.User),
		orders:   make(map[uint64]*model.Order),
		payments: make(map[uint64]*model.Payment),
	}
}

func (s *Store) newID() uint64 {
	s.nextID++
	return s.nextID
}

// AddVenue registers a venue and assigns IDs to it and any seats already
// attached.
func (s *Store) AddVenue(v *model.Venue) *model.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.newID()
	for _, seat := range v.Seats {
		seat.ID = s.newID()
	}
	s.venues[v.ID] = v
	return v
}

// AddSeat attaches a new seat to a venue's inventory.
func (s *Store) AddSeat(venueID uint64, seat *model.Seat) (*model.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[venueID]
	if !ok {
		return nil, ErrVenueNotFound
	}
	seat.ID = s.newID()
	v.AddSeat(seat)
	return seat, nil
}

// AddEvent registers an event after checking its venue exists.
func (s *Store) AddEvent(e *model.Event) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[e.VenueID]; !ok {
		return nil, ErrVenueNotFound
	}
	e.ID = s.newID()
	s.events[e.ID] = e
	s.eventIDs = append(s.eventIDs, e.ID)
	return e, nil
}

// AddTicket registers a ticket for an event. When a seat is attached it
// must belong to the event's venue.
func (s *Store) AddTicket(t *model.Ticket) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[t.EventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	if t.SeatID != 0 {
		if s.venueSeat(ev.VenueID, t.SeatID) == nil {
			return nil, ErrSeatNotFound
		}
	}
	t.ID = s.newID()
	s.tickets[t.ID] = t
	s.ticketIDs = append(s.ticketIDs, t.ID)
	return t, nil
}

// AddUser registers a user.
func (s *Store) AddUser(u *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.newID()
	s.users[u.ID] = u
	return u
}

// AddOrder builds an order over the given tickets and appends it to the
// user's history.
func (s *Store) AddOrder(userID uint64, ticketIDs []uint64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	tickets := make([]*model.Ticket, 0, len(ticketIDs))
	for _, id := range ticketIDs {
		t, ok := s.tickets[id]
		if !ok {
			return nil, ErrTicketNotFound
		}
		tickets = append(tickets, t)
	}
	o := model.NewOrder(userID, tickets)
	o.ID = s.newID()
	o.CalculateTotalPrice()
	s.orders[o.ID] = o
	u.PlaceOrder(o)
	return o, nil
}

// AddFeedback validates and records feedback for an event.
func (s *Store) AddFeedback(userID, eventID uint64, rating int, comment string) (*model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := s.events[eventID]; !ok {
		return nil, ErrEventNotFound
	}
	fb, err := model.NewFeedback(userID, eventID, rating, comment)
	if err != nil {
		return nil, err
	}
	fb.ID = s.newID()
	s.feedback = append(s.feedback, fb)
	return fb, nil
}

// BookTicket books a ticket and, when one is attached, its seat. The
// seat is booked first so a taken seat fails the whole operation before
// the ticket flag moves.
func (s *Store) BookTicket(ticketID uint64) (*model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, ErrTicketNotFound
	}
	if t.IsBooked {
		return nil, model.ErrTicketAlreadyBooked
	}
	if t.SeatID != 0 {
		ev := s.events[t.EventID]
		seat := s.venueSeat(ev.VenueID, t.SeatID)
		if seat == nil {
			return nil, ErrSeatNotFound
		}
		if err := seat.Book(); err != nil {
			return nil, err
		}
	}
	if err := t.Book(); err != nil {
		return nil, err
	}
	return t, nil
}

// PayOrder marks an order as paid.
func (s *Store) PayOrder(orderID uint64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := o.Pay(); err != nil {
		return nil, err
	}
	return o, nil
}

// ApplyDiscount applies a discount to an order's running total and
// returns the order and the amount taken off.
func (s *Store) ApplyDiscount(orderID uint64, d model.Discount) (*model.Order, float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, 0, ErrOrderNotFound
	}
	amount := o.ApplyDiscount(d)
	return o, amount, nil
}

// CreatePayment registers a payment for an order, amount defaulting to
// the order's running total.
func (s *Store) CreatePayment(orderID uint64) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	p := model.NewPayment(uuid.NewString(), o.ID, o.TotalPrice)
	p.ID = s.newID()
	s.payments[p.ID] = p
	return p, nil
}

// ProcessPayment runs Payment.Process against the payment's order and
// returns the payment along with any already-paid error from the order.
// The payment's success fields are set even on failure; see
// model.Payment.Process.
func (s *Store) ProcessPayment(paymentID uint64, now time.Time) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	o, ok := s.orders[p.OrderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := p.Process(o, now); err != nil {
		return p, err
	}
	return p, nil
}

// Venue returns a venue by ID.
func (s *Store) Venue(id uint64) (*model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

// Event returns an event by ID.
func (s *Store) Event(id uint64) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// Ticket returns a ticket by ID.
func (s *Store) Ticket(id uint64) (*model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// User returns a user by ID.
func (s *Store) User(id uint64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Order returns an order by ID.
func (s *Store) Order(id uint64) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// Payment returns a payment by ID.
func (s *Store) Payment(id uint64) (*model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

// ListEvents returns all events in insertion order.
func (s *Store) ListEvents() []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.Event, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		out = append(out, s.events[id])
	}
	return out
}

// TicketsByEvent returns an event's tickets in insertion order.
func (s *Store) TicketsByEvent(eventID uint64) ([]*model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.events[eventID]; !ok {
		return nil, ErrEventNotFound
	}
	return s.ticketsByEvent(eventID), nil
}

// FeedbackByEvent returns all feedback recorded for an event.
func (s *Store) FeedbackByEvent(eventID uint64) ([]*model.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.events[eventID]; !ok {
		return nil, ErrEventNotFound
	}
	var out []*model.Feedback
	for _, fb := range s.feedback {
		if fb.EventID == eventID {
			out = append(out, fb)
		}
	}
	return out, nil
}

// venueSeat finds a seat in a venue's inventory by seat ID. Callers must
// hold the lock.
func (s *Store) venueSeat(venueID, seatID uint64) *model.Seat {
	v, ok := s.venues[venueID]
	if !ok {
		return nil
	}
	for _, seat := range v.Seats {
		if seat.ID == seatID {
			return seat
		}
	}
	return nil
}

// ticketsByEvent collects tickets in insertion order. Callers must hold
// the lock.
func (s *Store) ticketsByEvent(eventID uint64) []*model.Ticket {
	var out []*model.Ticket
	for _, id := range s.ticketIDs {
		if t := s.tickets[id]; t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}
