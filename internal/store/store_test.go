package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// seedConcert registers the canonical sample graph and returns the
// pieces the tests poke at.
func seedConcert(t *testing.T, s *Store) (*model.Event, *model.Ticket, *model.Seat) {
	t.Helper()
	venue := model.NewVenue("Concert Hall", "123 Main St", 100)
	venue.AddSeat(model.NewSeat(1, 1))
	taken := model.NewSeat(1, 2)
	require.NoError(t, taken.Book())
	venue.AddSeat(taken)
	s.AddVenue(venue)

	ev, err := s.AddEvent(model.NewEvent("Concert",
		time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), venue.ID))
	require.NoError(t, err)

	ticket, err := s.AddTicket(model.NewTicket(ev.ID, venue.Seats[0].ID,
		model.Category{Name: "VIP", Price: 100.0}))
	require.NoError(t, err)
	return ev, ticket, venue.Seats[0]
}

func TestAddEventUnknownVenue(t *testing.T) {
	s := New()
	_, err := s.AddEvent(model.NewEvent("Concert", time.Now(), 42))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestAddTicketSeatMustBelongToVenue(t *testing.T) {
	s := New()
	ev, _, _ := seedConcert(t, s)
	_, err := s.AddTicket(model.NewTicket(ev.ID, 9999, model.Category{Name: "VIP", Price: 1}))
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestBookTicketBooksSeat(t *testing.T) {
	s := New()
	_, ticket, seat := seedConcert(t, s)

	booked, err := s.BookTicket(ticket.ID)
	require.NoError(t, err)
	assert.True(t, booked.IsBooked)
	assert.False(t, seat.IsAvailable, "booking a seated ticket takes the seat")

	_, err = s.BookTicket(ticket.ID)
	assert.ErrorIs(t, err, model.ErrTicketAlreadyBooked)
}

func TestBookTicketSeatTaken(t *testing.T) {
	s := New()
	ev, _, seat := seedConcert(t, s)
	require.NoError(t, seat.Book())

	other, err := s.AddTicket(model.NewTicket(ev.ID, seat.ID, model.Category{Name: "VIP", Price: 100}))
	require.NoError(t, err)

	_, err = s.BookTicket(other.ID)
	assert.ErrorIs(t, err, model.ErrSeatAlreadyBooked)
	assert.False(t, other.IsBooked, "ticket flag stays down when the seat is taken")
}

func TestOrderPaymentFlow(t *testing.T) {
	s := New()
	_, ticket, _ := seedConcert(t, s)
	user := s.AddUser(model.NewUser("John Doe"))

	order, err := s.AddOrder(user.ID, []uint64{ticket.ID})
	require.NoError(t, err)
	assert.Equal(t, 100.0, order.TotalPrice)
	require.Len(t, user.Orders, 1)

	_, amount, err := s.ApplyDiscount(order.ID, model.Discount{Code: "PROMO", Percentage: 15})
	require.NoError(t, err)
	assert.Equal(t, 15.0, amount)
	assert.Equal(t, 85.0, order.TotalPrice)

	payment, err := s.CreatePayment(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 85.0, payment.Amount)
	assert.NotEmpty(t, payment.Ref)

	now := time.Now().UTC()
	_, err = s.ProcessPayment(payment.ID, now)
	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	assert.True(t, payment.IsSuccessful)

	// Second processing bounces off the paid order but the payment stays
	// marked successful.
	_, err = s.ProcessPayment(payment.ID, time.Now().UTC())
	assert.ErrorIs(t, err, model.ErrOrderAlreadyPaid)
	assert.True(t, payment.IsSuccessful)
}

func TestFullyDiscountedOrderPaysNothing(t *testing.T) {
	s := New()
	_, ticket, _ := seedConcert(t, s)
	user := s.AddUser(model.NewUser("John Doe"))
	order, err := s.AddOrder(user.ID, []uint64{ticket.ID})
	require.NoError(t, err)

	_, amount, err := s.ApplyDiscount(order.ID, model.Discount{Code: "FREE", Percentage: 100})
	require.NoError(t, err)
	assert.Equal(t, 100.0, amount)
	assert.Equal(t, 0.0, order.TotalPrice)

	_, amount, err = s.ApplyDiscount(order.ID, model.Discount{Code: "EXTRA", Percentage: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, amount, "free order must stay free")
	assert.Equal(t, 0.0, order.TotalPrice)

	payment, err := s.CreatePayment(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, payment.Amount)
}

func TestFeedbackValidation(t *testing.T) {
	s := New()
	ev, _, _ := seedConcert(t, s)
	user := s.AddUser(model.NewUser("John Doe"))

	_, err := s.AddFeedback(user.ID, ev.ID, 6, "")
	assert.ErrorIs(t, err, model.ErrInvalidRating)

	fb, err := s.AddFeedback(user.ID, ev.ID, 5, "great show")
	require.NoError(t, err)

	items, err := s.FeedbackByEvent(ev.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fb, items[0])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	ev, ticket, _ := seedConcert(t, s)
	_, err := s.BookTicket(ticket.ID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, s.SaveJSON(path))

	loaded := New()
	require.NoError(t, loaded.LoadJSON(path))

	events := loaded.ListEvents()
	require.Len(t, events, 1)
	assert.Equal(t, ev.Name, events[0].Name)
	assert.Equal(t, ev.DateTime, events[0].DateTime)

	venue, err := loaded.Venue(events[0].VenueID)
	require.NoError(t, err)
	require.Len(t, venue.Seats, 2)
	assert.False(t, venue.Seats[0].IsAvailable, "booked seat state survives the round-trip")
	assert.False(t, venue.Seats[1].IsAvailable)

	tickets, err := loaded.TicketsByEvent(events[0].ID)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.True(t, tickets[0].IsBooked)
	assert.Equal(t, 100.0, tickets[0].Category.Price)
	assert.NotZero(t, tickets[0].SeatID, "seat reference resolves against the restored inventory")

	// Snapshots of the original and the restored store must agree.
	assert.Equal(t, s.Snapshot().Events, loaded.Snapshot().Events)
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	s := New()
	require.NoError(t, s.LoadJSON(filepath.Join(t.TempDir(), "absent.json")))
	assert.Empty(t, s.ListEvents())
}
