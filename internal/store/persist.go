package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/iliyamo/event-ticketing/internal/codec"
	"github.com/iliyamo/event-ticketing/internal/model"
)

// Snapshot resolves the registry's ID links into event graphs and builds
// the shared document form. Only event data (events, venues, seats,
// tickets) is persisted; users, orders, payments and feedback are
// transient.
func (s *Store) Snapshot() *codec.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	graphs := make([]codec.EventGraph, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		ev := s.events[id]
		graphs = append(graphs, codec.EventGraph{
			Event:   ev,
			Venue:   s.venues[ev.VenueID],
			Tickets: s.ticketsByEvent(ev.ID),
		})
	}
	return codec.BuildDocument(graphs)
}

// SaveJSON writes the snapshot to the given JSON export file.
func (s *Store) SaveJSON(path string) error {
	return codec.WriteJSONFile(path, s.Snapshot())
}

// LoadJSON rebuilds the event graph from a JSON export file, replacing any
// events already registered. A missing file is not an error; the store
// simply starts empty. Ticket seat references are resolved against the
// venue inventory by row and number.
func (s *Store) LoadJSON(path string) error {
	doc, err := codec.ReadJSONFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return s.Restore(doc)
}

// Restore replaces the registry's event graph with the contents of a
// decoded document.
func (s *Store) Restore(doc *codec.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venues = make(map[uint64]*model.Venue)
	s.events = make(map[uint64]*model.Event)
	s.tickets = make(map[uint64]*model.Ticket)
	s.eventIDs = nil
	s.ticketIDs = nil

	for _, rec := range doc.Events {
		dt, err := codec.ParseDateTime(rec.DateTime)
		if err != nil {
			return fmt.Errorf("restore event %q: %w", rec.Name, err)
		}
		venue := model.NewVenue(rec.Venue.Name, rec.Venue.Address, rec.Venue.Capacity)
		venue.ID = s.newID()
		for _, sr := range rec.Venue.Seats {
			seat := model.NewSeat(sr.Row, sr.Number)
			seat.ID = s.newID()
			seat.IsAvailable = sr.IsAvailable
			venue.AddSeat(seat)
		}
		s.venues[venue.ID] = venue

		ev := model.NewEvent(rec.Name, dt, venue.ID)
		ev.ID = s.newID()
		s.events[ev.ID] = ev
		s.eventIDs = append(s.eventIDs, ev.ID)

		for _, tr := range rec.Tickets {
			var seatID uint64
			if tr.Seat != (codec.SeatRef{}) {
				seat := seatByPosition(venue, tr.Seat.Row, tr.Seat.Number)
				if seat == nil {
					return fmt.Errorf("restore event %q: ticket seat %d/%d not in venue inventory",
						rec.Name, tr.Seat.Row, tr.Seat.Number)
				}
				seatID = seat.ID
			}
			t := model.NewTicket(ev.ID, seatID, model.Category{
				Name:  tr.Category.Name,
				Price: tr.Category.Price,
			})
			t.ID = s.newID()
			t.IsBooked = tr.IsBooked
			s.tickets[t.ID] = t
			s.ticketIDs = append(s.ticketIDs, t.ID)
		}
	}
	return nil
}

func seatByPosition(v *model.Venue, row, number int) *model.Seat {
	for _, s := range v.Seats {
		if s.Row == row && s.Number == number {
			return s
		}
	}
	return nil
}
