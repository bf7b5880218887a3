package codec

import (
	"time"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// DateTimeLayout is the ISO-8601 form event timestamps take in both
// serialized formats (local wall-clock time, no offset).
const DateTimeLayout = "2006-01-02T15:04:05"

// EventGraph bundles one event with its resolved venue and tickets.
// Callers (normally the store) resolve the ID links before building a
// document; ticket seats are resolved against the venue's inventory.
type EventGraph struct {
	Event   *model.Event
	Venue   *model.Venue
	Tickets []*model.Ticket
}

// BuildDocument maps resolved event graphs into the shared document form.
// Unseated tickets serialize with a zero seat reference.
func BuildDocument(graphs []EventGraph) *Document {
	doc := &Document{Events: make([]EventRecord, 0, len(graphs))}
	for _, g := range graphs {
		rec := EventRecord{
			Name:     g.Event.Name,
			DateTime: g.Event.DateTime.Format(DateTimeLayout),
			Venue: VenueRecord{
				Name:     g.Venue.Name,
				Address:  g.Venue.Address,
				Capacity: g.Venue.Capacity,
				Seats:    make([]SeatRecord, 0, len(g.Venue.Seats)),
			},
			Tickets: make([]TicketRecord, 0, len(g.Tickets)),
		}
		for _, s := range g.Venue.Seats {
			rec.Venue.Seats = append(rec.Venue.Seats, SeatRecord{
				Row:         s.Row,
				Number:      s.Number,
				IsAvailable: s.IsAvailable,
			})
		}
		for _, t := range g.Tickets {
			tr := TicketRecord{
				Category: CategoryRecord{Name: t.Category.Name, Price: t.Category.Price},
				IsBooked: t.IsBooked,
			}
			if seat := seatByID(g.Venue, t.SeatID); seat != nil {
				tr.Seat = SeatRef{Row: seat.Row, Number: seat.Number}
			}
			rec.Tickets = append(rec.Tickets, tr)
		}
		doc.Events = append(doc.Events, rec)
	}
	return doc
}

// ParseDateTime parses an event timestamp back from its serialized form.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeLayout, s)
}

func seatByID(v *model.Venue, id uint64) *model.Seat {
	if id == 0 {
		return nil
	}
	for _, s := range v.Seats {
		if s.ID == id {
			return s
		}
	}
	return nil
}
