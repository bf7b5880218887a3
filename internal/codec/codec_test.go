package codec

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-ticketing/internal/model"
)

// concertDocument is the canonical fixture: one event with two venue
// seats (one taken) and a single unbooked VIP ticket on seat 1/1.
func concertDocument() *Document {
	return &Document{
		Events: []EventRecord{
			{
				Name:     "Concert",
				DateTime: "2024-12-31T20:00:00",
				Venue: VenueRecord{
					Name:     "Concert Hall",
					Address:  "123 Main St",
					Capacity: 100,
					Seats: []SeatRecord{
						{Row: 1, Number: 1, IsAvailable: true},
						{Row: 1, Number: 2, IsAvailable: false},
					},
				},
				Tickets: []TicketRecord{
					{
						Category: CategoryRecord{Name: "VIP", Price: 100.0},
						Seat:     SeatRef{Row: 1, Number: 1},
						IsBooked: false,
					},
				},
			},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := concertDocument()
	data, err := EncodeJSON(doc)
	require.NoError(t, err)

	got, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, got.Events)
}

func TestXMLRoundTrip(t *testing.T) {
	doc := concertDocument()
	data, err := EncodeXML(doc)
	require.NoError(t, err)

	got, err := DecodeXML(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, got.Events)
}

func TestXMLTextConventions(t *testing.T) {
	data, err := EncodeXML(concertDocument())
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, "<events>")
	assert.Contains(t, text, "<is_available>true</is_available>")
	assert.Contains(t, text, "<is_available>false</is_available>")
	assert.Contains(t, text, "<is_booked>false</is_booked>")
	assert.Contains(t, text, "<capacity>100</capacity>")
	assert.Contains(t, text, "<price>100</price>")
}

func TestTicketSeatCarriesNoAvailability(t *testing.T) {
	// The availability flag lives only on venue-level seats; the ticket's
	// seat reference is position-only in both formats.
	doc := concertDocument()

	xmlData, err := EncodeXML(doc)
	require.NoError(t, err)
	// Two venue seats -> exactly two availability elements in the whole tree.
	assert.Equal(t, 2, strings.Count(string(xmlData), "<is_available>"))

	jsonData, err := EncodeJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(jsonData), `"is_available"`))

	got, err := DecodeXML(xmlData)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, got.Events, "position-only seat references round-trip losslessly")
}

func TestDecodeJSONMalformed(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"events": [`))
	assert.Error(t, err)
}

func TestDecodeXMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated document", input: `<events><event>`},
		{name: "non-integer capacity", input: `<events><event><venue><capacity>lots</capacity></venue></event></events>`},
		{name: "non-numeric price", input: `<events><event><tickets><ticket><category><price>cheap</price></category></ticket></tickets></event></events>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeXML([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	doc := concertDocument()

	jsonPath := filepath.Join(dir, "events.json")
	require.NoError(t, WriteJSONFile(jsonPath, doc))
	fromJSON, err := ReadJSONFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, fromJSON.Events)

	xmlPath := filepath.Join(dir, "events.xml")
	require.NoError(t, WriteXMLFile(xmlPath, doc))
	fromXML, err := ReadXMLFile(xmlPath)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, fromXML.Events)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadJSONFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	_, err = ReadXMLFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestBuildDocument(t *testing.T) {
	venue := model.NewVenue("Concert Hall", "123 Main St", 100)
	seat1 := model.NewSeat(1, 1)
	seat1.ID = 10
	seat2 := model.NewSeat(1, 2)
	seat2.ID = 11
	require.NoError(t, seat2.Book())
	venue.AddSeat(seat1)
	venue.AddSeat(seat2)

	event := model.NewEvent("Concert", time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), 1)
	seated := model.NewTicket(1, seat1.ID, model.Category{Name: "VIP", Price: 100.0})
	unseated := model.NewTicket(1, 0, model.Category{Name: "STANDARD", Price: 50.0})

	doc := BuildDocument([]EventGraph{{
		Event:   event,
		Venue:   venue,
		Tickets: []*model.Ticket{seated, unseated},
	}})

	require.Len(t, doc.Events, 1)
	rec := doc.Events[0]
	assert.Equal(t, "Concert", rec.Name)
	assert.Equal(t, "2024-12-31T20:00:00", rec.DateTime)
	require.Len(t, rec.Venue.Seats, 2)
	assert.True(t, rec.Venue.Seats[0].IsAvailable)
	assert.False(t, rec.Venue.Seats[1].IsAvailable)
	require.Len(t, rec.Tickets, 2)
	assert.Equal(t, SeatRef{Row: 1, Number: 1}, rec.Tickets[0].Seat)
	assert.Equal(t, SeatRef{}, rec.Tickets[1].Seat, "unseated ticket gets a zero seat reference")
}

// The full scenario: build, encode to both formats, decode both and
// check the fields callers rely on.
func TestEndToEndScenario(t *testing.T) {
	doc := concertDocument()

	jsonData, err := EncodeJSON(doc)
	require.NoError(t, err)
	xmlData, err := EncodeXML(doc)
	require.NoError(t, err)

	fromJSON, err := DecodeJSON(jsonData)
	require.NoError(t, err)
	fromXML, err := DecodeXML(xmlData)
	require.NoError(t, err)

	for _, got := range []*Document{fromJSON, fromXML} {
		require.Len(t, got.Events, 1)
		ev := got.Events[0]
		require.Len(t, ev.Tickets, 1)
		assert.False(t, ev.Tickets[0].IsBooked)
		assert.Equal(t, 100.0, ev.Tickets[0].Category.Price)
		assert.Equal(t, 100, ev.Venue.Capacity)
	}
}
