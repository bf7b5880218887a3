package main

// The demo command exercises the whole domain in a single run: it builds
// a sample event graph, books and pays for a ticket, captures feedback
// from the terminal, writes the graph to both serialized forms, reads
// both back and prints the results.

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-ticketing/internal/codec"
	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/feedback"
	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/store"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Config{
		DataDir:  "data",
		JSONFile: "events.json",
		XMLFile:  "events.xml",
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logrus.WithError(err).Fatal("create data dir")
	}

	st := store.New()

	// Sample graph: one concert with two seats, one of them already taken.
	venue := model.NewVenue("Concert Hall", "123 Main St", 100)
	venue.AddSeat(model.NewSeat(1, 1))
	taken := model.NewSeat(1, 2)
	venue.AddSeat(taken)
	st.AddVenue(venue)
	if err := taken.Book(); err != nil {
		logrus.WithError(err).Fatal("book sample seat")
	}

	event, err := st.AddEvent(model.NewEvent("Concert",
		time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC), venue.ID))
	if err != nil {
		logrus.WithError(err).Fatal("add event")
	}

	vip := model.Category{Name: "VIP", Price: 100.0}
	ticket, err := st.AddTicket(model.NewTicket(event.ID, venue.Seats[0].ID, vip))
	if err != nil {
		logrus.WithError(err).Fatal("add ticket")
	}

	if _, err := st.BookTicket(ticket.ID); err != nil {
		logrus.WithError(err).Fatal("book ticket")
	}
	fmt.Printf("Ticket booked, seat 1/1 available: %v\n", venue.Seats[0].IsAvailable)
	if _, err := st.BookTicket(ticket.ID); errors.Is(err, model.ErrTicketAlreadyBooked) {
		fmt.Println("Repeated booking rejected:", err)
	}

	user := st.AddUser(model.NewUser("John Doe"))
	order, err := st.AddOrder(user.ID, []uint64{ticket.ID})
	if err != nil {
		logrus.WithError(err).Fatal("add order")
	}
	fmt.Printf("Order total: %.2f\n", order.TotalPrice)

	// 15 percent off with a promo code, then settle the order.
	_, amount, err := st.ApplyDiscount(order.ID, model.Discount{Code: "NEWYEAR", Percentage: 15})
	if err != nil {
		logrus.WithError(err).Fatal("apply discount")
	}
	fmt.Printf("Discount: %.2f, to pay: %.2f\n", amount, order.TotalPrice)

	payment, err := st.CreatePayment(order.ID)
	if err != nil {
		logrus.WithError(err).Fatal("create payment")
	}
	if _, err := st.ProcessPayment(payment.ID, time.Now().UTC()); err != nil {
		logrus.WithError(err).Fatal("process payment")
	}
	fmt.Printf("Payment %s processed, order paid: %v\n", payment.Ref, order.IsPaid)

	// A second processing attempt must bounce off the paid order.
	if _, err := st.ProcessPayment(payment.ID, time.Now().UTC()); errors.Is(err, model.ErrOrderAlreadyPaid) {
		fmt.Println("Repeated processing rejected:", err)
	}

	// Post-event feedback from the terminal.
	prompter := feedback.NewPrompter(os.Stdin, os.Stdout)
	rating, err := prompter.PromptRating()
	if err != nil {
		logrus.WithError(err).Fatal("read rating")
	}
	comment, err := prompter.PromptComment()
	if err != nil {
		logrus.WithError(err).Fatal("read comment")
	}
	fb, err := st.AddFeedback(user.ID, event.ID, rating, comment)
	if err != nil {
		logrus.WithError(err).Fatal("record feedback")
	}
	fmt.Printf("Feedback by %s for %s - Rating: %d, Comment: %s\n",
		user.Name, event.Name, fb.Rating, orNone(fb.Comment))

	// Write both serialized forms and read them back.
	doc := st.Snapshot()
	if err := codec.WriteJSONFile(cfg.JSONPath(), doc); err != nil {
		logrus.WithError(err).Fatal("write json")
	}
	if err := codec.WriteXMLFile(cfg.XMLPath(), doc); err != nil {
		logrus.WithError(err).Fatal("write xml")
	}

	fromJSON, err := codec.ReadJSONFile(cfg.JSONPath())
	if err != nil {
		logrus.WithError(err).Fatal("read json")
	}
	fromXML, err := codec.ReadXMLFile(cfg.XMLPath())
	if err != nil {
		logrus.WithError(err).Fatal("read xml")
	}

	fmt.Printf("JSON data: %+v\n", fromJSON.Events)
	fmt.Printf("XML data:  %+v\n", fromXML.Events)
}

func orNone(s string) string {
	if s == "" {
		return "No comment"
	}
	return s
}
