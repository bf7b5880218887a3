package model

// Category is a named price tier for tickets (e.g. VIP, STANDARD).
// Categories are value objects: immutable after creation and freely
// shared between tickets.
type Category struct {
	Name  string
	Price float64
}
