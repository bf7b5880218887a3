package model

// User represents a customer placing ticket orders. The order list is
// append-only and keeps insertion order.
type User struct {
	ID     uint64
	Name   string
	Orders []*Order
}

// NewUser constructs a user with no orders.
func NewUser(name string) *User {
	return &User{Name: name}
}

// PlaceOrder appends an order to the user's history. No validation or
// duplicate check is performed.
func (u *User) PlaceOrder(o *Order) {
	u.Orders = append(u.Orders, o)
}
