package model

// Order groups one or more tickets purchased by a user. An order can be
// paid exactly once. TotalPrice holds the running total after price
// calculation and any applied discounts; it is zero until
// CalculateTotalPrice has been called.
//
// Fields:
//  ID         – registry identifier.
//  UserID     – registry ID of the ordering user.
//  Tickets    – tickets contained in the order.
//  IsPaid     – payment flag, flipped by Pay.
//  TotalPrice – running total, maintained by CalculateTotalPrice and
//               ApplyDiscount.
type Order struct {
	ID         uint64
	UserID     uint64
	Tickets    []*Ticket
	IsPaid     bool
	TotalPrice float64

	// priced records that CalculateTotalPrice has run, so a total that
	// has been discounted down to zero is not mistaken for an
	// uncalculated one.
	priced bool
}

// NewOrder constructs an unpaid order over the given tickets.
func NewOrder(userID uint64, tickets []*Ticket) *Order {
	return &Order{UserID: userID, Tickets: tickets}
}

// CalculateTotalPrice sums the category prices of all tickets in the
// order, stores the result in TotalPrice and returns it. An empty order
// totals zero. The method is safe to call repeatedly; each call resets
// TotalPrice to the undiscounted sum.
func (o *Order) CalculateTotalPrice() float64 {
	var total float64
	for _, t := range o.Tickets {
		total += t.Category.Price
	}
	o.TotalPrice = total
	o.priced = true
	return total
}

// ApplyDiscount subtracts the discount amount from the running total and
// returns the amount taken off. Discounts are cumulative: each call
// applies to the already-discounted total. When no total has been
// calculated yet the undiscounted sum is computed first; a total that
// was discounted down to zero stays zero.
func (o *Order) ApplyDiscount(d Discount) float64 {
	if !o.priced {
		o.CalculateTotalPrice()
	}
	amount := d.Apply(o.TotalPrice)
	o.TotalPrice -= amount
	return amount
}

// Pay marks the order as paid. It returns ErrOrderAlreadyPaid on a second
// call; the paid flag is never reset.
func (o *Order) Pay() error {
	if o.IsPaid {
		return ErrOrderAlreadyPaid
	}
	o.IsPaid = true
	return nil
}
