package model

import "time"

// Payment records a monetary transaction settling an order. Ref carries
// an external payment reference handed back to the client.
//
// Fields:
//  ID           – registry identifier.
//  Ref          – external payment reference (UUID).
//  OrderID      – registry ID of the settled order.
//  Amount       – amount charged.
//  IsSuccessful – set by Process.
//  PaymentDate  – when the payment was processed (nil until then).
type Payment struct {
	ID           uint64
	Ref          string
	OrderID      uint64
	Amount       float64
	IsSuccessful bool
	PaymentDate  *time.Time
}

// NewPayment constructs an unprocessed payment for the given order.
func NewPayment(ref string, orderID uint64, amount float64) *Payment {
	return &Payment{Ref: ref, OrderID: orderID, Amount: amount}
}

// Process marks the payment successful, stamps the payment date and pays
// the order. The success fields are set before the order is paid, so
// re-processing a payment for an already-paid order returns
// ErrOrderAlreadyPaid while leaving the payment itself marked successful.
func (p *Payment) Process(order *Order, now time.Time) error {
	p.IsSuccessful = true
	p.PaymentDate = &now
	return order.Pay()
}
