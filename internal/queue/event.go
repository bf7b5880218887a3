// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// OrderPaidEvent is published when a payment settles an order. It carries
// enough information for downstream consumers to log or notify without
// querying the primary store.
type OrderPaidEvent struct {
	OrderID    uint64   `json:"order_id"`
	UserID     uint64   `json:"user_id"`
	PaymentRef string   `json:"payment_ref"`
	Amount     float64  `json:"amount"`
	TicketIDs  []uint64 `json:"ticket_ids"`
	PaidAt     string   `json:"paid_at"`
}
