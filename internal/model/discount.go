package model

// Discount is a percentage-based price reduction rule identified by a
// code. Discounts are value objects and never mutate order state.
type Discount struct {
	Code       string
	Percentage float64 // 0–100
}

// Apply returns the discount AMOUNT for the given total, i.e.
// total * percentage / 100 — not the discounted total. Callers subtract
// the returned amount themselves.
func (d Discount) Apply(total float64) float64 {
	return total * d.Percentage / 100
}
