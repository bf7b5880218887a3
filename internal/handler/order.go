package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/event-ticketing/internal/model"
	"github.com/iliyamo/event-ticketing/internal/queue"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// OrderHandler exposes users, orders, discounts and payments. Successful
// payment processing publishes an OrderPaidEvent; publish failures are
// logged but never fail the request.
type OrderHandler struct {
	Store *store.Store
}

// NewOrderHandler constructs an OrderHandler. The store must be non-nil.
func NewOrderHandler(s *store.Store) *OrderHandler {
	if s == nil {
		panic("nil store passed to NewOrderHandler")
	}
	return &OrderHandler{Store: s}
}

type orderResponse struct {
	ID         uint64   `json:"id"`
	UserID     uint64   `json:"user_id"`
	TicketIDs  []uint64 `json:"ticket_ids"`
	IsPaid     bool     `json:"is_paid"`
	TotalPrice float64  `json:"total_price"`
}

type paymentResponse struct {
	ID           uint64  `json:"id"`
	Ref          string  `json:"ref"`
	OrderID      uint64  `json:"order_id"`
	Amount       float64 `json:"amount"`
	IsSuccessful bool    `json:"is_successful"`
	PaymentDate  string  `json:"payment_date,omitempty"`
}

func orderToResponse(o *model.Order) orderResponse {
	ids := make([]uint64, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		ids = append(ids, t.ID)
	}
	return orderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		TicketIDs:  ids,
		IsPaid:     o.IsPaid,
		TotalPrice: o.TotalPrice,
	}
}

func paymentToResponse(p *model.Payment) paymentResponse {
	out := paymentResponse{
		ID:           p.ID,
		Ref:          p.Ref,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		IsSuccessful: p.IsSuccessful,
	}
	if p.PaymentDate != nil {
		out.PaymentDate = p.PaymentDate.UTC().Format(time.RFC3339)
	}
	return out
}

// CreateUser handles POST /v1/users.
func (h *OrderHandler) CreateUser(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	u := h.Store.AddUser(model.NewUser(body.Name))
	return c.JSON(http.StatusCreated, echo.Map{"id": u.ID, "name": u.Name})
}

// CreateOrder handles POST /v1/orders. The total is calculated at
// creation time from the tickets' category prices.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var body struct {
		UserID    uint64   `json:"user_id"`
		TicketIDs []uint64 `json:"ticket_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	o, err := h.Store.AddOrder(body.UserID, body.TicketIDs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, orderToResponse(o))
}

// GetOrder handles GET /v1/orders/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	o, err := h.Store.Order(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, orderToResponse(o))
}

// ApplyDiscount handles POST /v1/orders/:id/discount. Discounts are
// cumulative: each call applies to the already-discounted total.
func (h *OrderHandler) ApplyDiscount(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	var body struct {
		Code       string  `json:"code"`
		Percentage float64 `json:"percentage"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Percentage < 0 || body.Percentage > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "percentage must be between 0 and 100"})
	}
	o, amount, err := h.Store.ApplyDiscount(id, model.Discount{Code: body.Code, Percentage: body.Percentage})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"order":           orderToResponse(o),
		"discount_amount": amount,
	})
}

// PayOrder handles POST /v1/orders/:id/pay. A second payment attempt
// returns 409.
func (h *OrderHandler) PayOrder(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	o, err := h.Store.PayOrder(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, orderToResponse(o))
}

// CreatePayment handles POST /v1/orders/:id/payments. The amount is the
// order's current running total.
func (h *OrderHandler) CreatePayment(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}
	p, err := h.Store.CreatePayment(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, paymentToResponse(p))
}

// ProcessPayment handles POST /v1/payments/:id/process. On success an
// OrderPaidEvent is published to the broker. Processing a payment whose
// order is already paid returns 409; the payment's success fields are
// still set at that point, mirroring model.Payment.Process.
func (h *OrderHandler) ProcessPayment(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
	}
	now := time.Now().UTC()
	p, err := h.Store.ProcessPayment(id, now)
	if err != nil {
		return fail(c, err)
	}
	o, err := h.Store.Order(p.OrderID)
	if err != nil {
		return fail(c, err)
	}
	ev := queue.OrderPaidEvent{
		OrderID:    o.ID,
		UserID:     o.UserID,
		PaymentRef: p.Ref,
		Amount:     p.Amount,
		PaidAt:     now.Format(time.RFC3339),
	}
	for _, t := range o.Tickets {
		ev.TicketIDs = append(ev.TicketIDs, t.ID)
	}
	if err := queue.PublishOrderPaid(c.Request().Context(), ev); err != nil {
		logrus.WithError(err).Warn("order paid event not published")
	}
	return c.JSON(http.StatusOK, paymentToResponse(p))
}
