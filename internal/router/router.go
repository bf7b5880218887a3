package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-ticketing/internal/config"
	"github.com/iliyamo/event-ticketing/internal/handler"
	"github.com/iliyamo/event-ticketing/internal/middleware"
)

// RegisterRoutes wires all API routes on the provided Echo instance.
// Browse endpoints (event listing and lookups) sit behind the response
// cache when a Redis client is available; mutating endpoints never do.
func RegisterRoutes(e *echo.Echo, ev *handler.EventHandler, bk *handler.BookingHandler,
	or *handler.OrderHandler, fb *handler.FeedbackHandler, ex *handler.ExportHandler,
	cacheCfg config.CacheConfig, rdb *redis.Client) {

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Cached public browse endpoints.
	browse := e.Group("/v1", middleware.Cache(cacheCfg, rdb))
	browse.GET("/events", ev.ListEvents)
	browse.GET("/events/:id", ev.GetEvent)
	browse.GET("/events/:id/tickets", bk.ListEventTickets)
	browse.GET("/events/:id/feedback", fb.ListEventFeedback)
	browse.GET("/venues/:id", ev.GetVenue)

	// Venue and event management.
	e.POST("/v1/venues", ev.CreateVenue)
	e.POST("/v1/venues/:id/seats", ev.AddSeat)
	e.POST("/v1/events", ev.CreateEvent)

	// Tickets and booking.
	e.POST("/v1/tickets", bk.CreateTicket)
	e.POST("/v1/tickets/:id/book", bk.BookTicket)

	// Users, orders, discounts and payments.
	e.POST("/v1/users", or.CreateUser)
	e.POST("/v1/orders", or.CreateOrder)
	e.GET("/v1/orders/:id", or.GetOrder)
	e.POST("/v1/orders/:id/discount", or.ApplyDiscount)
	e.POST("/v1/orders/:id/pay", or.PayOrder)
	e.POST("/v1/orders/:id/payments", or.CreatePayment)
	e.POST("/v1/payments/:id/process", or.ProcessPayment)

	// Feedback.
	e.POST("/v1/feedback", fb.CreateFeedback)

	// Serialized event documents.
	e.POST("/v1/export/json", ex.ExportJSON)
	e.POST("/v1/export/xml", ex.ExportXML)
	e.GET("/v1/export/json", ex.GetJSON)
	e.GET("/v1/export/xml", ex.GetXML)
}
