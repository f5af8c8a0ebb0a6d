// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/ai"
	"courier/internal/http/handlers"
	"courier/internal/http/middleware"
	"courier/internal/modules/booking"
	"courier/internal/modules/notify"
	"courier/internal/modules/pricing"
)

type RouterDeps struct {
	Booking   *booking.Service
	Notify    *notify.Service
	Pricing   *pricing.Service
	Assistant ai.NoteSuggester
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	bookingHandler := handlers.NewBookingHandler(deps.Booking, deps.Notify)
	r.GET("/api/bookings", bookingHandler.List)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings/:id", bookingHandler.Get)
	r.GET("/api/bookings/:id/history", bookingHandler.History)
	r.POST("/api/bookings/:id/status", bookingHandler.UpdateStatus)
	r.POST("/api/bookings/:id/notify", bookingHandler.Notify)

	quoteHandler := handlers.NewQuoteHandler(deps.Pricing)
	r.POST("/api/quotes", quoteHandler.Quote)

	aiHandler := handlers.NewAIHandler(deps.Booking, deps.Assistant)
	r.POST("/api/bookings/:id/suggest-note", aiHandler.SuggestNote)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
