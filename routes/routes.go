package routes

import (
	"github.com/gin-gonic/gin"

	"seatwise/handlers"
)

// RegisterRoutes wires every HTTP endpoint to its handler.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, cartHandler *handlers.CartHandler, seatsHandler *handlers.SeatsHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		api.GET("/libraries", seatsHandler.Libraries)
		api.GET("/libraries/:id/floors", seatsHandler.Floors)
		api.GET("/libraries/:id/seats", seatsHandler.Seats)
	}

	RegisterBookingRoutes(r, bookingHandler, cartHandler)
}
