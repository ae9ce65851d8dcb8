package routes

import (
	"github.com/gin-gonic/gin"

	"seatwise/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, cartHandler *handlers.CartHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/optimize", bookingHandler.Optimize) // ranked covering plans
		booking.POST("/execute", bookingHandler.Execute)   // paced sequential run
	}

	cart := r.Group("/api/cart")
	{
		cart.GET("", cartHandler.List)
		cart.POST("", cartHandler.Add)
		cart.DELETE("", cartHandler.Clear)
		cart.DELETE("/:id", cartHandler.Remove)
		cart.GET("/consolidated", cartHandler.Consolidated)
	}

	email := r.Group("/api/email")
	{
		email.POST("/confirmation", bookingHandler.RequestEmailConfirmation)
		email.GET("/confirm/:token", bookingHandler.VerifyEmailToken)
	}
}
