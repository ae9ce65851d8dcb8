package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/models"
	"seatwise/services/booking"
	"seatwise/services/cart"
	"seatwise/services/upstream"
	"seatwise/utils"
)

// AvailabilityProvider supplies the seat snapshot the optimizer runs on.
type AvailabilityProvider interface {
	GetAllSeats(ctx context.Context, libraryID, date string) ([]models.Seat, error)
}

// BookingHandler exposes the optimizer and the executor over HTTP.
type BookingHandler struct {
	Engine       booking.OptimizerEngine
	Executor     booking.BookingExecutor
	Cart         cart.CartService
	Upstream     AvailabilityProvider
	Confirmation *upstream.ConfirmationStrategy
	MaxOptions   int
}

func NewBookingHandler(engine booking.OptimizerEngine, executor booking.BookingExecutor, cartSvc cart.CartService, provider AvailabilityProvider, confirmation *upstream.ConfirmationStrategy, maxOptions int) *BookingHandler {
	if maxOptions <= 0 {
		maxOptions = 5
	}
	return &BookingHandler{
		Engine:       engine,
		Executor:     executor,
		Cart:         cartSvc,
		Upstream:     provider,
		Confirmation: confirmation,
		MaxOptions:   maxOptions,
	}
}

// Optimize computes ranked covering plans for a target window.
func (h *BookingHandler) Optimize(c *gin.Context) {
	var input struct {
		LibraryID  string `json:"libraryId" binding:"required"`
		Date       string `json:"date" binding:"required"`
		StartTime  string `json:"startTime" binding:"required"`
		EndTime    string `json:"endTime" binding:"required"`
		MaxOptions int    `json:"maxOptions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.MaxOptions <= 0 {
		input.MaxOptions = h.MaxOptions
	}

	// Reject a bad window before any upstream call is made.
	startMinute, err := utils.ClockToMinutes(input.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start time", "details": err.Error()})
		return
	}
	endMinute, err := utils.ClockToMinutes(input.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end time", "details": err.Error()})
		return
	}
	if startMinute >= endMinute {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start time must be before end time"})
		return
	}

	seats, err := h.Upstream.GetAllSeats(c.Request.Context(), input.LibraryID, input.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch availability", "details": err.Error()})
		return
	}

	recommendations, err := h.Engine.Recommend(booking.FilterBookable(seats), input.StartTime, input.EndTime, input.MaxOptions)
	if err != nil {
		var validationErr *booking.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		var noCoverage *booking.NoCoverageError
		if errors.As(err, &noCoverage) {
			// Not a failure: an empty recommendation set with guidance.
			c.JSON(http.StatusOK, gin.H{"recommendations": []models.Recommendation{}, "reason": noCoverage.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "optimization failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// Execute runs the paced executor over the consolidated cart, or over an
// ad-hoc booking list when one is supplied. The cart is cleared only
// when every booking succeeded; otherwise the full report is returned
// so the user can retry just the failures.
func (h *BookingHandler) Execute(c *gin.Context) {
	var input struct {
		Email    string                       `json:"email" binding:"required,email"`
		Bookings []models.ConsolidatedBooking `json:"bookings"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bookings := input.Bookings
	fromCart := len(bookings) == 0
	if fromCart {
		bookings = h.Cart.Consolidated()
	}
	if len(bookings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to book"})
		return
	}

	report := h.Executor.Execute(c.Request.Context(), bookings, input.Email)
	if report.AllSucceeded && fromCart {
		h.Cart.Clear()
	}

	c.JSON(http.StatusOK, report)
}

// RequestEmailConfirmation probes the upstream confirmation endpoints.
func (h *BookingHandler) RequestEmailConfirmation(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := h.Confirmation.RequestConfirmation(c.Request.Context(), input.Email)
	c.JSON(http.StatusOK, result)
}

// VerifyEmailToken redeems a token from the confirmation mail link.
func (h *BookingHandler) VerifyEmailToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	result := h.Confirmation.VerifyToken(c.Request.Context(), token)
	c.JSON(http.StatusOK, result)
}
