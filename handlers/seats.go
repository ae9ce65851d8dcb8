package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"seatwise/models"
	"seatwise/services/booking"
	"seatwise/services/upstream"
	"seatwise/utils"
)

// SeatsHandler serves library, floor, and seat listings from the
// upstream directory, behind the TTL cache.
type SeatsHandler struct {
	Upstream *upstream.Client
}

func NewSeatsHandler(client *upstream.Client) *SeatsHandler {
	return &SeatsHandler{Upstream: client}
}

// Libraries searches the site directory.
func (h *SeatsHandler) Libraries(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	libraries, err := h.Upstream.GetLibraries(c.Request.Context(), query)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch libraries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"libraries": libraries})
}

// Floors lists the rooms of one library.
func (h *SeatsHandler) Floors(c *gin.Context) {
	floors, err := h.Upstream.GetFloors(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch floors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"floors": floors})
}

// Seats lists bookable seats, optionally restricted to one floor and
// filtered by a multi-term search over name and room. The date defaults
// to today.
func (h *SeatsHandler) Seats(c *gin.Context) {
	libraryID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		date = utils.FormatDate(time.Now())
	}
	floorID := c.Query("floor")
	query := c.Query("q")

	var (
		seats []models.Seat
		err   error
	)
	if floorID != "" {
		seats, err = h.Upstream.GetSeats(c.Request.Context(), libraryID, floorID, date)
	} else {
		seats, err = h.Upstream.GetAllSeats(c.Request.Context(), libraryID, date)
	}
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch seats", err.Error())
		return
	}

	filtered := make([]models.Seat, 0, len(seats))
	for _, seat := range booking.FilterBookable(seats) {
		if utils.SearchFields(query, seat.ResourceName, seat.FloorName, seat.Description) {
			filtered = append(filtered, seat)
		}
	}

	c.JSON(http.StatusOK, gin.H{"seats": filtered, "count": len(filtered)})
}
