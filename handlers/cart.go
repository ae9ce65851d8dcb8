package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/models"
	"seatwise/services/cart"
	"seatwise/utils"
)

// CartHandler exposes the session cart.
type CartHandler struct {
	Cart cart.CartService
}

func NewCartHandler(cartSvc cart.CartService) *CartHandler {
	return &CartHandler{Cart: cartSvc}
}

// List returns the current selection.
func (h *CartHandler) List(c *gin.Context) {
	items := h.Cart.Items()
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Add stores one slot selection.
func (h *CartHandler) Add(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	stored, added := h.Cart.Add(item)
	status := http.StatusCreated
	if !added {
		status = http.StatusOK // duplicate selection, no new item
	}
	c.JSON(status, gin.H{"item": stored, "added": added})
}

// Remove deletes one item by id.
func (h *CartHandler) Remove(c *gin.Context) {
	if !h.Cart.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// Clear empties the cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// Consolidated previews the merged bookings the executor would run.
func (h *CartHandler) Consolidated(c *gin.Context) {
	bookings := h.Cart.Consolidated()

	totalMinutes := 0
	for _, b := range bookings {
		totalMinutes += b.DurationMinutes
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":      bookings,
		"count":         len(bookings),
		"totalDuration": utils.FormatDurationShort(totalMinutes),
	})
}
