package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seatwise/utils"
)

// Health reports the latest dependency health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
