package soilControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iimrul/dhan/soil"
)

// GET /soil/current
func GetCurrentReading(sim *soil.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		reading, err := sim.Current()
		if err != nil {
			if errors.Is(err, soil.ErrWarmingUp) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Soil sensor warming up"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read soil data"})
			return
		}
		c.JSON(http.StatusOK, reading)
	}
}

// GET /soil/history
func GetHistory(sim *soil.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.History())
	}
}

// POST /soil/refresh
func RefreshReading(sim *soil.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sim.Refresh())
	}
}
