package aiControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/gemini"
	"github.com/iimrul/dhan/models"
	"github.com/iimrul/dhan/soil"
)

// GET /ai/recommendations
// One coarse failure mode: whatever goes wrong upstream (network, schema
// mismatch, rate limit), the client sees a single retryable message.
func GetRecommendations(db *gorm.DB, sim *soil.Simulator, ai *gemini.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := sim.Current()
		if err != nil {
			if errors.Is(err, soil.ErrWarmingUp) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Soil sensor warming up"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read soil data"})
			return
		}

		var seeds []models.Seed
		if err := db.Find(&seeds).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seeds"})
			return
		}

		recs, err := ai.Recommend(c.Request.Context(), current, sim.History(), seeds)
		if err != nil {
			log.Printf("❌ Recommendation call failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch recommendations"})
			return
		}

		c.JSON(http.StatusOK, recs)
	}
}
