package seedControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

type SeedInput struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	OptimalPH       string `json:"optimal_ph"`
	OptimalMoisture string `json:"optimal_moisture"`
	Image           string `json:"image"`
}

// GET /seeds
func GetSeeds(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seeds []models.Seed
		if err := db.Order("id asc").Find(&seeds).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seeds"})
			return
		}
		c.JSON(http.StatusOK, seeds)
	}
}

// POST /admin/seeds
func CreateSeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SeedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		seed := models.Seed{
			Name:            input.Name,
			Description:     input.Description,
			OptimalPH:       input.OptimalPH,
			OptimalMoisture: input.OptimalMoisture,
			Image:           input.Image,
		}
		if err := db.Create(&seed).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seed"})
			return
		}
		c.JSON(http.StatusCreated, seed)
	}
}

// PUT /admin/seeds/:id
func UpdateSeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var seed models.Seed
		if err := db.First(&seed, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seed not found"})
			return
		}

		var input SeedInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		seed.Name = input.Name
		seed.Description = input.Description
		seed.OptimalPH = input.OptimalPH
		seed.OptimalMoisture = input.OptimalMoisture
		if input.Image != "" {
			seed.Image = input.Image
		}

		if err := db.Save(&seed).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seed"})
			return
		}
		c.JSON(http.StatusOK, seed)
	}
}

// DELETE /admin/seeds/:id
func DeleteSeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.Seed{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete seed"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Seed not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Seed deleted"})
	}
}
