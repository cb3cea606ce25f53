package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

const uploadDir = "/var/www/amaderdhan/uploads/products"

// saveProductImage stores the uploaded file and returns its public URL.
func saveProductImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(strings.ReplaceAll(file.Filename, " ", "_"), ext)
	filename := fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
	savePath := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return fmt.Sprintf("/uploads/products/%s", filename), nil
}

// CreateProduct creates a new marketplace listing with an image upload.
// Admin appends only: listings are immutable for clients once created.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		farmer := c.PostForm("farmer")
		priceStr := c.PostForm("price")
		if name == "" || farmer == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, farmer, and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		description := c.PostForm("description")

		// Image: either an uploaded file or an external URL
		imageURL := c.PostForm("image_url")
		if imageURL == "" {
			imageURL, err = saveProductImage(c)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
				return
			}
		}

		newProduct := models.Product{
			Name:        name,
			Farmer:      farmer,
			Price:       price,
			Description: description,
			Image:       imageURL,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
