package farmerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

type FarmerInput struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact"`
	ProductIDs []uint `json:"product_ids"`
}

// FarmerView is the read model: each linked product id resolved to its
// current listing name, or "Unknown Product" if the id dangles.
type FarmerView struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Contact  string              `json:"contact"`
	Products []FarmerProductView `json:"products"`
}

type FarmerProductView struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
}

// ResolveProducts builds the read model for one farmer against a product
// name lookup. There is no referential integrity on FarmerProduct rows, so
// missing ids are expected and render as "Unknown Product".
func ResolveProducts(farmer models.Farmer, names map[uint]string) FarmerView {
	view := FarmerView{
		ID:       farmer.ID,
		Name:     farmer.Name,
		Contact:  farmer.Contact,
		Products: []FarmerProductView{},
	}
	for _, link := range farmer.Products {
		name, ok := names[link.ProductID]
		if !ok {
			name = "Unknown Product"
		}
		view.Products = append(view.Products, FarmerProductView{
			ProductID:   link.ProductID,
			ProductName: name,
		})
	}
	return view
}

func productNameLookup(db *gorm.DB) (map[uint]string, error) {
	var products []models.Product
	if err := db.Select("id", "name").Find(&products).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

// GET /farmers
func GetFarmers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var farmers []models.Farmer
		if err := db.Preload("Products").Order("name asc").Find(&farmers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch farmers"})
			return
		}

		names, err := productNameLookup(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		views := make([]FarmerView, 0, len(farmers))
		for _, f := range farmers {
			views = append(views, ResolveProducts(f, names))
		}
		c.JSON(http.StatusOK, views)
	}
}

// POST /admin/farmers
func CreateFarmer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FarmerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		farmer := models.Farmer{
			ID:      "farmer-" + uuid.NewString(),
			Name:    input.Name,
			Contact: input.Contact,
		}
		for _, pid := range input.ProductIDs {
			farmer.Products = append(farmer.Products, models.FarmerProduct{ProductID: pid})
		}

		if err := db.Create(&farmer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create farmer"})
			return
		}
		c.JSON(http.StatusCreated, farmer)
	}
}

// PUT /admin/farmers/:id — replaces name/contact and the product id list.
func UpdateFarmer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var farmer models.Farmer
		if err := db.Preload("Products").Where("id = ?", id).First(&farmer).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
			return
		}

		var input FarmerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Map form: struct updates skip zero values, but clearing
			// the contact must stick.
			if err := tx.Model(&farmer).Updates(map[string]interface{}{
				"name":    input.Name,
				"contact": input.Contact,
			}).Error; err != nil {
				return err
			}
			if err := tx.Where("farmer_id = ?", farmer.ID).Delete(&models.FarmerProduct{}).Error; err != nil {
				return err
			}
			for _, pid := range input.ProductIDs {
				if err := tx.Create(&models.FarmerProduct{FarmerID: farmer.ID, ProductID: pid}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update farmer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Farmer updated"})
	}
}

// DELETE /admin/farmers/:id
func DeleteFarmer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Farmer{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete farmer"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Farmer deleted"})
	}
}
