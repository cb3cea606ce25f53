package farmerControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

func TestResolveProducts(t *testing.T) {
	farmer := models.Farmer{
		ID:      "farmer-1",
		Name:    "Rahim Ali",
		Contact: "rahim.ali@example.com",
		Products: []models.FarmerProduct{
			{ProductID: 1},
			{ProductID: 2},
		},
	}
	names := map[uint]string{
		1: "Organic Kalo Jira Rice (5kg)",
		2: "Premium Chinigura Rice (10kg)",
	}

	view := ResolveProducts(farmer, names)

	assert.Equal(t, "farmer-1", view.ID)
	require.Len(t, view.Products, 2)
	assert.Equal(t, "Organic Kalo Jira Rice (5kg)", view.Products[0].ProductName)
	assert.Equal(t, uint(2), view.Products[1].ProductID)
}

func TestResolveProductsDanglingID(t *testing.T) {
	// Deleting a listing leaves the link row behind. The read model keeps
	// the id but names it "Unknown Product".
	farmer := models.Farmer{
		ID:   "farmer-2",
		Name: "Fatima Begum",
		Products: []models.FarmerProduct{
			{ProductID: 1},
			{ProductID: 99},
		},
	}
	names := map[uint]string{1: "Healthy Balam Rice (5kg)"}

	view := ResolveProducts(farmer, names)

	require.Len(t, view.Products, 2)
	assert.Equal(t, "Healthy Balam Rice (5kg)", view.Products[0].ProductName)
	assert.Equal(t, "Unknown Product", view.Products[1].ProductName)
	assert.Equal(t, uint(99), view.Products[1].ProductID)
}

func TestResolveProductsNoLinks(t *testing.T) {
	view := ResolveProducts(models.Farmer{ID: "farmer-3", Name: "Jamal Uddin"}, nil)
	assert.NotNil(t, view.Products)
	assert.Empty(t, view.Products)
}

func TestUpdateFarmerReplacesContactAndLinks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Farmer{}, &models.FarmerProduct{}))

	farmer := models.Farmer{
		ID:       "farmer-1",
		Name:     "Rahim Ali",
		Contact:  "rahim.ali@example.com",
		Products: []models.FarmerProduct{{ProductID: 1}},
	}
	require.NoError(t, db.Create(&farmer).Error)

	r := gin.New()
	r.PUT("/admin/farmers/:id", UpdateFarmer(db))

	// An empty contact is a replacement, not an omission.
	body, _ := json.Marshal(FarmerInput{Name: "Rahim Ali", Contact: "", ProductIDs: []uint{2, 3}})
	req := httptest.NewRequest(http.MethodPut, "/admin/farmers/farmer-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Farmer
	require.NoError(t, db.Preload("Products").Where("id = ?", "farmer-1").First(&got).Error)
	assert.Equal(t, "Rahim Ali", got.Name)
	assert.Empty(t, got.Contact)
	require.Len(t, got.Products, 2)
	assert.Equal(t, uint(2), got.Products[0].ProductID)
	assert.Equal(t, uint(3), got.Products[1].ProductID)
}
