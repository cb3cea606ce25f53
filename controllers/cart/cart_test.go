package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
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

const testUserID = "user-1"

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))

	require.NoError(t, db.Create(&models.Cart{UserID: testUserID}).Error)

	r := gin.New()
	authStub := func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}
	cart := r.Group("/user/cart", authStub)
	{
		cart.GET("/", GetUserCart(db))
		cart.POST("/", AddCartItem(db))
		cart.PUT("/:product_id", SetCartItemQuantity(db))
		cart.DELETE("/:product_id", DeleteCartItem(db))
		cart.DELETE("/", ClearUserCart(db))
	}
	return db, r
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Farmer: "Rahim Ali", Price: price, Image: "img.jpg"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartItems(t *testing.T, db *gorm.DB) []models.CartItem {
	t.Helper()
	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", testUserID).First(&cart).Error)
	return cart.Items
}

func TestAddCartItemCreatesLineWithQuantityOne(t *testing.T) {
	db, r := setupTest(t)
	p := createProduct(t, db, "Organic Kalo Jira Rice (5kg)", 650)

	w := doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	items := cartItems(t, db)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 650.0, items[0].ProductPrice)
	assert.Equal(t, "Organic Kalo Jira Rice (5kg)", items[0].ProductName)
}

func TestAddExistingProductIncrementsInsteadOfDuplicating(t *testing.T) {
	db, r := setupTest(t)
	p := createProduct(t, db, "Premium Chinigura Rice (10kg)", 1200)

	for i := 0; i < 3; i++ {
		doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p.ID})
	}

	items := cartItems(t, db)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddUnknownProductRejected(t *testing.T) {
	db, r := setupTest(t)
	_ = db

	w := doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetQuantity(t *testing.T) {
	db, r := setupTest(t)
	p := createProduct(t, db, "Healthy Balam Rice (5kg)", 550)
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p.ID})

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/user/cart/%d", p.ID), gin.H{"quantity": 4})
	assert.Equal(t, http.StatusOK, w.Code)

	items := cartItems(t, db)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	db, r := setupTest(t)
	p := createProduct(t, db, "Healthy Balam Rice (5kg)", 550)
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p.ID})

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/user/cart/%d", p.ID), gin.H{"quantity": 0})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, db))
}

func TestSubtotalMatchesPriceTimesQuantity(t *testing.T) {
	db, r := setupTest(t)
	p1 := createProduct(t, db, "Organic Kalo Jira Rice (5kg)", 650)
	p2 := createProduct(t, db, "Premium Chinigura Rice (10kg)", 1200)

	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p1.ID})
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p2.ID})
	doJSON(r, http.MethodPut, fmt.Sprintf("/user/cart/%d", p2.ID), gin.H{"quantity": 2})

	w := doJSON(r, http.MethodGet, "/user/cart/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items    []models.CartItem `json:"items"`
		Subtotal float64           `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3050.0, resp.Subtotal) // 650 + 2*1200
	assert.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestDeleteCartItem(t *testing.T) {
	db, r := setupTest(t)
	p := createProduct(t, db, "Organic Kalo Jira Rice (5kg)", 650)
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p.ID})

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/user/cart/%d", p.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, db))

	// Deleting again reports not found.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/user/cart/%d", p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCart(t *testing.T) {
	db, r := setupTest(t)
	p1 := createProduct(t, db, "Organic Kalo Jira Rice (5kg)", 650)
	p2 := createProduct(t, db, "Premium Chinigura Rice (10kg)", 1200)
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p1.ID})
	doJSON(r, http.MethodPost, "/user/cart/", gin.H{"product_id": p2.ID})

	w := doJSON(r, http.MethodDelete, "/user/cart/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, db))
}
