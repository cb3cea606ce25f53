package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

const testUserID = "user-1"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))

	user := models.User{ID: testUserID, Email: "karim@example.com", Name: "Karim Mia"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: testUserID}).Error)
	return db
}

func fillCart(t *testing.T, db *gorm.DB) {
	t.Helper()
	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", testUserID).First(&cart).Error)

	items := []models.CartItem{
		{
			CartID:        cart.CartID,
			ProductID:     1,
			ProductName:   "Organic Kalo Jira Rice (5kg)",
			ProductFarmer: "Rahim Ali",
			ProductPrice:  650,
			Quantity:      1,
			AddedAt:       time.Now(),
		},
		{
			CartID:        cart.CartID,
			ProductID:     2,
			ProductName:   "Premium Chinigura Rice (10kg)",
			ProductFarmer: "Fatima Begum",
			ProductPrice:  1200,
			Quantity:      2,
			AddedAt:       time.Now(),
		},
	}
	require.NoError(t, db.Create(&items).Error)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)

	order, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	assert.Equal(t, 3050.0, order.TotalAmount) // 650*1 + 1200*2
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Karim Mia", order.CustomerName)
	assert.Equal(t, "karim@example.com", order.CustomerEmail)
	assert.True(t, strings.HasPrefix(order.OrderRef, "ord-"))
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Organic Kalo Jira Rice (5kg)", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[1].Quantity)

	// Cart is empty afterwards.
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestPlaceOrderEmptyCartIsNoOp(t *testing.T) {
	db := setupDB(t)

	_, err := PlaceOrder(db, testUserID)
	assert.ErrorIs(t, err, errEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRefsAreUnique(t *testing.T) {
	db := setupDB(t)

	fillCart(t, db)
	first, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	fillCart(t, db)
	second, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderRef, second.OrderRef)
}

func TestMapOrderStatus(t *testing.T) {
	cases := map[string]models.OrderStatus{
		"Pending":   models.OrderStatusPending,
		"shipped":   models.OrderStatusShipped,
		"DELIVERED": models.OrderStatusDelivered,
	}
	for in, want := range cases {
		got, err := mapOrderStatus(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := mapOrderStatus("Cancelled")
	assert.Error(t, err)
}

func newOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authStub := func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}
	orders := r.Group("/orders", authStub)
	{
		orders.POST("/place", PlaceOrderHandler(db))
		orders.GET("/mine", GetUserOrdersHandler(db))
		orders.GET("/", GetAllOrdersHandler(db))
		orders.GET("/:orderID", GetOrderByIDHandler(db))
		orders.PUT("/:orderID/status", UpdateOrderStatusHandler(db))
		orders.DELETE("/:orderID", DeleteOrderHandler(db))
	}
	return r
}

// The id and order_ref lookups must stay separate queries: a reference string
// in the integer id comparison is a type error on postgres.
func TestGetOrderByIDOrReference(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	order, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	r := newOrderRouter(db)

	for _, param := range []string{fmt.Sprintf("%d", order.ID), order.OrderRef} {
		req := httptest.NewRequest(http.MethodGet, "/orders/"+param, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, order.OrderRef, got.OrderRef)
		assert.Len(t, got.Items, 2)
	}

	// Unknown reference is a clean 404, never a query failure.
	req := httptest.NewRequest(http.MethodGet, "/orders/ord-20250908130500-nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderByReference(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	order, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	r := newOrderRouter(db)
	req := httptest.NewRequest(http.MethodDelete, "/orders/"+order.OrderRef, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	// Gone already.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusUnconstrainedTransitions(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	order, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	r := newOrderRouter(db)

	// Delivered straight from Pending, then back again. Any hop is legal.
	for _, status := range []string{"Delivered", "Pending", "Shipped"} {
		body, _ := json.Marshal(gin.H{"status": status})
		req := httptest.NewRequest(http.MethodPut,
			fmt.Sprintf("/orders/%d/status", order.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.Order
		require.NoError(t, db.First(&got, order.ID).Error)
		assert.Equal(t, models.OrderStatus(status), got.Status)
	}
}

func TestGetUserOrdersOnlyReturnsOwnOrders(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	_, err := PlaceOrder(db, testUserID)
	require.NoError(t, err)

	other := models.Order{
		OrderRef:    generateOrderRef(),
		UserID:      "user-2",
		TotalAmount: 550,
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&other).Error)

	r := newOrderRouter(db)
	req := httptest.NewRequest(http.MethodGet, "/orders/mine", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, testUserID, orders[0].UserID)
}
