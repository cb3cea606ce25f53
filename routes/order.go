package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/iimrul/dhan/controllers/order"
	"github.com/iimrul/dhan/middleware"
	"github.com/iimrul/dhan/models"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout: snapshot the caller's cart into a new order
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's own orders
		orders.GET("/mine", orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or order_ref
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		adminOnly := orders.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		{
			// Fetch all orders (admin panel)
			adminOnly.GET("/", orderControllers.GetAllOrdersHandler(db))

			// websocket endpoint for real-time order updates
			adminOnly.GET("/ws", orderControllers.OrderWebSocketHandler)

			// Update order status (any status may follow any other)
			adminOnly.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

			// Delete an order
			adminOnly.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}
}
