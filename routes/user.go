package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/iimrul/dhan/controllers/cart"
	farmerControllers "github.com/iimrul/dhan/controllers/farmer"
	productControllers "github.com/iimrul/dhan/controllers/product"
	seedControllers "github.com/iimrul/dhan/controllers/seed"
	userControllers "github.com/iimrul/dhan/controllers/user"
	"github.com/iimrul/dhan/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Navigation ────────────────
		userGroup.GET("/views", userControllers.GetViews) // GET /user/views

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                       // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                      // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity(db))    // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))      // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))                  // DELETE /user/cart
		}

		// ──────────────── Browse Marketplace ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(db)) // GET /user/products/:id

		// ──────────────── Browse Seed Library & Farmers ────────────────
		userGroup.GET("/seeds", seedControllers.GetSeeds(db))       // GET /user/seeds
		userGroup.GET("/farmers", farmerControllers.GetFarmers(db)) // GET /user/farmers
	}
}
