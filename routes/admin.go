package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/iimrul/dhan/controllers/admin"
	cartControllers "github.com/iimrul/dhan/controllers/cart"
	farmerControllers "github.com/iimrul/dhan/controllers/farmer"
	productcontroller "github.com/iimrul/dhan/controllers/product"
	seedControllers "github.com/iimrul/dhan/controllers/seed"
	userControllers "github.com/iimrul/dhan/controllers/user"
	"github.com/iimrul/dhan/middleware"
	"github.com/iimrul/dhan/models"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin or
// super-admin role claim; the admin-management group is super admin only.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Seed Library Management ───────────
		seedAdmin := adminGroup.Group("/seeds")
		{
			seedAdmin.POST("", seedControllers.CreateSeed(db))
			seedAdmin.PUT("/:id", seedControllers.UpdateSeed(db))
			seedAdmin.GET("", seedControllers.GetSeeds(db))
			seedAdmin.DELETE("/:id", seedControllers.DeleteSeed(db))
		}

		// ─────────── Farmer Management ───────────
		farmerAdmin := adminGroup.Group("/farmers")
		{
			farmerAdmin.POST("", farmerControllers.CreateFarmer(db))
			farmerAdmin.PUT("/:id", farmerControllers.UpdateFarmer(db))
			farmerAdmin.GET("", farmerControllers.GetFarmers(db))
			farmerAdmin.DELETE("/:id", farmerControllers.DeleteFarmer(db))
		}

		// ─────────── Admin Approval Workflow (super admin only) ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		adminMgmt.Use(middleware.RequireRole(models.RoleSuperAdmin))
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
