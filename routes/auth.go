package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Firebase client login (role derived server-side)
		authGroup.POST("/login", auth.LoginHandler(db))

		// Admin login with the approval workflow
		authGroup.POST("/admin-login", auth.AdminLoginHandler(db))
	}
}
