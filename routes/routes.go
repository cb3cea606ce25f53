package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/gemini"
	"github.com/iimrul/dhan/soil"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Admin,
// Order, Soil and AI route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sim *soil.Simulator, ai *gemini.Client, chats *gemini.SessionStore) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 3️⃣ Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, db)

	// order routes
	SetupOrderRoutes(r, db)

	// soil telemetry routes
	SetupSoilRoutes(r, sim)

	// AI recommendation + chat routes
	SetupAIRoutes(r, db, sim, ai, chats)
}
