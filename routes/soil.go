package routes

import (
	"github.com/gin-gonic/gin"

	soilControllers "github.com/iimrul/dhan/controllers/soil"
	"github.com/iimrul/dhan/middleware"
	"github.com/iimrul/dhan/models"
	"github.com/iimrul/dhan/soil"
)

// SetupSoilRoutes registers the soil monitor endpoints. The soil monitor is
// an admin view, so the whole group is role-gated.
func SetupSoilRoutes(r *gin.Engine, sim *soil.Simulator) {
	soilGroup := r.Group("/soil")
	soilGroup.Use(middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	{
		soilGroup.GET("/current", soilControllers.GetCurrentReading(sim))
		soilGroup.GET("/history", soilControllers.GetHistory(sim))
		soilGroup.POST("/refresh", soilControllers.RefreshReading(sim))
		soilGroup.GET("/ws", soilControllers.SoilWebSocketHandler(sim))
	}
}
