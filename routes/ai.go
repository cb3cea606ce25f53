package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	aiControllers "github.com/iimrul/dhan/controllers/ai"
	"github.com/iimrul/dhan/gemini"
	"github.com/iimrul/dhan/middleware"
	"github.com/iimrul/dhan/models"
	"github.com/iimrul/dhan/soil"
)

// SetupAIRoutes registers the Gemini-backed endpoints. Dhan-Bot chat is open
// to every signed-in user; seed recommendations read the soil monitor and
// follow its role gate.
func SetupAIRoutes(r *gin.Engine, db *gorm.DB, sim *soil.Simulator, ai *gemini.Client, chats *gemini.SessionStore) {
	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.ValidateToken)
	{
		chatGroup := aiGroup.Group("/chat")
		{
			chatGroup.POST("/sessions", aiControllers.CreateChatSession(ai, chats))
			chatGroup.GET("/sessions/:id", aiControllers.GetChatTranscript(chats))
			chatGroup.POST("/sessions/:id/messages", aiControllers.SendChatMessage(chats))
		}

		recGroup := aiGroup.Group("/recommendations")
		recGroup.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		{
			recGroup.GET("", aiControllers.GetRecommendations(db, sim, ai))
		}
	}
}
