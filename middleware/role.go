package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iimrul/dhan/models"
)

// RequireRole gates a route group by the role claim set by ValidateToken.
// Must run after ValidateToken.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role missing from token"})
			c.Abort()
			return
		}
		roleStr, _ := roleVal.(string)
		for _, r := range roles {
			if models.Role(roleStr) == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
		c.Abort()
	}
}
