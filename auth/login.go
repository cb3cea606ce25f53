package auth

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/iimrul/dhan/models"
)

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// DeriveRole maps an email to its access tier. The single super admin seat
// comes from SUPER_ADMIN_EMAIL; everyone else is looked up in the admins
// role-assignment table and defaults to Client.
func DeriveRole(db *gorm.DB, email string) models.Role {
	if email != "" && email == os.Getenv("SUPER_ADMIN_EMAIL") {
		return models.RoleSuperAdmin
	}
	var admin models.Admin
	if err := db.Where("email = ? AND approved = ?", email, true).First(&admin).Error; err == nil {
		return models.RoleAdmin
	}
	return models.RoleClient
}

// POST /auth/login
// Verifies the Firebase ID token, upserts the user (with their cart), derives
// the role and answers with a session JWT plus the nav views for that role.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       firebaseUserID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "firebase",
				Cart:     models.Cart{UserID: firebaseUserID},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		role := DeriveRole(db, email)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
			"role":    role,
			"views":   models.AllowedViews(role),
			"token":   issueJWT(email, role, firebaseUserID, name, picture),
		})
	}
}

// POST /auth/admin-login
// Admin seats follow an approval workflow: the first attempt registers a
// pending admins row, and logins keep answering 403 until a super admin
// approves it. The configured super admin email bypasses the table.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := verifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID

		// Super admin shortcut
		if email == os.Getenv("SUPER_ADMIN_EMAIL") {
			respondWithRole(c, models.RoleSuperAdmin, email, firebaseUserID, name, picture)
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (pending approval)", email)
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		respondWithRole(c, models.RoleAdmin, email, firebaseUserID, name, picture)
	}
}

func respondWithRole(c *gin.Context, role models.Role, email, userID, name, picture string) {
	c.JSON(http.StatusOK, gin.H{
		"token":   issueJWT(email, role, userID, name, picture),
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
		"views":   models.AllowedViews(role),
	})
}

// issueJWT generates the session token carrying the derived role.
func issueJWT(email string, role models.Role, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signedToken
}
