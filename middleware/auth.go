package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

// Routes the gates send failed requests to. Anonymous users land on the
// login route, non-admins on their own dashboard, never a 401/403 page.
const (
	LoginRoute     = "/api/auth/login"
	DashboardRoute = "/api/dashboard"
)

const contextUserKey = "currentUser"

// RequireAuth resolves the bearer token to a user row and stashes it in the
// request context for handlers to read via CurrentUser.
func RequireAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			redirectTo(c, LoginRoute)
			return
		}
		userID, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			redirectTo(c, LoginRoute)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			redirectTo(c, LoginRoute)
			return
		}

		c.Set(contextUserKey, &user)
		c.Next()
	}
}

// RequireAdmin gates management routes on the resolved user's admin flag.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			redirectTo(c, LoginRoute)
			return
		}
		if !user.Admin {
			redirectTo(c, DashboardRoute)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func redirectTo(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
	c.Abort()
}
