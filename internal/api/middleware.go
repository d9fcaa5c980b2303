package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusbook/room-booking-backend/internal/auth"
	"github.com/campusbook/room-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user holds the admin role.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// The role is resolved from storage on every request rather than
		// trusted from the token, so revoking admin takes effect immediately.
		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied, admin only"})
			return
		}

		c.Next()
	}
}
