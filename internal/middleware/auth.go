package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"workwise_backend/internal/auth"
	"workwise_backend/internal/logger"
	"workwise_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the claims in the
// request context. This replaces the older per-endpoint static tokens:
// the signing secret lives in the process-wide config, loaded once.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(claims.UserID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware allows only admin callers through.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(string)
		if !ok || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// RequireSelfOrAdmin gates routes carrying a :user_id path parameter: the
// token subject must match it unless the caller is an admin.
func RequireSelfOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		pathID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		if role, _ := c.Get("role"); role == models.RoleAdmin {
			c.Next()
			return
		}

		userIDVal, exists := c.Get("userID")
		userID, ok := userIDVal.(uint)
		if !exists || !ok || uint64(userID) != pathID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or 0 when absent.
func GetUserID(c *gin.Context) uint {
	userIDVal, exists := c.Get("userID")
	if !exists {
		return 0
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0
	}
	return userID
}
