package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labelhub-backend/internal/shared"
	"labelhub-backend/internal/shared/response"
)

// RequireRoles chặn request khi role (set bởi AuthMiddleware) không nằm trong allow-list
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(shared.ContextRole)
		if _, ok := allowed[role]; !ok {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly là shortcut cho RequireRoles("admin")
func AdminOnly() gin.HandlerFunc {
	return RequireRoles(shared.RoleAdmin)
}

// StaffOnly cho phép admin và manager
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(shared.RoleAdmin, shared.RoleManager)
}
