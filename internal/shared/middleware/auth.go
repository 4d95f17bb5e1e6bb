package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"labelhub-backend/internal/shared"
	"labelhub-backend/internal/shared/response"
	"labelhub-backend/pkg/jwt"
)

// TokenValidator được implement bởi *jwt.Manager
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware xác thực Bearer token.
// Thiếu header hoặc sai format -> 401, token không hợp lệ/hết hạn -> 403.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Access token required", nil)
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			response.Error(c, http.StatusUnauthorized, "Access token required", nil)
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := validator.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Error(c, http.StatusForbidden, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		// 4. Set identity vào context cho handlers phía sau
		c.Set(shared.ContextUserID, userID)
		c.Set(shared.ContextUsername, claims.Username)
		c.Set(shared.ContextRole, claims.Role)

		c.Next()
	}
}

// GetUserID lấy user id do AuthMiddleware set
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(shared.ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) string {
	return c.GetString(shared.ContextRole)
}

func GetUsername(c *gin.Context) string {
	return c.GetString(shared.ContextUsername)
}
