package middleware

import (
	"net/http"
	"strings"

	"designhub/internal/domain"
	jwtsvc "designhub/internal/pkg/jwt"
	"designhub/internal/pkg/response"
	"designhub/internal/repository"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// AuthRequired validates the Bearer token and resolves the authenticated
// user once per request. Core services receive the user explicitly; nothing
// downstream reads ambient session state.
func AuthRequired(jwt *jwtsvc.Service, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "You need to sign in first")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
