package middleware

import (
	"net/http"

	"planhub/internal/model"
	"planhub/internal/service"
	"planhub/pkg/auth"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware verifies the Bearer token and loads the authenticated user
// into the request context. Inactive users are rejected.
func AuthMiddleware(tokens *auth.TokenManager, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractToken(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.Authenticate(c.Request.Context(), claims.Username)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("Could not validate credentials", ""))
}
