package handler

import (
	"errors"
	"net/http"

	"planhub/internal/middleware"
	"planhub/internal/model"
	"planhub/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	resp, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	resp, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(err.Error(), ""))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Database error", err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Could not validate credentials", ""))
		return
	}
	c.JSON(http.StatusOK, model.UserProfile{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	})
}
