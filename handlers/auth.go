package handlers

import (
	"net/http"

	"scopex/middleware"
	userService "scopex/services/user"
	"scopex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes admin login/logout over HTTP.
type AuthHandler struct {
	Users userService.UserService
}

func NewAuthHandler(users userService.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles POST /api/auth/login. Failure is always the same
// undifferentiated response.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	usr, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Users.CreateSession(c.Request.Context(), *usr)
	if err != nil {
		utils.GetLogger().Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  usr.Sanitized(),
	})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token, _ := c.Get("sessionToken")
	if tokenStr, ok := token.(string); ok {
		if err := h.Users.ClearSession(c.Request.Context(), tokenStr); err != nil {
			utils.GetLogger().Warn("failed to clear session", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MeHandler handles GET /api/auth/me: the revalidated session identity.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	c.JSON(http.StatusOK, usr.Sanitized())
}
