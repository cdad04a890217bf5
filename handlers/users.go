package handlers

import (
	"net/http"

	"scopex/models"
	userService "scopex/services/user"
	"scopex/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDirectoryHandler exposes CRM user management. All routes sit behind
// the super-admin gate; there is no self-registration.
type UserDirectoryHandler struct {
	Users userService.UserService
}

func NewUserDirectoryHandler(users userService.UserService) *UserDirectoryHandler {
	return &UserDirectoryHandler{Users: users}
}

// ListUsersHandler handles GET /api/admin/users.
func (h *UserDirectoryHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch CRM users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	sanitized := make([]models.CRMUser, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	c.JSON(http.StatusOK, sanitized)
}

type createUserInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=SUPER_ADMIN MANAGER VIEWER"`
	FullName string `json:"fullName" binding:"required"`
}

// CreateUserHandler handles POST /api/admin/users.
func (h *UserDirectoryHandler) CreateUserHandler(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	if !h.Users.CreateUser(c.Request.Context(), input.Email, input.Password, input.Role, input.FullName) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveUserHandler handles DELETE /api/admin/users/:id. The root seed
// account cannot be removed.
func (h *UserDirectoryHandler) RemoveUserHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.Users.RemoveUser(c.Request.Context(), id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "User cannot be removed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
