package routes

import (
	"net/http"
	"time"

	"scopex/handlers"
	"scopex/middleware"
	userService "scopex/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handler structs wired up in main.
type HandlerBundle struct {
	Users   userService.UserService
	Lead    *handlers.LeadHandler
	Auth    *handlers.AuthHandler
	UserDir *handlers.UserDirectoryHandler
	Advisor *handlers.AdvisorHandler
	Stream  *handlers.StreamHandler
}

// RegisterLeadRoutes registers the public submission endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("/hospital", hb.Lead.SubmitHospitalEnquiryHandler)
		api.POST("/camp", hb.Lead.SubmitCampBookingHandler)
	}
}

// RegisterAdvisorRoutes registers the public advisor chat endpoint.
func RegisterAdvisorRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/advisor")
	{
		api.POST("/chat", hb.Advisor.ChatHandler)
		api.POST("/reset", hb.Advisor.ResetHandler)
	}
}

// RegisterAuthRoutes registers admin login/logout.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (require a live session)
		api.Use(middleware.SessionAuthMiddleware(hb.Users))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterAdminRoutes sets up the admin panel surface. Listing and status
// updates are open to every role; deletion, export and user management are
// gated to SUPER_ADMIN.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(hb.Users))
	{
		adminGroup.GET("/leads", hb.Lead.ListLeadsHandler)
		adminGroup.PATCH("/leads/:category/:id", hb.Lead.UpdateLeadHandler)
		adminGroup.GET("/leads/stream", hb.Stream.LeadStreamHandler)

		super := adminGroup.Group("")
		super.Use(middleware.RequireSuperAdmin())
		super.DELETE("/leads/:category/:id", hb.Lead.DeleteLeadHandler)
		super.GET("/leads/export", hb.Lead.ExportLeadsHandler)
		super.GET("/users", hb.UserDir.ListUsersHandler)
		super.POST("/users", hb.UserDir.CreateUserHandler)
		super.DELETE("/users/:id", hb.UserDir.RemoveUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Scope X"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterLeadRoutes(r, hb)
	RegisterAdvisorRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
