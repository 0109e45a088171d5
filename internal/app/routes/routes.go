package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarshinde/studyhub/internal/app/controllers"
	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/middleware"
)

// Controllers groups the handler sets wired by the bootstrap layer.
type Controllers struct {
	Resource  *controllers.ResourceController
	Auth      *controllers.AuthController
	Assistant *controllers.AssistantController
	Taxonomy  *controllers.TaxonomyController
}

// SetupRoutes registers all API endpoints on the router.
func SetupRoutes(router *gin.Engine, ctrl *Controllers, authMw *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public surface. Browsing only ever exposes approved resources.
	v1.POST("/auth/login", ctrl.Auth.Login)

	v1.GET("/taxonomy", ctrl.Taxonomy.Overview)
	v1.GET("/taxonomy/semesters", ctrl.Taxonomy.Semesters)
	v1.GET("/taxonomy/subjects", ctrl.Taxonomy.Subjects)
	v1.GET("/contact", ctrl.Taxonomy.Contact)

	v1.GET("/resources", ctrl.Resource.Browse)
	v1.GET("/resources/:id", ctrl.Resource.GetByID)
	v1.POST("/resources/:id/download", ctrl.Resource.Download)

	v1.GET("/assistant/messages", ctrl.Assistant.Transcript)
	v1.POST("/assistant/messages", ctrl.Assistant.Send)
	v1.DELETE("/assistant/messages", ctrl.Assistant.Reset)

	// Any signed-in role may submit; submissions start out pending.
	authed := v1.Group("")
	authed.Use(authMw.JWTAuth())
	{
		authed.POST("/auth/logout", ctrl.Auth.Logout)
		authed.GET("/auth/me", ctrl.Auth.Me)
		authed.POST("/resources", ctrl.Resource.Submit)
	}

	// Moderation actions require the admin role.
	admin := v1.Group("/admin")
	admin.Use(authMw.JWTAuth(), authMw.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/resources", ctrl.Resource.ListAll)
		admin.POST("/resources/:id/approve", ctrl.Resource.Approve)
		admin.DELETE("/resources/:id", ctrl.Resource.Remove)
	}
}
