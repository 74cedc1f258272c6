package routes

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/interfaces/http/handlers"
	"stratplan/internal/interfaces/http/middleware"
)

// OrganizationRouteConfig holds dependencies for organization routes.
type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupOrganizationRoutes configures organization and membership routes.
// Role checks happen in the use cases, scoped to the organization in the path.
func SetupOrganizationRoutes(api *gin.RouterGroup, cfg *OrganizationRouteConfig) {
	h := cfg.OrganizationHandler
	orgs := api.Group("/organizations")
	orgs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orgs.GET("", h.ListHierarchy)
		orgs.GET("/hierarchy", h.ListHierarchy)
		orgs.GET("/mine", h.ListMine)
		orgs.GET("/:id", h.Get)
		orgs.PATCH("/:id", h.Update)
		orgs.PUT("/:id/parent", h.ChangeParent)
		orgs.GET("/:id/members", h.ListMembers)
		orgs.POST("/:id/members", h.AddMember)
		orgs.DELETE("/:id/members", h.RemoveMember)
	}
}
