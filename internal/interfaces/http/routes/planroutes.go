package routes

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/interfaces/http/handlers"
	"stratplan/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures plan CRUD, the review workflow and review listing.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	h := cfg.PlanHandler

	plans := api.Group("/plans")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.GET("", h.List)
		plans.POST("", h.Create)
		plans.GET("/:id", h.Get)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
		plans.POST("/:id/submit", h.Submit)
		plans.POST("/:id/approve", h.Approve)
		plans.POST("/:id/reject", h.Reject)
	}

	reviews := api.Group("/plan-reviews")
	reviews.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reviews.GET("", h.ListReviews)
	}
}
