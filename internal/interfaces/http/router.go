package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stratplan/internal/infrastructure/config"
	"stratplan/internal/interfaces/http/handlers"
	"stratplan/internal/interfaces/http/middleware"
	"stratplan/internal/interfaces/http/routes"
	"stratplan/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter wires the container and returns a router ready for SetupRoutes.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(gdb, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.ErrorHandler(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", handlers.HealthCheck)

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupOrganizationRoutes(api, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.hdlrs.organizationHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupHierarchyRoutes(api, &routes.HierarchyRouteConfig{
		HierarchyHandler: r.hdlrs.hierarchyHandler,
		WeightHandler:    r.hdlrs.weightHandler,
		BudgetHandler:    r.hdlrs.budgetHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{
		PlanHandler:    r.hdlrs.planHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
