package routes

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/interfaces/http/handlers"
	"stratplan/internal/interfaces/http/middleware"
)

// HierarchyRouteConfig holds dependencies for strategy tree routes.
type HierarchyRouteConfig struct {
	HierarchyHandler *handlers.HierarchyHandler
	WeightHandler    *handlers.WeightHandler
	BudgetHandler    *handlers.BudgetHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupHierarchyRoutes configures the six node kinds, their weight
// summaries and the activity budget endpoints.
func SetupHierarchyRoutes(api *gin.RouterGroup, cfg *HierarchyRouteConfig) {
	h := cfg.HierarchyHandler
	wh := cfg.WeightHandler

	tree := api.Group("")
	tree.Use(cfg.AuthMiddleware.RequireAuth())

	objectives := tree.Group("/strategic-objectives")
	{
		objectives.GET("", h.ListObjectives)
		objectives.POST("", h.CreateObjective)
		objectives.GET("/weight-summary", wh.ObjectiveSummary)
		objectives.POST("/validate-total", wh.ValidateObjectivesTotal)
		objectives.GET("/:id", h.GetObjective)
		objectives.PUT("/:id", h.UpdateObjective)
		objectives.DELETE("/:id", h.DeleteObjective)
	}

	programs := tree.Group("/programs")
	{
		programs.GET("", h.ListPrograms)
		programs.POST("", h.CreateProgram)
		programs.GET("/weight-summary", wh.ProgramSummary)
		programs.GET("/:id", h.GetProgram)
		programs.PUT("/:id", h.UpdateProgram)
		programs.DELETE("/:id", h.DeleteProgram)
	}

	subPrograms := tree.Group("/subprograms")
	{
		subPrograms.GET("", h.ListSubPrograms)
		subPrograms.POST("", h.CreateSubProgram)
		subPrograms.GET("/weight-summary", wh.SubProgramSummary)
		subPrograms.GET("/:id", h.GetSubProgram)
		subPrograms.PUT("/:id", h.UpdateSubProgram)
		subPrograms.DELETE("/:id", h.DeleteSubProgram)
	}

	initiatives := tree.Group("/strategic-initiatives")
	{
		initiatives.GET("", h.ListInitiatives)
		initiatives.POST("", h.CreateInitiative)
		initiatives.GET("/weight-summary", wh.InitiativeSummary)
		initiatives.GET("/:id", h.GetInitiative)
		initiatives.GET("/:id/complete", h.GetInitiativeComplete)
		initiatives.PUT("/:id", h.UpdateInitiative)
		initiatives.DELETE("/:id", h.DeleteInitiative)
	}

	measures := tree.Group("/performance-measures")
	{
		measures.GET("", h.ListMeasures)
		measures.POST("", h.CreateMeasure)
		measures.GET("/weight-summary", wh.MeasureSummary)
		measures.GET("/:id", h.GetMeasure)
		measures.PUT("/:id", h.UpdateMeasure)
		measures.DELETE("/:id", h.DeleteMeasure)
	}

	activities := tree.Group("/main-activities")
	{
		activities.GET("", h.ListActivities)
		activities.POST("", h.CreateActivity)
		activities.GET("/weight-summary", wh.ActivitySummary)
		activities.POST("/validate-weight", wh.ValidateActivitiesWeight)
		activities.GET("/:id", h.GetActivity)
		activities.PUT("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)
		activities.GET("/:id/budget", cfg.BudgetHandler.GetBudget)
		activities.POST("/:id/budget", cfg.BudgetHandler.UpdateBudget)
	}

	costing := tree.Group("/activity-costing-assumptions")
	{
		costing.GET("", cfg.BudgetHandler.ListCostingAssumptions)
		costing.PUT("", cfg.BudgetHandler.UpsertCostingAssumption)
	}
}
