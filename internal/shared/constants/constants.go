package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "request_id"
	ContextKeyPrincipal = "principal"

	// Database table names
	TableUsers                = "users"
	TableOrganizations        = "organizations"
	TableOrganizationUsers    = "organization_users"
	TableStrategicObjectives  = "strategic_objectives"
	TablePrograms             = "programs"
	TableSubPrograms          = "sub_programs"
	TableStrategicInitiatives = "strategic_initiatives"
	TablePerformanceMeasures  = "performance_measures"
	TableMainActivities       = "main_activities"
	TableActivityBudgets      = "activity_budgets"
	TableCostingAssumptions   = "activity_costing_assumptions"
	TablePlans                = "plans"
	TablePlanReviews          = "plan_reviews"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
