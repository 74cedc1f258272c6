package http

import (
	"gorm.io/gorm"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/plan"
	"stratplan/internal/domain/user"
	"stratplan/internal/domain/weight"
	"stratplan/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	membershipRepo   access.MembershipRepository
	organizationRepo organization.Repository
	objectiveRepo    hierarchy.ObjectiveRepository
	programRepo      hierarchy.ProgramRepository
	subProgramRepo   hierarchy.SubProgramRepository
	initiativeRepo   hierarchy.InitiativeRepository
	measureRepo      hierarchy.MeasureRepository
	activityRepo     hierarchy.ActivityRepository
	weightRepo       weight.Repository
	budgetRepo       budget.BudgetRepository
	costingRepo      budget.CostingRepository
	planRepo         plan.PlanRepository
	reviewRepo       plan.ReviewRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db),
		membershipRepo:   repository.NewMembershipRepository(db),
		organizationRepo: repository.NewOrganizationRepository(db),
		objectiveRepo:    repository.NewObjectiveRepository(db),
		programRepo:      repository.NewProgramRepository(db),
		subProgramRepo:   repository.NewSubProgramRepository(db),
		initiativeRepo:   repository.NewInitiativeRepository(db),
		measureRepo:      repository.NewMeasureRepository(db),
		activityRepo:     repository.NewActivityRepository(db),
		weightRepo:       repository.NewWeightRepository(db),
		budgetRepo:       repository.NewBudgetRepository(db),
		costingRepo:      repository.NewCostingRepository(db),
		planRepo:         repository.NewPlanRepository(db),
		reviewRepo:       repository.NewReviewRepository(db),
	}
}
