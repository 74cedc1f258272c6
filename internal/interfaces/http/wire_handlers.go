package http

import (
	"stratplan/internal/interfaces/http/handlers"
	"stratplan/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	organizationHandler *handlers.OrganizationHandler
	hierarchyHandler    *handlers.HierarchyHandler
	weightHandler       *handlers.WeightHandler
	budgetHandler       *handlers.BudgetHandler
	planHandler         *handlers.PlanHandler
}

func newHandlers(uc *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler: handlers.NewAuthHandler(uc.login, uc.checkSession, log),
		organizationHandler: handlers.NewOrganizationHandler(handlers.OrganizationUseCases{
			ListHierarchy:    uc.listOrgHierarchy,
			Get:              uc.getOrg,
			Update:           uc.updateOrg,
			ChangeParent:     uc.changeOrgParent,
			ListMine:         uc.listMyOrgs,
			AddMembership:    uc.addMembership,
			RemoveMembership: uc.removeMembership,
			ListMembers:      uc.listMembers,
		}, log),
		hierarchyHandler: handlers.NewHierarchyHandler(handlers.HierarchyUseCases{
			Nodes:            uc.nodes,
			CreateObjective:  uc.createObjective,
			UpdateObjective:  uc.updateObjective,
			DeleteObjective:  uc.deleteObjective,
			CreateProgram:    uc.createProgram,
			UpdateProgram:    uc.updateProgram,
			DeleteProgram:    uc.deleteProgram,
			CreateSubProgram: uc.createSubProgram,
			UpdateSubProgram: uc.updateSubProgram,
			DeleteSubProgram: uc.deleteSubProgram,
			CreateInitiative: uc.createInitiative,
			UpdateInitiative: uc.updateInitiative,
			DeleteInitiative: uc.deleteInitiative,
			CreateMeasure:    uc.createMeasure,
			UpdateMeasure:    uc.updateMeasure,
			DeleteMeasure:    uc.deleteMeasure,
			CreateActivity:   uc.createActivity,
			UpdateActivity:   uc.updateActivity,
			DeleteActivity:   uc.deleteActivity,
		}, log),
		weightHandler: handlers.NewWeightHandler(uc.weightSummary, uc.validateObjectivesTotal, uc.validateActivitiesWeight, log),
		budgetHandler: handlers.NewBudgetHandler(uc.updateBudget, uc.getBudget, uc.listCosting, uc.upsertCosting, log),
		planHandler: handlers.NewPlanHandler(handlers.PlanUseCases{
			Create:      uc.createPlan,
			Update:      uc.updatePlan,
			Delete:      uc.deletePlan,
			Submit:      uc.submitPlan,
			Approve:     uc.approvePlan,
			Reject:      uc.rejectPlan,
			List:        uc.listPlans,
			GetDetail:   uc.getPlan,
			ListReviews: uc.listReviews,
		}, log),
	}
}
