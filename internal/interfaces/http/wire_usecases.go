package http

import (
	authUsecases "stratplan/internal/application/auth/usecases"
	budgetUsecases "stratplan/internal/application/budget/usecases"
	hierarchyUsecases "stratplan/internal/application/hierarchy/usecases"
	orgUsecases "stratplan/internal/application/organization/usecases"
	planUsecases "stratplan/internal/application/plan/usecases"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth
	login        *authUsecases.LoginUseCase
	checkSession *authUsecases.CheckSessionUseCase

	// Organization
	listOrgHierarchy *orgUsecases.ListOrganizationHierarchyUseCase
	getOrg           *orgUsecases.GetOrganizationUseCase
	updateOrg        *orgUsecases.UpdateOrganizationUseCase
	changeOrgParent  *orgUsecases.ChangeOrganizationParentUseCase
	listMyOrgs       *orgUsecases.ListMyOrganizationsUseCase
	addMembership    *orgUsecases.AddMembershipUseCase
	removeMembership *orgUsecases.RemoveMembershipUseCase
	listMembers      *orgUsecases.ListMembersUseCase

	// Strategy tree
	nodes            *hierarchyUsecases.NodeQueryUseCase
	createObjective  *hierarchyUsecases.CreateObjectiveUseCase
	updateObjective  *hierarchyUsecases.UpdateObjectiveUseCase
	deleteObjective  *hierarchyUsecases.DeleteObjectiveUseCase
	createProgram    *hierarchyUsecases.CreateProgramUseCase
	updateProgram    *hierarchyUsecases.UpdateProgramUseCase
	deleteProgram    *hierarchyUsecases.DeleteProgramUseCase
	createSubProgram *hierarchyUsecases.CreateSubProgramUseCase
	updateSubProgram *hierarchyUsecases.UpdateSubProgramUseCase
	deleteSubProgram *hierarchyUsecases.DeleteSubProgramUseCase
	createInitiative *hierarchyUsecases.CreateInitiativeUseCase
	updateInitiative *hierarchyUsecases.UpdateInitiativeUseCase
	deleteInitiative *hierarchyUsecases.DeleteInitiativeUseCase
	createMeasure    *hierarchyUsecases.CreateMeasureUseCase
	updateMeasure    *hierarchyUsecases.UpdateMeasureUseCase
	deleteMeasure    *hierarchyUsecases.DeleteMeasureUseCase
	createActivity   *hierarchyUsecases.CreateActivityUseCase
	updateActivity   *hierarchyUsecases.UpdateActivityUseCase
	deleteActivity   *hierarchyUsecases.DeleteActivityUseCase

	// Weights
	weightSummary            *hierarchyUsecases.GetWeightSummaryUseCase
	validateObjectivesTotal  *hierarchyUsecases.ValidateObjectivesTotalUseCase
	validateActivitiesWeight *hierarchyUsecases.ValidateActivitiesWeightUseCase

	// Budget
	updateBudget  *budgetUsecases.UpdateActivityBudgetUseCase
	getBudget     *budgetUsecases.GetActivityBudgetUseCase
	listCosting   *budgetUsecases.ListCostingAssumptionsUseCase
	upsertCosting *budgetUsecases.UpsertCostingAssumptionUseCase

	// Plans
	createPlan  *planUsecases.CreatePlanUseCase
	updatePlan  *planUsecases.UpdatePlanUseCase
	deletePlan  *planUsecases.DeletePlanUseCase
	submitPlan  *planUsecases.SubmitPlanUseCase
	approvePlan *planUsecases.ReviewPlanUseCase
	rejectPlan  *planUsecases.ReviewPlanUseCase
	listPlans   *planUsecases.ListPlansUseCase
	getPlan     *planUsecases.GetPlanDetailUseCase
	listReviews *planUsecases.ListReviewsUseCase
}

// useCaseDeps collects the shared collaborators every use case draws from.
type useCaseDeps struct {
	repos      *repositories
	authorizer access.Authorizer
	txMgr      db.Transactor
	hasher     user.PasswordHasher
	tokens     authUsecases.TokenService
	renderer   markdown.Renderer
	notifier   planUsecases.ReviewNotifier
	log        logger.Interface
}

func newUseCases(d useCaseDeps) *allUseCases {
	r := d.repos
	writer := hierarchyUsecases.NewNodeWriter(d.authorizer, d.txMgr, r.weightRepo, d.log)
	nodes := hierarchyUsecases.NewNodeQueryUseCase(
		r.objectiveRepo, r.programRepo, r.subProgramRepo,
		r.initiativeRepo, r.measureRepo, r.activityRepo,
		r.budgetRepo, d.log,
	)
	grant := orgUsecases.NewGrantMembershipUseCase(r.membershipRepo, r.userRepo, r.organizationRepo, d.log)
	revoke := orgUsecases.NewRevokeMembershipUseCase(r.membershipRepo, r.userRepo, d.log)

	return &allUseCases{
		login:        authUsecases.NewLoginUseCase(r.userRepo, d.hasher, d.tokens, d.log),
		checkSession: authUsecases.NewCheckSessionUseCase(r.userRepo, r.membershipRepo, d.log),

		listOrgHierarchy: orgUsecases.NewListOrganizationHierarchyUseCase(r.organizationRepo, d.renderer, d.log),
		getOrg:           orgUsecases.NewGetOrganizationUseCase(r.organizationRepo, d.renderer, d.log),
		updateOrg:        orgUsecases.NewUpdateOrganizationUseCase(d.authorizer, r.organizationRepo, d.renderer, d.log),
		changeOrgParent:  orgUsecases.NewChangeOrganizationParentUseCase(d.authorizer, d.txMgr, r.organizationRepo, d.log),
		listMyOrgs:       orgUsecases.NewListMyOrganizationsUseCase(r.membershipRepo, r.organizationRepo, d.renderer, d.log),
		addMembership:    orgUsecases.NewAddMembershipUseCase(d.authorizer, grant),
		removeMembership: orgUsecases.NewRemoveMembershipUseCase(d.authorizer, revoke),
		listMembers:      orgUsecases.NewListMembersUseCase(d.authorizer, r.membershipRepo, r.userRepo, d.log),

		nodes:            nodes,
		createObjective:  hierarchyUsecases.NewCreateObjectiveUseCase(writer, r.objectiveRepo),
		updateObjective:  hierarchyUsecases.NewUpdateObjectiveUseCase(writer, r.objectiveRepo),
		deleteObjective:  hierarchyUsecases.NewDeleteObjectiveUseCase(writer, r.objectiveRepo),
		createProgram:    hierarchyUsecases.NewCreateProgramUseCase(writer, r.programRepo),
		updateProgram:    hierarchyUsecases.NewUpdateProgramUseCase(writer, r.programRepo),
		deleteProgram:    hierarchyUsecases.NewDeleteProgramUseCase(writer, r.programRepo),
		createSubProgram: hierarchyUsecases.NewCreateSubProgramUseCase(writer, r.subProgramRepo),
		updateSubProgram: hierarchyUsecases.NewUpdateSubProgramUseCase(writer, r.subProgramRepo),
		deleteSubProgram: hierarchyUsecases.NewDeleteSubProgramUseCase(writer, r.subProgramRepo),
		createInitiative: hierarchyUsecases.NewCreateInitiativeUseCase(writer, r.initiativeRepo),
		updateInitiative: hierarchyUsecases.NewUpdateInitiativeUseCase(writer, r.initiativeRepo),
		deleteInitiative: hierarchyUsecases.NewDeleteInitiativeUseCase(writer, r.initiativeRepo),
		createMeasure:    hierarchyUsecases.NewCreateMeasureUseCase(writer, r.measureRepo),
		updateMeasure:    hierarchyUsecases.NewUpdateMeasureUseCase(writer, r.measureRepo),
		deleteMeasure:    hierarchyUsecases.NewDeleteMeasureUseCase(writer, r.measureRepo),
		createActivity:   hierarchyUsecases.NewCreateActivityUseCase(writer, r.activityRepo),
		updateActivity:   hierarchyUsecases.NewUpdateActivityUseCase(writer, r.activityRepo),
		deleteActivity:   hierarchyUsecases.NewDeleteActivityUseCase(writer, r.activityRepo),

		weightSummary:            hierarchyUsecases.NewGetWeightSummaryUseCase(r.weightRepo, d.log),
		validateObjectivesTotal:  hierarchyUsecases.NewValidateObjectivesTotalUseCase(d.authorizer, r.weightRepo, d.log),
		validateActivitiesWeight: hierarchyUsecases.NewValidateActivitiesWeightUseCase(r.weightRepo, d.log),

		updateBudget:  budgetUsecases.NewUpdateActivityBudgetUseCase(d.authorizer, d.txMgr, r.activityRepo, r.budgetRepo, d.log),
		getBudget:     budgetUsecases.NewGetActivityBudgetUseCase(r.activityRepo, r.budgetRepo),
		listCosting:   budgetUsecases.NewListCostingAssumptionsUseCase(r.costingRepo, d.log),
		upsertCosting: budgetUsecases.NewUpsertCostingAssumptionUseCase(d.authorizer, d.txMgr, r.costingRepo, d.log),

		createPlan:  planUsecases.NewCreatePlanUseCase(d.authorizer, r.planRepo, r.userRepo, r.organizationRepo, nodes, d.log),
		updatePlan:  planUsecases.NewUpdatePlanUseCase(d.authorizer, r.planRepo, nodes, d.log),
		deletePlan:  planUsecases.NewDeletePlanUseCase(d.authorizer, r.planRepo, d.log),
		submitPlan:  planUsecases.NewSubmitPlanUseCase(d.authorizer, d.txMgr, r.planRepo, d.log),
		approvePlan: planUsecases.NewApprovePlanUseCase(d.authorizer, d.txMgr, r.planRepo, r.reviewRepo, r.membershipRepo, d.notifier, d.log),
		rejectPlan:  planUsecases.NewRejectPlanUseCase(d.authorizer, d.txMgr, r.planRepo, r.reviewRepo, r.membershipRepo, d.notifier, d.log),
		listPlans:   planUsecases.NewListPlansUseCase(r.planRepo, r.membershipRepo, d.log),
		getPlan:     planUsecases.NewGetPlanDetailUseCase(r.planRepo, r.reviewRepo, r.membershipRepo, nodes, d.renderer, d.log),
		listReviews: planUsecases.NewListReviewsUseCase(r.reviewRepo, r.membershipRepo, d.renderer, d.log),
	}
}
