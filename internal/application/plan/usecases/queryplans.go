package usecases

import (
	"context"

	hierarchydto "stratplan/internal/application/hierarchy/dto"
	hierarchyusecases "stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/application/plan/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/plan"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

type ListPlansQuery struct {
	Principal      access.Principal
	Status         string
	OrganizationID *uint
}

// ListPlansUseCase lists the plans the caller may see, newest change first.
type ListPlansUseCase struct {
	planRepo    plan.PlanRepository
	memberships access.MembershipReader
	logger      logger.Interface
}

func NewListPlansUseCase(planRepo plan.PlanRepository, memberships access.MembershipReader, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, memberships: memberships, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, error) {
	var filter plan.ListFilter
	if query.Status != "" {
		status := vo.PlanStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid plan status")
		}
		filter.Status = &status
	}
	filter.OrganizationID = query.OrganizationID

	memberships, err := uc.memberships.ListByUser(ctx, query.Principal.UserID)
	if err != nil {
		return nil, err
	}

	q := plan.VisibleTo(query.Principal.UserID, memberships, filter)
	if q.IsEmpty() {
		return []*dto.PlanDTO{}, nil
	}

	plans, err := uc.planRepo.List(ctx, q)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "user_id", query.Principal.UserID, "error", err)
		return nil, err
	}
	return dto.ToPlanDTOs(plans), nil
}

type GetPlanQuery struct {
	Principal access.Principal
	PlanID    uint
}

// GetPlanDetailUseCase returns one plan with the strategy subtree it covers
// and its reviews.
type GetPlanDetailUseCase struct {
	planRepo    plan.PlanRepository
	reviewRepo  plan.ReviewRepository
	memberships access.MembershipReader
	nodes       hierarchyusecases.NodeQuerier
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewGetPlanDetailUseCase(
	planRepo plan.PlanRepository,
	reviewRepo plan.ReviewRepository,
	memberships access.MembershipReader,
	nodes hierarchyusecases.NodeQuerier,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetPlanDetailUseCase {
	return &GetPlanDetailUseCase{
		planRepo:    planRepo,
		reviewRepo:  reviewRepo,
		memberships: memberships,
		nodes:       nodes,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetPlanDetailUseCase) Execute(ctx context.Context, query GetPlanQuery) (*dto.PlanDetailDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, query.PlanID)
	if err != nil {
		return nil, err
	}

	memberships, err := uc.memberships.ListByUser(ctx, query.Principal.UserID)
	if err != nil {
		return nil, err
	}
	if !plan.CanView(p, query.Principal.UserID, memberships) {
		// Plans outside the caller's view are reported as missing.
		return nil, errors.NewNotFoundError("plan not found")
	}

	detail := &dto.PlanDetailDTO{PlanDTO: *dto.ToPlanDTO(p)}

	scope := p.Scope()
	if scope.ObjectiveID != nil {
		objective, err := uc.nodes.GetObjective(ctx, *scope.ObjectiveID)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		detail.Objective = objective
	}

	detail.Initiatives, err = uc.initiatives(ctx, scope)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		return nil, err
	}
	detail.Reviews = renderReviews(reviews, uc.renderer, uc.logger)

	return detail, nil
}

// initiatives loads the initiatives attached to the most specific node of
// the plan's scope, with their measures and activities.
func (uc *GetPlanDetailUseCase) initiatives(ctx context.Context, scope plan.Scope) ([]*hierarchydto.InitiativeCompleteDTO, error) {
	var filter hierarchy.InitiativeFilter
	switch {
	case scope.SubProgramID != nil:
		filter.SubProgramID = scope.SubProgramID
	case scope.ProgramID != nil:
		filter.ProgramID = scope.ProgramID
	case scope.ObjectiveID != nil:
		filter.ObjectiveID = scope.ObjectiveID
	default:
		return []*hierarchydto.InitiativeCompleteDTO{}, nil
	}

	list, err := uc.nodes.ListInitiatives(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*hierarchydto.InitiativeCompleteDTO, 0, len(list))
	for _, i := range list {
		complete, err := uc.nodes.GetInitiativeComplete(ctx, i.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, complete)
	}
	return out, nil
}

type ListReviewsQuery struct {
	Principal access.Principal
	PlanID    *uint
}

// ListReviewsUseCase shows admins every review and evaluators the reviews
// they wrote. Other callers see none.
type ListReviewsUseCase struct {
	reviewRepo  plan.ReviewRepository
	memberships access.MembershipReader
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewListReviewsUseCase(
	reviewRepo plan.ReviewRepository,
	memberships access.MembershipReader,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		reviewRepo:  reviewRepo,
		memberships: memberships,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, query ListReviewsQuery) ([]*dto.ReviewDTO, error) {
	memberships, err := uc.memberships.ListByUser(ctx, query.Principal.UserID)
	if err != nil {
		return nil, err
	}

	filter := plan.ReviewFilter{PlanID: query.PlanID}
	switch {
	case access.HasRole(memberships, access.RoleAdmin):
	case access.HasRole(memberships, access.RoleEvaluator):
		for _, m := range memberships {
			if m.Role == access.RoleEvaluator {
				filter.EvaluatorIDs = append(filter.EvaluatorIDs, m.ID)
			}
		}
	default:
		return []*dto.ReviewDTO{}, nil
	}

	reviews, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list plan reviews", "error", err)
		return nil, err
	}
	return renderReviews(reviews, uc.renderer, uc.logger), nil
}

func renderReviews(reviews []*plan.Review, renderer markdown.Renderer, log logger.Interface) []*dto.ReviewDTO {
	out := make([]*dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		html, err := renderer.Render(r.Feedback())
		if err != nil {
			log.Warnw("failed to render review feedback", "review_id", r.ID(), "error", err)
			html = ""
		}
		out = append(out, dto.ToReviewDTO(r, html))
	}
	return out
}
