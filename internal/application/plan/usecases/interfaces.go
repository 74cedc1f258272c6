package usecases

import (
	"context"

	"stratplan/internal/application/plan/dto"
)

type CreatePlanExecutor interface {
	Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error)
}

type UpdatePlanExecutor interface {
	Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error)
}

type DeletePlanExecutor interface {
	Execute(ctx context.Context, cmd DeletePlanCommand) error
}

type SubmitPlanExecutor interface {
	Execute(ctx context.Context, cmd SubmitPlanCommand) (*dto.PlanDTO, error)
}

// ReviewPlanExecutor is satisfied by both the approve and the reject use case.
type ReviewPlanExecutor interface {
	Execute(ctx context.Context, cmd ReviewPlanCommand) (*dto.PlanDTO, error)
}

type ListPlansExecutor interface {
	Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, error)
}

type GetPlanDetailExecutor interface {
	Execute(ctx context.Context, query GetPlanQuery) (*dto.PlanDetailDTO, error)
}

type ListReviewsExecutor interface {
	Execute(ctx context.Context, query ListReviewsQuery) ([]*dto.ReviewDTO, error)
}

var (
	_ CreatePlanExecutor    = (*CreatePlanUseCase)(nil)
	_ UpdatePlanExecutor    = (*UpdatePlanUseCase)(nil)
	_ DeletePlanExecutor    = (*DeletePlanUseCase)(nil)
	_ SubmitPlanExecutor    = (*SubmitPlanUseCase)(nil)
	_ ListPlansExecutor     = (*ListPlansUseCase)(nil)
	_ GetPlanDetailExecutor = (*GetPlanDetailUseCase)(nil)
	_ ListReviewsExecutor   = (*ListReviewsUseCase)(nil)
	_ ReviewPlanExecutor    = (*ReviewPlanUseCase)(nil)
)
