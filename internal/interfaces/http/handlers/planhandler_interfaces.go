package handlers

import (
	"context"

	"stratplan/internal/application/plan/dto"
	"stratplan/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*dto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*dto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeletePlanCommand) error
}

type submitPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitPlanCommand) (*dto.PlanDTO, error)
}

type reviewPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReviewPlanCommand) (*dto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlansQuery) ([]*dto.PlanDTO, error)
}

type getPlanDetailUseCase interface {
	Execute(ctx context.Context, query usecases.GetPlanQuery) (*dto.PlanDetailDTO, error)
}

type listReviewsUseCase interface {
	Execute(ctx context.Context, query usecases.ListReviewsQuery) ([]*dto.ReviewDTO, error)
}
