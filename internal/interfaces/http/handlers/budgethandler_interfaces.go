package handlers

import (
	"context"

	"stratplan/internal/application/budget/dto"
	"stratplan/internal/application/budget/usecases"
	hierarchydto "stratplan/internal/application/hierarchy/dto"
)

// Use case interfaces for BudgetHandler

type updateActivityBudgetUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateActivityBudgetCommand) (*hierarchydto.BudgetDTO, error)
}

type getActivityBudgetUseCase interface {
	Execute(ctx context.Context, activityID uint) (*hierarchydto.BudgetDTO, error)
}

type listCostingAssumptionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListCostingAssumptionsQuery) ([]*dto.CostingAssumptionDTO, error)
}

type upsertCostingAssumptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpsertCostingAssumptionCommand) (*dto.CostingAssumptionDTO, error)
}
