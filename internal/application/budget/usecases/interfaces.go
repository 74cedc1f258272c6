package usecases

import (
	"context"

	"stratplan/internal/application/budget/dto"
	hierarchydto "stratplan/internal/application/hierarchy/dto"
)

type UpdateActivityBudgetExecutor interface {
	Execute(ctx context.Context, cmd UpdateActivityBudgetCommand) (*hierarchydto.BudgetDTO, error)
}

type GetActivityBudgetExecutor interface {
	Execute(ctx context.Context, activityID uint) (*hierarchydto.BudgetDTO, error)
}

type ListCostingAssumptionsExecutor interface {
	Execute(ctx context.Context, query ListCostingAssumptionsQuery) ([]*dto.CostingAssumptionDTO, error)
}

type UpsertCostingAssumptionExecutor interface {
	Execute(ctx context.Context, cmd UpsertCostingAssumptionCommand) (*dto.CostingAssumptionDTO, error)
}

type ImportCostingAssumptionsExecutor interface {
	Execute(ctx context.Context, entries []CostingEntry) (*dto.ImportResultDTO, error)
}

var (
	_ UpdateActivityBudgetExecutor     = (*UpdateActivityBudgetUseCase)(nil)
	_ GetActivityBudgetExecutor        = (*GetActivityBudgetUseCase)(nil)
	_ ListCostingAssumptionsExecutor   = (*ListCostingAssumptionsUseCase)(nil)
	_ UpsertCostingAssumptionExecutor  = (*UpsertCostingAssumptionUseCase)(nil)
	_ ImportCostingAssumptionsExecutor = (*ImportCostingAssumptionsUseCase)(nil)
)
