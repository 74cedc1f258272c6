package usecases

import (
	"context"

	hierarchydto "stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type UpdateActivityBudgetCommand struct {
	Principal  access.Principal
	ActivityID uint
	Patch      budget.Patch
}

// UpdateActivityBudgetUseCase creates the budget of an activity on first
// use, applies a partial update and reconciles funding before saving.
type UpdateActivityBudgetUseCase struct {
	authorizer access.Authorizer
	txMgr      db.Transactor
	activities hierarchy.ActivityRepository
	budgets    budget.BudgetRepository
	logger     logger.Interface
}

func NewUpdateActivityBudgetUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	activities hierarchy.ActivityRepository,
	budgets budget.BudgetRepository,
	logger logger.Interface,
) *UpdateActivityBudgetUseCase {
	return &UpdateActivityBudgetUseCase{
		authorizer: authorizer,
		txMgr:      txMgr,
		activities: activities,
		budgets:    budgets,
		logger:     logger,
	}
}

func (uc *UpdateActivityBudgetUseCase) Execute(ctx context.Context, cmd UpdateActivityBudgetCommand) (*hierarchydto.BudgetDTO, error) {
	uc.logger.Infow("executing update activity budget use case", "activity_id", cmd.ActivityID, "user_id", cmd.Principal.UserID)

	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionBudgetWrite, 0); err != nil {
		return nil, err
	}

	var (
		activity *hierarchy.MainActivity
		b        *budget.ActivityBudget
	)
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		activity, err = uc.activities.GetByID(ctx, cmd.ActivityID)
		if err != nil {
			return err
		}

		created := false
		b, err = uc.budgets.GetByActivityID(ctx, activity.ID())
		if errors.IsNotFoundError(err) {
			if b, err = budget.NewActivityBudget(activity.ID()); err != nil {
				return errors.NewValidationError(err.Error())
			}
			created = true
		} else if err != nil {
			return err
		}

		if err := b.Apply(cmd.Patch); err != nil {
			uc.logger.Warnw("activity budget rejected", "activity_id", activity.ID(), "error", err)
			if errors.IsAppError(err) {
				return err
			}
			return errors.NewValidationError(err.Error())
		}

		if created {
			return uc.budgets.Create(ctx, b)
		}
		return uc.budgets.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("activity budget saved",
		"activity_id", activity.ID(),
		"budget_id", b.ID(),
		"estimated_cost", b.EstimatedCost().String(),
		"total_funding", b.TotalFunding().String(),
	)
	return hierarchydto.ToBudgetDTO(b, activity.Name()), nil
}

// GetActivityBudgetUseCase returns the budget of an activity.
type GetActivityBudgetUseCase struct {
	activities hierarchy.ActivityRepository
	budgets    budget.BudgetRepository
}

func NewGetActivityBudgetUseCase(activities hierarchy.ActivityRepository, budgets budget.BudgetRepository) *GetActivityBudgetUseCase {
	return &GetActivityBudgetUseCase{activities: activities, budgets: budgets}
}

func (uc *GetActivityBudgetUseCase) Execute(ctx context.Context, activityID uint) (*hierarchydto.BudgetDTO, error) {
	activity, err := uc.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	b, err := uc.budgets.GetByActivityID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	return hierarchydto.ToBudgetDTO(b, activity.Name()), nil
}
