package budget

import "context"

type BudgetRepository interface {
	Create(ctx context.Context, budget *ActivityBudget) error
	Update(ctx context.Context, budget *ActivityBudget) error
	// GetByActivityID returns a not-found AppError when the activity has
	// no budget yet.
	GetByActivityID(ctx context.Context, activityID uint) (*ActivityBudget, error)
	// ListByActivityIDs returns the budgets that exist, keyed by activity.
	ListByActivityIDs(ctx context.Context, activityIDs []uint) (map[uint]*ActivityBudget, error)
}

type CostingFilter struct {
	ActivityType *ActivityType
	Location     *Location
}

type CostingRepository interface {
	Create(ctx context.Context, assumption *CostingAssumption) error
	Update(ctx context.Context, assumption *CostingAssumption) error
	// GetByKey returns nil, nil when no assumption exists for key.
	GetByKey(ctx context.Context, key CostingKey) (*CostingAssumption, error)
	List(ctx context.Context, filter CostingFilter) ([]*CostingAssumption, error)
}
