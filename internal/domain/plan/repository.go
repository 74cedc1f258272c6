package plan

import (
	"context"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context, query Query) ([]*Plan, error)
	// FindActiveForObjective returns another plan of the organization for
	// the objective that is submitted or approved, or nil.
	FindActiveForObjective(ctx context.Context, organizationID, objectiveID, excludingPlanID uint) (*Plan, error)
}

// ReviewFilter restricts review listings to one evaluator membership set.
// A nil EvaluatorIDs lists every review.
type ReviewFilter struct {
	PlanID       *uint
	EvaluatorIDs []uint
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	ListByPlan(ctx context.Context, planID uint) ([]*Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]*Review, error)
}
