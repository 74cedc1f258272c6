package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/domain/plan"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/infrastructure/persistence/mappers"
	"stratplan/internal/infrastructure/persistence/models"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db, mapper: mappers.NewPlanMapper()}
}

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PlanModel{}).Where("id = ?", model.ID).
		Select(
			"type", "executive_name", "strategic_objective_id", "program_id", "sub_program_id",
			"fiscal_year", "from_date", "to_date", "status", "submitted_at", "updated_at",
		).
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.PlanModel{}).Where("id = ?", id).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}
		if len(ids) == 0 {
			return errors.NewNotFoundError("plan not found", fmt.Sprintf("id=%d", id))
		}
		return cascadePlans(tx, "id = ?", id)
	})
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var model models.PlanModel
	if err := findOne(ctx, r.db, &model, id, "plan"); err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

// List returns the plans matched by any grant of the query, narrowed by
// its filter, newest first.
func (r *PlanRepository) List(ctx context.Context, q plan.Query) ([]*plan.Plan, error) {
	if q.IsEmpty() {
		return []*plan.Plan{}, nil
	}

	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})

	var visible *gorm.DB
	for _, g := range q.Grants {
		cond := r.db.Where("organization_id IN ?", g.OrganizationIDs)
		if g.PlannerID != nil {
			cond = cond.Where("planner_id = ?", *g.PlannerID)
		}
		if len(g.Statuses) > 0 {
			cond = cond.Where("status IN ?", statusStrings(g.Statuses))
		}
		if visible == nil {
			visible = r.db.Where(cond)
		} else {
			visible = visible.Or(cond)
		}
	}
	query = query.Where(visible)

	if q.Filter.Status != nil {
		query = query.Where("status = ?", q.Filter.Status.String())
	}
	if q.Filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *q.Filter.OrganizationID)
	}

	var list []*models.PlanModel
	if err := query.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	out := make([]*plan.Plan, 0, len(list))
	for _, model := range list {
		p, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PlanRepository) FindActiveForObjective(ctx context.Context, organizationID, objectiveID, excludingPlanID uint) (*plan.Plan, error) {
	var list []*models.PlanModel
	query := db.GetTxFromContext(ctx, r.db).
		Where("organization_id = ? AND strategic_objective_id = ?", organizationID, objectiveID).
		Where("status IN ?", statusStrings(vo.ActiveStatuses()))
	if excludingPlanID != 0 {
		query = query.Where("id <> ?", excludingPlanID)
	}
	if err := query.Order("id ASC").Limit(1).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find active plan: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.ToDomain(list[0])
}

func statusStrings(statuses []vo.PlanStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db, mapper: mappers.NewPlanMapper()}
}

func (r *ReviewRepository) Create(ctx context.Context, review *plan.Review) error {
	model := r.mapper.ReviewToModel(review)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan review: %w", err)
	}
	return review.SetID(model.ID)
}

func (r *ReviewRepository) ListByPlan(ctx context.Context, planID uint) ([]*plan.Review, error) {
	return r.List(ctx, plan.ReviewFilter{PlanID: &planID})
}

// List returns reviews newest first. A non-nil empty EvaluatorIDs matches
// nothing.
func (r *ReviewRepository) List(ctx context.Context, filter plan.ReviewFilter) ([]*plan.Review, error) {
	if filter.EvaluatorIDs != nil && len(filter.EvaluatorIDs) == 0 {
		return []*plan.Review{}, nil
	}

	query := db.GetTxFromContext(ctx, r.db).Order("reviewed_at DESC, id DESC")
	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.EvaluatorIDs != nil {
		query = query.Where("evaluator_id IN ?", filter.EvaluatorIDs)
	}

	var list []*models.PlanReviewModel
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list plan reviews: %w", err)
	}
	out := make([]*plan.Review, 0, len(list))
	for _, model := range list {
		review, err := r.mapper.ReviewToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, nil
}
