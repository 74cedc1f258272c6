package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/domain/budget"
	"stratplan/internal/infrastructure/persistence/mappers"
	"stratplan/internal/infrastructure/persistence/models"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

type BudgetRepository struct {
	db     *gorm.DB
	mapper mappers.BudgetMapper
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db, mapper: mappers.NewBudgetMapper()}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.ActivityBudget) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("activity already has a budget", fmt.Sprintf("activity_id=%d", b.ActivityID()))
		}
		return fmt.Errorf("failed to create activity budget: %w", err)
	}
	return b.SetID(model.ID)
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.ActivityBudget) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ActivityBudgetModel{}).Where("id = ?", model.ID).
		Select(
			"budget_calculation_type", "activity_type",
			"estimated_cost_with_tool", "estimated_cost_without_tool",
			"government_treasury", "sdg_funding", "partners_funding", "other_funding",
			"training_details", "meeting_workshop_details", "procurement_details",
			"printing_details", "supervision_details", "updated_at",
		).
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update activity budget: %w", err)
	}
	return nil
}

func (r *BudgetRepository) GetByActivityID(ctx context.Context, activityID uint) (*budget.ActivityBudget, error) {
	var model models.ActivityBudgetModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("activity_id = ?", activityID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("activity budget not found", fmt.Sprintf("activity_id=%d", activityID))
		}
		return nil, fmt.Errorf("failed to get activity budget: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *BudgetRepository) ListByActivityIDs(ctx context.Context, activityIDs []uint) (map[uint]*budget.ActivityBudget, error) {
	out := make(map[uint]*budget.ActivityBudget, len(activityIDs))
	if len(activityIDs) == 0 {
		return out, nil
	}
	var list []*models.ActivityBudgetModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("activity_id IN ?", activityIDs).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity budgets: %w", err)
	}
	for _, model := range list {
		b, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out[b.ActivityID()] = b
	}
	return out, nil
}

type CostingRepository struct {
	db     *gorm.DB
	mapper mappers.BudgetMapper
}

func NewCostingRepository(db *gorm.DB) *CostingRepository {
	return &CostingRepository{db: db, mapper: mappers.NewBudgetMapper()}
}

func (r *CostingRepository) Create(ctx context.Context, c *budget.CostingAssumption) error {
	model := r.mapper.CostingToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("costing assumption already exists for this activity type, location and cost type")
		}
		return fmt.Errorf("failed to create costing assumption: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CostingRepository) Update(ctx context.Context, c *budget.CostingAssumption) error {
	model := r.mapper.CostingToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.CostingAssumptionModel{}).Where("id = ?", model.ID).
		Select("amount", "description", "updated_at").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update costing assumption: %w", err)
	}
	return nil
}

func (r *CostingRepository) GetByKey(ctx context.Context, key budget.CostingKey) (*budget.CostingAssumption, error) {
	var list []*models.CostingAssumptionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("activity_type = ? AND location = ? AND cost_type = ?",
		key.ActivityType.String(), key.Location.String(), key.CostType.String()).
		Limit(1).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get costing assumption: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return r.mapper.CostingToDomain(list[0])
}

func (r *CostingRepository) List(ctx context.Context, filter budget.CostingFilter) ([]*budget.CostingAssumption, error) {
	var list []*models.CostingAssumptionModel
	query := db.GetTxFromContext(ctx, r.db).Order("activity_type ASC, location ASC, cost_type ASC")
	if filter.ActivityType != nil {
		query = query.Where("activity_type = ?", filter.ActivityType.String())
	}
	if filter.Location != nil {
		query = query.Where("location = ?", filter.Location.String())
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list costing assumptions: %w", err)
	}
	out := make([]*budget.CostingAssumption, 0, len(list))
	for _, model := range list {
		c, err := r.mapper.CostingToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
