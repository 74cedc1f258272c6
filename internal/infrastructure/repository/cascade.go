package repository

import (
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/infrastructure/persistence/models"
)

// Deletes cascade down the strategy tree in application code so that
// SQLite and MySQL behave the same whether or not foreign keys are
// enforced. Every helper expects to run inside a transaction.

func pluckIDs(tx *gorm.DB, model interface{}, query string, args ...interface{}) ([]uint, error) {
	var ids []uint
	if err := tx.Model(model).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func cascadeObjectives(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	programIDs, err := pluckIDs(tx, &models.ProgramModel{}, "strategic_objective_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list programs: %w", err)
	}
	if err := cascadePrograms(tx, programIDs); err != nil {
		return err
	}
	initiativeIDs, err := pluckIDs(tx, &models.StrategicInitiativeModel{}, "strategic_objective_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list initiatives: %w", err)
	}
	if err := cascadeInitiatives(tx, initiativeIDs); err != nil {
		return err
	}
	if err := cascadePlans(tx, "strategic_objective_id IN ?", ids); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.StrategicObjectiveModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete strategic objectives: %w", err)
	}
	return nil
}

func cascadePrograms(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	subProgramIDs, err := pluckIDs(tx, &models.SubProgramModel{}, "program_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list subprograms: %w", err)
	}
	if err := cascadeSubPrograms(tx, subProgramIDs); err != nil {
		return err
	}
	initiativeIDs, err := pluckIDs(tx, &models.StrategicInitiativeModel{}, "program_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list initiatives: %w", err)
	}
	if err := cascadeInitiatives(tx, initiativeIDs); err != nil {
		return err
	}
	if err := cascadePlans(tx, "program_id IN ?", ids); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.ProgramModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete programs: %w", err)
	}
	return nil
}

func cascadeSubPrograms(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	initiativeIDs, err := pluckIDs(tx, &models.StrategicInitiativeModel{}, "sub_program_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list initiatives: %w", err)
	}
	if err := cascadeInitiatives(tx, initiativeIDs); err != nil {
		return err
	}
	if err := cascadePlans(tx, "sub_program_id IN ?", ids); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.SubProgramModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete subprograms: %w", err)
	}
	return nil
}

func cascadeInitiatives(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("initiative_id IN ?", ids).Delete(&models.PerformanceMeasureModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete performance measures: %w", err)
	}
	activityIDs, err := pluckIDs(tx, &models.MainActivityModel{}, "initiative_id IN ?", ids)
	if err != nil {
		return fmt.Errorf("failed to list main activities: %w", err)
	}
	if err := cascadeActivities(tx, activityIDs); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.StrategicInitiativeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete strategic initiatives: %w", err)
	}
	return nil
}

func cascadeActivities(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("activity_id IN ?", ids).Delete(&models.ActivityBudgetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete activity budgets: %w", err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&models.MainActivityModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete main activities: %w", err)
	}
	return nil
}

// cascadePlans deletes the plans matching query together with their reviews.
func cascadePlans(tx *gorm.DB, query string, args ...interface{}) error {
	planIDs, err := pluckIDs(tx, &models.PlanModel{}, query, args...)
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(planIDs) == 0 {
		return nil
	}
	if err := tx.Where("plan_id IN ?", planIDs).Delete(&models.PlanReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete plan reviews: %w", err)
	}
	if err := tx.Where("id IN ?", planIDs).Delete(&models.PlanModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete plans: %w", err)
	}
	return nil
}

// detachEvaluators keeps the reviews of revoked evaluator memberships but
// clears their evaluator reference.
func detachEvaluators(tx *gorm.DB, membershipIDs []uint) error {
	if len(membershipIDs) == 0 {
		return nil
	}
	if err := tx.Model(&models.PlanReviewModel{}).
		Where("evaluator_id IN ?", membershipIDs).
		Update("evaluator_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach reviews from evaluators: %w", err)
	}
	return nil
}
