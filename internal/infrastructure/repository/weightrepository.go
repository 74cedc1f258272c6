package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/constants"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

var weightTables = map[weight.Kind]string{
	weight.KindObjective:  constants.TableStrategicObjectives,
	weight.KindProgram:    constants.TablePrograms,
	weight.KindSubProgram: constants.TableSubPrograms,
	weight.KindInitiative: constants.TableStrategicInitiatives,
	weight.KindMeasure:    constants.TablePerformanceMeasures,
	weight.KindActivity:   constants.TableMainActivities,
}

var parentLabels = map[weight.Kind]string{
	weight.KindObjective:  "strategic objective",
	weight.KindProgram:    "program",
	weight.KindSubProgram: "subprogram",
	weight.KindInitiative: "strategic initiative",
}

// parentColumn names the column of scope.Kind that references the parent.
func parentColumn(scope weight.Scope) string {
	switch scope.Kind {
	case weight.KindProgram:
		return "strategic_objective_id"
	case weight.KindSubProgram:
		return "program_id"
	case weight.KindInitiative:
		switch scope.ParentKind {
		case weight.KindObjective:
			return "strategic_objective_id"
		case weight.KindProgram:
			return "program_id"
		case weight.KindSubProgram:
			return "sub_program_id"
		}
	case weight.KindMeasure, weight.KindActivity:
		return "initiative_id"
	}
	return ""
}

type weightRow struct {
	ID     uint
	Weight decimal.Decimal
}

// WeightRepository reads sibling weights for the quota ledger across all
// six node tables.
type WeightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

// SiblingWeights locks the parent row, or every objective for the root
// scope, so that concurrent writers to one scope serialize.
func (r *WeightRepository) SiblingWeights(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
	if err := scope.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if scope.Kind != weight.KindObjective {
		if err := r.lockParent(tx, scope); err != nil {
			return nil, err
		}
	}

	query := tx.Table(weightTables[scope.Kind]).Select("id", "weight").Order("id ASC")
	if column := parentColumn(scope); column != "" {
		query = query.Where(column+" = ?", scope.ParentID)
	}
	if excludingID != 0 {
		query = query.Where("id <> ?", excludingID)
	}
	if scope.Kind == weight.KindObjective {
		query = db.ForUpdate(query)
	}

	var rows []weightRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read weights of %s: %w", scope, err)
	}

	siblings := make([]weight.Sibling, 0, len(rows))
	for _, row := range rows {
		siblings = append(siblings, weight.Sibling{ID: row.ID, Weight: row.Weight})
	}
	return siblings, nil
}

func (r *WeightRepository) lockParent(tx *gorm.DB, scope weight.Scope) error {
	var ids []uint
	query := db.ForUpdate(tx.Table(weightTables[scope.ParentKind]).Where("id = ?", scope.ParentID))
	if err := query.Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to lock %s %d: %w", scope.ParentKind, scope.ParentID, err)
	}
	if len(ids) == 0 {
		return errors.NewNotFoundError(parentLabels[scope.ParentKind]+" not found", fmt.Sprintf("id=%d", scope.ParentID))
	}
	return nil
}

func (r *WeightRepository) ParentWeight(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
	if err := scope.Validate(); err != nil {
		return decimal.Zero, errors.NewValidationError(err.Error())
	}
	table, ok := weightTables[scope.ParentKind]
	if !ok || scope.Kind == weight.KindObjective {
		return decimal.Zero, errors.NewValidationError(fmt.Sprintf("%s has no parent", scope.Kind))
	}

	var rows []weightRow
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Table(table).Select("id", "weight").Where("id = ?", scope.ParentID).Limit(1).Scan(&rows).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to read weight of %s %d: %w", scope.ParentKind, scope.ParentID, err)
	}
	if len(rows) == 0 {
		return decimal.Zero, errors.NewNotFoundError(parentLabels[scope.ParentKind]+" not found", fmt.Sprintf("id=%d", scope.ParentID))
	}
	return rows[0].Weight, nil
}
