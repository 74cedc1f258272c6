package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/infrastructure/persistence/mappers"
	"stratplan/internal/infrastructure/persistence/models"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
)

// findOne loads one row by id into dest and maps a missing row to a
// not-found AppError named after label.
func findOne(ctx context.Context, gdb *gorm.DB, dest interface{}, id uint, label string) error {
	tx := db.GetTxFromContext(ctx, gdb)
	if err := tx.First(dest, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFoundError(label+" not found", fmt.Sprintf("id=%d", id))
		}
		return fmt.Errorf("failed to get %s: %w", label, err)
	}
	return nil
}

// deleteTree removes one node and everything below it.
func deleteTree(ctx context.Context, gdb *gorm.DB, model interface{}, id uint, label string, cascade func(*gorm.DB, []uint) error) error {
	tx := db.GetTxFromContext(ctx, gdb)
	return tx.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(model).Where("id = ?", id).Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to get %s: %w", label, err)
		}
		if len(ids) == 0 {
			return errors.NewNotFoundError(label+" not found", fmt.Sprintf("id=%d", id))
		}
		return cascade(tx, ids)
	})
}

type ObjectiveRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *ObjectiveRepository) Create(ctx context.Context, o *hierarchy.StrategicObjective) error {
	model := r.mapper.ObjectiveToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create strategic objective: %w", err)
	}
	return o.SetID(model.ID)
}

func (r *ObjectiveRepository) Update(ctx context.Context, o *hierarchy.StrategicObjective) error {
	model := r.mapper.ObjectiveToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.StrategicObjectiveModel{}).Where("id = ?", model.ID).
		Select("title", "description", "weight", "updated_at").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update strategic objective: %w", err)
	}
	return nil
}

func (r *ObjectiveRepository) Delete(ctx context.Context, id uint) error {
	return deleteTree(ctx, r.db, &models.StrategicObjectiveModel{}, id, "strategic objective", cascadeObjectives)
}

func (r *ObjectiveRepository) GetByID(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error) {
	var model models.StrategicObjectiveModel
	if err := findOne(ctx, r.db, &model, id, "strategic objective"); err != nil {
		return nil, err
	}
	return r.mapper.ObjectiveToDomain(&model)
}

func (r *ObjectiveRepository) List(ctx context.Context) ([]*hierarchy.StrategicObjective, error) {
	var list []*models.StrategicObjectiveModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list strategic objectives: %w", err)
	}
	out := make([]*hierarchy.StrategicObjective, 0, len(list))
	for _, model := range list {
		o, err := r.mapper.ObjectiveToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

type ProgramRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *ProgramRepository) Create(ctx context.Context, p *hierarchy.Program) error {
	model := r.mapper.ProgramToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create program: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *ProgramRepository) Update(ctx context.Context, p *hierarchy.Program) error {
	model := r.mapper.ProgramToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ProgramModel{}).Where("id = ?", model.ID).
		Select("name", "description", "weight", "updated_at").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id uint) error {
	return deleteTree(ctx, r.db, &models.ProgramModel{}, id, "program", cascadePrograms)
}

func (r *ProgramRepository) GetByID(ctx context.Context, id uint) (*hierarchy.Program, error) {
	var model models.ProgramModel
	if err := findOne(ctx, r.db, &model, id, "program"); err != nil {
		return nil, err
	}
	return r.mapper.ProgramToDomain(&model)
}

func (r *ProgramRepository) ListByObjective(ctx context.Context, objectiveID uint) ([]*hierarchy.Program, error) {
	var list []*models.ProgramModel
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if objectiveID != 0 {
		query = query.Where("strategic_objective_id = ?", objectiveID)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	out := make([]*hierarchy.Program, 0, len(list))
	for _, model := range list {
		p, err := r.mapper.ProgramToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type SubProgramRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewSubProgramRepository(db *gorm.DB) *SubProgramRepository {
	return &SubProgramRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *SubProgramRepository) Create(ctx context.Context, s *hierarchy.SubProgram) error {
	model := r.mapper.SubProgramToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subprogram: %w", err)
	}
	return s.SetID(model.ID)
}

func (r *SubProgramRepository) Update(ctx context.Context, s *hierarchy.SubProgram) error {
	model := r.mapper.SubProgramToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.SubProgramModel{}).Where("id = ?", model.ID).
		Select("name", "description", "weight", "updated_at").Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update subprogram: %w", err)
	}
	return nil
}

func (r *SubProgramRepository) Delete(ctx context.Context, id uint) error {
	return deleteTree(ctx, r.db, &models.SubProgramModel{}, id, "subprogram", cascadeSubPrograms)
}

func (r *SubProgramRepository) GetByID(ctx context.Context, id uint) (*hierarchy.SubProgram, error) {
	var model models.SubProgramModel
	if err := findOne(ctx, r.db, &model, id, "subprogram"); err != nil {
		return nil, err
	}
	return r.mapper.SubProgramToDomain(&model)
}

func (r *SubProgramRepository) ListByProgram(ctx context.Context, programID uint) ([]*hierarchy.SubProgram, error) {
	var list []*models.SubProgramModel
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if programID != 0 {
		query = query.Where("program_id = ?", programID)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list subprograms: %w", err)
	}
	out := make([]*hierarchy.SubProgram, 0, len(list))
	for _, model := range list {
		s, err := r.mapper.SubProgramToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type InitiativeRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewInitiativeRepository(db *gorm.DB) *InitiativeRepository {
	return &InitiativeRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *InitiativeRepository) Create(ctx context.Context, i *hierarchy.StrategicInitiative) error {
	model := r.mapper.InitiativeToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create strategic initiative: %w", err)
	}
	return i.SetID(model.ID)
}

// Update writes the parent columns explicitly so that moving an initiative
// clears the references it no longer uses.
func (r *InitiativeRepository) Update(ctx context.Context, i *hierarchy.StrategicInitiative) error {
	model := r.mapper.InitiativeToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.StrategicInitiativeModel{}).Where("id = ?", model.ID).
		Select("strategic_objective_id", "program_id", "sub_program_id", "name", "weight", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update strategic initiative: %w", err)
	}
	return nil
}

func (r *InitiativeRepository) Delete(ctx context.Context, id uint) error {
	return deleteTree(ctx, r.db, &models.StrategicInitiativeModel{}, id, "strategic initiative", cascadeInitiatives)
}

func (r *InitiativeRepository) GetByID(ctx context.Context, id uint) (*hierarchy.StrategicInitiative, error) {
	var model models.StrategicInitiativeModel
	if err := findOne(ctx, r.db, &model, id, "strategic initiative"); err != nil {
		return nil, err
	}
	return r.mapper.InitiativeToDomain(&model)
}

func (r *InitiativeRepository) List(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*hierarchy.StrategicInitiative, error) {
	var list []*models.StrategicInitiativeModel
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if filter.ObjectiveID != nil {
		query = query.Where("strategic_objective_id = ?", *filter.ObjectiveID)
	}
	if filter.ProgramID != nil {
		query = query.Where("program_id = ?", *filter.ProgramID)
	}
	if filter.SubProgramID != nil {
		query = query.Where("sub_program_id = ?", *filter.SubProgramID)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list strategic initiatives: %w", err)
	}
	out := make([]*hierarchy.StrategicInitiative, 0, len(list))
	for _, model := range list {
		i, err := r.mapper.InitiativeToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

type MeasureRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewMeasureRepository(db *gorm.DB) *MeasureRepository {
	return &MeasureRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *MeasureRepository) Create(ctx context.Context, m *hierarchy.PerformanceMeasure) error {
	model := r.mapper.MeasureToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create performance measure: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MeasureRepository) Update(ctx context.Context, m *hierarchy.PerformanceMeasure) error {
	model := r.mapper.MeasureToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PerformanceMeasureModel{}).Where("id = ?", model.ID).
		Select("name", "weight", "baseline", "q1_target", "q2_target", "q3_target", "q4_target", "annual_target", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update performance measure: %w", err)
	}
	return nil
}

func (r *MeasureRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.PerformanceMeasureModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete performance measure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("performance measure not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *MeasureRepository) GetByID(ctx context.Context, id uint) (*hierarchy.PerformanceMeasure, error) {
	var model models.PerformanceMeasureModel
	if err := findOne(ctx, r.db, &model, id, "performance measure"); err != nil {
		return nil, err
	}
	return r.mapper.MeasureToDomain(&model)
}

func (r *MeasureRepository) ListByInitiative(ctx context.Context, initiativeID uint) ([]*hierarchy.PerformanceMeasure, error) {
	var list []*models.PerformanceMeasureModel
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if initiativeID != 0 {
		query = query.Where("initiative_id = ?", initiativeID)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list performance measures: %w", err)
	}
	out := make([]*hierarchy.PerformanceMeasure, 0, len(list))
	for _, model := range list {
		m, err := r.mapper.MeasureToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.HierarchyMapper
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db, mapper: mappers.NewHierarchyMapper()}
}

func (r *ActivityRepository) Create(ctx context.Context, a *hierarchy.MainActivity) error {
	model := r.mapper.ActivityToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create main activity: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *ActivityRepository) Update(ctx context.Context, a *hierarchy.MainActivity) error {
	model := r.mapper.ActivityToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.MainActivityModel{}).Where("id = ?", model.ID).
		Select("name", "weight", "selected_months", "selected_quarters", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update main activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	return deleteTree(ctx, r.db, &models.MainActivityModel{}, id, "main activity", cascadeActivities)
}

func (r *ActivityRepository) GetByID(ctx context.Context, id uint) (*hierarchy.MainActivity, error) {
	var model models.MainActivityModel
	if err := findOne(ctx, r.db, &model, id, "main activity"); err != nil {
		return nil, err
	}
	return r.mapper.ActivityToDomain(&model)
}

func (r *ActivityRepository) ListByInitiative(ctx context.Context, initiativeID uint) ([]*hierarchy.MainActivity, error) {
	var list []*models.MainActivityModel
	query := db.GetTxFromContext(ctx, r.db).Order("id ASC")
	if initiativeID != 0 {
		query = query.Where("initiative_id = ?", initiativeID)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list main activities: %w", err)
	}
	out := make([]*hierarchy.MainActivity, 0, len(list))
	for _, model := range list {
		a, err := r.mapper.ActivityToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
