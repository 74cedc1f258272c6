package mappers

import (
	"fmt"

	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/infrastructure/persistence/models"
)

// HierarchyMapper converts the six strategy tree node kinds.
type HierarchyMapper interface {
	ObjectiveToModel(o *hierarchy.StrategicObjective) *models.StrategicObjectiveModel
	ObjectiveToDomain(model *models.StrategicObjectiveModel) (*hierarchy.StrategicObjective, error)
	ProgramToModel(p *hierarchy.Program) *models.ProgramModel
	ProgramToDomain(model *models.ProgramModel) (*hierarchy.Program, error)
	SubProgramToModel(s *hierarchy.SubProgram) *models.SubProgramModel
	SubProgramToDomain(model *models.SubProgramModel) (*hierarchy.SubProgram, error)
	InitiativeToModel(i *hierarchy.StrategicInitiative) *models.StrategicInitiativeModel
	InitiativeToDomain(model *models.StrategicInitiativeModel) (*hierarchy.StrategicInitiative, error)
	MeasureToModel(m *hierarchy.PerformanceMeasure) *models.PerformanceMeasureModel
	MeasureToDomain(model *models.PerformanceMeasureModel) (*hierarchy.PerformanceMeasure, error)
	ActivityToModel(a *hierarchy.MainActivity) *models.MainActivityModel
	ActivityToDomain(model *models.MainActivityModel) (*hierarchy.MainActivity, error)
}

type HierarchyMapperImpl struct{}

func NewHierarchyMapper() HierarchyMapper {
	return &HierarchyMapperImpl{}
}

func (m *HierarchyMapperImpl) ObjectiveToModel(o *hierarchy.StrategicObjective) *models.StrategicObjectiveModel {
	return &models.StrategicObjectiveModel{
		ID:          o.ID(),
		Title:       o.Title(),
		Description: o.Description(),
		Weight:      o.Weight(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) ObjectiveToDomain(model *models.StrategicObjectiveModel) (*hierarchy.StrategicObjective, error) {
	return hierarchy.ReconstructStrategicObjective(model.ID, model.Title, model.Description, model.Weight, model.CreatedAt, model.UpdatedAt)
}

func (m *HierarchyMapperImpl) ProgramToModel(p *hierarchy.Program) *models.ProgramModel {
	return &models.ProgramModel{
		ID:                   p.ID(),
		StrategicObjectiveID: p.ObjectiveID(),
		Name:                 p.Name(),
		Description:          p.Description(),
		Weight:               p.Weight(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) ProgramToDomain(model *models.ProgramModel) (*hierarchy.Program, error) {
	return hierarchy.ReconstructProgram(model.ID, model.StrategicObjectiveID, model.Name, model.Description, model.Weight, model.CreatedAt, model.UpdatedAt)
}

func (m *HierarchyMapperImpl) SubProgramToModel(s *hierarchy.SubProgram) *models.SubProgramModel {
	return &models.SubProgramModel{
		ID:          s.ID(),
		ProgramID:   s.ProgramID(),
		Name:        s.Name(),
		Description: s.Description(),
		Weight:      s.Weight(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) SubProgramToDomain(model *models.SubProgramModel) (*hierarchy.SubProgram, error) {
	return hierarchy.ReconstructSubProgram(model.ID, model.ProgramID, model.Name, model.Description, model.Weight, model.CreatedAt, model.UpdatedAt)
}

func (m *HierarchyMapperImpl) InitiativeToModel(i *hierarchy.StrategicInitiative) *models.StrategicInitiativeModel {
	objectiveID, programID, subProgramID := i.Parent().Columns()
	return &models.StrategicInitiativeModel{
		ID:                   i.ID(),
		StrategicObjectiveID: objectiveID,
		ProgramID:            programID,
		SubProgramID:         subProgramID,
		Name:                 i.Name(),
		Weight:               i.Weight(),
		CreatedAt:            i.CreatedAt(),
		UpdatedAt:            i.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) InitiativeToDomain(model *models.StrategicInitiativeModel) (*hierarchy.StrategicInitiative, error) {
	parent, err := hierarchy.ParentFromColumns(model.StrategicObjectiveID, model.ProgramID, model.SubProgramID)
	if err != nil {
		return nil, fmt.Errorf("initiative %d: %w", model.ID, err)
	}
	return hierarchy.ReconstructStrategicInitiative(model.ID, parent, model.Name, model.Weight, model.CreatedAt, model.UpdatedAt)
}

func (m *HierarchyMapperImpl) MeasureToModel(pm *hierarchy.PerformanceMeasure) *models.PerformanceMeasureModel {
	targets := pm.Targets()
	return &models.PerformanceMeasureModel{
		ID:           pm.ID(),
		InitiativeID: pm.InitiativeID(),
		Name:         pm.Name(),
		Weight:       pm.Weight(),
		Baseline:     pm.Baseline(),
		Q1Target:     targets.Q1,
		Q2Target:     targets.Q2,
		Q3Target:     targets.Q3,
		Q4Target:     targets.Q4,
		AnnualTarget: targets.Annual,
		CreatedAt:    pm.CreatedAt(),
		UpdatedAt:    pm.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) MeasureToDomain(model *models.PerformanceMeasureModel) (*hierarchy.PerformanceMeasure, error) {
	targets := hierarchy.Targets{
		Q1:     model.Q1Target,
		Q2:     model.Q2Target,
		Q3:     model.Q3Target,
		Q4:     model.Q4Target,
		Annual: model.AnnualTarget,
	}
	return hierarchy.ReconstructPerformanceMeasure(model.ID, model.InitiativeID, model.Name, model.Weight, model.Baseline, targets, model.CreatedAt, model.UpdatedAt)
}

func (m *HierarchyMapperImpl) ActivityToModel(a *hierarchy.MainActivity) *models.MainActivityModel {
	period := a.Period()
	return &models.MainActivityModel{
		ID:               a.ID(),
		InitiativeID:     a.InitiativeID(),
		Name:             a.Name(),
		Weight:           a.Weight(),
		SelectedMonths:   stringsToJSON(period.Months),
		SelectedQuarters: stringsToJSON(period.Quarters),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func (m *HierarchyMapperImpl) ActivityToDomain(model *models.MainActivityModel) (*hierarchy.MainActivity, error) {
	months, err := stringsFromJSON(model.SelectedMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to decode months of activity %d: %w", model.ID, err)
	}
	quarters, err := stringsFromJSON(model.SelectedQuarters)
	if err != nil {
		return nil, fmt.Errorf("failed to decode quarters of activity %d: %w", model.ID, err)
	}
	period := hierarchy.Period{Months: months, Quarters: quarters}
	return hierarchy.ReconstructMainActivity(model.ID, model.InitiativeID, model.Name, model.Weight, period, model.CreatedAt, model.UpdatedAt)
}
