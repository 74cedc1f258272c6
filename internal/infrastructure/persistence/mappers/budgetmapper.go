package mappers

import (
	"stratplan/internal/domain/budget"
	"stratplan/internal/infrastructure/persistence/models"
)

// BudgetMapper converts activity budgets and costing assumptions.
type BudgetMapper interface {
	ToModel(b *budget.ActivityBudget) *models.ActivityBudgetModel
	ToDomain(model *models.ActivityBudgetModel) (*budget.ActivityBudget, error)
	CostingToModel(c *budget.CostingAssumption) *models.CostingAssumptionModel
	CostingToDomain(model *models.CostingAssumptionModel) (*budget.CostingAssumption, error)
}

type BudgetMapperImpl struct{}

func NewBudgetMapper() BudgetMapper {
	return &BudgetMapperImpl{}
}

func (m *BudgetMapperImpl) ToModel(b *budget.ActivityBudget) *models.ActivityBudgetModel {
	funding := b.Funding()
	details := b.Details()

	model := &models.ActivityBudgetModel{
		ID:                       b.ID(),
		ActivityID:               b.ActivityID(),
		BudgetCalculationType:    b.CalculationType().String(),
		EstimatedCostWithTool:    b.CostWithTool(),
		EstimatedCostWithoutTool: b.CostWithoutTool(),
		GovernmentTreasury:       funding.GovernmentTreasury,
		SDGFunding:               funding.SDG,
		PartnersFunding:          funding.Partners,
		OtherFunding:             funding.Other,
		TrainingDetails:          rawToJSON(details.Training),
		MeetingWorkshopDetails:   rawToJSON(details.MeetingWorkshop),
		ProcurementDetails:       rawToJSON(details.Procurement),
		PrintingDetails:          rawToJSON(details.Printing),
		SupervisionDetails:       rawToJSON(details.Supervision),
		CreatedAt:                b.CreatedAt(),
		UpdatedAt:                b.UpdatedAt(),
	}
	if t := b.ActivityType(); t != nil {
		s := t.String()
		model.ActivityType = &s
	}
	return model
}

func (m *BudgetMapperImpl) ToDomain(model *models.ActivityBudgetModel) (*budget.ActivityBudget, error) {
	var activityType *budget.ActivityType
	if model.ActivityType != nil && *model.ActivityType != "" {
		t := budget.ActivityType(*model.ActivityType)
		activityType = &t
	}
	return budget.ReconstructActivityBudget(
		model.ID,
		model.ActivityID,
		budget.CalculationType(model.BudgetCalculationType),
		activityType,
		model.EstimatedCostWithTool,
		model.EstimatedCostWithoutTool,
		budget.Funding{
			GovernmentTreasury: model.GovernmentTreasury,
			SDG:                model.SDGFunding,
			Partners:           model.PartnersFunding,
			Other:              model.OtherFunding,
		},
		budget.ToolDetails{
			Training:        jsonToRaw(model.TrainingDetails),
			MeetingWorkshop: jsonToRaw(model.MeetingWorkshopDetails),
			Procurement:     jsonToRaw(model.ProcurementDetails),
			Printing:        jsonToRaw(model.PrintingDetails),
			Supervision:     jsonToRaw(model.SupervisionDetails),
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *BudgetMapperImpl) CostingToModel(c *budget.CostingAssumption) *models.CostingAssumptionModel {
	key := c.Key()
	return &models.CostingAssumptionModel{
		ID:           c.ID(),
		ActivityType: key.ActivityType.String(),
		Location:     key.Location.String(),
		CostType:     key.CostType.String(),
		Amount:       c.Amount(),
		Description:  c.Description(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func (m *BudgetMapperImpl) CostingToDomain(model *models.CostingAssumptionModel) (*budget.CostingAssumption, error) {
	key := budget.CostingKey{
		ActivityType: budget.ActivityType(model.ActivityType),
		Location:     budget.Location(model.Location),
		CostType:     budget.CostType(model.CostType),
	}
	return budget.ReconstructCostingAssumption(model.ID, key, model.Amount, model.Description, model.CreatedAt, model.UpdatedAt)
}
