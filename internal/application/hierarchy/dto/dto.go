package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
)

type ObjectiveDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProgramDTO struct {
	ID          uint            `json:"id"`
	ObjectiveID uint            `json:"strategic_objective"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SubProgramDTO struct {
	ID          uint            `json:"id"`
	ProgramID   uint            `json:"program"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type InitiativeDTO struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Weight       decimal.Decimal `json:"weight"`
	ObjectiveID  *uint           `json:"strategic_objective"`
	ProgramID    *uint           `json:"program"`
	SubProgramID *uint           `json:"subprogram"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type MeasureDTO struct {
	ID           uint            `json:"id"`
	InitiativeID uint            `json:"initiative"`
	Name         string          `json:"name"`
	Weight       decimal.Decimal `json:"weight"`
	Baseline     string          `json:"baseline"`
	Q1Target     decimal.Decimal `json:"q1_target"`
	Q2Target     decimal.Decimal `json:"q2_target"`
	Q3Target     decimal.Decimal `json:"q3_target"`
	Q4Target     decimal.Decimal `json:"q4_target"`
	AnnualTarget decimal.Decimal `json:"annual_target"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ActivityDTO struct {
	ID             uint            `json:"id"`
	InitiativeID   uint            `json:"initiative"`
	Name           string          `json:"name"`
	Weight         decimal.Decimal `json:"weight"`
	SelectedMonths []string        `json:"selected_months"`
	SelectedQtrs   []string        `json:"selected_quarters"`
	Budget         *BudgetDTO      `json:"budget,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BudgetDTO carries the stored budget fields plus the derived amounts.
type BudgetDTO struct {
	ID                    uint            `json:"id"`
	ActivityID            uint            `json:"activity"`
	ActivityName          string          `json:"activity_name,omitempty"`
	BudgetCalculationType string          `json:"budget_calculation_type"`
	ActivityType          *string         `json:"activity_type"`
	EstimatedCostWithTool decimal.Decimal `json:"estimated_cost_with_tool"`
	EstimatedCostNoTool   decimal.Decimal `json:"estimated_cost_without_tool"`
	GovernmentTreasury    decimal.Decimal `json:"government_treasury"`
	SDGFunding            decimal.Decimal `json:"sdg_funding"`
	PartnersFunding       decimal.Decimal `json:"partners_funding"`
	OtherFunding          decimal.Decimal `json:"other_funding"`
	TotalFunding          decimal.Decimal `json:"total_funding"`
	EstimatedCost         decimal.Decimal `json:"estimated_cost"`
	FundingGap            decimal.Decimal `json:"funding_gap"`
	TrainingDetails       rawJSON         `json:"training_details"`
	MeetingDetails        rawJSON         `json:"meeting_workshop_details"`
	ProcurementDetails    rawJSON         `json:"procurement_details"`
	PrintingDetails       rawJSON         `json:"printing_details"`
	SupervisionDetails    rawJSON         `json:"supervision_details"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// rawJSON renders an absent blob as null.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// InitiativeCompleteDTO is an initiative with its measures and activities.
type InitiativeCompleteDTO struct {
	InitiativeDTO
	PerformanceMeasures []*MeasureDTO  `json:"performance_measures"`
	MainActivities      []*ActivityDTO `json:"main_activities"`
}

// WeightSummaryDTO is the read-side view of one sibling scope. Ceiling and
// remaining are omitted for initiatives, which have no ceiling.
type WeightSummaryDTO struct {
	Kind        string           `json:"kind"`
	ParentKind  string           `json:"parent_kind,omitempty"`
	ParentID    uint             `json:"parent_id,omitempty"`
	ParentValue *decimal.Decimal `json:"parent_weight,omitempty"`
	Total       decimal.Decimal  `json:"total_weight"`
	Ceiling     *decimal.Decimal `json:"expected_weight,omitempty"`
	Remaining   *decimal.Decimal `json:"remaining_weight,omitempty"`
	Count       int              `json:"count"`
	IsValid     bool             `json:"is_valid"`
}

// WeightValidationDTO answers an explicit "does this scope add up" request.
type WeightValidationDTO struct {
	IsValid bool            `json:"is_valid"`
	Total   decimal.Decimal `json:"total_weight"`
	Message string          `json:"message"`
}

func ToObjectiveDTO(o *hierarchy.StrategicObjective) *ObjectiveDTO {
	if o == nil {
		return nil
	}
	return &ObjectiveDTO{
		ID:          o.ID(),
		Title:       o.Title(),
		Description: o.Description(),
		Weight:      o.Weight(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func ToProgramDTO(p *hierarchy.Program) *ProgramDTO {
	if p == nil {
		return nil
	}
	return &ProgramDTO{
		ID:          p.ID(),
		ObjectiveID: p.ObjectiveID(),
		Name:        p.Name(),
		Description: p.Description(),
		Weight:      p.Weight(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToSubProgramDTO(s *hierarchy.SubProgram) *SubProgramDTO {
	if s == nil {
		return nil
	}
	return &SubProgramDTO{
		ID:          s.ID(),
		ProgramID:   s.ProgramID(),
		Name:        s.Name(),
		Description: s.Description(),
		Weight:      s.Weight(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func ToInitiativeDTO(i *hierarchy.StrategicInitiative) *InitiativeDTO {
	if i == nil {
		return nil
	}
	objectiveID, programID, subProgramID := i.Parent().Columns()
	return &InitiativeDTO{
		ID:           i.ID(),
		Name:         i.Name(),
		Weight:       i.Weight(),
		ObjectiveID:  objectiveID,
		ProgramID:    programID,
		SubProgramID: subProgramID,
		CreatedAt:    i.CreatedAt(),
		UpdatedAt:    i.UpdatedAt(),
	}
}

func ToMeasureDTO(m *hierarchy.PerformanceMeasure) *MeasureDTO {
	if m == nil {
		return nil
	}
	t := m.Targets()
	return &MeasureDTO{
		ID:           m.ID(),
		InitiativeID: m.InitiativeID(),
		Name:         m.Name(),
		Weight:       m.Weight(),
		Baseline:     m.Baseline(),
		Q1Target:     t.Q1,
		Q2Target:     t.Q2,
		Q3Target:     t.Q3,
		Q4Target:     t.Q4,
		AnnualTarget: t.Annual,
		CreatedAt:    m.CreatedAt(),
		UpdatedAt:    m.UpdatedAt(),
	}
}

func ToActivityDTO(a *hierarchy.MainActivity, b *budget.ActivityBudget) *ActivityDTO {
	if a == nil {
		return nil
	}
	period := a.Period().Normalize()
	return &ActivityDTO{
		ID:             a.ID(),
		InitiativeID:   a.InitiativeID(),
		Name:           a.Name(),
		Weight:         a.Weight(),
		SelectedMonths: period.Months,
		SelectedQtrs:   period.Quarters,
		Budget:         ToBudgetDTO(b, ""),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func ToBudgetDTO(b *budget.ActivityBudget, activityName string) *BudgetDTO {
	if b == nil {
		return nil
	}
	var activityType *string
	if at := b.ActivityType(); at != nil {
		s := at.String()
		activityType = &s
	}
	funding := b.Funding()
	details := b.Details()
	return &BudgetDTO{
		ID:                    b.ID(),
		ActivityID:            b.ActivityID(),
		ActivityName:          activityName,
		BudgetCalculationType: b.CalculationType().String(),
		ActivityType:          activityType,
		EstimatedCostWithTool: b.CostWithTool(),
		EstimatedCostNoTool:   b.CostWithoutTool(),
		GovernmentTreasury:    funding.GovernmentTreasury,
		SDGFunding:            funding.SDG,
		PartnersFunding:       funding.Partners,
		OtherFunding:          funding.Other,
		TotalFunding:          b.TotalFunding(),
		EstimatedCost:         b.EstimatedCost(),
		FundingGap:            b.FundingGap(),
		TrainingDetails:       rawJSON(details.Training),
		MeetingDetails:        rawJSON(details.MeetingWorkshop),
		ProcurementDetails:    rawJSON(details.Procurement),
		PrintingDetails:       rawJSON(details.Printing),
		SupervisionDetails:    rawJSON(details.Supervision),
		CreatedAt:             b.CreatedAt(),
		UpdatedAt:             b.UpdatedAt(),
	}
}

// ToWeightSummaryDTO renders a summary. parentWeight is set for scopes whose
// parent carries a weight worth showing next to the totals.
func ToWeightSummaryDTO(s *weight.Summary, parentWeight *decimal.Decimal) *WeightSummaryDTO {
	if s == nil {
		return nil
	}
	out := &WeightSummaryDTO{
		Kind:        s.Scope.Kind.String(),
		ParentID:    s.Scope.ParentID,
		ParentValue: parentWeight,
		Total:       s.Total,
		Count:       s.Count,
		IsValid:     s.IsValid,
	}
	if s.Scope.ParentKind != "" {
		out.ParentKind = s.Scope.ParentKind.String()
	}
	if s.Bounded {
		ceiling := s.Ceiling
		remaining := s.Remaining
		out.Ceiling = &ceiling
		out.Remaining = &remaining
	}
	return out
}
