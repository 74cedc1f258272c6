package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/biztime"
)

// Funding lists the four funding sources of a budget.
type Funding struct {
	GovernmentTreasury decimal.Decimal
	SDG                decimal.Decimal
	Partners           decimal.Decimal
	Other              decimal.Decimal
}

func (f Funding) Total() decimal.Decimal {
	return f.GovernmentTreasury.Add(f.SDG).Add(f.Partners).Add(f.Other)
}

// ToolDetails are the costing tool inputs. They are stored as given and
// never interpreted.
type ToolDetails struct {
	Training        json.RawMessage
	MeetingWorkshop json.RawMessage
	Procurement     json.RawMessage
	Printing        json.RawMessage
	Supervision     json.RawMessage
}

// ActivityBudget is the one budget of a main activity.
type ActivityBudget struct {
	id              uint
	activityID      uint
	calculationType CalculationType
	activityType    *ActivityType
	costWithTool    decimal.Decimal
	costWithoutTool decimal.Decimal
	funding         Funding
	details         ToolDetails
	createdAt       time.Time
	updatedAt       time.Time
}

// NewActivityBudget returns an empty WITHOUT_TOOL budget for an activity.
func NewActivityBudget(activityID uint) (*ActivityBudget, error) {
	if activityID == 0 {
		return nil, fmt.Errorf("activity is required")
	}
	now := biztime.NowUTC()
	return &ActivityBudget{
		activityID:      activityID,
		calculationType: CalculationWithoutTool,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructActivityBudget(
	id, activityID uint,
	calculationType CalculationType,
	activityType *ActivityType,
	costWithTool, costWithoutTool decimal.Decimal,
	funding Funding,
	details ToolDetails,
	createdAt, updatedAt time.Time,
) (*ActivityBudget, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity budget ID cannot be zero")
	}
	if !calculationType.IsValid() {
		return nil, fmt.Errorf("invalid budget calculation type %q", calculationType)
	}
	return &ActivityBudget{
		id:              id,
		activityID:      activityID,
		calculationType: calculationType,
		activityType:    activityType,
		costWithTool:    costWithTool,
		costWithoutTool: costWithoutTool,
		funding:         funding,
		details:         details,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	CalculationType       *CalculationType
	ActivityType          *ActivityType
	EstimatedCostWithTool *decimal.Decimal
	EstimatedCostNoTool   *decimal.Decimal
	GovernmentTreasury    *decimal.Decimal
	SDGFunding            *decimal.Decimal
	PartnersFunding       *decimal.Decimal
	OtherFunding          *decimal.Decimal
	TrainingDetails       json.RawMessage
	MeetingDetails        json.RawMessage
	ProcurementDetails    json.RawMessage
	PrintingDetails       json.RawMessage
	SupervisionDetails    json.RawMessage
}

// Apply merges the patch and reconciles funding. On error the budget is
// left untouched.
func (b *ActivityBudget) Apply(p Patch) error {
	next := *b

	if p.CalculationType != nil {
		if !p.CalculationType.IsValid() {
			return fmt.Errorf("invalid budget calculation type %q", *p.CalculationType)
		}
		next.calculationType = *p.CalculationType
	}
	if p.ActivityType != nil {
		if !p.ActivityType.IsValid() {
			return fmt.Errorf("invalid activity type %q", *p.ActivityType)
		}
		at := *p.ActivityType
		next.activityType = &at
	}

	setAmount := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	setAmount(&next.costWithTool, p.EstimatedCostWithTool)
	setAmount(&next.costWithoutTool, p.EstimatedCostNoTool)
	setAmount(&next.funding.GovernmentTreasury, p.GovernmentTreasury)
	setAmount(&next.funding.SDG, p.SDGFunding)
	setAmount(&next.funding.Partners, p.PartnersFunding)
	setAmount(&next.funding.Other, p.OtherFunding)

	setDetails := func(dst *json.RawMessage, src json.RawMessage) {
		if src != nil {
			*dst = src
		}
	}
	setDetails(&next.details.Training, p.TrainingDetails)
	setDetails(&next.details.MeetingWorkshop, p.MeetingDetails)
	setDetails(&next.details.Procurement, p.ProcurementDetails)
	setDetails(&next.details.Printing, p.PrintingDetails)
	setDetails(&next.details.Supervision, p.SupervisionDetails)

	if _, err := ValidateFunding(&next); err != nil {
		return err
	}

	next.updatedAt = biztime.NowUTC()
	*b = next
	return nil
}

// EstimatedCost is the cost selected by the calculation type; the other
// cost field is ignored.
func (b *ActivityBudget) EstimatedCost() decimal.Decimal {
	if b.calculationType == CalculationWithTool {
		return b.costWithTool
	}
	return b.costWithoutTool
}

func (b *ActivityBudget) TotalFunding() decimal.Decimal {
	return b.funding.Total()
}

// FundingGap is EstimatedCost - TotalFunding, never negative for a valid budget.
func (b *ActivityBudget) FundingGap() decimal.Decimal {
	return b.EstimatedCost().Sub(b.TotalFunding())
}

func (b *ActivityBudget) ID() uint                         { return b.id }
func (b *ActivityBudget) ActivityID() uint                 { return b.activityID }
func (b *ActivityBudget) CalculationType() CalculationType { return b.calculationType }
func (b *ActivityBudget) ActivityType() *ActivityType      { return b.activityType }
func (b *ActivityBudget) CostWithTool() decimal.Decimal    { return b.costWithTool }
func (b *ActivityBudget) CostWithoutTool() decimal.Decimal { return b.costWithoutTool }
func (b *ActivityBudget) Funding() Funding                 { return b.funding }
func (b *ActivityBudget) Details() ToolDetails             { return b.details }
func (b *ActivityBudget) CreatedAt() time.Time             { return b.createdAt }
func (b *ActivityBudget) UpdatedAt() time.Time             { return b.updatedAt }

func (b *ActivityBudget) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("activity budget ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("activity budget ID cannot be zero")
	}
	b.id = id
	return nil
}
