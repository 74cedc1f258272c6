package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"stratplan/internal/shared/constants"
)

// ActivityBudgetModel is the one budget of a main activity. The *Details
// columns hold costing tool inputs verbatim.
type ActivityBudgetModel struct {
	ID                       uint            `gorm:"primarykey"`
	ActivityID               uint            `gorm:"not null;uniqueIndex:uk_budget_activity"`
	BudgetCalculationType    string          `gorm:"not null;size:20"`
	ActivityType             *string         `gorm:"size:20"`
	EstimatedCostWithTool    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EstimatedCostWithoutTool decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GovernmentTreasury       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SDGFunding               decimal.Decimal `gorm:"column:sdg_funding;type:decimal(12,2);not null"`
	PartnersFunding          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OtherFunding             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TrainingDetails          datatypes.JSON
	MeetingWorkshopDetails   datatypes.JSON
	ProcurementDetails       datatypes.JSON
	PrintingDetails          datatypes.JSON
	SupervisionDetails       datatypes.JSON
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

func (ActivityBudgetModel) TableName() string {
	return constants.TableActivityBudgets
}

type CostingAssumptionModel struct {
	ID           uint            `gorm:"primarykey"`
	ActivityType string          `gorm:"not null;size:20;uniqueIndex:uk_costing_key,priority:1"`
	Location     string          `gorm:"not null;size:20;uniqueIndex:uk_costing_key,priority:2"`
	CostType     string          `gorm:"not null;size:30;uniqueIndex:uk_costing_key,priority:3"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description  string          `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CostingAssumptionModel) TableName() string {
	return constants.TableCostingAssumptions
}
