package models

import (
	"time"

	"gorm.io/datatypes"

	"stratplan/internal/shared/constants"
)

type PlanModel struct {
	ID                   uint           `gorm:"primarykey"`
	OrganizationID       uint           `gorm:"not null;index:idx_plan_org_status,priority:1"`
	PlannerID            uint           `gorm:"not null;index:idx_plan_planner"`
	PlannerName          string         `gorm:"not null;size:255"`
	Type                 string         `gorm:"not null;size:20"`
	ExecutiveName        string         `gorm:"size:255"`
	StrategicObjectiveID *uint          `gorm:"index:idx_plan_objective"`
	ProgramID            *uint          `gorm:"index:idx_plan_program"`
	SubProgramID         *uint          `gorm:"index:idx_plan_subprogram"`
	FiscalYear           string         `gorm:"not null;size:10"`
	FromDate             datatypes.Date `gorm:"not null"`
	ToDate               datatypes.Date `gorm:"not null"`
	Status               string         `gorm:"not null;size:20;index:idx_plan_org_status,priority:2"`
	SubmittedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

// PlanReviewModel is an immutable review record. EvaluatorID becomes null
// when the evaluator membership is revoked.
type PlanReviewModel struct {
	ID          uint   `gorm:"primarykey"`
	PlanID      uint   `gorm:"not null;index:idx_review_plan"`
	EvaluatorID *uint  `gorm:"index:idx_review_evaluator"`
	Status      string `gorm:"not null;size:20"`
	Feedback    string `gorm:"type:text;not null"`
	ReviewedAt  time.Time
}

func (PlanReviewModel) TableName() string {
	return constants.TablePlanReviews
}
