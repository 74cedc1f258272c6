package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"stratplan/internal/shared/constants"
)

// Weights are stored as decimal(5,2) so sums stay exact.

type StrategicObjectiveModel struct {
	ID          uint            `gorm:"primarykey"`
	Title       string          `gorm:"not null;size:255"`
	Description string          `gorm:"type:text"`
	Weight      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StrategicObjectiveModel) TableName() string {
	return constants.TableStrategicObjectives
}

type ProgramModel struct {
	ID                   uint            `gorm:"primarykey"`
	StrategicObjectiveID uint            `gorm:"not null;index:idx_program_objective"`
	Name                 string          `gorm:"not null;size:255"`
	Description          string          `gorm:"type:text"`
	Weight               decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (ProgramModel) TableName() string {
	return constants.TablePrograms
}

type SubProgramModel struct {
	ID          uint            `gorm:"primarykey"`
	ProgramID   uint            `gorm:"not null;index:idx_subprogram_program"`
	Name        string          `gorm:"not null;size:255"`
	Description string          `gorm:"type:text"`
	Weight      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SubProgramModel) TableName() string {
	return constants.TableSubPrograms
}

// StrategicInitiativeModel references exactly one of its three possible
// parents; the other two columns are null.
type StrategicInitiativeModel struct {
	ID                   uint            `gorm:"primarykey"`
	StrategicObjectiveID *uint           `gorm:"index:idx_initiative_objective"`
	ProgramID            *uint           `gorm:"index:idx_initiative_program"`
	SubProgramID         *uint           `gorm:"index:idx_initiative_subprogram"`
	Name                 string          `gorm:"not null;size:255"`
	Weight               decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (StrategicInitiativeModel) TableName() string {
	return constants.TableStrategicInitiatives
}

type PerformanceMeasureModel struct {
	ID           uint            `gorm:"primarykey"`
	InitiativeID uint            `gorm:"not null;index:idx_measure_initiative"`
	Name         string          `gorm:"not null;size:255"`
	Weight       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Baseline     string          `gorm:"size:255"`
	Q1Target     decimal.Decimal `gorm:"column:q1_target;type:decimal(10,2);not null"`
	Q2Target     decimal.Decimal `gorm:"column:q2_target;type:decimal(10,2);not null"`
	Q3Target     decimal.Decimal `gorm:"column:q3_target;type:decimal(10,2);not null"`
	Q4Target     decimal.Decimal `gorm:"column:q4_target;type:decimal(10,2);not null"`
	AnnualTarget decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PerformanceMeasureModel) TableName() string {
	return constants.TablePerformanceMeasures
}

type MainActivityModel struct {
	ID               uint            `gorm:"primarykey"`
	InitiativeID     uint            `gorm:"not null;index:idx_activity_initiative"`
	Name             string          `gorm:"not null;size:255"`
	Weight           decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	SelectedMonths   datatypes.JSON
	SelectedQuarters datatypes.JSON
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (MainActivityModel) TableName() string {
	return constants.TableMainActivities
}
