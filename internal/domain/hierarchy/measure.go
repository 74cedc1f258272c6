package hierarchy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/biztime"
)

// Targets are the quarterly and annual goals of a performance measure.
// Quarters follow the fiscal year: Q1 is Jul-Sep, Q4 is Apr-Jun.
type Targets struct {
	Q1     decimal.Decimal
	Q2     decimal.Decimal
	Q3     decimal.Decimal
	Q4     decimal.Decimal
	Annual decimal.Decimal
}

// QuarterlySum is Q1+Q2+Q3+Q4.
func (t Targets) QuarterlySum() decimal.Decimal {
	return t.Q1.Add(t.Q2).Add(t.Q3).Add(t.Q4)
}

// TargetScale is the number of fractional digits a target may carry.
const TargetScale = 2

// MaxTarget is the largest target the decimal(10,2) columns hold.
var MaxTarget = decimal.RequireFromString("99999999.99")

// Validate checks each target in Q1..Q4, annual order and then rejects
// quarterly sums above the annual target.
func (t Targets) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"q1_target", t.Q1},
		{"q2_target", t.Q2},
		{"q3_target", t.Q3},
		{"q4_target", t.Q4},
		{"annual_target", t.Annual},
	}
	for _, f := range fields {
		switch {
		case f.value.IsNegative():
			return fmt.Errorf("%s cannot be negative", f.name)
		case f.value.GreaterThan(MaxTarget):
			return fmt.Errorf("%s cannot exceed %s", f.name, MaxTarget.StringFixed(TargetScale))
		case !f.value.Equal(f.value.Truncate(TargetScale)):
			return fmt.Errorf("%s must have at most %d decimal places", f.name, TargetScale)
		}
	}
	if t.QuarterlySum().GreaterThan(t.Annual) {
		return fmt.Errorf("sum of quarterly targets cannot exceed annual target")
	}
	return nil
}

// PerformanceMeasure belongs to an initiative; measures of one initiative
// share a ceiling of 35.
type PerformanceMeasure struct {
	id           uint
	initiativeID uint
	name         string
	weight       decimal.Decimal
	baseline     string
	targets      Targets
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPerformanceMeasure(initiativeID uint, name string, w decimal.Decimal, baseline string, targets Targets) (*PerformanceMeasure, error) {
	if initiativeID == 0 {
		return nil, fmt.Errorf("initiative is required")
	}
	m := &PerformanceMeasure{initiativeID: initiativeID}
	if err := m.apply(name, w, baseline, targets); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	m.createdAt = now
	m.updatedAt = now
	return m, nil
}

func ReconstructPerformanceMeasure(id, initiativeID uint, name string, w decimal.Decimal, baseline string, targets Targets, createdAt, updatedAt time.Time) (*PerformanceMeasure, error) {
	if id == 0 {
		return nil, fmt.Errorf("performance measure ID cannot be zero")
	}
	return &PerformanceMeasure{
		id:           id,
		initiativeID: initiativeID,
		name:         name,
		weight:       w,
		baseline:     baseline,
		targets:      targets,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *PerformanceMeasure) apply(name string, w decimal.Decimal, baseline string, targets Targets) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	if err := targets.Validate(); err != nil {
		return err
	}
	if len(baseline) > maxNameLength {
		return fmt.Errorf("baseline exceeds maximum length of %d characters", maxNameLength)
	}
	m.name = strings.TrimSpace(name)
	m.weight = w
	m.baseline = baseline
	m.targets = targets
	return nil
}

func (m *PerformanceMeasure) Update(name string, w decimal.Decimal, baseline string, targets Targets) error {
	if err := m.apply(name, w, baseline, targets); err != nil {
		return err
	}
	m.updatedAt = biztime.NowUTC()
	return nil
}

func (m *PerformanceMeasure) ID() uint                { return m.id }
func (m *PerformanceMeasure) InitiativeID() uint      { return m.initiativeID }
func (m *PerformanceMeasure) Name() string            { return m.name }
func (m *PerformanceMeasure) Weight() decimal.Decimal { return m.weight }
func (m *PerformanceMeasure) Baseline() string        { return m.baseline }
func (m *PerformanceMeasure) Targets() Targets        { return m.targets }
func (m *PerformanceMeasure) CreatedAt() time.Time    { return m.createdAt }
func (m *PerformanceMeasure) UpdatedAt() time.Time    { return m.updatedAt }

func (m *PerformanceMeasure) Scope() weight.Scope {
	return weight.MeasureScope(m.initiativeID)
}

func (m *PerformanceMeasure) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("performance measure ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("performance measure ID cannot be zero")
	}
	m.id = id
	return nil
}
