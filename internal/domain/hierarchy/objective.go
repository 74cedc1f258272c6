// Package hierarchy models the strategy tree: objectives, programs,
// subprograms, initiatives, performance measures and main activities.
// It owns the structural invariants of each node; sibling quotas live in
// the weight package.
package hierarchy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/biztime"
)

const maxNameLength = 255

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > maxNameLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, maxNameLength)
	}
	return nil
}

// StrategicObjective is a root of the strategy tree. All objectives share
// one quota of 100.
type StrategicObjective struct {
	id          uint
	title       string
	description string
	weight      decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStrategicObjective(title, description string, w decimal.Decimal) (*StrategicObjective, error) {
	o := &StrategicObjective{}
	if err := o.apply(title, description, w); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

func ReconstructStrategicObjective(id uint, title, description string, w decimal.Decimal, createdAt, updatedAt time.Time) (*StrategicObjective, error) {
	if id == 0 {
		return nil, fmt.Errorf("strategic objective ID cannot be zero")
	}
	return &StrategicObjective{
		id:          id,
		title:       title,
		description: description,
		weight:      w,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *StrategicObjective) apply(title, description string, w decimal.Decimal) error {
	if err := validateName("title", title); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	if w.GreaterThan(weight.ObjectiveCeiling) {
		return fmt.Errorf("weight cannot exceed %s", weight.ObjectiveCeiling)
	}
	o.title = strings.TrimSpace(title)
	o.description = description
	o.weight = w
	return nil
}

// Update replaces the editable fields. The caller re-checks the quota.
func (o *StrategicObjective) Update(title, description string, w decimal.Decimal) error {
	if err := o.apply(title, description, w); err != nil {
		return err
	}
	o.updatedAt = biztime.NowUTC()
	return nil
}

func (o *StrategicObjective) ID() uint                { return o.id }
func (o *StrategicObjective) Title() string           { return o.title }
func (o *StrategicObjective) Description() string     { return o.description }
func (o *StrategicObjective) Weight() decimal.Decimal { return o.weight }
func (o *StrategicObjective) CreatedAt() time.Time    { return o.createdAt }
func (o *StrategicObjective) UpdatedAt() time.Time    { return o.updatedAt }

// Scope is the sibling set the objective belongs to.
func (o *StrategicObjective) Scope() weight.Scope {
	return weight.ObjectiveScope()
}

func (o *StrategicObjective) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("strategic objective ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("strategic objective ID cannot be zero")
	}
	o.id = id
	return nil
}
