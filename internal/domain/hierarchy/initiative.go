package hierarchy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/biztime"
)

// StrategicInitiative hangs from exactly one objective, program or
// subprogram. Its siblings have no common ceiling.
type StrategicInitiative struct {
	id        uint
	name      string
	weight    decimal.Decimal
	parent    InitiativeParent
	createdAt time.Time
	updatedAt time.Time
}

func NewStrategicInitiative(parent InitiativeParent, name string, w decimal.Decimal) (*StrategicInitiative, error) {
	if err := parent.validate(); err != nil {
		return nil, err
	}
	i := &StrategicInitiative{parent: parent}
	if err := i.apply(name, w); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	i.createdAt = now
	i.updatedAt = now
	return i, nil
}

func ReconstructStrategicInitiative(id uint, parent InitiativeParent, name string, w decimal.Decimal, createdAt, updatedAt time.Time) (*StrategicInitiative, error) {
	if id == 0 {
		return nil, fmt.Errorf("strategic initiative ID cannot be zero")
	}
	if err := parent.validate(); err != nil {
		return nil, fmt.Errorf("strategic initiative %d: %w", id, err)
	}
	return &StrategicInitiative{
		id:        id,
		name:      name,
		weight:    w,
		parent:    parent,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (i *StrategicInitiative) apply(name string, w decimal.Decimal) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	i.name = strings.TrimSpace(name)
	i.weight = w
	return nil
}

// Update replaces name and weight. A zero parent keeps the current one.
func (i *StrategicInitiative) Update(parent InitiativeParent, name string, w decimal.Decimal) error {
	if !parent.IsZero() {
		if err := parent.validate(); err != nil {
			return err
		}
	}
	if err := i.apply(name, w); err != nil {
		return err
	}
	if !parent.IsZero() {
		i.parent = parent
	}
	i.updatedAt = biztime.NowUTC()
	return nil
}

func (i *StrategicInitiative) ID() uint                 { return i.id }
func (i *StrategicInitiative) Name() string             { return i.name }
func (i *StrategicInitiative) Weight() decimal.Decimal  { return i.weight }
func (i *StrategicInitiative) Parent() InitiativeParent { return i.parent }
func (i *StrategicInitiative) CreatedAt() time.Time     { return i.createdAt }
func (i *StrategicInitiative) UpdatedAt() time.Time     { return i.updatedAt }

func (i *StrategicInitiative) Scope() weight.Scope {
	return weight.InitiativeScope(i.parent.Kind(), i.parent.ID())
}

func (i *StrategicInitiative) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("strategic initiative ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("strategic initiative ID cannot be zero")
	}
	i.id = id
	return nil
}
