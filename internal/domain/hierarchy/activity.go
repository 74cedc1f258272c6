package hierarchy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/biztime"
)

// Period is the set of months and quarters a main activity runs in.
type Period struct {
	Months   []string
	Quarters []string
}

// Normalize turns nil collections into empty ones and drops blank entries.
func (p Period) Normalize() Period {
	return Period{Months: compact(p.Months), Quarters: compact(p.Quarters)}
}

func (p Period) IsEmpty() bool {
	return len(p.Months) == 0 && len(p.Quarters) == 0
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MainActivity belongs to an initiative; activities of one initiative share
// a ceiling of 65.
type MainActivity struct {
	id           uint
	initiativeID uint
	name         string
	weight       decimal.Decimal
	period       Period
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMainActivity(initiativeID uint, name string, w decimal.Decimal, period Period) (*MainActivity, error) {
	if initiativeID == 0 {
		return nil, fmt.Errorf("initiative is required")
	}
	a := &MainActivity{initiativeID: initiativeID}
	if err := a.apply(name, w, period); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructMainActivity(id, initiativeID uint, name string, w decimal.Decimal, period Period, createdAt, updatedAt time.Time) (*MainActivity, error) {
	if id == 0 {
		return nil, fmt.Errorf("main activity ID cannot be zero")
	}
	return &MainActivity{
		id:           id,
		initiativeID: initiativeID,
		name:         name,
		weight:       w,
		period:       period.Normalize(),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *MainActivity) apply(name string, w decimal.Decimal, period Period) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	period = period.Normalize()
	if period.IsEmpty() {
		return fmt.Errorf("at least one month or quarter must be selected")
	}
	a.name = strings.TrimSpace(name)
	a.weight = w
	a.period = period
	return nil
}

func (a *MainActivity) Update(name string, w decimal.Decimal, period Period) error {
	if err := a.apply(name, w, period); err != nil {
		return err
	}
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *MainActivity) ID() uint                { return a.id }
func (a *MainActivity) InitiativeID() uint      { return a.initiativeID }
func (a *MainActivity) Name() string            { return a.name }
func (a *MainActivity) Weight() decimal.Decimal { return a.weight }
func (a *MainActivity) Period() Period          { return a.period }
func (a *MainActivity) CreatedAt() time.Time    { return a.createdAt }
func (a *MainActivity) UpdatedAt() time.Time    { return a.updatedAt }

func (a *MainActivity) Scope() weight.Scope {
	return weight.ActivityScope(a.initiativeID)
}

func (a *MainActivity) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("main activity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("main activity ID cannot be zero")
	}
	a.id = id
	return nil
}
