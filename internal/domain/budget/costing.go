package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/biztime"
)

// CostingKey identifies a costing assumption.
type CostingKey struct {
	ActivityType ActivityType
	Location     Location
	CostType     CostType
}

func (k CostingKey) Validate() error {
	if !k.ActivityType.IsValid() {
		return fmt.Errorf("invalid activity type %q", k.ActivityType)
	}
	if !k.Location.IsValid() {
		return fmt.Errorf("invalid location %q", k.Location)
	}
	if !k.CostType.IsValid() {
		return fmt.Errorf("invalid cost type %q", k.CostType)
	}
	return nil
}

// CostingAssumption is a reference unit cost used by the budgeting tools.
type CostingAssumption struct {
	id          uint
	key         CostingKey
	amount      decimal.Decimal
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCostingAssumption(key CostingKey, amount decimal.Decimal, description string) (*CostingAssumption, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	c := &CostingAssumption{key: key}
	if err := c.SetAmount(amount, description); err != nil {
		return nil, err
	}
	c.createdAt = c.updatedAt
	return c, nil
}

func ReconstructCostingAssumption(id uint, key CostingKey, amount decimal.Decimal, description string, createdAt, updatedAt time.Time) (*CostingAssumption, error) {
	if id == 0 {
		return nil, fmt.Errorf("costing assumption ID cannot be zero")
	}
	return &CostingAssumption{
		id:          id,
		key:         key,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// SetAmount replaces the amount and description.
func (c *CostingAssumption) SetAmount(amount decimal.Decimal, description string) error {
	if err := validateAmount("amount", amount, MaxCostingAmount); err != nil {
		return err
	}
	c.amount = amount
	c.description = description
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *CostingAssumption) ID() uint                { return c.id }
func (c *CostingAssumption) Key() CostingKey         { return c.key }
func (c *CostingAssumption) Amount() decimal.Decimal { return c.amount }
func (c *CostingAssumption) Description() string     { return c.description }
func (c *CostingAssumption) CreatedAt() time.Time    { return c.createdAt }
func (c *CostingAssumption) UpdatedAt() time.Time    { return c.updatedAt }

func (c *CostingAssumption) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("costing assumption ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("costing assumption ID cannot be zero")
	}
	c.id = id
	return nil
}
