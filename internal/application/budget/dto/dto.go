package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/budget"
)

type CostingAssumptionDTO struct {
	ID           uint            `json:"id"`
	ActivityType string          `json:"activity_type"`
	Location     string          `json:"location"`
	CostType     string          `json:"cost_type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ImportResultDTO summarizes a costing seed import.
type ImportResultDTO struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func ToCostingAssumptionDTO(c *budget.CostingAssumption) *CostingAssumptionDTO {
	if c == nil {
		return nil
	}
	key := c.Key()
	return &CostingAssumptionDTO{
		ID:           c.ID(),
		ActivityType: key.ActivityType.String(),
		Location:     key.Location.String(),
		CostType:     key.CostType.String(),
		Amount:       c.Amount(),
		Description:  c.Description(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func ToCostingAssumptionDTOs(items []*budget.CostingAssumption) []*CostingAssumptionDTO {
	out := make([]*CostingAssumptionDTO, 0, len(items))
	for _, c := range items {
		out = append(out, ToCostingAssumptionDTO(c))
	}
	return out
}
