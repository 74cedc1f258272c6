package budget

import (
	"github.com/shopspring/decimal"
)

// Reconciliation is the derived money view of a valid budget.
type Reconciliation struct {
	TotalFunding  decimal.Decimal
	EstimatedCost decimal.Decimal
	FundingGap    decimal.Decimal
}

// ValidateFunding rejects amounts the money columns cannot hold exactly and
// funding above the estimated cost. Funding equal to the cost is allowed.
func ValidateFunding(b *ActivityBudget) (*Reconciliation, error) {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"estimated_cost_with_tool", b.costWithTool},
		{"estimated_cost_without_tool", b.costWithoutTool},
		{"government_treasury", b.funding.GovernmentTreasury},
		{"sdg_funding", b.funding.SDG},
		{"partners_funding", b.funding.Partners},
		{"other_funding", b.funding.Other},
	}
	for _, a := range amounts {
		if err := validateAmount(a.field, a.value, MaxBudgetAmount); err != nil {
			return nil, err
		}
	}

	total := b.TotalFunding()
	cost := b.EstimatedCost()
	if total.GreaterThan(cost) {
		return nil, newFundingExceededError(total, cost)
	}

	return &Reconciliation{
		TotalFunding:  total,
		EstimatedCost: cost,
		FundingGap:    cost.Sub(total),
	}, nil
}
