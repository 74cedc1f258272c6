package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/errors"
)

// FundingExceededError rejects a budget whose funding sources add up to
// more than its estimated cost.
type FundingExceededError struct {
	*errors.AppError
	TotalFunding  decimal.Decimal
	EstimatedCost decimal.Decimal
}

func newFundingExceededError(total, cost decimal.Decimal) *FundingExceededError {
	appErr := errors.NewValidationError(
		fmt.Sprintf("Total funding (%s) cannot exceed estimated cost (%s)", total.StringFixed(2), cost.StringFixed(2)),
	).
		WithData("total_funding", total.StringFixed(2)).
		WithData("estimated_cost", cost.StringFixed(2))

	return &FundingExceededError{
		AppError:      appErr,
		TotalFunding:  total,
		EstimatedCost: cost,
	}
}

func (e *FundingExceededError) Error() string {
	return e.AppError.Error()
}

func (e *FundingExceededError) Unwrap() error {
	return e.AppError
}
