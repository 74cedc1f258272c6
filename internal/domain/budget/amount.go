package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/errors"
)

// MoneyScale is the number of fractional digits money amounts may carry.
const MoneyScale = 2

// Largest values the budget (decimal(12,2)) and costing (decimal(10,2))
// columns hold.
var (
	MaxBudgetAmount  = decimal.RequireFromString("9999999999.99")
	MaxCostingAmount = decimal.RequireFromString("99999999.99")
)

// validateAmount rejects negative values, values above max and values with
// more than MoneyScale fractional digits, so the stored amount is exactly
// the one that was checked.
func validateAmount(field string, v, max decimal.Decimal) error {
	switch {
	case v.IsNegative():
		return errors.NewValidationError(fmt.Sprintf("%s cannot be negative", field)).
			WithData("field", field)
	case v.GreaterThan(max):
		return errors.NewValidationError(fmt.Sprintf("%s cannot exceed %s", field, max.StringFixed(MoneyScale))).
			WithData("field", field)
	case !v.Equal(v.Truncate(MoneyScale)):
		return errors.NewValidationError(fmt.Sprintf("%s must have at most %d decimal places", field, MoneyScale)).
			WithData("field", field)
	}
	return nil
}
