package weight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/errors"
)

// QuotaExceededError rejects a write that would push the sibling total of a
// scope above its ceiling.
type QuotaExceededError struct {
	*errors.AppError
	Scope        Scope
	CurrentTotal decimal.Decimal
	Candidate    decimal.Decimal
	Ceiling      decimal.Decimal
}

func newQuotaExceededError(scope Scope, current, candidate, ceiling decimal.Decimal) *QuotaExceededError {
	next := current.Add(candidate)

	var msg string
	switch scope.Kind {
	case KindProgram:
		msg = fmt.Sprintf("Total weight of programs (%s%%) cannot exceed objective weight (%s%%)", next, ceiling)
	case KindSubProgram:
		msg = fmt.Sprintf("Total weight of subprograms (%s%%) cannot exceed program weight (%s%%)", next, ceiling)
	default:
		msg = fmt.Sprintf("Total weight of %s (%s%%) cannot exceed %s%%", scope.Kind.label(), next, ceiling)
	}

	appErr := errors.NewValidationError(msg).
		WithData("current_total", current.String()).
		WithData("candidate", candidate.String()).
		WithData("ceiling", ceiling.String())

	return &QuotaExceededError{
		AppError:     appErr,
		Scope:        scope,
		CurrentTotal: current,
		Candidate:    candidate,
		Ceiling:      ceiling,
	}
}

// newChildrenExceedError rejects lowering a parent weight below the total
// its children already hold.
func newChildrenExceedError(scope Scope, childrenTotal, newCeiling decimal.Decimal) *QuotaExceededError {
	parent := "objective"
	if scope.Kind == KindSubProgram {
		parent = "program"
	}
	msg := fmt.Sprintf("Cannot set %s weight to %s%%: its %s already total %s%%",
		parent, newCeiling, scope.Kind.label(), childrenTotal)

	appErr := errors.NewValidationError(msg).
		WithData("current_total", childrenTotal.String()).
		WithData("ceiling", newCeiling.String())

	return &QuotaExceededError{
		AppError:     appErr,
		Scope:        scope,
		CurrentTotal: childrenTotal,
		Candidate:    decimal.Zero,
		Ceiling:      newCeiling,
	}
}

func (e *QuotaExceededError) Error() string {
	return e.AppError.Error()
}

func (e *QuotaExceededError) Unwrap() error {
	return e.AppError
}
