package weight

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/shared/errors"
)

// MaxScale is the number of fractional digits a weight may carry.
const MaxScale = 2

// MaxWeight is the largest weight the storage column holds.
var MaxWeight = decimal.RequireFromString("999.99")

// Sibling is the persisted weight of one node in a scope.
type Sibling struct {
	ID     uint
	Weight decimal.Decimal
}

// Repository reads sibling weights from storage. Implementations must read
// inside the caller's transaction so the check and the write commit together.
type Repository interface {
	// SiblingWeights returns the nodes of scope, leaving out excludingID
	// (0 excludes nothing).
	SiblingWeights(ctx context.Context, scope Scope, excludingID uint) ([]Sibling, error)
	// ParentWeight returns the weight of the node a program or subprogram
	// scope hangs from.
	ParentWeight(ctx context.Context, scope Scope) (decimal.Decimal, error)
}

// Allocation describes an accepted candidate weight.
type Allocation struct {
	CurrentTotal decimal.Decimal
	Candidate    decimal.Decimal
	NewTotal     decimal.Decimal
	Ceiling      decimal.Decimal
	Bounded      bool
}

// Remaining is the weight still free after the allocation.
func (a *Allocation) Remaining() decimal.Decimal {
	if !a.Bounded {
		return decimal.Zero
	}
	return a.Ceiling.Sub(a.NewTotal)
}

// Summary is the read-side view of a scope. IsValid means the siblings
// reach the ceiling exactly.
type Summary struct {
	Scope     Scope
	Total     decimal.Decimal
	Ceiling   decimal.Decimal
	Remaining decimal.Decimal
	Bounded   bool
	IsValid   bool
	Count     int
}

// ValidateWeight rejects non-positive weights, weights above MaxWeight and
// weights with more than MaxScale fractional digits.
func ValidateWeight(w decimal.Decimal) error {
	if !w.IsPositive() {
		return errors.NewValidationError("Weight must be positive")
	}
	if w.GreaterThan(MaxWeight) {
		return errors.NewValidationError(fmt.Sprintf("Weight cannot exceed %s", MaxWeight)).
			WithData("max_weight", MaxWeight.String())
	}
	if !w.Equal(w.Truncate(MaxScale)) {
		return errors.NewValidationError(fmt.Sprintf("Weight must have at most %d decimal places", MaxScale))
	}
	return nil
}

// Total sums sibling weights.
func Total(siblings []Sibling) decimal.Decimal {
	total := decimal.Zero
	for _, s := range siblings {
		total = total.Add(s.Weight)
	}
	return total
}

// Check admits candidate into a scope whose other members are siblings.
// Exactly reaching the ceiling is allowed; exceeding it is not.
func Check(scope Scope, siblings []Sibling, candidate, ceiling decimal.Decimal) (*Allocation, error) {
	if err := ValidateWeight(candidate); err != nil {
		return nil, err
	}

	current := Total(siblings)
	next := current.Add(candidate)

	if scope.IsBounded() && next.GreaterThan(ceiling) {
		return nil, newQuotaExceededError(scope, current, candidate, ceiling)
	}

	return &Allocation{
		CurrentTotal: current,
		Candidate:    candidate,
		NewTotal:     next,
		Ceiling:      ceiling,
		Bounded:      scope.IsBounded(),
	}, nil
}

// Summarize builds the summary of a scope from its members.
func Summarize(scope Scope, siblings []Sibling, ceiling decimal.Decimal) *Summary {
	total := Total(siblings)
	s := &Summary{
		Scope:   scope,
		Total:   total,
		Bounded: scope.IsBounded(),
		Count:   len(siblings),
	}
	if s.Bounded {
		s.Ceiling = ceiling
		s.Remaining = ceiling.Sub(total)
		s.IsValid = total.Equal(ceiling)
	} else {
		s.IsValid = true
	}
	return s
}

// Ledger validates weights against persisted siblings. Totals are never
// cached; every call recomputes them from the repository.
type Ledger struct {
	repo Repository
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Ceiling resolves the ceiling of scope. Unbounded scopes yield zero.
func (l *Ledger) Ceiling(ctx context.Context, scope Scope) (decimal.Decimal, error) {
	if err := scope.Validate(); err != nil {
		return decimal.Zero, errors.NewValidationError(err.Error())
	}
	if fixed, ok := scope.FixedCeiling(); ok {
		return fixed, nil
	}
	if scope.HasParentCeiling() {
		return l.repo.ParentWeight(ctx, scope)
	}
	return decimal.Zero, nil
}

// ValidateQuota checks candidate against the siblings of scope, leaving out
// excludingID so an update does not count its own previous weight.
func (l *Ledger) ValidateQuota(ctx context.Context, scope Scope, candidate decimal.Decimal, excludingID uint) (*Allocation, error) {
	if err := ValidateWeight(candidate); err != nil {
		return nil, err
	}

	ceiling, err := l.Ceiling(ctx, scope)
	if err != nil {
		return nil, err
	}

	siblings, err := l.repo.SiblingWeights(ctx, scope, excludingID)
	if err != nil {
		return nil, err
	}

	return Check(scope, siblings, candidate, ceiling)
}

// ValidateChildren checks that the nodes already stored in scope still fit
// under newCeiling, the weight their parent is about to take. Only scopes
// whose ceiling is the parent weight are affected.
func (l *Ledger) ValidateChildren(ctx context.Context, scope Scope, newCeiling decimal.Decimal) error {
	if !scope.HasParentCeiling() {
		return nil
	}
	if err := scope.Validate(); err != nil {
		return errors.NewValidationError(err.Error())
	}

	children, err := l.repo.SiblingWeights(ctx, scope, 0)
	if err != nil {
		return err
	}
	if total := Total(children); total.GreaterThan(newCeiling) {
		return newChildrenExceedError(scope, total, newCeiling)
	}
	return nil
}

// Summary computes the current totals of scope.
func (l *Ledger) Summary(ctx context.Context, scope Scope) (*Summary, error) {
	ceiling, err := l.Ceiling(ctx, scope)
	if err != nil {
		return nil, err
	}

	siblings, err := l.repo.SiblingWeights(ctx, scope, 0)
	if err != nil {
		return nil, err
	}

	return Summarize(scope, siblings, ceiling), nil
}
