package usecases

import (
	"context"
	"time"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type mockAuthorizer struct {
	AuthorizeFunc func(ctx context.Context, principal access.Principal, action access.Action, organizationID uint) error
}

func (m *mockAuthorizer) Authorize(ctx context.Context, principal access.Principal, action access.Action, organizationID uint) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, principal, action, organizationID)
	}
	return nil
}

type mockTransactor struct{}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockActivityRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*hierarchy.MainActivity, error)
}

func (m *mockActivityRepository) Create(ctx context.Context, a *hierarchy.MainActivity) error {
	return nil
}

func (m *mockActivityRepository) Update(ctx context.Context, a *hierarchy.MainActivity) error {
	return nil
}

func (m *mockActivityRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, id uint) (*hierarchy.MainActivity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	now := time.Now()
	return hierarchy.ReconstructMainActivity(id, 1, "Train staff", decimalFrom("10"), hierarchy.Period{Months: []string{"July"}}, now, now)
}

func (m *mockActivityRepository) ListByInitiative(ctx context.Context, initiativeID uint) ([]*hierarchy.MainActivity, error) {
	return nil, nil
}

// mockBudgetRepository keeps budgets in memory so get-or-create can be
// observed across calls.
type mockBudgetRepository struct {
	budgets map[uint]*budget.ActivityBudget
	nextID  uint
	creates int
	updates int
}

func newMockBudgetRepository() *mockBudgetRepository {
	return &mockBudgetRepository{budgets: map[uint]*budget.ActivityBudget{}, nextID: 1}
}

func (m *mockBudgetRepository) Create(ctx context.Context, b *budget.ActivityBudget) error {
	m.creates++
	if err := b.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.budgets[b.ActivityID()] = b
	return nil
}

func (m *mockBudgetRepository) Update(ctx context.Context, b *budget.ActivityBudget) error {
	m.updates++
	m.budgets[b.ActivityID()] = b
	return nil
}

func (m *mockBudgetRepository) GetByActivityID(ctx context.Context, activityID uint) (*budget.ActivityBudget, error) {
	b, ok := m.budgets[activityID]
	if !ok {
		return nil, errors.NewNotFoundError("activity budget not found")
	}
	return b, nil
}

func (m *mockBudgetRepository) ListByActivityIDs(ctx context.Context, ids []uint) (map[uint]*budget.ActivityBudget, error) {
	return m.budgets, nil
}

type mockCostingRepository struct {
	items    map[budget.CostingKey]*budget.CostingAssumption
	nextID   uint
	ListFunc func(ctx context.Context, filter budget.CostingFilter) ([]*budget.CostingAssumption, error)
}

func newMockCostingRepository() *mockCostingRepository {
	return &mockCostingRepository{items: map[budget.CostingKey]*budget.CostingAssumption{}, nextID: 1}
}

func (m *mockCostingRepository) Create(ctx context.Context, c *budget.CostingAssumption) error {
	if err := c.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.items[c.Key()] = c
	return nil
}

func (m *mockCostingRepository) Update(ctx context.Context, c *budget.CostingAssumption) error {
	m.items[c.Key()] = c
	return nil
}

func (m *mockCostingRepository) GetByKey(ctx context.Context, key budget.CostingKey) (*budget.CostingAssumption, error) {
	return m.items[key], nil
}

func (m *mockCostingRepository) List(ctx context.Context, filter budget.CostingFilter) ([]*budget.CostingAssumption, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	out := make([]*budget.CostingAssumption, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

var planner = access.Principal{UserID: 3, Username: "planner"}
