package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/logger"
)

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)     {}
func (m *mockLogger) Info(msg string, args ...any)      {}
func (m *mockLogger) Warn(msg string, args ...any)      {}
func (m *mockLogger) Error(msg string, args ...any)     {}
func (m *mockLogger) Fatal(msg string, args ...any)     {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

type mockAuthorizer struct {
	AuthorizeFunc func(ctx context.Context, principal access.Principal, action access.Action, organizationID uint) error
}

func (m *mockAuthorizer) Authorize(ctx context.Context, principal access.Principal, action access.Action, organizationID uint) error {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, principal, action, organizationID)
	}
	return nil
}

// mockTransactor runs fn inline and counts the transactions opened.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockWeightRepository struct {
	SiblingWeightsFunc func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error)
	ParentWeightFunc   func(ctx context.Context, scope weight.Scope) (decimal.Decimal, error)
}

func (m *mockWeightRepository) SiblingWeights(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
	if m.SiblingWeightsFunc != nil {
		return m.SiblingWeightsFunc(ctx, scope, excludingID)
	}
	return nil, nil
}

func (m *mockWeightRepository) ParentWeight(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
	if m.ParentWeightFunc != nil {
		return m.ParentWeightFunc(ctx, scope)
	}
	return decimal.NewFromInt(100), nil
}

type mockObjectiveRepository struct {
	CreateFunc  func(ctx context.Context, o *hierarchy.StrategicObjective) error
	UpdateFunc  func(ctx context.Context, o *hierarchy.StrategicObjective) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error)
	ListFunc    func(ctx context.Context) ([]*hierarchy.StrategicObjective, error)
}

func (m *mockObjectiveRepository) Create(ctx context.Context, o *hierarchy.StrategicObjective) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return o.SetID(1)
}

func (m *mockObjectiveRepository) Update(ctx context.Context, o *hierarchy.StrategicObjective) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockObjectiveRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockObjectiveRepository) GetByID(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockObjectiveRepository) List(ctx context.Context) ([]*hierarchy.StrategicObjective, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockProgramRepository struct {
	CreateFunc          func(ctx context.Context, p *hierarchy.Program) error
	UpdateFunc          func(ctx context.Context, p *hierarchy.Program) error
	GetByIDFunc         func(ctx context.Context, id uint) (*hierarchy.Program, error)
	ListByObjectiveFunc func(ctx context.Context, objectiveID uint) ([]*hierarchy.Program, error)
}

func (m *mockProgramRepository) Create(ctx context.Context, p *hierarchy.Program) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return p.SetID(1)
}

func (m *mockProgramRepository) Update(ctx context.Context, p *hierarchy.Program) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProgramRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockProgramRepository) GetByID(ctx context.Context, id uint) (*hierarchy.Program, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProgramRepository) ListByObjective(ctx context.Context, objectiveID uint) ([]*hierarchy.Program, error) {
	if m.ListByObjectiveFunc != nil {
		return m.ListByObjectiveFunc(ctx, objectiveID)
	}
	return nil, nil
}

type mockInitiativeRepository struct {
	CreateFunc  func(ctx context.Context, i *hierarchy.StrategicInitiative) error
	UpdateFunc  func(ctx context.Context, i *hierarchy.StrategicInitiative) error
	GetByIDFunc func(ctx context.Context, id uint) (*hierarchy.StrategicInitiative, error)
}

func (m *mockInitiativeRepository) Create(ctx context.Context, i *hierarchy.StrategicInitiative) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return i.SetID(1)
}

func (m *mockInitiativeRepository) Update(ctx context.Context, i *hierarchy.StrategicInitiative) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockInitiativeRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockInitiativeRepository) GetByID(ctx context.Context, id uint) (*hierarchy.StrategicInitiative, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInitiativeRepository) List(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*hierarchy.StrategicInitiative, error) {
	return nil, nil
}

type mockMeasureRepository struct {
	CreateFunc           func(ctx context.Context, m *hierarchy.PerformanceMeasure) error
	ListByInitiativeFunc func(ctx context.Context, initiativeID uint) ([]*hierarchy.PerformanceMeasure, error)
}

func (m *mockMeasureRepository) Create(ctx context.Context, pm *hierarchy.PerformanceMeasure) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pm)
	}
	return pm.SetID(1)
}

func (m *mockMeasureRepository) Update(ctx context.Context, pm *hierarchy.PerformanceMeasure) error {
	return nil
}

func (m *mockMeasureRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockMeasureRepository) GetByID(ctx context.Context, id uint) (*hierarchy.PerformanceMeasure, error) {
	return nil, nil
}

func (m *mockMeasureRepository) ListByInitiative(ctx context.Context, initiativeID uint) ([]*hierarchy.PerformanceMeasure, error) {
	if m.ListByInitiativeFunc != nil {
		return m.ListByInitiativeFunc(ctx, initiativeID)
	}
	return nil, nil
}

type mockActivityRepository struct {
	CreateFunc           func(ctx context.Context, a *hierarchy.MainActivity) error
	UpdateFunc           func(ctx context.Context, a *hierarchy.MainActivity) error
	DeleteFunc           func(ctx context.Context, id uint) error
	GetByIDFunc          func(ctx context.Context, id uint) (*hierarchy.MainActivity, error)
	ListByInitiativeFunc func(ctx context.Context, initiativeID uint) ([]*hierarchy.MainActivity, error)
}

func (m *mockActivityRepository) Create(ctx context.Context, a *hierarchy.MainActivity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockActivityRepository) Update(ctx context.Context, a *hierarchy.MainActivity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockActivityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, id uint) (*hierarchy.MainActivity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockActivityRepository) ListByInitiative(ctx context.Context, initiativeID uint) ([]*hierarchy.MainActivity, error) {
	if m.ListByInitiativeFunc != nil {
		return m.ListByInitiativeFunc(ctx, initiativeID)
	}
	return nil, nil
}

type mockBudgetRepository struct {
	ListByActivityIDsFunc func(ctx context.Context, ids []uint) (map[uint]*budget.ActivityBudget, error)
}

func (m *mockBudgetRepository) Create(ctx context.Context, b *budget.ActivityBudget) error {
	return nil
}

func (m *mockBudgetRepository) Update(ctx context.Context, b *budget.ActivityBudget) error {
	return nil
}

func (m *mockBudgetRepository) GetByActivityID(ctx context.Context, activityID uint) (*budget.ActivityBudget, error) {
	return nil, nil
}

func (m *mockBudgetRepository) ListByActivityIDs(ctx context.Context, ids []uint) (map[uint]*budget.ActivityBudget, error) {
	if m.ListByActivityIDsFunc != nil {
		return m.ListByActivityIDsFunc(ctx, ids)
	}
	return map[uint]*budget.ActivityBudget{}, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func siblings(weights ...string) []weight.Sibling {
	out := make([]weight.Sibling, 0, len(weights))
	for i, w := range weights {
		out = append(out, weight.Sibling{ID: uint(i + 100), Weight: d(w)})
	}
	return out
}

func newTestWriter(auth *mockAuthorizer, tx *mockTransactor, weights *mockWeightRepository) *NodeWriter {
	return NewNodeWriter(auth, tx, weights, &mockLogger{})
}

var planner = access.Principal{UserID: 7, Username: "planner"}
