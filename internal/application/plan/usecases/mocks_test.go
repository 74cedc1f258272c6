package usecases

import (
	"context"
	"time"

	hierarchydto "stratplan/internal/application/hierarchy/dto"
	hierarchyusecases "stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/plan"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type mockLogger struct {
	WarnwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

type mockTransactor struct{}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// membershipTable serves memberships per user and authorizes with the real
// policy, so the use cases are exercised against the role table.
type membershipTable map[uint][]access.Membership

func (m membershipTable) ListByUser(ctx context.Context, userID uint) ([]access.Membership, error) {
	return m[userID], nil
}

func (m membershipTable) authorizer() access.Authorizer {
	return access.NewMembershipAuthorizer(m)
}

// mockPlanRepository keeps plans in memory.
type mockPlanRepository struct {
	plans    map[uint]*plan.Plan
	nextID   uint
	updates  int
	ListFunc func(ctx context.Context, q plan.Query) ([]*plan.Plan, error)
}

func newMockPlanRepository(plans ...*plan.Plan) *mockPlanRepository {
	m := &mockPlanRepository{plans: map[uint]*plan.Plan{}, nextID: 100}
	for _, p := range plans {
		m.plans[p.ID()] = p
	}
	return m
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if err := p.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.plans[p.ID()] = p
	return nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	m.updates++
	m.plans[p.ID()] = p
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	delete(m.plans, id)
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	p, ok := m.plans[id]
	if !ok {
		return nil, errors.NewNotFoundError("plan not found")
	}
	return p, nil
}

func (m *mockPlanRepository) List(ctx context.Context, q plan.Query) ([]*plan.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil
}

func (m *mockPlanRepository) FindActiveForObjective(ctx context.Context, organizationID, objectiveID, excludingPlanID uint) (*plan.Plan, error) {
	for _, p := range m.plans {
		obj := p.Scope().ObjectiveID
		if p.ID() == excludingPlanID || p.OrganizationID() != organizationID || obj == nil || *obj != objectiveID {
			continue
		}
		if p.Status().IsActive() {
			return p, nil
		}
	}
	return nil, nil
}

type mockReviewRepository struct {
	created  []*plan.Review
	ListFunc func(ctx context.Context, filter plan.ReviewFilter) ([]*plan.Review, error)
}

func (m *mockReviewRepository) Create(ctx context.Context, r *plan.Review) error {
	if err := r.SetID(uint(len(m.created) + 1)); err != nil {
		return err
	}
	m.created = append(m.created, r)
	return nil
}

func (m *mockReviewRepository) ListByPlan(ctx context.Context, planID uint) ([]*plan.Review, error) {
	var out []*plan.Review
	for _, r := range m.created {
		if r.PlanID() == planID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReviewRepository) List(ctx context.Context, filter plan.ReviewFilter) ([]*plan.Review, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return m.created, nil
}

type mockNotifier struct {
	sent []ReviewNotification
	err  error
}

func (m *mockNotifier) NotifyReviewed(ctx context.Context, n ReviewNotification) error {
	m.sent = append(m.sent, n)
	return m.err
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

type mockOrganizationRepository struct{}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	now := time.Now()
	return organization.ReconstructOrganization(id, "Ministry", organization.TypeMinister, nil, "", "", nil, now, now)
}

func (m *mockOrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	return nil, nil
}

func (m *mockOrganizationRepository) ListByIDs(ctx context.Context, ids []uint) ([]*organization.Organization, error) {
	return nil, nil
}

func (m *mockOrganizationRepository) PathToRoot(ctx context.Context, id uint) ([]uint, error) {
	return []uint{id}, nil
}

type passthroughRenderer struct{}

func (passthroughRenderer) Render(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

// mockNodeQuerier answers the calls the plan detail makes; the rest of the
// interface panics if reached.
type mockNodeQuerier struct {
	hierarchyusecases.NodeQuerier
	GetObjectiveFunc          func(ctx context.Context, id uint) (*hierarchydto.ObjectiveDTO, error)
	GetProgramFunc            func(ctx context.Context, id uint) (*hierarchydto.ProgramDTO, error)
	GetSubProgramFunc         func(ctx context.Context, id uint) (*hierarchydto.SubProgramDTO, error)
	ListInitiativesFunc       func(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*hierarchydto.InitiativeDTO, error)
	GetInitiativeCompleteFunc func(ctx context.Context, id uint) (*hierarchydto.InitiativeCompleteDTO, error)
}

func (m *mockNodeQuerier) GetObjective(ctx context.Context, id uint) (*hierarchydto.ObjectiveDTO, error) {
	return m.GetObjectiveFunc(ctx, id)
}

func (m *mockNodeQuerier) GetProgram(ctx context.Context, id uint) (*hierarchydto.ProgramDTO, error) {
	return m.GetProgramFunc(ctx, id)
}

func (m *mockNodeQuerier) GetSubProgram(ctx context.Context, id uint) (*hierarchydto.SubProgramDTO, error) {
	return m.GetSubProgramFunc(ctx, id)
}

func (m *mockNodeQuerier) ListInitiatives(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*hierarchydto.InitiativeDTO, error) {
	return m.ListInitiativesFunc(ctx, filter)
}

func (m *mockNodeQuerier) GetInitiativeComplete(ctx context.Context, id uint) (*hierarchydto.InitiativeCompleteDTO, error) {
	return m.GetInitiativeCompleteFunc(ctx, id)
}

// knownNodes resolves objectives, programs and subprograms whose id is in
// ids and reports the rest as not found.
func knownNodes(ids ...uint) *mockNodeQuerier {
	known := make(map[uint]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &mockNodeQuerier{
		GetObjectiveFunc: func(ctx context.Context, id uint) (*hierarchydto.ObjectiveDTO, error) {
			if !known[id] {
				return nil, errors.NewNotFoundError("strategic objective not found")
			}
			return &hierarchydto.ObjectiveDTO{ID: id}, nil
		},
		GetProgramFunc: func(ctx context.Context, id uint) (*hierarchydto.ProgramDTO, error) {
			if !known[id] {
				return nil, errors.NewNotFoundError("program not found")
			}
			return &hierarchydto.ProgramDTO{ID: id}, nil
		},
		GetSubProgramFunc: func(ctx context.Context, id uint) (*hierarchydto.SubProgramDTO, error) {
			if !known[id] {
				return nil, errors.NewNotFoundError("subprogram not found")
			}
			return &hierarchydto.SubProgramDTO{ID: id}, nil
		},
	}
}
