package usecases

import (
	"context"
	"fmt"
	"time"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/user"
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

type mockTransactor struct{ calls int }

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockOrganizationRepository struct {
	orgs    map[uint]*organization.Organization
	nextID  uint
	updates int
}

func newMockOrganizationRepository(orgs ...*organization.Organization) *mockOrganizationRepository {
	m := &mockOrganizationRepository{orgs: map[uint]*organization.Organization{}, nextID: 100}
	for _, o := range orgs {
		m.orgs[o.ID()] = o
	}
	return m
}

func (m *mockOrganizationRepository) Create(ctx context.Context, org *organization.Organization) error {
	if err := org.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.orgs[org.ID()] = org
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	m.updates++
	m.orgs[org.ID()] = org
	return nil
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	delete(m.orgs, id)
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return o, nil
}

func (m *mockOrganizationRepository) List(ctx context.Context) ([]*organization.Organization, error) {
	out := make([]*organization.Organization, 0, len(m.orgs))
	for _, o := range m.orgs {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockOrganizationRepository) ListByIDs(ctx context.Context, ids []uint) ([]*organization.Organization, error) {
	var out []*organization.Organization
	for _, id := range ids {
		if o, ok := m.orgs[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrganizationRepository) PathToRoot(ctx context.Context, id uint) ([]uint, error) {
	var path []uint
	for cur := &id; cur != nil; {
		o, ok := m.orgs[*cur]
		if !ok {
			return nil, errors.NewNotFoundError("organization not found")
		}
		path = append(path, o.ID())
		cur = o.ParentID()
	}
	return path, nil
}

type mockMembershipRepository struct {
	rows   []access.Membership
	nextID uint
}

func (m *mockMembershipRepository) ListByUser(ctx context.Context, userID uint) ([]access.Membership, error) {
	var out []access.Membership
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMembershipRepository) Create(ctx context.Context, membership *access.Membership) error {
	for _, r := range m.rows {
		if r.UserID == membership.UserID && r.OrganizationID == membership.OrganizationID && r.Role == membership.Role {
			return errors.NewConflictError("membership already exists")
		}
	}
	m.nextID++
	membership.ID = m.nextID
	m.rows = append(m.rows, *membership)
	return nil
}

func (m *mockMembershipRepository) Delete(ctx context.Context, userID, organizationID uint, role access.Role) error {
	for i, r := range m.rows {
		if r.UserID == userID && r.OrganizationID == organizationID && r.Role == role {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("membership not found")
}

func (m *mockMembershipRepository) GetByID(ctx context.Context, id uint) (*access.Membership, error) {
	for _, r := range m.rows {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, errors.NewNotFoundError("membership not found")
}

func (m *mockMembershipRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]access.Membership, error) {
	var out []access.Membership
	for _, r := range m.rows {
		if r.OrganizationID == organizationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMembershipRepository) ListAll(ctx context.Context) ([]access.Membership, error) {
	return m.rows, nil
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type bracketRenderer struct{}

func (bracketRenderer) Render(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	return fmt.Sprintf("<p>%s</p>", markdown), nil
}

func org(id uint, name string, t organization.Type, parent *uint) *organization.Organization {
	now := time.Now()
	o, err := organization.ReconstructOrganization(id, name, t, parent, "", "", nil, now, now)
	if err != nil {
		panic(err)
	}
	return o
}

func person(id uint, username, first, last string) *user.User {
	now := time.Now()
	u, err := user.ReconstructUser(id, username, first, last, "", "hash", now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func uintPtr(v uint) *uint { return &v }
