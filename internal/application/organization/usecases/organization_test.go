package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/errors"
)

var (
	adminUser   = access.Principal{UserID: 1, Username: "admin"}
	plannerUser = access.Principal{UserID: 2, Username: "planner"}
)

// fixture: ministry(10) -> state minister(11) -> executive(12); desk(20) is a separate root.
func fixture() (*mockOrganizationRepository, *mockMembershipRepository, *mockUserRepository) {
	orgs := newMockOrganizationRepository(
		org(10, "Ministry", organization.TypeMinister, nil),
		org(11, "State Ministry", organization.TypeStateMinister, uintPtr(10)),
		org(12, "Planning Executive", organization.TypeExecutive, uintPtr(11)),
		org(13, "Finance Executive", organization.TypeExecutive, uintPtr(11)),
		org(20, "Help Desk", organization.TypeDesk, nil),
	)
	members := &mockMembershipRepository{nextID: 500}
	members.rows = []access.Membership{
		{ID: 1, UserID: adminUser.UserID, OrganizationID: 11, Role: access.RoleAdmin},
		{ID: 2, UserID: plannerUser.UserID, OrganizationID: 11, Role: access.RolePlanner},
		{ID: 3, UserID: plannerUser.UserID, OrganizationID: 11, Role: access.RoleEvaluator},
		{ID: 4, UserID: plannerUser.UserID, OrganizationID: 20, Role: access.RolePlanner},
	}
	users := &mockUserRepository{users: map[uint]*user.User{
		adminUser.UserID:   person(adminUser.UserID, "admin", "", ""),
		plannerUser.UserID: person(plannerUser.UserID, "planner", "abebe", "KEBEDE"),
		3:                  person(3, "newcomer", "Sara", ""),
	}}
	return orgs, members, users
}

func TestListOrganizationHierarchyUseCase_Execute(t *testing.T) {
	orgs, _, _ := fixture()
	uc := NewListOrganizationHierarchyUseCase(orgs, bracketRenderer{}, &mockLogger{})

	forest, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, forest, 2)
	assert.Equal(t, "Ministry", forest[0].Name)
	assert.Equal(t, "Help Desk", forest[1].Name)

	require.Len(t, forest[0].Children, 1)
	state := forest[0].Children[0]
	require.Len(t, state.Children, 2)
	// same rank, ordered by name
	assert.Equal(t, "Finance Executive", state.Children[0].Name)
	assert.Equal(t, "Planning Executive", state.Children[1].Name)
	assert.NotNil(t, state.Children[0].Children)
}

func TestUpdateOrganizationUseCase_Execute(t *testing.T) {
	t.Run("admin updates profile", func(t *testing.T) {
		orgs, members, _ := fixture()
		uc := NewUpdateOrganizationUseCase(access.NewMembershipAuthorizer(members), orgs, bracketRenderer{}, &mockLogger{})

		vision := "Serve **all**"
		got, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
			Principal:      adminUser,
			OrganizationID: 11,
			Profile:        organization.Profile{Vision: &vision, CoreValues: []string{" Integrity ", ""}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Serve **all**", got.Vision)
		assert.Equal(t, "<p>Serve **all**</p>", got.VisionHTML)
		assert.Equal(t, "", got.MissionHTML)
		assert.Equal(t, []string{"Integrity"}, got.CoreValues)
		assert.Equal(t, 1, orgs.updates)
	})

	t.Run("admin of another organization is forbidden", func(t *testing.T) {
		orgs, members, _ := fixture()
		uc := NewUpdateOrganizationUseCase(access.NewMembershipAuthorizer(members), orgs, bracketRenderer{}, &mockLogger{})

		name := "Renamed"
		_, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
			Principal:      adminUser,
			OrganizationID: 10,
			Profile:        organization.Profile{Name: &name},
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, 0, orgs.updates)
	})

	t.Run("blank name", func(t *testing.T) {
		orgs, members, _ := fixture()
		uc := NewUpdateOrganizationUseCase(access.NewMembershipAuthorizer(members), orgs, bracketRenderer{}, &mockLogger{})

		blank := "  "
		_, err := uc.Execute(context.Background(), UpdateOrganizationCommand{
			Principal:      adminUser,
			OrganizationID: 11,
			Profile:        organization.Profile{Name: &blank},
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestChangeOrganizationParentUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		parentID *uint
		wantType errors.ErrorType
		wantRoot bool
		wantOnto uint
	}{
		{name: "move under another root", parentID: uintPtr(20), wantOnto: 20},
		{name: "detach to root", parentID: nil, wantRoot: true},
		{name: "under own descendant", parentID: uintPtr(12), wantType: errors.ErrorTypeValidation},
		{name: "under itself", parentID: uintPtr(11), wantType: errors.ErrorTypeValidation},
		{name: "missing parent", parentID: uintPtr(404), wantType: errors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orgs, members, _ := fixture()
			tx := &mockTransactor{}
			uc := NewChangeOrganizationParentUseCase(access.NewMembershipAuthorizer(members), tx, orgs, &mockLogger{})

			got, err := uc.Execute(context.Background(), ChangeParentCommand{
				Principal:      adminUser,
				OrganizationID: 11,
				ParentID:       tt.parentID,
			})

			assert.Equal(t, 1, tx.calls)
			if tt.wantType != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
				assert.Equal(t, 0, orgs.updates)
				return
			}
			require.NoError(t, err)
			if tt.wantRoot {
				assert.Nil(t, got.ParentID)
				return
			}
			require.NotNil(t, got.ParentID)
			assert.Equal(t, tt.wantOnto, *got.ParentID)
		})
	}
}

func TestListMyOrganizationsUseCase_Execute(t *testing.T) {
	orgs, members, _ := fixture()
	uc := NewListMyOrganizationsUseCase(members, orgs, bracketRenderer{}, &mockLogger{})

	got, err := uc.Execute(context.Background(), plannerUser)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(11), got[0].ID)
	assert.Equal(t, []string{"PLANNER", "EVALUATOR"}, got[0].Roles)
	assert.Equal(t, []string{"PLANNER"}, got[1].Roles)

	none, err := uc.Execute(context.Background(), access.Principal{UserID: 99})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCreateOrganizationUseCase_Execute(t *testing.T) {
	orgs, _, _ := fixture()
	uc := NewCreateOrganizationUseCase(orgs, &mockLogger{})

	got, err := uc.Execute(context.Background(), CreateOrganizationCommand{Name: "Records Desk", Type: "desk", ParentID: uintPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, "DESK", got.Type)
	assert.Equal(t, uint(12), *got.ParentID)

	_, err = uc.Execute(context.Background(), CreateOrganizationCommand{Name: "Nowhere", Type: "DESK", ParentID: uintPtr(404)})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), CreateOrganizationCommand{Name: "Odd", Type: "COUNCIL"})
	assert.True(t, errors.IsValidationError(err))
}

func TestAddMembershipUseCase_Execute(t *testing.T) {
	t.Run("admin grants role by username", func(t *testing.T) {
		orgs, members, users := fixture()
		grant := NewGrantMembershipUseCase(members, users, orgs, &mockLogger{})
		uc := NewAddMembershipUseCase(access.NewMembershipAuthorizer(members), grant)

		got, err := uc.Execute(context.Background(), ManageMembershipCommand{
			Principal: adminUser,
			Target:    MembershipTarget{Username: "newcomer", OrganizationID: 11, Role: "evaluator"},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(501), got.ID)
		assert.Equal(t, "EVALUATOR", got.Role)
		assert.Equal(t, "Sara", got.DisplayName)
	})

	t.Run("duplicate triple conflicts", func(t *testing.T) {
		orgs, members, users := fixture()
		grant := NewGrantMembershipUseCase(members, users, orgs, &mockLogger{})
		uc := NewAddMembershipUseCase(access.NewMembershipAuthorizer(members), grant)

		_, err := uc.Execute(context.Background(), ManageMembershipCommand{
			Principal: adminUser,
			Target:    MembershipTarget{UserID: plannerUser.UserID, OrganizationID: 11, Role: "PLANNER"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		orgs, members, users := fixture()
		grant := NewGrantMembershipUseCase(members, users, orgs, &mockLogger{})
		uc := NewAddMembershipUseCase(access.NewMembershipAuthorizer(members), grant)

		_, err := uc.Execute(context.Background(), ManageMembershipCommand{
			Principal: plannerUser,
			Target:    MembershipTarget{UserID: 3, OrganizationID: 11, Role: "PLANNER"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
		assert.Len(t, members.rows, 4)
	})

	t.Run("invalid role", func(t *testing.T) {
		orgs, members, users := fixture()
		grant := NewGrantMembershipUseCase(members, users, orgs, &mockLogger{})

		_, err := grant.Execute(context.Background(), MembershipTarget{UserID: 3, OrganizationID: 11, Role: "OWNER"})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown username", func(t *testing.T) {
		orgs, members, users := fixture()
		grant := NewGrantMembershipUseCase(members, users, orgs, &mockLogger{})

		_, err := grant.Execute(context.Background(), MembershipTarget{Username: "ghost", OrganizationID: 11, Role: "PLANNER"})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRemoveMembershipUseCase_Execute(t *testing.T) {
	_, members, users := fixture()
	uc := NewRemoveMembershipUseCase(access.NewMembershipAuthorizer(members), NewRevokeMembershipUseCase(members, users, &mockLogger{}))

	err := uc.Execute(context.Background(), ManageMembershipCommand{
		Principal: adminUser,
		Target:    MembershipTarget{UserID: plannerUser.UserID, OrganizationID: 11, Role: "EVALUATOR"},
	})
	require.NoError(t, err)
	assert.Len(t, members.rows, 3)

	err = uc.Execute(context.Background(), ManageMembershipCommand{
		Principal: adminUser,
		Target:    MembershipTarget{UserID: plannerUser.UserID, OrganizationID: 11, Role: "EVALUATOR"},
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListMembersUseCase_Execute(t *testing.T) {
	_, members, users := fixture()
	uc := NewListMembersUseCase(access.NewMembershipAuthorizer(members), members, users, &mockLogger{})

	got, err := uc.Execute(context.Background(), ListMembersQuery{Principal: adminUser, OrganizationID: 11})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Abebe Kebede", got[1].DisplayName)

	_, err = uc.Execute(context.Background(), ListMembersQuery{Principal: plannerUser, OrganizationID: 11})
	assert.True(t, errors.IsForbiddenError(err))
}
