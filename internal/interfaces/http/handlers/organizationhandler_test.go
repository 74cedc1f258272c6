package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/application/organization/usecases"
	"stratplan/internal/domain/access"
	"stratplan/internal/interfaces/http/handlers/testutil"
	"stratplan/internal/shared/errors"
)

func TestOrganizationHandler_Update(t *testing.T) {
	updateUC := &mockExec[usecases.UpdateOrganizationCommand, *dto.OrganizationDTO]{result: &dto.OrganizationDTO{ID: 10}}
	handler := NewOrganizationHandler(OrganizationUseCases{Update: updateUC}, testutil.NewMockLogger())

	c, w := testutil.NewRawTestContext(http.MethodPatch, "/api/organizations/10",
		`{"vision":"Healthy *people*","core_values":["Integrity","Equity"]}`)
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetURLParam(c, "id", "10")
	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(10), updateUC.got.OrganizationID)
	require.NotNil(t, updateUC.got.Profile.Vision)
	assert.Equal(t, "Healthy *people*", *updateUC.got.Profile.Vision)
	assert.Nil(t, updateUC.got.Profile.Name)
	assert.Equal(t, []string{"Integrity", "Equity"}, updateUC.got.Profile.CoreValues)
}

func TestOrganizationHandler_Update_Forbidden(t *testing.T) {
	updateUC := &mockExec[usecases.UpdateOrganizationCommand, *dto.OrganizationDTO]{
		err: errors.NewForbiddenError("Only admins can update the organization"),
	}
	handler := NewOrganizationHandler(OrganizationUseCases{Update: updateUC}, testutil.NewMockLogger())

	c, w := testutil.NewRawTestContext(http.MethodPatch, "/api/organizations/10", `{"mission":"m"}`)
	testutil.SetAuthContext(c, 7, "planner")
	testutil.SetURLParam(c, "id", "10")
	handler.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrganizationHandler_ListMine(t *testing.T) {
	mineUC := &mockExec[access.Principal, []*dto.MyOrganizationDTO]{result: []*dto.MyOrganizationDTO{}}
	handler := NewOrganizationHandler(OrganizationUseCases{ListMine: mineUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/mine", nil)
	testutil.SetAuthContext(c, 7, "planner")
	handler.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "planner", mineUC.got.Username)
}

func TestOrganizationHandler_AddMember(t *testing.T) {
	addUC := &mockExec[usecases.ManageMembershipCommand, *dto.MembershipDTO]{result: &dto.MembershipDTO{}}
	handler := NewOrganizationHandler(OrganizationUseCases{AddMembership: addUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/organizations/10/members", MembershipRequest{Username: "selam", Role: "EVALUATOR"})
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetURLParam(c, "id", "10")
	handler.AddMember(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.MembershipTarget{Username: "selam", OrganizationID: 10, Role: "EVALUATOR"}, addUC.got.Target)
}

func TestOrganizationHandler_AddMember_UnknownRole(t *testing.T) {
	addUC := &mockExec[usecases.ManageMembershipCommand, *dto.MembershipDTO]{}
	handler := NewOrganizationHandler(OrganizationUseCases{AddMembership: addUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/organizations/10/members", MembershipRequest{Username: "selam", Role: "OWNER"})
	testutil.SetAuthContext(c, 1, "admin")
	testutil.SetURLParam(c, "id", "10")
	handler.AddMember(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, addUC.called)
}

func TestOrganizationHandler_ListHierarchy(t *testing.T) {
	listUC := listHierarchyStub{nodes: []*dto.OrganizationNodeDTO{{}}}
	handler := NewOrganizationHandler(OrganizationUseCases{ListHierarchy: listUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/organizations/hierarchy", nil)
	handler.ListHierarchy(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
