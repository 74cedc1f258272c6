package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/application/plan/dto"
	"stratplan/internal/application/plan/usecases"
	"stratplan/internal/interfaces/http/handlers/testutil"
	"stratplan/internal/shared/errors"
)

func validPlanRequest() PlanRequest {
	objective := uint(2)
	return PlanRequest{
		OrganizationID: 10,
		Type:           "LEO/EO Plan",
		ExecutiveName:  "Dr. Abebe",
		ObjectiveID:    &objective,
		FiscalYear:     "2017",
		FromDate:       "2024-07-08",
		ToDate:         "2025-07-07",
	}
}

func TestPlanHandler_Create(t *testing.T) {
	createUC := &mockExec[usecases.CreatePlanCommand, *dto.PlanDTO]{result: &dto.PlanDTO{ID: 1, Status: "DRAFT"}}
	handler := NewPlanHandler(PlanUseCases{Create: createUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/plans", validPlanRequest())
	testutil.SetAuthContext(c, 7, "planner")
	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(10), createUC.got.OrganizationID)
	assert.Equal(t, "2024-07-08", createUC.got.Input.FromDate)
	require.NotNil(t, createUC.got.Input.ObjectiveID)
	assert.Equal(t, uint(2), *createUC.got.Input.ObjectiveID)
}

func TestPlanHandler_Create_MissingFields(t *testing.T) {
	createUC := &mockExec[usecases.CreatePlanCommand, *dto.PlanDTO]{}
	handler := NewPlanHandler(PlanUseCases{Create: createUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/plans", map[string]string{"type": "LEO/EO Plan"})
	testutil.SetAuthContext(c, 7, "planner")
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, createUC.called)
}

func TestPlanHandler_Submit_Conflict(t *testing.T) {
	submitUC := &mockExec[usecases.SubmitPlanCommand, *dto.PlanDTO]{
		err: errors.NewConflictError("a plan for this objective is already under review"),
	}
	handler := NewPlanHandler(PlanUseCases{Submit: submitUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/plans/3/submit", nil)
	testutil.SetAuthContext(c, 7, "planner")
	testutil.SetURLParam(c, "id", "3")
	handler.Submit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, uint(3), submitUC.got.PlanID)
}

func TestPlanHandler_ApproveWithoutBody(t *testing.T) {
	approveUC := &mockExec[usecases.ReviewPlanCommand, *dto.PlanDTO]{result: &dto.PlanDTO{ID: 3, Status: "APPROVED"}}
	handler := NewPlanHandler(PlanUseCases{Approve: approveUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/plans/3/approve", nil)
	testutil.SetAuthContext(c, 9, "evaluator")
	testutil.SetURLParam(c, "id", "3")
	handler.Approve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", approveUC.got.Feedback)
	assert.Equal(t, uint(9), approveUC.got.Principal.UserID)
}

func TestPlanHandler_RejectForwardsFeedback(t *testing.T) {
	rejectUC := &mockExec[usecases.ReviewPlanCommand, *dto.PlanDTO]{result: &dto.PlanDTO{ID: 3, Status: "REJECTED"}}
	handler := NewPlanHandler(PlanUseCases{Reject: rejectUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/plans/3/reject", ReviewRequest{Feedback: "Targets are **too low**"})
	testutil.SetAuthContext(c, 9, "evaluator")
	testutil.SetURLParam(c, "id", "3")
	handler.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Targets are **too low**", rejectUC.got.Feedback)
}

func TestPlanHandler_Get_InvalidID(t *testing.T) {
	detailUC := &mockExec[usecases.GetPlanQuery, *dto.PlanDetailDTO]{}
	handler := NewPlanHandler(PlanUseCases{GetDetail: detailUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans/x", nil)
	testutil.SetAuthContext(c, 7, "planner")
	testutil.SetURLParam(c, "id", "x")
	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, detailUC.called)
}

func TestPlanHandler_List_Filters(t *testing.T) {
	listUC := &mockExec[usecases.ListPlansQuery, []*dto.PlanDTO]{result: []*dto.PlanDTO{}}
	handler := NewPlanHandler(PlanUseCases{List: listUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plans", nil)
	testutil.SetAuthContext(c, 9, "evaluator")
	testutil.SetQueryParams(c, map[string]string{"status": "SUBMITTED", "organization": "10"})
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUBMITTED", listUC.got.Status)
	require.NotNil(t, listUC.got.OrganizationID)
	assert.Equal(t, uint(10), *listUC.got.OrganizationID)
}

func TestPlanHandler_ListReviews(t *testing.T) {
	reviewsUC := &mockExec[usecases.ListReviewsQuery, []*dto.ReviewDTO]{result: []*dto.ReviewDTO{{ID: 1, FeedbackHTML: "<p>ok</p>"}}}
	handler := NewPlanHandler(PlanUseCases{ListReviews: reviewsUC}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/plan-reviews", nil)
	testutil.SetAuthContext(c, 7, "planner")
	testutil.SetQueryParams(c, map[string]string{"plan": "3"})
	handler.ListReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, reviewsUC.got.PlanID)
	assert.Equal(t, uint(3), *reviewsUC.got.PlanID)
}
