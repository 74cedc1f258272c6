package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/domain/access"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func validDetails() Details {
	from := time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC)
	return Details{
		Type:       vo.TypeLeadExecutive,
		Scope:      Scope{ObjectiveID: uintPtr(1)},
		FiscalYear: "2024",
		FromDate:   from,
		ToDate:     from.AddDate(1, 0, -1),
	}
}

func newStoredPlan(t *testing.T, status vo.PlanStatus) *Plan {
	t.Helper()
	now := time.Now().UTC()
	p, err := ReconstructPlan(5, 10, 7, "Abebe", validDetails(), status, nil, now, now)
	require.NoError(t, err)
	return p
}

func TestNewPlan_Validation(t *testing.T) {
	p, err := NewPlan(10, 7, "Abebe", validDetails())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusDraft, p.Status())
	assert.Nil(t, p.SubmittedAt())

	noScope := validDetails()
	noScope.Scope = Scope{}
	_, err = NewPlan(10, 7, "Abebe", noScope)
	assert.True(t, errors.IsValidationError(err))

	sameDay := validDetails()
	sameDay.ToDate = sameDay.FromDate
	_, err = NewPlan(10, 7, "Abebe", sameDay)
	assert.EqualError(t, err, "validation_error: End date must be after start date")

	badType := validDetails()
	badType.Type = "TEAM"
	_, err = NewPlan(10, 7, "Abebe", badType)
	assert.Error(t, err)

	programOnly := validDetails()
	programOnly.Scope = Scope{ProgramID: uintPtr(4)}
	_, err = NewPlan(10, 7, "Abebe", programOnly)
	assert.NoError(t, err)
}

func TestPlan_Submit(t *testing.T) {
	p := newStoredPlan(t, vo.StatusDraft)
	now := time.Now().UTC()

	require.NoError(t, p.Submit(now))
	assert.Equal(t, vo.StatusSubmitted, p.Status())
	require.NotNil(t, p.SubmittedAt())
	assert.Equal(t, now, *p.SubmittedAt())

	err := p.Submit(now)
	assert.True(t, errors.IsConflictError(err))
}

func TestPlan_Approve(t *testing.T) {
	p := newStoredPlan(t, vo.StatusSubmitted)
	now := time.Now().UTC()

	review, err := p.Approve(3, "", now)
	require.NoError(t, err)
	assert.Equal(t, vo.ReviewApproved, review.Status())
	assert.Equal(t, uint(5), review.PlanID())
	assert.Equal(t, uint(3), review.EvaluatorID())
	assert.Equal(t, vo.StatusApproved, p.Status())

	_, err = p.Approve(3, "", now)
	assert.True(t, errors.IsConflictError(err))
}

func TestPlan_Reject(t *testing.T) {
	now := time.Now().UTC()

	t.Run("feedback is required before anything else", func(t *testing.T) {
		for _, status := range []vo.PlanStatus{vo.StatusSubmitted, vo.StatusDraft, vo.StatusApproved} {
			p := newStoredPlan(t, status)
			_, err := p.Reject(3, "  ", now)
			assert.True(t, errors.IsValidationError(err), status)
			assert.Equal(t, status, p.Status())
		}
	})

	t.Run("draft cannot be rejected", func(t *testing.T) {
		p := newStoredPlan(t, vo.StatusDraft)
		_, err := p.Reject(3, "incomplete", now)
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, vo.StatusDraft, p.Status())
	})

	t.Run("submitted plan is rejected", func(t *testing.T) {
		p := newStoredPlan(t, vo.StatusSubmitted)
		review, err := p.Reject(3, "incomplete", now)
		require.NoError(t, err)
		assert.Equal(t, "incomplete", review.Feedback())
		assert.Equal(t, vo.StatusRejected, p.Status())
	})
}

func TestPlan_TerminalStatesHaveNoExits(t *testing.T) {
	now := time.Now().UTC()
	for _, status := range []vo.PlanStatus{vo.StatusApproved, vo.StatusRejected} {
		p := newStoredPlan(t, status)
		assert.Error(t, p.Submit(now))
		_, err := p.Approve(1, "", now)
		assert.Error(t, err)
		_, err = p.Reject(1, "x", now)
		assert.Error(t, err)
		assert.Error(t, p.UpdateDetails(validDetails()))
		assert.Error(t, p.EnsureDeletable())
		assert.Equal(t, status, p.Status())
	}
}

func TestVisibleTo(t *testing.T) {
	memberships := []access.Membership{
		{OrganizationID: 1, Role: access.RoleAdmin},
		{OrganizationID: 2, Role: access.RolePlanner},
		{OrganizationID: 3, Role: access.RoleEvaluator},
	}

	q := VisibleTo(7, memberships, ListFilter{})
	require.Len(t, q.Grants, 3)
	assert.Equal(t, []uint{1}, q.Grants[0].OrganizationIDs)
	assert.Nil(t, q.Grants[0].PlannerID)
	assert.Equal(t, uint(7), *q.Grants[1].PlannerID)
	assert.Equal(t, []vo.PlanStatus{vo.StatusSubmitted}, q.Grants[2].Statuses)

	approved := vo.StatusApproved
	q = VisibleTo(7, memberships, ListFilter{Status: &approved})
	assert.Empty(t, q.Grants[2].Statuses)

	assert.True(t, VisibleTo(7, nil, ListFilter{}).IsEmpty())
}

func TestCanView(t *testing.T) {
	p := newStoredPlan(t, vo.StatusDraft)

	assert.True(t, CanView(p, 7, []access.Membership{{OrganizationID: 10, Role: access.RolePlanner}}))
	assert.False(t, CanView(p, 8, []access.Membership{{OrganizationID: 10, Role: access.RolePlanner}}))
	assert.True(t, CanView(p, 8, []access.Membership{{OrganizationID: 10, Role: access.RoleAdmin}}))
	assert.False(t, CanView(p, 8, []access.Membership{{OrganizationID: 11, Role: access.RoleAdmin}}))
	assert.False(t, CanView(p, 8, nil))
}
