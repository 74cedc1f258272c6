package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanStatus_Transitions(t *testing.T) {
	tests := []struct {
		from PlanStatus
		to   PlanStatus
		want bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusDraft, StatusApproved, false},
		{StatusSubmitted, StatusApproved, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusSubmitted, StatusDraft, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusDraft, false},
		{StatusRejected, StatusSubmitted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPlanStatus_Terminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
}

func TestPlanStatus_Active(t *testing.T) {
	assert.True(t, StatusSubmitted.IsActive())
	assert.True(t, StatusApproved.IsActive())
	assert.False(t, StatusDraft.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, PlanStatus("ARCHIVED").IsValid())
}

func TestReviewStatus_PlanStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, ReviewApproved.PlanStatus())
	assert.Equal(t, StatusRejected, ReviewRejected.PlanStatus())
}
