package plan

import (
	"fmt"
	"strings"

	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/shared/errors"
)

func newTransitionError(action string, current vo.PlanStatus) *errors.AppError {
	return errors.NewConflictError(
		fmt.Sprintf("Only %s plans can be %s", requiredStatusFor(action), action),
		fmt.Sprintf("current status: %s", current),
	).WithData("status", current.String())
}

func requiredStatusFor(action string) string {
	if action == "submitted" || action == "edited" || action == "deleted" {
		return strings.ToLower(string(vo.StatusDraft))
	}
	return strings.ToLower(string(vo.StatusSubmitted))
}

// NewDuplicateSubmissionError reports another active plan for the same
// organization and objective.
func NewDuplicateSubmissionError(organizationID, objectiveID, existingPlanID uint) *errors.AppError {
	return errors.NewConflictError(
		"A plan for this organization and strategic objective has already been submitted or approved",
	).
		WithData("organization_id", organizationID).
		WithData("strategic_objective_id", objectiveID).
		WithData("existing_plan_id", existingPlanID)
}
