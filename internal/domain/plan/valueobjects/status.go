package valueobjects

type PlanStatus string

const (
	StatusDraft     PlanStatus = "DRAFT"
	StatusSubmitted PlanStatus = "SUBMITTED"
	StatusApproved  PlanStatus = "APPROVED"
	StatusRejected  PlanStatus = "REJECTED"
)

var validPlanStatuses = map[PlanStatus]bool{
	StatusDraft:     true,
	StatusSubmitted: true,
	StatusApproved:  true,
	StatusRejected:  true,
}

// Approved and Rejected are terminal.
var planStatusTransitions = map[PlanStatus][]PlanStatus{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
}

func (s PlanStatus) String() string {
	return string(s)
}

func (s PlanStatus) IsValid() bool {
	return validPlanStatuses[s]
}

func (s PlanStatus) IsTerminal() bool {
	return len(planStatusTransitions[s]) == 0
}

// IsActive reports whether the plan blocks another submission for the
// same organization and objective.
func (s PlanStatus) IsActive() bool {
	return s == StatusSubmitted || s == StatusApproved
}

func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	for _, allowed := range planStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ActiveStatuses are the statuses that occupy an (organization, objective) slot.
func ActiveStatuses() []PlanStatus {
	return []PlanStatus{StatusSubmitted, StatusApproved}
}

type PlanType string

const (
	TypeLeadExecutive PlanType = "LEAD_EXECUTIVE"
	TypeTeamDesk      PlanType = "TEAM_DESK"
	TypeIndividual    PlanType = "INDIVIDUAL"
)

func (t PlanType) IsValid() bool {
	switch t {
	case TypeLeadExecutive, TypeTeamDesk, TypeIndividual:
		return true
	}
	return false
}

func (t PlanType) String() string {
	return string(t)
}

type ReviewStatus string

const (
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

func (r ReviewStatus) IsValid() bool {
	return r == ReviewApproved || r == ReviewRejected
}

func (r ReviewStatus) String() string {
	return string(r)
}

// PlanStatus is the plan status a review of this kind leads to.
func (r ReviewStatus) PlanStatus() PlanStatus {
	if r == ReviewApproved {
		return StatusApproved
	}
	return StatusRejected
}
