package access

import (
	"context"
	"fmt"

	"stratplan/internal/shared/errors"
)

type Action string

const (
	ActionNodeWrite          Action = "node.write"
	ActionBudgetWrite        Action = "budget.write"
	ActionObjectiveValidate  Action = "objective.validate"
	ActionPlanCreate         Action = "plan.create"
	ActionPlanSubmit         Action = "plan.submit"
	ActionPlanApprove        Action = "plan.approve"
	ActionPlanReject         Action = "plan.reject"
	ActionOrganizationUpdate Action = "organization.update"
	ActionMembershipManage   Action = "membership.manage"
	ActionCostingWrite       Action = "costing.write"
)

// Requirement is the single role an action needs. AnyOrganization actions
// touch the organization-independent strategy tree, so holding the role
// anywhere is enough.
type Requirement struct {
	Role            Role
	AnyOrganization bool
	deniedMessage   string
}

var requirements = map[Action]Requirement{
	ActionNodeWrite:          {RolePlanner, true, "Only planners can modify the strategic plan tree"},
	ActionBudgetWrite:        {RolePlanner, true, "Only planners can update activity budgets"},
	ActionObjectiveValidate:  {RolePlanner, true, "Only planners can validate strategic objectives"},
	ActionPlanCreate:         {RolePlanner, false, "Only planners can create plans"},
	ActionPlanSubmit:         {RolePlanner, false, "Only planners can submit plans"},
	ActionPlanApprove:        {RoleEvaluator, false, "Only evaluators can approve plans"},
	ActionPlanReject:         {RoleEvaluator, false, "Only evaluators can reject plans"},
	ActionOrganizationUpdate: {RoleAdmin, false, "Only admins can update the organization"},
	ActionMembershipManage:   {RoleAdmin, false, "Only admins can manage organization members"},
	ActionCostingWrite:       {RoleAdmin, true, "Only admins can change costing assumptions"},
}

// RequirementFor returns the role requirement of action.
func RequirementFor(action Action) (Requirement, bool) {
	r, ok := requirements[action]
	return r, ok
}

// Actions lists every guarded action.
func Actions() []Action {
	out := make([]Action, 0, len(requirements))
	for a := range requirements {
		out = append(out, a)
	}
	return out
}

// Allows is the policy itself: a pure function of the caller's memberships,
// the requirement and the target organization. Admin does not inherit the
// planner or evaluator guards.
func Allows(memberships []Membership, req Requirement, organizationID uint) bool {
	for _, m := range memberships {
		if m.Role != req.Role {
			continue
		}
		if req.AnyOrganization || m.OrganizationID == organizationID {
			return true
		}
	}
	return false
}

// Denied builds the forbidden error for action.
func Denied(action Action) error {
	if r, ok := requirements[action]; ok {
		return errors.NewForbiddenError(r.deniedMessage)
	}
	return errors.NewForbiddenError(fmt.Sprintf("action %q is not permitted", action))
}

// Authorizer gates guarded actions. organizationID is ignored for actions
// that only need the role in any organization.
type Authorizer interface {
	Authorize(ctx context.Context, principal Principal, action Action, organizationID uint) error
}

// MembershipReader loads the memberships of a user.
type MembershipReader interface {
	ListByUser(ctx context.Context, userID uint) ([]Membership, error)
}

// MembershipAuthorizer evaluates the policy against stored memberships.
type MembershipAuthorizer struct {
	memberships MembershipReader
}

func NewMembershipAuthorizer(memberships MembershipReader) *MembershipAuthorizer {
	return &MembershipAuthorizer{memberships: memberships}
}

func (a *MembershipAuthorizer) Authorize(ctx context.Context, principal Principal, action Action, organizationID uint) error {
	req, ok := RequirementFor(action)
	if !ok {
		return Denied(action)
	}

	memberships, err := a.memberships.ListByUser(ctx, principal.UserID)
	if err != nil {
		return err
	}

	if !Allows(memberships, req, organizationID) {
		return Denied(action)
	}
	return nil
}
