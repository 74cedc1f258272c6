package plan

import (
	"stratplan/internal/domain/access"
	vo "stratplan/internal/domain/plan/valueobjects"
)

// Grant is one slice of plans a caller may see: plans in OrganizationIDs,
// optionally restricted to one planner and to some statuses.
type Grant struct {
	OrganizationIDs []uint
	PlannerID       *uint
	Statuses        []vo.PlanStatus
}

// ListFilter holds the optional filters of a plan listing.
type ListFilter struct {
	Status         *vo.PlanStatus
	OrganizationID *uint
}

// Query is a visibility-checked listing: the union of Grants, narrowed by
// the filter. No grants means no plans.
type Query struct {
	Grants []Grant
	Filter ListFilter
}

func (q Query) IsEmpty() bool {
	return len(q.Grants) == 0
}

// VisibleTo builds the listing query for a user. Admins see every plan of
// their organizations, planners their own plans in their planner
// organizations and evaluators the submitted plans of their organizations
// unless the filter names a status.
func VisibleTo(userID uint, memberships []access.Membership, filter ListFilter) Query {
	q := Query{Filter: filter}

	if orgs := access.OrganizationsWithRole(memberships, access.RoleAdmin); len(orgs) > 0 {
		q.Grants = append(q.Grants, Grant{OrganizationIDs: orgs})
	}

	if orgs := access.OrganizationsWithRole(memberships, access.RolePlanner); len(orgs) > 0 {
		planner := userID
		q.Grants = append(q.Grants, Grant{OrganizationIDs: orgs, PlannerID: &planner})
	}

	if orgs := access.OrganizationsWithRole(memberships, access.RoleEvaluator); len(orgs) > 0 {
		g := Grant{OrganizationIDs: orgs}
		if filter.Status == nil {
			g.Statuses = []vo.PlanStatus{vo.StatusSubmitted}
		}
		q.Grants = append(q.Grants, g)
	}

	return q
}

// CanView applies the same rules to a single plan.
func CanView(p *Plan, userID uint, memberships []access.Membership) bool {
	for _, m := range memberships {
		if m.OrganizationID != p.OrganizationID() {
			continue
		}
		switch m.Role {
		case access.RoleAdmin, access.RoleEvaluator:
			return true
		case access.RolePlanner:
			if p.IsOwnedBy(userID) {
				return true
			}
		}
	}
	return false
}
