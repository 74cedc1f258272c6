// Package access decides whether a principal may perform an action, based
// solely on its organization memberships.
package access

import "time"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RolePlanner   Role = "PLANNER"
	RoleEvaluator Role = "EVALUATOR"
)

var validRoles = map[Role]bool{
	RoleAdmin:     true,
	RolePlanner:   true,
	RoleEvaluator: true,
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) String() string {
	return string(r)
}

// Membership grants a user one role in one organization. Memberships are
// never edited; revoking deletes them.
type Membership struct {
	ID             uint
	UserID         uint
	OrganizationID uint
	Role           Role
	CreatedAt      time.Time
}

// Principal is the authenticated caller.
type Principal struct {
	UserID   uint
	Username string
}

// OrganizationsWithRole lists the organizations where role is held, in
// membership order and without duplicates.
func OrganizationsWithRole(memberships []Membership, role Role) []uint {
	seen := make(map[uint]bool)
	var out []uint
	for _, m := range memberships {
		if m.Role == role && !seen[m.OrganizationID] {
			seen[m.OrganizationID] = true
			out = append(out, m.OrganizationID)
		}
	}
	return out
}

// FindMembership returns the first membership holding role in organizationID.
func FindMembership(memberships []Membership, role Role, organizationID uint) (Membership, bool) {
	for _, m := range memberships {
		if m.Role == role && m.OrganizationID == organizationID {
			return m, true
		}
	}
	return Membership{}, false
}

// HasRole reports whether role is held in any organization.
func HasRole(memberships []Membership, role Role) bool {
	for _, m := range memberships {
		if m.Role == role {
			return true
		}
	}
	return false
}
