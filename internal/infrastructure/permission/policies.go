package permission

import (
	"fmt"
	"sort"

	"stratplan/internal/domain/access"
)

// DefaultPolicies derives the casbin rules from the access requirements.
func DefaultPolicies() [][]string {
	actions := access.Actions()
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	policies := make([][]string, 0, len(actions))
	for _, a := range actions {
		req, _ := access.RequirementFor(a)
		scope := scopeOwn
		if req.AnyOrganization {
			scope = scopeAny
		}
		policies = append(policies, []string{req.Role.String(), scope, string(a)})
	}
	return policies
}

// SyncPolicies stores every default rule that is missing from the policy
// table. Extra rules added by operators are left alone.
func (e *Enforcer) SyncPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range DefaultPolicies() {
		has, err := e.enforcer.HasPolicy(policy)
		if err != nil {
			return fmt.Errorf("failed to check policy %v: %w", policy, err)
		}
		if has {
			continue
		}
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"scope", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", policy[0], policy[1], policy[2], err)
		}
		added++
	}

	if added > 0 {
		e.logger.Infow("synced permission policies to casbin", "count", added)
	}
	return nil
}
