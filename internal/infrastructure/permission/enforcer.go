package permission

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"stratplan/internal/domain/access"
	"stratplan/internal/shared/logger"
)

// Requests carry one membership of the caller at a time: the role it holds,
// the organization it holds it in and the organization being acted on.
// Policies are (role, scope, action) where scope is "any" or "own".
const modelText = `
[request_definition]
r = role, morg, torg, act

[policy_definition]
p = role, scope, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.role == p.role && r.act == p.act && (p.scope == "any" || r.morg == r.torg)
`

const (
	scopeAny = "any"
	scopeOwn = "own"
)

var _ access.Authorizer = (*Enforcer)(nil)

// Enforcer is the casbin implementation of access.Authorizer. The role to
// action matrix lives in the casbin_rule table; memberships are read from
// the membership store on every check so grants made elsewhere apply
// immediately.
type Enforcer struct {
	enforcer    *casbin.Enforcer
	memberships access.MembershipReader
	mu          sync.RWMutex
	logger      logger.Interface
}

func NewEnforcer(db *gorm.DB, memberships access.MembershipReader, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer:    enforcer,
		memberships: memberships,
		logger:      log.With("component", "permission.casbin"),
	}, nil
}

func (e *Enforcer) Authorize(ctx context.Context, principal access.Principal, action access.Action, organizationID uint) error {
	memberships, err := e.memberships.ListByUser(ctx, principal.UserID)
	if err != nil {
		return err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	target := orgKey(organizationID)
	for _, m := range memberships {
		allowed, err := e.enforcer.Enforce(m.Role.String(), orgKey(m.OrganizationID), target, string(action))
		if err != nil {
			e.logger.Errorw("permission check failed", "error", err, "user_id", principal.UserID, "action", action)
			return fmt.Errorf("permission check failed: %w", err)
		}
		if allowed {
			return nil
		}
	}

	return access.Denied(action)
}

// LoadPolicy re-reads the policy table.
func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

func orgKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
