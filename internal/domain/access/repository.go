package access

import "context"

// MembershipRepository stores memberships. Create returns a conflict
// AppError when the (user, organization, role) triple already exists.
type MembershipRepository interface {
	MembershipReader
	Create(ctx context.Context, membership *Membership) error
	Delete(ctx context.Context, userID, organizationID uint, role Role) error
	GetByID(ctx context.Context, id uint) (*Membership, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]Membership, error)
	ListAll(ctx context.Context) ([]Membership, error)
}
