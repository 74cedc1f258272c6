package organization

import "context"

type Repository interface {
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	// Delete removes the organization and detaches its children.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
	ListByIDs(ctx context.Context, ids []uint) ([]*Organization, error)
	// PathToRoot returns id followed by its ancestors up to the root.
	PathToRoot(ctx context.Context, id uint) ([]uint, error)
}
