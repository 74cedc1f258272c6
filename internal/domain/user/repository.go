package user

import "context"

type Repository interface {
	// Create returns a conflict AppError when the username is taken.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByUsername returns nil, nil when no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
	ListByIDs(ctx context.Context, ids []uint) ([]*User, error)
}
