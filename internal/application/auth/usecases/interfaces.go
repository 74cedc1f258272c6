package usecases

import (
	"context"

	"stratplan/internal/application/auth/dto"
	"stratplan/internal/domain/access"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error)
}

type CheckSessionExecutor interface {
	Execute(ctx context.Context, principal access.Principal) (*dto.SessionDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}

var (
	_ LoginExecutor        = (*LoginUseCase)(nil)
	_ CheckSessionExecutor = (*CheckSessionUseCase)(nil)
	_ CreateUserExecutor   = (*CreateUserUseCase)(nil)
)
