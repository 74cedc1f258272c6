package handlers

import (
	"context"

	"stratplan/internal/application/auth/dto"
	"stratplan/internal/application/auth/usecases"
	"stratplan/internal/domain/access"
)

// Use case interfaces for AuthHandler

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginDTO, error)
}

type checkSessionUseCase interface {
	Execute(ctx context.Context, principal access.Principal) (*dto.SessionDTO, error)
}
