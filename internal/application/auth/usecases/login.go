package usecases

import (
	"context"
	"strings"

	"stratplan/internal/application/auth/dto"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

// TokenService issues bearer tokens for authenticated users.
type TokenService interface {
	Generate(userID uint, username string) (*TokenPair, error)
}

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokens         TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	// same answer for unknown users and wrong passwords
	if existing == nil || !existing.CheckPassword(cmd.Password, uc.passwordHasher) {
		uc.logger.Warnw("login failed", "username", username, "ip", cmd.IPAddress)
		return nil, errors.NewInvalidCredentialsError()
	}

	tokens, err := uc.tokens.Generate(existing.ID(), existing.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID())

	return &dto.LoginDTO{
		AccessToken: tokens.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   tokens.ExpiresIn,
		User:        dto.ToUserDTO(existing),
	}, nil
}
