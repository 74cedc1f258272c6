package usecases

import (
	"context"

	"stratplan/internal/application/auth/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

// CheckSessionUseCase reports the authenticated caller and its memberships.
type CheckSessionUseCase struct {
	userRepo    user.Repository
	memberships access.MembershipReader
	logger      logger.Interface
}

func NewCheckSessionUseCase(userRepo user.Repository, memberships access.MembershipReader, logger logger.Interface) *CheckSessionUseCase {
	return &CheckSessionUseCase{userRepo: userRepo, memberships: memberships, logger: logger}
}

func (uc *CheckSessionUseCase) Execute(ctx context.Context, principal access.Principal) (*dto.SessionDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// token outlived its user
			return nil, errors.NewTokenInvalidError("access token")
		}
		return nil, err
	}

	memberships, err := uc.memberships.ListByUser(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to load memberships", "user_id", u.ID(), "error", err)
		return nil, err
	}

	return &dto.SessionDTO{
		IsAuthenticated: true,
		User:            dto.ToUserDTO(u),
		Memberships:     dto.ToMembershipDTOs(memberships),
	}, nil
}

type CreateUserCommand struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateUserUseCase registers an account. Accounts are provisioned by
// operators through the CLI; there is no self sign-up.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, passwordHasher: hasher, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("username already exists", cmd.Username)
	}

	u, err := user.NewUser(cmd.Username, cmd.FirstName, cmd.LastName, cmd.Email, cmd.Password, uc.passwordHasher)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "username", u.Username())
	return dto.ToUserDTO(u), nil
}
