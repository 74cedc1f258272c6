package usecases

import (
	"context"
	"fmt"
	"strings"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/biztime"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

// MembershipTarget names the (user, organization, role) triple. The user is
// given by id or, when the id is zero, by username.
type MembershipTarget struct {
	UserID         uint
	Username       string
	OrganizationID uint
	Role           string
}

func (t MembershipTarget) role() (access.Role, error) {
	role := access.Role(strings.ToUpper(strings.TrimSpace(t.Role)))
	if !role.IsValid() {
		return "", errors.NewValidationError(fmt.Sprintf("invalid role %q", t.Role))
	}
	return role, nil
}

func resolveUser(ctx context.Context, users user.Repository, t MembershipTarget) (*user.User, error) {
	if t.UserID != 0 {
		return users.GetByID(ctx, t.UserID)
	}
	if t.Username == "" {
		return nil, errors.NewValidationError("user is required")
	}
	u, err := users.GetByUsername(ctx, t.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found", t.Username)
	}
	return u, nil
}

// GrantMembershipUseCase stores a membership without an authorization
// check. The CLI calls it directly; requests go through AddMembershipUseCase.
type GrantMembershipUseCase struct {
	membershipRepo access.MembershipRepository
	userRepo       user.Repository
	orgRepo        organization.Repository
	logger         logger.Interface
}

func NewGrantMembershipUseCase(
	membershipRepo access.MembershipRepository,
	userRepo user.Repository,
	orgRepo organization.Repository,
	logger logger.Interface,
) *GrantMembershipUseCase {
	return &GrantMembershipUseCase{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		logger:         logger,
	}
}

func (uc *GrantMembershipUseCase) Execute(ctx context.Context, target MembershipTarget) (*dto.MembershipDTO, error) {
	role, err := target.role()
	if err != nil {
		return nil, err
	}
	u, err := resolveUser(ctx, uc.userRepo, target)
	if err != nil {
		return nil, err
	}
	if _, err := uc.orgRepo.GetByID(ctx, target.OrganizationID); err != nil {
		return nil, err
	}

	m := &access.Membership{
		UserID:         u.ID(),
		OrganizationID: target.OrganizationID,
		Role:           role,
		CreatedAt:      biztime.NowUTC(),
	}
	if err := uc.membershipRepo.Create(ctx, m); err != nil {
		uc.logger.Warnw("failed to grant membership",
			"user_id", u.ID(),
			"organization_id", target.OrganizationID,
			"role", role.String(),
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("membership granted", "membership_id", m.ID, "user_id", u.ID(), "organization_id", m.OrganizationID, "role", role.String())
	return dto.ToMembershipDTO(*m, u), nil
}

// RevokeMembershipUseCase deletes a membership. CLI path, unchecked.
type RevokeMembershipUseCase struct {
	membershipRepo access.MembershipRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewRevokeMembershipUseCase(membershipRepo access.MembershipRepository, userRepo user.Repository, logger logger.Interface) *RevokeMembershipUseCase {
	return &RevokeMembershipUseCase{membershipRepo: membershipRepo, userRepo: userRepo, logger: logger}
}

func (uc *RevokeMembershipUseCase) Execute(ctx context.Context, target MembershipTarget) error {
	role, err := target.role()
	if err != nil {
		return err
	}
	u, err := resolveUser(ctx, uc.userRepo, target)
	if err != nil {
		return err
	}
	if err := uc.membershipRepo.Delete(ctx, u.ID(), target.OrganizationID, role); err != nil {
		return err
	}
	uc.logger.Infow("membership revoked", "user_id", u.ID(), "organization_id", target.OrganizationID, "role", role.String())
	return nil
}

type ManageMembershipCommand struct {
	Principal access.Principal
	Target    MembershipTarget
}

// AddMembershipUseCase lets an admin of the organization grant a role in it.
type AddMembershipUseCase struct {
	authorizer access.Authorizer
	grant      *GrantMembershipUseCase
}

func NewAddMembershipUseCase(authorizer access.Authorizer, grant *GrantMembershipUseCase) *AddMembershipUseCase {
	return &AddMembershipUseCase{authorizer: authorizer, grant: grant}
}

func (uc *AddMembershipUseCase) Execute(ctx context.Context, cmd ManageMembershipCommand) (*dto.MembershipDTO, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionMembershipManage, cmd.Target.OrganizationID); err != nil {
		return nil, err
	}
	return uc.grant.Execute(ctx, cmd.Target)
}

type RemoveMembershipUseCase struct {
	authorizer access.Authorizer
	revoke     *RevokeMembershipUseCase
}

func NewRemoveMembershipUseCase(authorizer access.Authorizer, revoke *RevokeMembershipUseCase) *RemoveMembershipUseCase {
	return &RemoveMembershipUseCase{authorizer: authorizer, revoke: revoke}
}

func (uc *RemoveMembershipUseCase) Execute(ctx context.Context, cmd ManageMembershipCommand) error {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionMembershipManage, cmd.Target.OrganizationID); err != nil {
		return err
	}
	return uc.revoke.Execute(ctx, cmd.Target)
}

type ListMembersQuery struct {
	Principal      access.Principal
	OrganizationID uint
}

// ListMembersUseCase shows an organization's memberships to its admins.
type ListMembersUseCase struct {
	authorizer     access.Authorizer
	membershipRepo access.MembershipRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewListMembersUseCase(
	authorizer access.Authorizer,
	membershipRepo access.MembershipRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		authorizer:     authorizer,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) ([]*dto.MembershipDTO, error) {
	if err := uc.authorizer.Authorize(ctx, query.Principal, access.ActionMembershipManage, query.OrganizationID); err != nil {
		return nil, err
	}

	memberships, err := uc.membershipRepo.ListByOrganization(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to list members", "organization_id", query.OrganizationID, "error", err)
		return nil, err
	}

	ids := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}
	users, err := uc.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}

	out := make([]*dto.MembershipDTO, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, dto.ToMembershipDTO(m, byID[m.UserID]))
	}
	return out, nil
}
