package handlers

import (
	"context"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/application/organization/usecases"
	"stratplan/internal/domain/access"
)

// Use case interfaces for OrganizationHandler

type listOrganizationHierarchyUseCase interface {
	Execute(ctx context.Context) ([]*dto.OrganizationNodeDTO, error)
}

type getOrganizationUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.OrganizationDTO, error)
}

type updateOrganizationUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type changeOrganizationParentUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeParentCommand) (*dto.OrganizationDTO, error)
}

type listMyOrganizationsUseCase interface {
	Execute(ctx context.Context, principal access.Principal) ([]*dto.MyOrganizationDTO, error)
}

type addMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.ManageMembershipCommand) (*dto.MembershipDTO, error)
}

type removeMembershipUseCase interface {
	Execute(ctx context.Context, cmd usecases.ManageMembershipCommand) error
}

type listMembersUseCase interface {
	Execute(ctx context.Context, query usecases.ListMembersQuery) ([]*dto.MembershipDTO, error)
}
