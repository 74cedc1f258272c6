package usecases

import (
	"context"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/domain/access"
)

type ListOrganizationHierarchyExecutor interface {
	Execute(ctx context.Context) ([]*dto.OrganizationNodeDTO, error)
}

type GetOrganizationExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.OrganizationDTO, error)
}

type UpdateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type ChangeOrganizationParentExecutor interface {
	Execute(ctx context.Context, cmd ChangeParentCommand) (*dto.OrganizationDTO, error)
}

type ListMyOrganizationsExecutor interface {
	Execute(ctx context.Context, principal access.Principal) ([]*dto.MyOrganizationDTO, error)
}

type AddMembershipExecutor interface {
	Execute(ctx context.Context, cmd ManageMembershipCommand) (*dto.MembershipDTO, error)
}

type RemoveMembershipExecutor interface {
	Execute(ctx context.Context, cmd ManageMembershipCommand) error
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) ([]*dto.MembershipDTO, error)
}

var (
	_ ListOrganizationHierarchyExecutor = (*ListOrganizationHierarchyUseCase)(nil)
	_ GetOrganizationExecutor           = (*GetOrganizationUseCase)(nil)
	_ UpdateOrganizationExecutor        = (*UpdateOrganizationUseCase)(nil)
	_ ChangeOrganizationParentExecutor  = (*ChangeOrganizationParentUseCase)(nil)
	_ ListMyOrganizationsExecutor       = (*ListMyOrganizationsUseCase)(nil)
	_ AddMembershipExecutor             = (*AddMembershipUseCase)(nil)
	_ RemoveMembershipExecutor          = (*RemoveMembershipUseCase)(nil)
	_ ListMembersExecutor               = (*ListMembersUseCase)(nil)
)
