package usecases

import (
	"context"
	"strings"

	"stratplan/internal/application/organization/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/services/markdown"
)

// htmlOf renders markdown for DTOs, dropping the HTML when rendering fails.
func htmlOf(renderer markdown.Renderer, log logger.Interface) dto.HTMLFunc {
	return func(md string) string {
		html, err := renderer.Render(md)
		if err != nil {
			log.Warnw("failed to render organization markdown", "error", err)
			return ""
		}
		return html
	}
}

// ListOrganizationHierarchyUseCase returns every organization arranged as a
// forest of roots with nested children.
type ListOrganizationHierarchyUseCase struct {
	orgRepo  organization.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewListOrganizationHierarchyUseCase(orgRepo organization.Repository, renderer markdown.Renderer, logger logger.Interface) *ListOrganizationHierarchyUseCase {
	return &ListOrganizationHierarchyUseCase{orgRepo: orgRepo, renderer: renderer, logger: logger}
}

func (uc *ListOrganizationHierarchyUseCase) Execute(ctx context.Context) ([]*dto.OrganizationNodeDTO, error) {
	orgs, err := uc.orgRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list organizations", "error", err)
		return nil, err
	}
	return dto.ToOrganizationNodeDTOs(organization.BuildForest(orgs), htmlOf(uc.renderer, uc.logger)), nil
}

type GetOrganizationUseCase struct {
	orgRepo  organization.Repository
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewGetOrganizationUseCase(orgRepo organization.Repository, renderer markdown.Renderer, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{orgRepo: orgRepo, renderer: renderer, logger: logger}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, id uint) (*dto.OrganizationDTO, error) {
	org, err := uc.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToOrganizationDTO(org, htmlOf(uc.renderer, uc.logger)), nil
}

type CreateOrganizationCommand struct {
	Name     string
	Type     string
	ParentID *uint
}

// CreateOrganizationUseCase is the trusted path used by the CLI; requests
// never reach it.
type CreateOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewCreateOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if cmd.ParentID != nil && *cmd.ParentID != 0 {
		if _, err := uc.orgRepo.GetByID(ctx, *cmd.ParentID); err != nil {
			return nil, err
		}
	}

	org, err := organization.NewOrganization(cmd.Name, organization.Type(strings.ToUpper(cmd.Type)), cmd.ParentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.orgRepo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to create organization", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("organization created", "organization_id", org.ID(), "type", org.Type().String())
	return dto.ToOrganizationDTO(org, nil), nil
}

// DeleteOrganizationUseCase removes an organization; its children become
// roots. CLI only.
type DeleteOrganizationUseCase struct {
	orgRepo organization.Repository
	logger  logger.Interface
}

func NewDeleteOrganizationUseCase(orgRepo organization.Repository, logger logger.Interface) *DeleteOrganizationUseCase {
	return &DeleteOrganizationUseCase{orgRepo: orgRepo, logger: logger}
}

func (uc *DeleteOrganizationUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.orgRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.orgRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete organization", "organization_id", id, "error", err)
		return err
	}
	uc.logger.Infow("organization deleted", "organization_id", id)
	return nil
}

type UpdateOrganizationCommand struct {
	Principal      access.Principal
	OrganizationID uint
	Profile        organization.Profile
}

// UpdateOrganizationUseCase edits name, vision, mission and core values.
type UpdateOrganizationUseCase struct {
	authorizer access.Authorizer
	orgRepo    organization.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewUpdateOrganizationUseCase(
	authorizer access.Authorizer,
	orgRepo organization.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{
		authorizer: authorizer,
		orgRepo:    orgRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionOrganizationUpdate, cmd.OrganizationID); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}
	if err := org.UpdateProfile(cmd.Profile); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.orgRepo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization", "organization_id", org.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("organization updated", "organization_id", org.ID(), "user_id", cmd.Principal.UserID)
	return dto.ToOrganizationDTO(org, htmlOf(uc.renderer, uc.logger)), nil
}

type ChangeParentCommand struct {
	Principal      access.Principal
	OrganizationID uint
	// ParentID nil or zero makes the organization a root.
	ParentID *uint
}

// ChangeOrganizationParentUseCase re-parents an organization. Moving an
// organization under one of its own descendants is rejected.
type ChangeOrganizationParentUseCase struct {
	authorizer access.Authorizer
	txMgr      db.Transactor
	orgRepo    organization.Repository
	logger     logger.Interface
}

func NewChangeOrganizationParentUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	orgRepo organization.Repository,
	logger logger.Interface,
) *ChangeOrganizationParentUseCase {
	return &ChangeOrganizationParentUseCase{
		authorizer: authorizer,
		txMgr:      txMgr,
		orgRepo:    orgRepo,
		logger:     logger,
	}
}

func (uc *ChangeOrganizationParentUseCase) Execute(ctx context.Context, cmd ChangeParentCommand) (*dto.OrganizationDTO, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionOrganizationUpdate, cmd.OrganizationID); err != nil {
		return nil, err
	}

	var org *organization.Organization
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		org, err = uc.orgRepo.GetByID(ctx, cmd.OrganizationID)
		if err != nil {
			return err
		}

		var path []uint
		if cmd.ParentID != nil && *cmd.ParentID != 0 {
			if path, err = uc.orgRepo.PathToRoot(ctx, *cmd.ParentID); err != nil {
				return err
			}
		}
		if err := org.ChangeParent(cmd.ParentID, path); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.orgRepo.Update(ctx, org)
	})
	if err != nil {
		uc.logger.Warnw("organization parent change rejected", "organization_id", cmd.OrganizationID, "error", err)
		return nil, err
	}

	uc.logger.Infow("organization parent changed", "organization_id", org.ID())
	return dto.ToOrganizationDTO(org, nil), nil
}

// ListMyOrganizationsUseCase lists the organizations where the caller holds
// a membership, with the roles held in each.
type ListMyOrganizationsUseCase struct {
	memberships access.MembershipReader
	orgRepo     organization.Repository
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewListMyOrganizationsUseCase(
	memberships access.MembershipReader,
	orgRepo organization.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListMyOrganizationsUseCase {
	return &ListMyOrganizationsUseCase{
		memberships: memberships,
		orgRepo:     orgRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *ListMyOrganizationsUseCase) Execute(ctx context.Context, principal access.Principal) ([]*dto.MyOrganizationDTO, error) {
	memberships, err := uc.memberships.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []*dto.MyOrganizationDTO{}, nil
	}

	roles := make(map[uint][]string)
	var ids []uint
	for _, m := range memberships {
		if _, seen := roles[m.OrganizationID]; !seen {
			ids = append(ids, m.OrganizationID)
		}
		roles[m.OrganizationID] = append(roles[m.OrganizationID], m.Role.String())
	}

	orgs, err := uc.orgRepo.ListByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load caller organizations", "user_id", principal.UserID, "error", err)
		return nil, err
	}

	html := htmlOf(uc.renderer, uc.logger)
	out := make([]*dto.MyOrganizationDTO, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, &dto.MyOrganizationDTO{
			OrganizationDTO: *dto.ToOrganizationDTO(o, html),
			Roles:           roles[o.ID()],
		})
	}
	return out, nil
}
