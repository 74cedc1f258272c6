package usecases

import (
	"context"
	"fmt"
	"strings"

	hierarchyusecases "stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/application/plan/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/organization"
	"stratplan/internal/domain/plan"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/domain/user"
	"stratplan/internal/shared/biztime"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

// PlanInput holds the planner-editable fields as requests carry them.
// Dates use the YYYY-MM-DD layout.
type PlanInput struct {
	Type          string
	ExecutiveName string
	ObjectiveID   *uint
	ProgramID     *uint
	SubProgramID  *uint
	FiscalYear    string
	FromDate      string
	ToDate        string
}

func (in PlanInput) toDetails() (plan.Details, error) {
	from, err := biztime.ParseDate(in.FromDate)
	if err != nil {
		return plan.Details{}, errors.NewValidationError(fmt.Sprintf("invalid from_date %q", in.FromDate))
	}
	to, err := biztime.ParseDate(in.ToDate)
	if err != nil {
		return plan.Details{}, errors.NewValidationError(fmt.Sprintf("invalid to_date %q", in.ToDate))
	}
	return plan.Details{
		Type:          vo.PlanType(strings.ToUpper(strings.TrimSpace(in.Type))),
		ExecutiveName: strings.TrimSpace(in.ExecutiveName),
		Scope: plan.Scope{
			ObjectiveID:  in.ObjectiveID,
			ProgramID:    in.ProgramID,
			SubProgramID: in.SubProgramID,
		},
		FiscalYear: in.FiscalYear,
		FromDate:   from,
		ToDate:     to,
	}, nil
}

type CreatePlanCommand struct {
	Principal      access.Principal
	OrganizationID uint
	Input          PlanInput
}

// CreatePlanUseCase starts a draft plan. The planner name is taken from
// the caller's profile at creation time.
type CreatePlanUseCase struct {
	authorizer access.Authorizer
	planRepo   plan.PlanRepository
	userRepo   user.Repository
	orgRepo    organization.Repository
	nodes      hierarchyusecases.NodeQuerier
	logger     logger.Interface
}

func NewCreatePlanUseCase(
	authorizer access.Authorizer,
	planRepo plan.PlanRepository,
	userRepo user.Repository,
	orgRepo organization.Repository,
	nodes hierarchyusecases.NodeQuerier,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		authorizer: authorizer,
		planRepo:   planRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		nodes:      nodes,
		logger:     logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing create plan use case", "organization_id", cmd.OrganizationID, "user_id", cmd.Principal.UserID)

	if cmd.OrganizationID == 0 {
		return nil, errors.NewValidationError("organization is required")
	}
	if _, err := uc.orgRepo.GetByID(ctx, cmd.OrganizationID); err != nil {
		return nil, err
	}
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionPlanCreate, cmd.OrganizationID); err != nil {
		return nil, err
	}

	details, err := cmd.Input.toDetails()
	if err != nil {
		return nil, err
	}
	if err := ensureScopeExists(ctx, uc.nodes, details.Scope); err != nil {
		uc.logger.Warnw("plan scope not found", "error", err)
		return nil, err
	}

	caller, err := uc.userRepo.GetByID(ctx, cmd.Principal.UserID)
	if err != nil {
		return nil, err
	}

	p, err := plan.NewPlan(cmd.OrganizationID, caller.ID(), caller.PlannerName(), details)
	if err != nil {
		uc.logger.Warnw("invalid plan", "error", err)
		return nil, asValidation(err)
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to save plan", "error", err)
		return nil, err
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "organization_id", p.OrganizationID())
	return dto.ToPlanDTO(p), nil
}

type UpdatePlanCommand struct {
	Principal access.Principal
	PlanID    uint
	Input     PlanInput
}

// UpdatePlanUseCase edits a draft. Only the planner who created it may.
type UpdatePlanUseCase struct {
	authorizer access.Authorizer
	planRepo   plan.PlanRepository
	nodes      hierarchyusecases.NodeQuerier
	logger     logger.Interface
}

func NewUpdatePlanUseCase(
	authorizer access.Authorizer,
	planRepo plan.PlanRepository,
	nodes hierarchyusecases.NodeQuerier,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{authorizer: authorizer, planRepo: planRepo, nodes: nodes, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(ctx, uc.authorizer, cmd.Principal, p); err != nil {
		return nil, err
	}

	details, err := cmd.Input.toDetails()
	if err != nil {
		return nil, err
	}
	if err := ensureScopeExists(ctx, uc.nodes, details.Scope); err != nil {
		return nil, err
	}
	if err := p.UpdateDetails(details); err != nil {
		return nil, asValidation(err)
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "plan_id", p.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("plan updated", "plan_id", p.ID())
	return dto.ToPlanDTO(p), nil
}

type DeletePlanCommand struct {
	Principal access.Principal
	PlanID    uint
}

type DeletePlanUseCase struct {
	authorizer access.Authorizer
	planRepo   plan.PlanRepository
	logger     logger.Interface
}

func NewDeletePlanUseCase(authorizer access.Authorizer, planRepo plan.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{authorizer: authorizer, planRepo: planRepo, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return err
	}
	if err := ensureOwner(ctx, uc.authorizer, cmd.Principal, p); err != nil {
		return err
	}
	if err := p.EnsureDeletable(); err != nil {
		return err
	}

	if err := uc.planRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "plan_id", p.ID(), "error", err)
		return err
	}

	uc.logger.Infow("plan deleted", "plan_id", p.ID())
	return nil
}

// ensureOwner requires the planner role in the plan's organization and
// that the caller created the plan.
func ensureOwner(ctx context.Context, authorizer access.Authorizer, principal access.Principal, p *plan.Plan) error {
	if err := authorizer.Authorize(ctx, principal, access.ActionPlanCreate, p.OrganizationID()); err != nil {
		return err
	}
	if !p.IsOwnedBy(principal.UserID) {
		return errors.NewForbiddenError("Only the planner who created the plan can change it")
	}
	return nil
}

// ensureScopeExists looks up every node the scope names. Unset ids are
// left to Scope.Validate.
func ensureScopeExists(ctx context.Context, nodes hierarchyusecases.NodeQuerier, scope plan.Scope) error {
	if id := scope.ObjectiveID; id != nil && *id != 0 {
		if _, err := nodes.GetObjective(ctx, *id); err != nil {
			return err
		}
	}
	if id := scope.ProgramID; id != nil && *id != 0 {
		if _, err := nodes.GetProgram(ctx, *id); err != nil {
			return err
		}
	}
	if id := scope.SubProgramID; id != nil && *id != 0 {
		if _, err := nodes.GetSubProgram(ctx, *id); err != nil {
			return err
		}
	}
	return nil
}

func asValidation(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}
