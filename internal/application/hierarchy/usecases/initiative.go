package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
)

// InitiativeParentRef names the parent of an initiative the way requests
// carry it: three optional references of which exactly one is set.
type InitiativeParentRef struct {
	ObjectiveID  *uint
	ProgramID    *uint
	SubProgramID *uint
}

func (r InitiativeParentRef) isEmpty() bool {
	return r.ObjectiveID == nil && r.ProgramID == nil && r.SubProgramID == nil
}

func (r InitiativeParentRef) resolve() (hierarchy.InitiativeParent, error) {
	return hierarchy.ParentFromColumns(r.ObjectiveID, r.ProgramID, r.SubProgramID)
}

type CreateInitiativeCommand struct {
	Principal access.Principal
	Parent    InitiativeParentRef
	Name      string
	Weight    decimal.Decimal
}

// UpdateInitiativeCommand moves the initiative when Parent names a new
// parent; an empty Parent keeps the current one.
type UpdateInitiativeCommand struct {
	Principal access.Principal
	ID        uint
	Parent    InitiativeParentRef
	Name      string
	Weight    decimal.Decimal
}

type CreateInitiativeUseCase struct {
	writer *NodeWriter
	repo   hierarchy.InitiativeRepository
}

func NewCreateInitiativeUseCase(writer *NodeWriter, repo hierarchy.InitiativeRepository) *CreateInitiativeUseCase {
	return &CreateInitiativeUseCase{writer: writer, repo: repo}
}

func (uc *CreateInitiativeUseCase) Execute(ctx context.Context, cmd CreateInitiativeCommand) (*dto.InitiativeDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create initiative use case", "name", cmd.Name, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	parent, err := cmd.Parent.resolve()
	if err != nil {
		return nil, asValidation(err)
	}

	initiative, err := hierarchy.NewStrategicInitiative(parent, cmd.Name, cmd.Weight)
	if err != nil {
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, initiative.Scope(), initiative.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, initiative)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("strategic initiative created",
		"id", initiative.ID(),
		"parent_kind", parent.Kind().String(),
		"parent_id", parent.ID(),
	)
	return dto.ToInitiativeDTO(initiative), nil
}

type UpdateInitiativeUseCase struct {
	writer *NodeWriter
	repo   hierarchy.InitiativeRepository
}

func NewUpdateInitiativeUseCase(writer *NodeWriter, repo hierarchy.InitiativeRepository) *UpdateInitiativeUseCase {
	return &UpdateInitiativeUseCase{writer: writer, repo: repo}
}

func (uc *UpdateInitiativeUseCase) Execute(ctx context.Context, cmd UpdateInitiativeCommand) (*dto.InitiativeDTO, error) {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	var parent hierarchy.InitiativeParent
	if !cmd.Parent.isEmpty() {
		var err error
		if parent, err = cmd.Parent.resolve(); err != nil {
			return nil, asValidation(err)
		}
	}

	var initiative *hierarchy.StrategicInitiative
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		initiative, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := initiative.Update(parent, cmd.Name, cmd.Weight); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, initiative.Scope(), initiative.Weight(), initiative.ID()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, initiative)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to update strategic initiative", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.writer.logger.Infow("strategic initiative updated", "id", initiative.ID())
	return dto.ToInitiativeDTO(initiative), nil
}

type DeleteInitiativeUseCase struct {
	writer *NodeWriter
	repo   hierarchy.InitiativeRepository
}

func NewDeleteInitiativeUseCase(writer *NodeWriter, repo hierarchy.InitiativeRepository) *DeleteInitiativeUseCase {
	return &DeleteInitiativeUseCase{writer: writer, repo: repo}
}

func (uc *DeleteInitiativeUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return err
	}

	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		if _, err := uc.repo.GetByID(ctx, cmd.ID); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, cmd.ID)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to delete strategic initiative", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("strategic initiative deleted", "id", cmd.ID)
	return nil
}
