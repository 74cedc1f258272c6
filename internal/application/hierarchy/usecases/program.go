package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
)

type CreateProgramCommand struct {
	Principal   access.Principal
	ObjectiveID uint
	Name        string
	Description string
	Weight      decimal.Decimal
}

type UpdateProgramCommand struct {
	Principal   access.Principal
	ID          uint
	Name        string
	Description string
	Weight      decimal.Decimal
}

// CreateProgramUseCase adds a program under an objective. The programs of an
// objective may not weigh more than the objective itself.
type CreateProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ProgramRepository
}

func NewCreateProgramUseCase(writer *NodeWriter, repo hierarchy.ProgramRepository) *CreateProgramUseCase {
	return &CreateProgramUseCase{writer: writer, repo: repo}
}

func (uc *CreateProgramUseCase) Execute(ctx context.Context, cmd CreateProgramCommand) (*dto.ProgramDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create program use case", "objective_id", cmd.ObjectiveID, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	program, err := hierarchy.NewProgram(cmd.ObjectiveID, cmd.Name, cmd.Description, cmd.Weight)
	if err != nil {
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, program.Scope(), program.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, program)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("program created", "id", program.ID(), "objective_id", program.ObjectiveID())
	return dto.ToProgramDTO(program), nil
}

type UpdateProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ProgramRepository
}

func NewUpdateProgramUseCase(writer *NodeWriter, repo hierarchy.ProgramRepository) *UpdateProgramUseCase {
	return &UpdateProgramUseCase{writer: writer, repo: repo}
}

func (uc *UpdateProgramUseCase) Execute(ctx context.Context, cmd UpdateProgramCommand) (*dto.ProgramDTO, error) {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	var program *hierarchy.Program
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		program, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := program.Update(cmd.Name, cmd.Description, cmd.Weight); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, program.Scope(), program.Weight(), program.ID()); err != nil {
			return err
		}
		if err := uc.writer.fitChildren(ctx, weight.SubProgramScope(program.ID()), program.Weight()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, program)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to update program", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.writer.logger.Infow("program updated", "id", program.ID())
	return dto.ToProgramDTO(program), nil
}

type DeleteProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ProgramRepository
}

func NewDeleteProgramUseCase(writer *NodeWriter, repo hierarchy.ProgramRepository) *DeleteProgramUseCase {
	return &DeleteProgramUseCase{writer: writer, repo: repo}
}

func (uc *DeleteProgramUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
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
		uc.writer.logger.Errorw("failed to delete program", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("program deleted", "id", cmd.ID)
	return nil
}

type CreateSubProgramCommand struct {
	Principal   access.Principal
	ProgramID   uint
	Name        string
	Description string
	Weight      decimal.Decimal
}

type UpdateSubProgramCommand struct {
	Principal   access.Principal
	ID          uint
	Name        string
	Description string
	Weight      decimal.Decimal
}

type CreateSubProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.SubProgramRepository
}

func NewCreateSubProgramUseCase(writer *NodeWriter, repo hierarchy.SubProgramRepository) *CreateSubProgramUseCase {
	return &CreateSubProgramUseCase{writer: writer, repo: repo}
}

func (uc *CreateSubProgramUseCase) Execute(ctx context.Context, cmd CreateSubProgramCommand) (*dto.SubProgramDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create subprogram use case", "program_id", cmd.ProgramID, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	sub, err := hierarchy.NewSubProgram(cmd.ProgramID, cmd.Name, cmd.Description, cmd.Weight)
	if err != nil {
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, sub.Scope(), sub.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("subprogram created", "id", sub.ID(), "program_id", sub.ProgramID())
	return dto.ToSubProgramDTO(sub), nil
}

type UpdateSubProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.SubProgramRepository
}

func NewUpdateSubProgramUseCase(writer *NodeWriter, repo hierarchy.SubProgramRepository) *UpdateSubProgramUseCase {
	return &UpdateSubProgramUseCase{writer: writer, repo: repo}
}

func (uc *UpdateSubProgramUseCase) Execute(ctx context.Context, cmd UpdateSubProgramCommand) (*dto.SubProgramDTO, error) {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	var sub *hierarchy.SubProgram
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		sub, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := sub.Update(cmd.Name, cmd.Description, cmd.Weight); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, sub.Scope(), sub.Weight(), sub.ID()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, sub)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to update subprogram", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.writer.logger.Infow("subprogram updated", "id", sub.ID())
	return dto.ToSubProgramDTO(sub), nil
}

type DeleteSubProgramUseCase struct {
	writer *NodeWriter
	repo   hierarchy.SubProgramRepository
}

func NewDeleteSubProgramUseCase(writer *NodeWriter, repo hierarchy.SubProgramRepository) *DeleteSubProgramUseCase {
	return &DeleteSubProgramUseCase{writer: writer, repo: repo}
}

func (uc *DeleteSubProgramUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
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
		uc.writer.logger.Errorw("failed to delete subprogram", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("subprogram deleted", "id", cmd.ID)
	return nil
}
