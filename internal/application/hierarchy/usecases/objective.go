package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
)

type CreateObjectiveCommand struct {
	Principal   access.Principal
	Title       string
	Description string
	Weight      decimal.Decimal
}

type UpdateObjectiveCommand struct {
	Principal   access.Principal
	ID          uint
	Title       string
	Description string
	Weight      decimal.Decimal
}

type DeleteNodeCommand struct {
	Principal access.Principal
	ID        uint
}

type CreateObjectiveUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ObjectiveRepository
}

func NewCreateObjectiveUseCase(writer *NodeWriter, repo hierarchy.ObjectiveRepository) *CreateObjectiveUseCase {
	return &CreateObjectiveUseCase{writer: writer, repo: repo}
}

func (uc *CreateObjectiveUseCase) Execute(ctx context.Context, cmd CreateObjectiveCommand) (*dto.ObjectiveDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create objective use case", "title", cmd.Title, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	objective, err := hierarchy.NewStrategicObjective(cmd.Title, cmd.Description, cmd.Weight)
	if err != nil {
		log.Errorw("invalid strategic objective", "error", err)
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, objective.Scope(), objective.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, objective)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("strategic objective created", "id", objective.ID())
	return dto.ToObjectiveDTO(objective), nil
}

type UpdateObjectiveUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ObjectiveRepository
}

func NewUpdateObjectiveUseCase(writer *NodeWriter, repo hierarchy.ObjectiveRepository) *UpdateObjectiveUseCase {
	return &UpdateObjectiveUseCase{writer: writer, repo: repo}
}

func (uc *UpdateObjectiveUseCase) Execute(ctx context.Context, cmd UpdateObjectiveCommand) (*dto.ObjectiveDTO, error) {
	log := uc.writer.logger
	log.Infow("executing update objective use case", "id", cmd.ID, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	var objective *hierarchy.StrategicObjective
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		objective, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := objective.Update(cmd.Title, cmd.Description, cmd.Weight); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, objective.Scope(), objective.Weight(), objective.ID()); err != nil {
			return err
		}
		if err := uc.writer.fitChildren(ctx, weight.ProgramScope(objective.ID()), objective.Weight()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, objective)
	})
	if err != nil {
		log.Errorw("failed to update strategic objective", "id", cmd.ID, "error", err)
		return nil, err
	}

	log.Infow("strategic objective updated", "id", objective.ID())
	return dto.ToObjectiveDTO(objective), nil
}

type DeleteObjectiveUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ObjectiveRepository
}

func NewDeleteObjectiveUseCase(writer *NodeWriter, repo hierarchy.ObjectiveRepository) *DeleteObjectiveUseCase {
	return &DeleteObjectiveUseCase{writer: writer, repo: repo}
}

func (uc *DeleteObjectiveUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
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
		uc.writer.logger.Errorw("failed to delete strategic objective", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("strategic objective deleted", "id", cmd.ID)
	return nil
}
