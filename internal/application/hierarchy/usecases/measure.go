package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
)

type CreateMeasureCommand struct {
	Principal    access.Principal
	InitiativeID uint
	Name         string
	Weight       decimal.Decimal
	Baseline     string
	Targets      hierarchy.Targets
}

type UpdateMeasureCommand struct {
	Principal access.Principal
	ID        uint
	Name      string
	Weight    decimal.Decimal
	Baseline  string
	Targets   hierarchy.Targets
}

type CreateMeasureUseCase struct {
	writer *NodeWriter
	repo   hierarchy.MeasureRepository
}

func NewCreateMeasureUseCase(writer *NodeWriter, repo hierarchy.MeasureRepository) *CreateMeasureUseCase {
	return &CreateMeasureUseCase{writer: writer, repo: repo}
}

func (uc *CreateMeasureUseCase) Execute(ctx context.Context, cmd CreateMeasureCommand) (*dto.MeasureDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create performance measure use case", "initiative_id", cmd.InitiativeID, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	measure, err := hierarchy.NewPerformanceMeasure(cmd.InitiativeID, cmd.Name, cmd.Weight, cmd.Baseline, cmd.Targets)
	if err != nil {
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, measure.Scope(), measure.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, measure)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("performance measure created", "id", measure.ID(), "initiative_id", measure.InitiativeID())
	return dto.ToMeasureDTO(measure), nil
}

type UpdateMeasureUseCase struct {
	writer *NodeWriter
	repo   hierarchy.MeasureRepository
}

func NewUpdateMeasureUseCase(writer *NodeWriter, repo hierarchy.MeasureRepository) *UpdateMeasureUseCase {
	return &UpdateMeasureUseCase{writer: writer, repo: repo}
}

func (uc *UpdateMeasureUseCase) Execute(ctx context.Context, cmd UpdateMeasureCommand) (*dto.MeasureDTO, error) {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	var measure *hierarchy.PerformanceMeasure
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		measure, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := measure.Update(cmd.Name, cmd.Weight, cmd.Baseline, cmd.Targets); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, measure.Scope(), measure.Weight(), measure.ID()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, measure)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to update performance measure", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.writer.logger.Infow("performance measure updated", "id", measure.ID())
	return dto.ToMeasureDTO(measure), nil
}

type DeleteMeasureUseCase struct {
	writer *NodeWriter
	repo   hierarchy.MeasureRepository
}

func NewDeleteMeasureUseCase(writer *NodeWriter, repo hierarchy.MeasureRepository) *DeleteMeasureUseCase {
	return &DeleteMeasureUseCase{writer: writer, repo: repo}
}

func (uc *DeleteMeasureUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
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
		uc.writer.logger.Errorw("failed to delete performance measure", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("performance measure deleted", "id", cmd.ID)
	return nil
}
