package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
)

type CreateActivityCommand struct {
	Principal    access.Principal
	InitiativeID uint
	Name         string
	Weight       decimal.Decimal
	Months       []string
	Quarters     []string
}

type UpdateActivityCommand struct {
	Principal access.Principal
	ID        uint
	Name      string
	Weight    decimal.Decimal
	Months    []string
	Quarters  []string
}

type CreateActivityUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ActivityRepository
}

func NewCreateActivityUseCase(writer *NodeWriter, repo hierarchy.ActivityRepository) *CreateActivityUseCase {
	return &CreateActivityUseCase{writer: writer, repo: repo}
}

func (uc *CreateActivityUseCase) Execute(ctx context.Context, cmd CreateActivityCommand) (*dto.ActivityDTO, error) {
	log := uc.writer.logger
	log.Infow("executing create main activity use case", "initiative_id", cmd.InitiativeID, "weight", cmd.Weight.String())

	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	period := hierarchy.Period{Months: cmd.Months, Quarters: cmd.Quarters}
	activity, err := hierarchy.NewMainActivity(cmd.InitiativeID, cmd.Name, cmd.Weight, period)
	if err != nil {
		return nil, asValidation(err)
	}

	err = uc.writer.inTx(ctx, func(ctx context.Context) error {
		if err := uc.writer.admit(ctx, activity.Scope(), activity.Weight(), 0); err != nil {
			return err
		}
		return uc.repo.Create(ctx, activity)
	})
	if err != nil {
		return nil, err
	}

	log.Infow("main activity created", "id", activity.ID(), "initiative_id", activity.InitiativeID())
	return dto.ToActivityDTO(activity, nil), nil
}

type UpdateActivityUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ActivityRepository
}

func NewUpdateActivityUseCase(writer *NodeWriter, repo hierarchy.ActivityRepository) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{writer: writer, repo: repo}
}

func (uc *UpdateActivityUseCase) Execute(ctx context.Context, cmd UpdateActivityCommand) (*dto.ActivityDTO, error) {
	if err := uc.writer.authorize(ctx, cmd.Principal); err != nil {
		return nil, err
	}

	period := hierarchy.Period{Months: cmd.Months, Quarters: cmd.Quarters}

	var activity *hierarchy.MainActivity
	err := uc.writer.inTx(ctx, func(ctx context.Context) error {
		var err error
		activity, err = uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if err := activity.Update(cmd.Name, cmd.Weight, period); err != nil {
			return asValidation(err)
		}
		if err := uc.writer.admit(ctx, activity.Scope(), activity.Weight(), activity.ID()); err != nil {
			return err
		}
		return uc.repo.Update(ctx, activity)
	})
	if err != nil {
		uc.writer.logger.Errorw("failed to update main activity", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.writer.logger.Infow("main activity updated", "id", activity.ID())
	return dto.ToActivityDTO(activity, nil), nil
}

// DeleteActivityUseCase removes an activity; its budget goes with it.
type DeleteActivityUseCase struct {
	writer *NodeWriter
	repo   hierarchy.ActivityRepository
}

func NewDeleteActivityUseCase(writer *NodeWriter, repo hierarchy.ActivityRepository) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{writer: writer, repo: repo}
}

func (uc *DeleteActivityUseCase) Execute(ctx context.Context, cmd DeleteNodeCommand) error {
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
		uc.writer.logger.Errorw("failed to delete main activity", "id", cmd.ID, "error", err)
		return err
	}

	uc.writer.logger.Infow("main activity deleted", "id", cmd.ID)
	return nil
}
