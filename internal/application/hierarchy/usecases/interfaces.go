package usecases

import (
	"context"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
)

type CreateObjectiveExecutor interface {
	Execute(ctx context.Context, cmd CreateObjectiveCommand) (*dto.ObjectiveDTO, error)
}

type UpdateObjectiveExecutor interface {
	Execute(ctx context.Context, cmd UpdateObjectiveCommand) (*dto.ObjectiveDTO, error)
}

type CreateProgramExecutor interface {
	Execute(ctx context.Context, cmd CreateProgramCommand) (*dto.ProgramDTO, error)
}

type UpdateProgramExecutor interface {
	Execute(ctx context.Context, cmd UpdateProgramCommand) (*dto.ProgramDTO, error)
}

type CreateSubProgramExecutor interface {
	Execute(ctx context.Context, cmd CreateSubProgramCommand) (*dto.SubProgramDTO, error)
}

type UpdateSubProgramExecutor interface {
	Execute(ctx context.Context, cmd UpdateSubProgramCommand) (*dto.SubProgramDTO, error)
}

type CreateInitiativeExecutor interface {
	Execute(ctx context.Context, cmd CreateInitiativeCommand) (*dto.InitiativeDTO, error)
}

type UpdateInitiativeExecutor interface {
	Execute(ctx context.Context, cmd UpdateInitiativeCommand) (*dto.InitiativeDTO, error)
}

type CreateMeasureExecutor interface {
	Execute(ctx context.Context, cmd CreateMeasureCommand) (*dto.MeasureDTO, error)
}

type UpdateMeasureExecutor interface {
	Execute(ctx context.Context, cmd UpdateMeasureCommand) (*dto.MeasureDTO, error)
}

type CreateActivityExecutor interface {
	Execute(ctx context.Context, cmd CreateActivityCommand) (*dto.ActivityDTO, error)
}

type UpdateActivityExecutor interface {
	Execute(ctx context.Context, cmd UpdateActivityCommand) (*dto.ActivityDTO, error)
}

// DeleteNodeExecutor deletes a node of any kind.
type DeleteNodeExecutor interface {
	Execute(ctx context.Context, cmd DeleteNodeCommand) error
}

type GetWeightSummaryExecutor interface {
	Execute(ctx context.Context, scope weight.Scope) (*dto.WeightSummaryDTO, error)
}

type ValidateObjectivesTotalExecutor interface {
	Execute(ctx context.Context, cmd ValidateObjectivesTotalCommand) (*dto.WeightValidationDTO, error)
}

type ValidateActivitiesWeightExecutor interface {
	Execute(ctx context.Context, initiativeID uint) (*dto.WeightValidationDTO, error)
}

// NodeQuerier is the read side of the strategy tree.
type NodeQuerier interface {
	ListObjectives(ctx context.Context) ([]*dto.ObjectiveDTO, error)
	GetObjective(ctx context.Context, id uint) (*dto.ObjectiveDTO, error)
	ListPrograms(ctx context.Context, objectiveID uint) ([]*dto.ProgramDTO, error)
	GetProgram(ctx context.Context, id uint) (*dto.ProgramDTO, error)
	ListSubPrograms(ctx context.Context, programID uint) ([]*dto.SubProgramDTO, error)
	GetSubProgram(ctx context.Context, id uint) (*dto.SubProgramDTO, error)
	ListInitiatives(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*dto.InitiativeDTO, error)
	GetInitiative(ctx context.Context, id uint) (*dto.InitiativeDTO, error)
	GetInitiativeComplete(ctx context.Context, id uint) (*dto.InitiativeCompleteDTO, error)
	ListMeasures(ctx context.Context, initiativeID uint) ([]*dto.MeasureDTO, error)
	GetMeasure(ctx context.Context, id uint) (*dto.MeasureDTO, error)
	ListActivities(ctx context.Context, initiativeID uint) ([]*dto.ActivityDTO, error)
	GetActivity(ctx context.Context, id uint) (*dto.ActivityDTO, error)
}

var (
	_ CreateObjectiveExecutor          = (*CreateObjectiveUseCase)(nil)
	_ UpdateObjectiveExecutor          = (*UpdateObjectiveUseCase)(nil)
	_ CreateProgramExecutor            = (*CreateProgramUseCase)(nil)
	_ UpdateProgramExecutor            = (*UpdateProgramUseCase)(nil)
	_ CreateSubProgramExecutor         = (*CreateSubProgramUseCase)(nil)
	_ UpdateSubProgramExecutor         = (*UpdateSubProgramUseCase)(nil)
	_ CreateInitiativeExecutor         = (*CreateInitiativeUseCase)(nil)
	_ UpdateInitiativeExecutor         = (*UpdateInitiativeUseCase)(nil)
	_ CreateMeasureExecutor            = (*CreateMeasureUseCase)(nil)
	_ UpdateMeasureExecutor            = (*UpdateMeasureUseCase)(nil)
	_ CreateActivityExecutor           = (*CreateActivityUseCase)(nil)
	_ UpdateActivityExecutor           = (*UpdateActivityUseCase)(nil)
	_ GetWeightSummaryExecutor         = (*GetWeightSummaryUseCase)(nil)
	_ ValidateObjectivesTotalExecutor  = (*ValidateObjectivesTotalUseCase)(nil)
	_ ValidateActivitiesWeightExecutor = (*ValidateActivitiesWeightUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteObjectiveUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteProgramUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteSubProgramUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteInitiativeUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteMeasureUseCase)(nil)
	_ DeleteNodeExecutor               = (*DeleteActivityUseCase)(nil)
	_ NodeQuerier                      = (*NodeQueryUseCase)(nil)
)
