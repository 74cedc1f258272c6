package handlers

import (
	"context"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
)

// Use case interfaces for HierarchyHandler and WeightHandler

type createObjectiveUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateObjectiveCommand) (*dto.ObjectiveDTO, error)
}

type updateObjectiveUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateObjectiveCommand) (*dto.ObjectiveDTO, error)
}

type createProgramUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProgramCommand) (*dto.ProgramDTO, error)
}

type updateProgramUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProgramCommand) (*dto.ProgramDTO, error)
}

type createSubProgramUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubProgramCommand) (*dto.SubProgramDTO, error)
}

type updateSubProgramUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubProgramCommand) (*dto.SubProgramDTO, error)
}

type createInitiativeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateInitiativeCommand) (*dto.InitiativeDTO, error)
}

type updateInitiativeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateInitiativeCommand) (*dto.InitiativeDTO, error)
}

type createMeasureUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateMeasureCommand) (*dto.MeasureDTO, error)
}

type updateMeasureUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateMeasureCommand) (*dto.MeasureDTO, error)
}

type createActivityUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateActivityCommand) (*dto.ActivityDTO, error)
}

type updateActivityUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateActivityCommand) (*dto.ActivityDTO, error)
}

type deleteNodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteNodeCommand) error
}

type nodeQuerier interface {
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

type getWeightSummaryUseCase interface {
	Execute(ctx context.Context, scope weight.Scope) (*dto.WeightSummaryDTO, error)
}

type validateObjectivesTotalUseCase interface {
	Execute(ctx context.Context, cmd usecases.ValidateObjectivesTotalCommand) (*dto.WeightValidationDTO, error)
}

type validateActivitiesWeightUseCase interface {
	Execute(ctx context.Context, initiativeID uint) (*dto.WeightValidationDTO, error)
}
