package usecases

import (
	"context"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/shared/logger"
)

// NodeQueryUseCase serves the read side of the strategy tree. Reads need
// an authenticated caller but no role.
type NodeQueryUseCase struct {
	objectives  hierarchy.ObjectiveRepository
	programs    hierarchy.ProgramRepository
	subPrograms hierarchy.SubProgramRepository
	initiatives hierarchy.InitiativeRepository
	measures    hierarchy.MeasureRepository
	activities  hierarchy.ActivityRepository
	budgets     budget.BudgetRepository
	logger      logger.Interface
}

func NewNodeQueryUseCase(
	objectives hierarchy.ObjectiveRepository,
	programs hierarchy.ProgramRepository,
	subPrograms hierarchy.SubProgramRepository,
	initiatives hierarchy.InitiativeRepository,
	measures hierarchy.MeasureRepository,
	activities hierarchy.ActivityRepository,
	budgets budget.BudgetRepository,
	logger logger.Interface,
) *NodeQueryUseCase {
	return &NodeQueryUseCase{
		objectives:  objectives,
		programs:    programs,
		subPrograms: subPrograms,
		initiatives: initiatives,
		measures:    measures,
		activities:  activities,
		budgets:     budgets,
		logger:      logger,
	}
}

func (uc *NodeQueryUseCase) ListObjectives(ctx context.Context) ([]*dto.ObjectiveDTO, error) {
	objectives, err := uc.objectives.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list strategic objectives", "error", err)
		return nil, err
	}
	out := make([]*dto.ObjectiveDTO, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, dto.ToObjectiveDTO(o))
	}
	return out, nil
}

func (uc *NodeQueryUseCase) GetObjective(ctx context.Context, id uint) (*dto.ObjectiveDTO, error) {
	o, err := uc.objectives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToObjectiveDTO(o), nil
}

// ListPrograms lists the programs of an objective, or all of them for 0.
func (uc *NodeQueryUseCase) ListPrograms(ctx context.Context, objectiveID uint) ([]*dto.ProgramDTO, error) {
	programs, err := uc.programs.ListByObjective(ctx, objectiveID)
	if err != nil {
		uc.logger.Errorw("failed to list programs", "objective_id", objectiveID, "error", err)
		return nil, err
	}
	out := make([]*dto.ProgramDTO, 0, len(programs))
	for _, p := range programs {
		out = append(out, dto.ToProgramDTO(p))
	}
	return out, nil
}

func (uc *NodeQueryUseCase) GetProgram(ctx context.Context, id uint) (*dto.ProgramDTO, error) {
	p, err := uc.programs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProgramDTO(p), nil
}

func (uc *NodeQueryUseCase) ListSubPrograms(ctx context.Context, programID uint) ([]*dto.SubProgramDTO, error) {
	subs, err := uc.subPrograms.ListByProgram(ctx, programID)
	if err != nil {
		uc.logger.Errorw("failed to list subprograms", "program_id", programID, "error", err)
		return nil, err
	}
	out := make([]*dto.SubProgramDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.ToSubProgramDTO(s))
	}
	return out, nil
}

func (uc *NodeQueryUseCase) GetSubProgram(ctx context.Context, id uint) (*dto.SubProgramDTO, error) {
	s, err := uc.subPrograms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToSubProgramDTO(s), nil
}

func (uc *NodeQueryUseCase) ListInitiatives(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*dto.InitiativeDTO, error) {
	initiatives, err := uc.initiatives.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list strategic initiatives", "error", err)
		return nil, err
	}
	out := make([]*dto.InitiativeDTO, 0, len(initiatives))
	for _, i := range initiatives {
		out = append(out, dto.ToInitiativeDTO(i))
	}
	return out, nil
}

func (uc *NodeQueryUseCase) GetInitiative(ctx context.Context, id uint) (*dto.InitiativeDTO, error) {
	i, err := uc.initiatives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInitiativeDTO(i), nil
}

func (uc *NodeQueryUseCase) ListMeasures(ctx context.Context, initiativeID uint) ([]*dto.MeasureDTO, error) {
	measures, err := uc.measures.ListByInitiative(ctx, initiativeID)
	if err != nil {
		uc.logger.Errorw("failed to list performance measures", "initiative_id", initiativeID, "error", err)
		return nil, err
	}
	out := make([]*dto.MeasureDTO, 0, len(measures))
	for _, m := range measures {
		out = append(out, dto.ToMeasureDTO(m))
	}
	return out, nil
}

func (uc *NodeQueryUseCase) GetMeasure(ctx context.Context, id uint) (*dto.MeasureDTO, error) {
	m, err := uc.measures.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToMeasureDTO(m), nil
}

// ListActivities lists activities with their budgets attached.
func (uc *NodeQueryUseCase) ListActivities(ctx context.Context, initiativeID uint) ([]*dto.ActivityDTO, error) {
	activities, err := uc.activities.ListByInitiative(ctx, initiativeID)
	if err != nil {
		uc.logger.Errorw("failed to list main activities", "initiative_id", initiativeID, "error", err)
		return nil, err
	}
	return uc.withBudgets(ctx, activities)
}

func (uc *NodeQueryUseCase) GetActivity(ctx context.Context, id uint) (*dto.ActivityDTO, error) {
	a, err := uc.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := uc.withBudgets(ctx, []*hierarchy.MainActivity{a})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// GetInitiativeComplete returns an initiative with its measures and its
// activities, each activity carrying its budget when one exists.
func (uc *NodeQueryUseCase) GetInitiativeComplete(ctx context.Context, id uint) (*dto.InitiativeCompleteDTO, error) {
	initiative, err := uc.initiatives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	measures, err := uc.ListMeasures(ctx, id)
	if err != nil {
		return nil, err
	}

	activities, err := uc.ListActivities(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.InitiativeCompleteDTO{
		InitiativeDTO:       *dto.ToInitiativeDTO(initiative),
		PerformanceMeasures: measures,
		MainActivities:      activities,
	}, nil
}

func (uc *NodeQueryUseCase) withBudgets(ctx context.Context, activities []*hierarchy.MainActivity) ([]*dto.ActivityDTO, error) {
	ids := make([]uint, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID())
	}

	budgets := map[uint]*budget.ActivityBudget{}
	if len(ids) > 0 {
		var err error
		budgets, err = uc.budgets.ListByActivityIDs(ctx, ids)
		if err != nil {
			uc.logger.Errorw("failed to load activity budgets", "error", err)
			return nil, err
		}
	}

	out := make([]*dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ToActivityDTO(a, budgets[a.ID()]))
	}
	return out, nil
}
