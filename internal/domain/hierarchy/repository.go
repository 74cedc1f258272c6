package hierarchy

import "context"

// Repositories return a not-found AppError when the node does not exist.
// A zero parent id in the ListBy* methods lists every node of the kind.

type ObjectiveRepository interface {
	Create(ctx context.Context, objective *StrategicObjective) error
	Update(ctx context.Context, objective *StrategicObjective) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*StrategicObjective, error)
	List(ctx context.Context) ([]*StrategicObjective, error)
}

type ProgramRepository interface {
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Program, error)
	ListByObjective(ctx context.Context, objectiveID uint) ([]*Program, error)
}

type SubProgramRepository interface {
	Create(ctx context.Context, subProgram *SubProgram) error
	Update(ctx context.Context, subProgram *SubProgram) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*SubProgram, error)
	ListByProgram(ctx context.Context, programID uint) ([]*SubProgram, error)
}

// InitiativeFilter narrows initiative listings to one parent. An empty
// filter lists every initiative.
type InitiativeFilter struct {
	ObjectiveID  *uint
	ProgramID    *uint
	SubProgramID *uint
}

type InitiativeRepository interface {
	Create(ctx context.Context, initiative *StrategicInitiative) error
	Update(ctx context.Context, initiative *StrategicInitiative) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*StrategicInitiative, error)
	List(ctx context.Context, filter InitiativeFilter) ([]*StrategicInitiative, error)
}

type MeasureRepository interface {
	Create(ctx context.Context, measure *PerformanceMeasure) error
	Update(ctx context.Context, measure *PerformanceMeasure) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*PerformanceMeasure, error)
	ListByInitiative(ctx context.Context, initiativeID uint) ([]*PerformanceMeasure, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *MainActivity) error
	Update(ctx context.Context, activity *MainActivity) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*MainActivity, error)
	ListByInitiative(ctx context.Context, initiativeID uint) ([]*MainActivity, error)
}
