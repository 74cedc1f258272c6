package handlers

import (
	"context"

	"stratplan/internal/application/hierarchy/dto"
	orgdto "stratplan/internal/application/organization/dto"
	"stratplan/internal/domain/hierarchy"
)

// mockExec records the command it received and returns canned values.
type mockExec[C any, R any] struct {
	called bool
	got    C
	result R
	err    error
}

func (m *mockExec[C, R]) Execute(ctx context.Context, cmd C) (R, error) {
	m.called = true
	m.got = cmd
	return m.result, m.err
}

// mockErrExec is mockExec for use cases that return only an error.
type mockErrExec[C any] struct {
	called bool
	got    C
	err    error
}

func (m *mockErrExec[C]) Execute(ctx context.Context, cmd C) error {
	m.called = true
	m.got = cmd
	return m.err
}

type mockNodeQuerier struct {
	objectives       []*dto.ObjectiveDTO
	objective        *dto.ObjectiveDTO
	programsFor      uint
	initiativeFilter hierarchy.InitiativeFilter
	complete         *dto.InitiativeCompleteDTO
	err              error
}

func (m *mockNodeQuerier) ListObjectives(ctx context.Context) ([]*dto.ObjectiveDTO, error) {
	return m.objectives, m.err
}

func (m *mockNodeQuerier) GetObjective(ctx context.Context, id uint) (*dto.ObjectiveDTO, error) {
	return m.objective, m.err
}

func (m *mockNodeQuerier) ListPrograms(ctx context.Context, objectiveID uint) ([]*dto.ProgramDTO, error) {
	m.programsFor = objectiveID
	return []*dto.ProgramDTO{}, m.err
}

func (m *mockNodeQuerier) GetProgram(ctx context.Context, id uint) (*dto.ProgramDTO, error) {
	return &dto.ProgramDTO{ID: id}, m.err
}

func (m *mockNodeQuerier) ListSubPrograms(ctx context.Context, programID uint) ([]*dto.SubProgramDTO, error) {
	return []*dto.SubProgramDTO{}, m.err
}

func (m *mockNodeQuerier) GetSubProgram(ctx context.Context, id uint) (*dto.SubProgramDTO, error) {
	return &dto.SubProgramDTO{ID: id}, m.err
}

func (m *mockNodeQuerier) ListInitiatives(ctx context.Context, filter hierarchy.InitiativeFilter) ([]*dto.InitiativeDTO, error) {
	m.initiativeFilter = filter
	return []*dto.InitiativeDTO{}, m.err
}

func (m *mockNodeQuerier) GetInitiative(ctx context.Context, id uint) (*dto.InitiativeDTO, error) {
	return &dto.InitiativeDTO{ID: id}, m.err
}

func (m *mockNodeQuerier) GetInitiativeComplete(ctx context.Context, id uint) (*dto.InitiativeCompleteDTO, error) {
	return m.complete, m.err
}

func (m *mockNodeQuerier) ListMeasures(ctx context.Context, initiativeID uint) ([]*dto.MeasureDTO, error) {
	return []*dto.MeasureDTO{}, m.err
}

func (m *mockNodeQuerier) GetMeasure(ctx context.Context, id uint) (*dto.MeasureDTO, error) {
	return &dto.MeasureDTO{ID: id}, m.err
}

func (m *mockNodeQuerier) ListActivities(ctx context.Context, initiativeID uint) ([]*dto.ActivityDTO, error) {
	return []*dto.ActivityDTO{}, m.err
}

func (m *mockNodeQuerier) GetActivity(ctx context.Context, id uint) (*dto.ActivityDTO, error) {
	return &dto.ActivityDTO{ID: id}, m.err
}

type listHierarchyStub struct {
	nodes []*orgdto.OrganizationNodeDTO
	err   error
}

func (s listHierarchyStub) Execute(ctx context.Context) ([]*orgdto.OrganizationNodeDTO, error) {
	return s.nodes, s.err
}
