package hierarchy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/biztime"
)

// Program belongs to one objective; its siblings share the objective's weight.
type Program struct {
	id          uint
	objectiveID uint
	name        string
	description string
	weight      decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProgram(objectiveID uint, name, description string, w decimal.Decimal) (*Program, error) {
	if objectiveID == 0 {
		return nil, fmt.Errorf("strategic objective is required")
	}
	p := &Program{objectiveID: objectiveID}
	if err := p.apply(name, description, w); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

func ReconstructProgram(id, objectiveID uint, name, description string, w decimal.Decimal, createdAt, updatedAt time.Time) (*Program, error) {
	if id == 0 {
		return nil, fmt.Errorf("program ID cannot be zero")
	}
	if objectiveID == 0 {
		return nil, fmt.Errorf("program %d has no strategic objective", id)
	}
	return &Program{
		id:          id,
		objectiveID: objectiveID,
		name:        name,
		description: description,
		weight:      w,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Program) apply(name, description string, w decimal.Decimal) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	p.description = description
	p.weight = w
	return nil
}

func (p *Program) Update(name, description string, w decimal.Decimal) error {
	if err := p.apply(name, description, w); err != nil {
		return err
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Program) ID() uint                { return p.id }
func (p *Program) ObjectiveID() uint       { return p.objectiveID }
func (p *Program) Name() string            { return p.name }
func (p *Program) Description() string     { return p.description }
func (p *Program) Weight() decimal.Decimal { return p.weight }
func (p *Program) CreatedAt() time.Time    { return p.createdAt }
func (p *Program) UpdatedAt() time.Time    { return p.updatedAt }

func (p *Program) Scope() weight.Scope {
	return weight.ProgramScope(p.objectiveID)
}

func (p *Program) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("program ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("program ID cannot be zero")
	}
	p.id = id
	return nil
}

// SubProgram belongs to one program; its siblings share the program's weight.
type SubProgram struct {
	id          uint
	programID   uint
	name        string
	description string
	weight      decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSubProgram(programID uint, name, description string, w decimal.Decimal) (*SubProgram, error) {
	if programID == 0 {
		return nil, fmt.Errorf("program is required")
	}
	s := &SubProgram{programID: programID}
	if err := s.apply(name, description, w); err != nil {
		return nil, err
	}
	now := biztime.NowUTC()
	s.createdAt = now
	s.updatedAt = now
	return s, nil
}

func ReconstructSubProgram(id, programID uint, name, description string, w decimal.Decimal, createdAt, updatedAt time.Time) (*SubProgram, error) {
	if id == 0 {
		return nil, fmt.Errorf("subprogram ID cannot be zero")
	}
	if programID == 0 {
		return nil, fmt.Errorf("subprogram %d has no program", id)
	}
	return &SubProgram{
		id:          id,
		programID:   programID,
		name:        name,
		description: description,
		weight:      w,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *SubProgram) apply(name, description string, w decimal.Decimal) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := weight.ValidateWeight(w); err != nil {
		return err
	}
	s.name = strings.TrimSpace(name)
	s.description = description
	s.weight = w
	return nil
}

func (s *SubProgram) Update(name, description string, w decimal.Decimal) error {
	if err := s.apply(name, description, w); err != nil {
		return err
	}
	s.updatedAt = biztime.NowUTC()
	return nil
}

func (s *SubProgram) ID() uint                { return s.id }
func (s *SubProgram) ProgramID() uint         { return s.programID }
func (s *SubProgram) Name() string            { return s.name }
func (s *SubProgram) Description() string     { return s.description }
func (s *SubProgram) Weight() decimal.Decimal { return s.weight }
func (s *SubProgram) CreatedAt() time.Time    { return s.createdAt }
func (s *SubProgram) UpdatedAt() time.Time    { return s.updatedAt }

func (s *SubProgram) Scope() weight.Scope {
	return weight.SubProgramScope(s.programID)
}

func (s *SubProgram) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subprogram ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subprogram ID cannot be zero")
	}
	s.id = id
	return nil
}
