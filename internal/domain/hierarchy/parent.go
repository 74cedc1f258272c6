package hierarchy

import (
	"errors"
	"fmt"

	"stratplan/internal/domain/weight"
)

// ErrAmbiguousParent is returned when stored columns do not name exactly
// one initiative parent.
var ErrAmbiguousParent = errors.New("initiative must be linked to exactly one parent: strategic objective, program, or subprogram")

// InitiativeParent is the node an initiative hangs from: an objective, a
// program or a subprogram, never more than one.
type InitiativeParent struct {
	kind weight.Kind
	id   uint
}

func ObjectiveParent(id uint) InitiativeParent {
	return InitiativeParent{kind: weight.KindObjective, id: id}
}

func ProgramParent(id uint) InitiativeParent {
	return InitiativeParent{kind: weight.KindProgram, id: id}
}

func SubProgramParent(id uint) InitiativeParent {
	return InitiativeParent{kind: weight.KindSubProgram, id: id}
}

// ParentFromColumns rebuilds the parent from three nullable references.
// Exactly one must be set.
func ParentFromColumns(objectiveID, programID, subProgramID *uint) (InitiativeParent, error) {
	var (
		parent InitiativeParent
		count  int
	)
	if objectiveID != nil && *objectiveID != 0 {
		parent = ObjectiveParent(*objectiveID)
		count++
	}
	if programID != nil && *programID != 0 {
		parent = ProgramParent(*programID)
		count++
	}
	if subProgramID != nil && *subProgramID != 0 {
		parent = SubProgramParent(*subProgramID)
		count++
	}
	if count != 1 {
		return InitiativeParent{}, ErrAmbiguousParent
	}
	return parent, nil
}

func (p InitiativeParent) Kind() weight.Kind { return p.kind }
func (p InitiativeParent) ID() uint          { return p.id }

func (p InitiativeParent) IsZero() bool {
	return p.id == 0
}

// Columns splits the parent back into the three nullable references.
func (p InitiativeParent) Columns() (objectiveID, programID, subProgramID *uint) {
	id := p.id
	switch p.kind {
	case weight.KindObjective:
		objectiveID = &id
	case weight.KindProgram:
		programID = &id
	case weight.KindSubProgram:
		subProgramID = &id
	}
	return objectiveID, programID, subProgramID
}

func (p InitiativeParent) validate() error {
	if p.id == 0 {
		return ErrAmbiguousParent
	}
	switch p.kind {
	case weight.KindObjective, weight.KindProgram, weight.KindSubProgram:
		return nil
	default:
		return ErrAmbiguousParent
	}
}

func (p InitiativeParent) String() string {
	return fmt.Sprintf("%s:%d", p.kind, p.id)
}
