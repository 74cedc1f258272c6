// Package weight holds the quota rules that bound the weights of sibling
// nodes in the strategy tree.
package weight

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies a node kind of the strategy tree.
type Kind string

const (
	KindObjective  Kind = "strategic_objective"
	KindProgram    Kind = "program"
	KindSubProgram Kind = "sub_program"
	KindInitiative Kind = "strategic_initiative"
	KindMeasure    Kind = "performance_measure"
	KindActivity   Kind = "main_activity"
)

var validKinds = map[Kind]bool{
	KindObjective:  true,
	KindProgram:    true,
	KindSubProgram: true,
	KindInitiative: true,
	KindMeasure:    true,
	KindActivity:   true,
}

func (k Kind) IsValid() bool {
	return validKinds[k]
}

func (k Kind) String() string {
	return string(k)
}

// label is the plural used in rejection messages.
func (k Kind) label() string {
	switch k {
	case KindObjective:
		return "strategic objectives"
	case KindProgram:
		return "programs"
	case KindSubProgram:
		return "subprograms"
	case KindInitiative:
		return "strategic initiatives"
	case KindMeasure:
		return "performance measures"
	case KindActivity:
		return "activities"
	default:
		return string(k)
	}
}

var (
	ObjectiveCeiling = decimal.NewFromInt(100)
	MeasureCeiling   = decimal.NewFromInt(35)
	ActivityCeiling  = decimal.NewFromInt(65)
)

// Scope is a set of siblings sharing one quota: the kind of the nodes and
// the parent they hang from. Objectives have no parent.
type Scope struct {
	Kind       Kind
	ParentKind Kind
	ParentID   uint
}

func ObjectiveScope() Scope {
	return Scope{Kind: KindObjective}
}

func ProgramScope(objectiveID uint) Scope {
	return Scope{Kind: KindProgram, ParentKind: KindObjective, ParentID: objectiveID}
}

func SubProgramScope(programID uint) Scope {
	return Scope{Kind: KindSubProgram, ParentKind: KindProgram, ParentID: programID}
}

// InitiativeScope groups initiatives hanging from the same objective,
// program or subprogram.
func InitiativeScope(parentKind Kind, parentID uint) Scope {
	return Scope{Kind: KindInitiative, ParentKind: parentKind, ParentID: parentID}
}

func MeasureScope(initiativeID uint) Scope {
	return Scope{Kind: KindMeasure, ParentKind: KindInitiative, ParentID: initiativeID}
}

func ActivityScope(initiativeID uint) Scope {
	return Scope{Kind: KindActivity, ParentKind: KindInitiative, ParentID: initiativeID}
}

// Validate checks that the scope names a known kind and, except for
// objectives, a parent.
func (s Scope) Validate() error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("invalid node kind %q", s.Kind)
	}
	if s.Kind == KindObjective {
		return nil
	}
	if s.ParentID == 0 {
		return fmt.Errorf("%s scope requires a parent", s.Kind)
	}
	if s.Kind == KindInitiative {
		switch s.ParentKind {
		case KindObjective, KindProgram, KindSubProgram:
		default:
			return fmt.Errorf("invalid initiative parent kind %q", s.ParentKind)
		}
	}
	return nil
}

// HasParentCeiling reports whether the ceiling is the parent's own weight.
func (s Scope) HasParentCeiling() bool {
	return s.Kind == KindProgram || s.Kind == KindSubProgram
}

// IsBounded reports whether the scope has a ceiling at all. Initiatives are
// only summed.
func (s Scope) IsBounded() bool {
	return s.Kind != KindInitiative
}

// FixedCeiling returns the constant ceiling of the scope, if it has one.
func (s Scope) FixedCeiling() (decimal.Decimal, bool) {
	switch s.Kind {
	case KindObjective:
		return ObjectiveCeiling, true
	case KindMeasure:
		return MeasureCeiling, true
	case KindActivity:
		return ActivityCeiling, true
	default:
		return decimal.Zero, false
	}
}

func (s Scope) String() string {
	if s.Kind == KindObjective {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s(%s=%d)", s.Kind, s.ParentKind, s.ParentID)
}
