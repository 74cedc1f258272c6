package hierarchy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/domain/weight"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestNewStrategicObjective(t *testing.T) {
	o, err := NewStrategicObjective("  Improve access  ", "", d("40"))
	require.NoError(t, err)
	assert.Equal(t, "Improve access", o.Title())
	assert.Equal(t, weight.ObjectiveScope(), o.Scope())

	_, err = NewStrategicObjective("x", "", d("100.01"))
	assert.Error(t, err)

	_, err = NewStrategicObjective("", "", d("10"))
	assert.Error(t, err)

	_, err = NewStrategicObjective("x", "", d("0"))
	assert.Error(t, err)
}

func TestProgramAndSubProgramScopes(t *testing.T) {
	p, err := NewProgram(3, "Primary care", "", d("20"))
	require.NoError(t, err)
	assert.Equal(t, weight.ProgramScope(3), p.Scope())

	s, err := NewSubProgram(8, "Clinics", "", d("5"))
	require.NoError(t, err)
	assert.Equal(t, weight.SubProgramScope(8), s.Scope())

	_, err = NewProgram(0, "orphan", "", d("5"))
	assert.Error(t, err)
}

func TestParentFromColumns(t *testing.T) {
	tests := []struct {
		name      string
		objective *uint
		program   *uint
		sub       *uint
		wantKind  weight.Kind
		wantErr   bool
	}{
		{name: "objective only", objective: uintPtr(1), wantKind: weight.KindObjective},
		{name: "program only", program: uintPtr(2), wantKind: weight.KindProgram},
		{name: "subprogram only", sub: uintPtr(3), wantKind: weight.KindSubProgram},
		{name: "none", wantErr: true},
		{name: "objective and program", objective: uintPtr(1), program: uintPtr(2), wantErr: true},
		{name: "all three", objective: uintPtr(1), program: uintPtr(2), sub: uintPtr(3), wantErr: true},
		{name: "zero id counts as unset", objective: uintPtr(0), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, err := ParentFromColumns(tt.objective, tt.program, tt.sub)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmbiguousParent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, parent.Kind())

			o, p, s := parent.Columns()
			set := 0
			for _, col := range []*uint{o, p, s} {
				if col != nil {
					set++
				}
			}
			assert.Equal(t, 1, set)
		})
	}
}

func TestStrategicInitiative_ParentRequired(t *testing.T) {
	_, err := NewStrategicInitiative(InitiativeParent{}, "Expand", d("10"))
	assert.ErrorIs(t, err, ErrAmbiguousParent)

	i, err := NewStrategicInitiative(ProgramParent(5), "Expand", d("10"))
	require.NoError(t, err)
	assert.Equal(t, weight.InitiativeScope(weight.KindProgram, 5), i.Scope())

	require.NoError(t, i.Update(InitiativeParent{}, "Expand more", d("12")))
	assert.Equal(t, ProgramParent(5), i.Parent())

	require.NoError(t, i.Update(SubProgramParent(9), "Expand more", d("12")))
	assert.Equal(t, weight.KindSubProgram, i.Parent().Kind())
}

func TestStrategicInitiative_WeightWithinStorableRange(t *testing.T) {
	// initiatives have no sibling ceiling, so the weight range is the only bound
	_, err := NewStrategicInitiative(ObjectiveParent(1), "Expand", d("999.99"))
	require.NoError(t, err)

	_, err = NewStrategicInitiative(ObjectiveParent(1), "Expand", d("1000"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Weight cannot exceed 999.99")
}

func TestTargets_Validate(t *testing.T) {
	ok := Targets{Q1: d("10"), Q2: d("10"), Q3: d("10"), Q4: d("10"), Annual: d("40")}
	assert.NoError(t, ok.Validate())

	over := ok
	over.Q4 = d("10.01")
	assert.EqualError(t, over.Validate(), "sum of quarterly targets cannot exceed annual target")

	negative := ok
	negative.Q2 = d("-1")
	assert.Error(t, negative.Validate())

	// the first offending target in quarter order is reported
	several := ok
	several.Q4 = d("-4")
	several.Q2 = d("-2")
	several.Annual = d("-1")
	for i := 0; i < 20; i++ {
		assert.EqualError(t, several.Validate(), "q2_target cannot be negative")
	}

	subCent := ok
	subCent.Q1 = d("9.995")
	assert.EqualError(t, subCent.Validate(), "q1_target must have at most 2 decimal places")

	huge := ok
	huge.Annual = d("100000000")
	assert.EqualError(t, huge.Validate(), "annual_target cannot exceed 99999999.99")
}

func TestPerformanceMeasure(t *testing.T) {
	m, err := NewPerformanceMeasure(4, "Coverage", d("15"), "", Targets{Annual: d("100"), Q1: d("25")})
	require.NoError(t, err)
	assert.Equal(t, "", m.Baseline())
	assert.Equal(t, weight.MeasureScope(4), m.Scope())

	_, err = NewPerformanceMeasure(4, "Coverage", d("15"), "", Targets{Annual: d("10"), Q1: d("25")})
	assert.Error(t, err)
}

func TestMainActivity_PeriodNormalization(t *testing.T) {
	a, err := NewMainActivity(4, "Train staff", d("20"), Period{Quarters: []string{"Q1", " "}})
	require.NoError(t, err)
	assert.NotNil(t, a.Period().Months)
	assert.Empty(t, a.Period().Months)
	assert.Equal(t, []string{"Q1"}, a.Period().Quarters)

	_, err = NewMainActivity(4, "Train staff", d("20"), Period{})
	assert.EqualError(t, err, "at least one month or quarter must be selected")

	_, err = NewMainActivity(4, "Train staff", d("20"), Period{Months: []string{""}})
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	a, err := NewMainActivity(1, "x", d("1"), Period{Months: []string{"July"}})
	require.NoError(t, err)
	require.NoError(t, a.SetID(7))
	assert.Error(t, a.SetID(8))
	assert.Equal(t, uint(7), a.ID())
}
