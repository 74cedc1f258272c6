package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/errors"
)

func TestCreateObjectiveUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		weight   string
		existing []weight.Sibling
		denied   bool
		wantErr  func(error) bool
		created  bool
	}{
		{name: "fits under 100", weight: "40", existing: siblings("30", "30"), created: true},
		{name: "reaches exactly 100", weight: "40", existing: siblings("60"), created: true},
		{name: "exceeds 100", weight: "40.01", existing: siblings("60"), wantErr: errors.IsValidationError},
		{name: "zero weight", weight: "0", wantErr: errors.IsValidationError},
		{name: "not a planner", weight: "10", denied: true, wantErr: errors.IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthorizer{}
			if tt.denied {
				auth.AuthorizeFunc = func(ctx context.Context, p access.Principal, a access.Action, orgID uint) error {
					return access.Denied(a)
				}
			}
			weights := &mockWeightRepository{
				SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
					assert.Equal(t, weight.ObjectiveScope(), scope)
					assert.Zero(t, excludingID)
					return tt.existing, nil
				},
			}
			created := false
			repo := &mockObjectiveRepository{
				CreateFunc: func(ctx context.Context, o *hierarchy.StrategicObjective) error {
					created = true
					return o.SetID(5)
				},
			}

			uc := NewCreateObjectiveUseCase(newTestWriter(auth, &mockTransactor{}, weights), repo)
			result, err := uc.Execute(context.Background(), CreateObjectiveCommand{
				Principal: planner,
				Title:     "Improve access",
				Weight:    d(tt.weight),
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.False(t, created)
				return
			}
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, uint(5), result.ID)
			assert.True(t, d(tt.weight).Equal(result.Weight))
		})
	}
}

func TestCreateObjectiveUseCase_QuotaDataCarriesTotals(t *testing.T) {
	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			return siblings("70", "20"), nil
		},
	}
	uc := NewCreateObjectiveUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockObjectiveRepository{})

	_, err := uc.Execute(context.Background(), CreateObjectiveCommand{Principal: planner, Title: "x", Weight: d("15")})
	require.Error(t, err)

	var quotaErr *weight.QuotaExceededError
	require.True(t, stderrors.As(err, &quotaErr))
	assert.True(t, d("90").Equal(quotaErr.CurrentTotal))
	assert.Equal(t, "100", quotaErr.Data["ceiling"])
	assert.Equal(t, "Total weight of strategic objectives (105%) cannot exceed 100%", quotaErr.Message)
}

func TestUpdateObjectiveUseCase_ExcludesItself(t *testing.T) {
	now := time.Now()
	existing, err := hierarchy.ReconstructStrategicObjective(3, "Old", "", d("50"), now, now)
	require.NoError(t, err)

	tx := &mockTransactor{}
	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			if scope.Kind == weight.KindProgram {
				assert.Equal(t, weight.ProgramScope(3), scope)
				return siblings("30", "20"), nil
			}
			assert.Equal(t, uint(3), excludingID)
			return siblings("50"), nil
		},
	}
	updated := false
	repo := &mockObjectiveRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, o *hierarchy.StrategicObjective) error {
			updated = true
			return nil
		},
	}

	uc := NewUpdateObjectiveUseCase(newTestWriter(&mockAuthorizer{}, tx, weights), repo)
	result, err := uc.Execute(context.Background(), UpdateObjectiveCommand{
		Principal: planner, ID: 3, Title: "New", Weight: d("50"),
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "New", result.Title)
	assert.Equal(t, 1, tx.calls)
}

func TestUpdateObjectiveUseCase_CannotShrinkBelowPrograms(t *testing.T) {
	now := time.Now()
	existing, err := hierarchy.ReconstructStrategicObjective(3, "Health", "", d("40"), now, now)
	require.NoError(t, err)

	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			if scope.Kind == weight.KindProgram {
				return siblings("25", "15"), nil
			}
			return nil, nil
		},
	}
	updated := false
	repo := &mockObjectiveRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, o *hierarchy.StrategicObjective) error {
			updated = true
			return nil
		},
	}

	uc := NewUpdateObjectiveUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), repo)
	_, err = uc.Execute(context.Background(), UpdateObjectiveCommand{
		Principal: planner, ID: 3, Title: "Health", Weight: d("10"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, updated)
	appErr := errors.GetAppError(err)
	assert.Equal(t, "40", appErr.Data["current_total"])
	assert.Equal(t, "10", appErr.Data["ceiling"])

	// reaching the children total exactly is allowed
	_, err = uc.Execute(context.Background(), UpdateObjectiveCommand{
		Principal: planner, ID: 3, Title: "Health", Weight: d("40"),
	})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestUpdateProgramUseCase_CannotShrinkBelowSubPrograms(t *testing.T) {
	now := time.Now()
	existing, err := hierarchy.ReconstructProgram(8, 3, "Primary care", "", d("30"), now, now)
	require.NoError(t, err)

	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			if scope.Kind == weight.KindSubProgram {
				assert.Equal(t, weight.SubProgramScope(8), scope)
				return siblings("20", "10"), nil
			}
			return nil, nil
		},
		ParentWeightFunc: func(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
			return d("100"), nil
		},
	}
	repo := &mockProgramRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.Program, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, p *hierarchy.Program) error {
			t.Fatal("program must not be saved")
			return nil
		},
	}

	uc := NewUpdateProgramUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), repo)
	_, err = uc.Execute(context.Background(), UpdateProgramCommand{
		Principal: planner, ID: 8, Name: "Primary care", Weight: d("29.99"),
	})

	require.Error(t, err)
	var quotaErr *weight.QuotaExceededError
	require.True(t, stderrors.As(err, &quotaErr))
	assert.True(t, quotaErr.CurrentTotal.Equal(d("30")))
	assert.True(t, quotaErr.Ceiling.Equal(d("29.99")))
}

func TestUpdateObjectiveUseCase_NotFound(t *testing.T) {
	repo := &mockObjectiveRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.StrategicObjective, error) {
			return nil, errors.NewNotFoundError("strategic objective not found")
		},
	}
	uc := NewUpdateObjectiveUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, &mockWeightRepository{}), repo)

	_, err := uc.Execute(context.Background(), UpdateObjectiveCommand{Principal: planner, ID: 9, Title: "x", Weight: d("1")})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateProgramUseCase_ParentCeiling(t *testing.T) {
	weights := &mockWeightRepository{
		ParentWeightFunc: func(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
			assert.Equal(t, weight.ProgramScope(4), scope)
			return d("30"), nil
		},
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			return siblings("20"), nil
		},
	}
	uc := NewCreateProgramUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockProgramRepository{})

	_, err := uc.Execute(context.Background(), CreateProgramCommand{
		Principal: planner, ObjectiveID: 4, Name: "Primary care", Weight: d("10"),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateProgramCommand{
		Principal: planner, ObjectiveID: 4, Name: "Primary care", Weight: d("10.5"),
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Total weight of programs (30.5%) cannot exceed objective weight (30%)", appErr.Message)
}

func TestCreateProgramUseCase_MissingObjective(t *testing.T) {
	weights := &mockWeightRepository{
		ParentWeightFunc: func(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
			return decimal.Zero, errors.NewNotFoundError("strategic objective not found")
		},
	}
	uc := NewCreateProgramUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockProgramRepository{})

	_, err := uc.Execute(context.Background(), CreateProgramCommand{
		Principal: planner, ObjectiveID: 4, Name: "Primary care", Weight: d("10"),
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func uintPtr(v uint) *uint {
	return &v
}

func TestCreateInitiativeUseCase_Parent(t *testing.T) {
	tests := []struct {
		name      string
		parent    InitiativeParentRef
		parentErr error
		wantErr   func(error) bool
	}{
		{name: "program parent", parent: InitiativeParentRef{ProgramID: uintPtr(2)}},
		{name: "no parent", parent: InitiativeParentRef{}, wantErr: errors.IsValidationError},
		{name: "two parents", parent: InitiativeParentRef{ObjectiveID: uintPtr(1), ProgramID: uintPtr(2)}, wantErr: errors.IsValidationError},
		{
			name:      "missing parent",
			parent:    InitiativeParentRef{SubProgramID: uintPtr(3)},
			parentErr: errors.NewNotFoundError("subprogram not found"),
			wantErr:   errors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := &mockWeightRepository{
				ParentWeightFunc: func(ctx context.Context, scope weight.Scope) (decimal.Decimal, error) {
					return d("10"), tt.parentErr
				},
				SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
					// Initiatives have no ceiling, whatever their siblings weigh.
					return siblings("500"), nil
				},
			}
			uc := NewCreateInitiativeUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockInitiativeRepository{})

			result, err := uc.Execute(context.Background(), CreateInitiativeCommand{
				Principal: planner, Parent: tt.parent, Name: "Expand", Weight: d("10"),
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uintPtr(2), result.ProgramID)
			assert.Nil(t, result.ObjectiveID)
			assert.Nil(t, result.SubProgramID)
		})
	}
}

func TestUpdateInitiativeUseCase_KeepsParentWhenOmitted(t *testing.T) {
	now := time.Now()
	existing, err := hierarchy.ReconstructStrategicInitiative(6, hierarchy.ObjectiveParent(1), "Old", d("5"), now, now)
	require.NoError(t, err)

	repo := &mockInitiativeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.StrategicInitiative, error) {
			return existing, nil
		},
	}
	uc := NewUpdateInitiativeUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, &mockWeightRepository{}), repo)

	result, err := uc.Execute(context.Background(), UpdateInitiativeCommand{Principal: planner, ID: 6, Name: "New", Weight: d("7")})
	require.NoError(t, err)
	assert.Equal(t, uintPtr(1), result.ObjectiveID)
}

func TestCreateMeasureUseCase_Ceiling35(t *testing.T) {
	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			return siblings("20", "10"), nil
		},
	}
	uc := NewCreateMeasureUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockMeasureRepository{})

	targets := hierarchy.Targets{Q1: d("10"), Annual: d("40")}
	_, err := uc.Execute(context.Background(), CreateMeasureCommand{
		Principal: planner, InitiativeID: 2, Name: "Coverage", Weight: d("5"), Targets: targets,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateMeasureCommand{
		Principal: planner, InitiativeID: 2, Name: "Coverage", Weight: d("5.01"), Targets: targets,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed 35%")
}

func TestCreateMeasureUseCase_TargetsAboveAnnual(t *testing.T) {
	uc := NewCreateMeasureUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, &mockWeightRepository{}), &mockMeasureRepository{})

	_, err := uc.Execute(context.Background(), CreateMeasureCommand{
		Principal: planner, InitiativeID: 2, Name: "Coverage", Weight: d("5"),
		Targets: hierarchy.Targets{Q1: d("30"), Q2: d("30"), Annual: d("50")},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateActivityUseCase(t *testing.T) {
	weights := &mockWeightRepository{
		SiblingWeightsFunc: func(ctx context.Context, scope weight.Scope, excludingID uint) ([]weight.Sibling, error) {
			assert.Equal(t, weight.ActivityScope(2), scope)
			return siblings("60"), nil
		},
	}
	uc := NewCreateActivityUseCase(newTestWriter(&mockAuthorizer{}, &mockTransactor{}, weights), &mockActivityRepository{})

	result, err := uc.Execute(context.Background(), CreateActivityCommand{
		Principal: planner, InitiativeID: 2, Name: "Train staff", Weight: d("5"), Quarters: []string{"Q1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, result.SelectedMonths)

	_, err = uc.Execute(context.Background(), CreateActivityCommand{
		Principal: planner, InitiativeID: 2, Name: "Train staff", Weight: d("6"), Quarters: []string{"Q1"},
	})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), CreateActivityCommand{
		Principal: planner, InitiativeID: 2, Name: "Train staff", Weight: d("1"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestDeleteActivityUseCase_Forbidden(t *testing.T) {
	deleted := false
	auth := &mockAuthorizer{
		AuthorizeFunc: func(ctx context.Context, p access.Principal, a access.Action, orgID uint) error {
			assert.Equal(t, access.ActionNodeWrite, a)
			return access.Denied(a)
		},
	}
	repo := &mockActivityRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	uc := NewDeleteActivityUseCase(newTestWriter(auth, &mockTransactor{}, &mockWeightRepository{}), repo)

	err := uc.Execute(context.Background(), DeleteNodeCommand{Principal: planner, ID: 1})
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, deleted)
}
