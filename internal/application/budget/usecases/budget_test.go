package usecases

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/shared/errors"
)

func decimalFrom(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amount(s string) *decimal.Decimal {
	v := decimalFrom(s)
	return &v
}

func TestUpdateActivityBudgetUseCase_GetOrCreate(t *testing.T) {
	budgets := newMockBudgetRepository()
	uc := NewUpdateActivityBudgetUseCase(&mockAuthorizer{}, &mockTransactor{}, &mockActivityRepository{}, budgets, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{
		Principal:  planner,
		ActivityID: 9,
		Patch: budget.Patch{
			EstimatedCostNoTool: amount("500"),
			GovernmentTreasury:  amount("300"),
			TrainingDetails:     json.RawMessage(`{"days":3}`),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, budgets.creates)
	assert.Equal(t, "Train staff", result.ActivityName)
	assert.Equal(t, "WITHOUT_TOOL", result.BudgetCalculationType)
	assert.True(t, decimalFrom("200").Equal(result.FundingGap))

	result, err = uc.Execute(context.Background(), UpdateActivityBudgetCommand{
		Principal:  planner,
		ActivityID: 9,
		Patch:      budget.Patch{PartnersFunding: amount("200")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, budgets.creates)
	assert.Equal(t, 1, budgets.updates)
	assert.True(t, decimal.Zero.Equal(result.FundingGap))
	assert.JSONEq(t, `{"days":3}`, string(result.TrainingDetails))
}

func TestUpdateActivityBudgetUseCase_FundingExceeded(t *testing.T) {
	budgets := newMockBudgetRepository()
	uc := NewUpdateActivityBudgetUseCase(&mockAuthorizer{}, &mockTransactor{}, &mockActivityRepository{}, budgets, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{
		Principal:  planner,
		ActivityID: 9,
		Patch: budget.Patch{
			EstimatedCostNoTool: amount("500"),
			GovernmentTreasury:  amount("300"),
			SDGFunding:          amount("210"),
		},
	})
	require.Error(t, err)

	var fundingErr *budget.FundingExceededError
	require.True(t, stderrors.As(err, &fundingErr))
	assert.Equal(t, "Total funding (510.00) cannot exceed estimated cost (500.00)", fundingErr.Message)
	assert.Equal(t, 0, budgets.creates)
}

func TestUpdateActivityBudgetUseCase_ToolCostSelection(t *testing.T) {
	budgets := newMockBudgetRepository()
	uc := NewUpdateActivityBudgetUseCase(&mockAuthorizer{}, &mockTransactor{}, &mockActivityRepository{}, budgets, &mockLogger{})
	withTool := budget.CalculationWithTool

	// The cost without tool is ignored once the calculation uses the tool.
	result, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{
		Principal:  planner,
		ActivityID: 2,
		Patch: budget.Patch{
			CalculationType:       &withTool,
			EstimatedCostWithTool: amount("1000"),
			EstimatedCostNoTool:   amount("10"),
			OtherFunding:          amount("1000"),
		},
	})
	require.NoError(t, err)
	assert.True(t, decimalFrom("1000").Equal(result.EstimatedCost))
}

func TestUpdateActivityBudgetUseCase_Guards(t *testing.T) {
	t.Run("not a planner", func(t *testing.T) {
		auth := &mockAuthorizer{
			AuthorizeFunc: func(ctx context.Context, p access.Principal, a access.Action, orgID uint) error {
				return access.Denied(a)
			},
		}
		uc := NewUpdateActivityBudgetUseCase(auth, &mockTransactor{}, &mockActivityRepository{}, newMockBudgetRepository(), &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{Principal: planner, ActivityID: 1})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing activity", func(t *testing.T) {
		activities := &mockActivityRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*hierarchy.MainActivity, error) {
				return nil, errors.NewNotFoundError("main activity not found")
			},
		}
		uc := NewUpdateActivityBudgetUseCase(&mockAuthorizer{}, &mockTransactor{}, activities, newMockBudgetRepository(), &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{Principal: planner, ActivityID: 1})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewUpdateActivityBudgetUseCase(&mockAuthorizer{}, &mockTransactor{}, &mockActivityRepository{}, newMockBudgetRepository(), &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateActivityBudgetCommand{
			Principal:  planner,
			ActivityID: 1,
			Patch:      budget.Patch{EstimatedCostNoTool: amount("-1")},
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpsertCostingAssumptionUseCase(t *testing.T) {
	repo := newMockCostingRepository()
	admin := access.Principal{UserID: 1}
	var gotAction access.Action
	auth := &mockAuthorizer{
		AuthorizeFunc: func(ctx context.Context, p access.Principal, a access.Action, orgID uint) error {
			gotAction = a
			return nil
		},
	}
	uc := NewUpsertCostingAssumptionUseCase(auth, &mockTransactor{}, repo, &mockLogger{})

	entry := CostingEntry{ActivityType: "Training", Location: "Adama", CostType: "per_diem", Amount: decimalFrom("1200")}
	first, err := uc.Execute(context.Background(), UpsertCostingAssumptionCommand{Principal: admin, Entry: entry})
	require.NoError(t, err)
	assert.Equal(t, access.ActionCostingWrite, gotAction)

	entry.Amount = decimalFrom("1300")
	second, err := uc.Execute(context.Background(), UpsertCostingAssumptionCommand{Principal: admin, Entry: entry})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, decimalFrom("1300").Equal(second.Amount))
	assert.Len(t, repo.items, 1)

	entry.Location = "Nowhere"
	_, err = uc.Execute(context.Background(), UpsertCostingAssumptionCommand{Principal: admin, Entry: entry})
	assert.True(t, errors.IsValidationError(err))
}

func TestImportCostingAssumptionsUseCase(t *testing.T) {
	repo := newMockCostingRepository()
	uc := NewImportCostingAssumptionsUseCase(&mockTransactor{}, repo, &mockLogger{})

	entries := []CostingEntry{
		{ActivityType: "Training", Location: "Addis_Ababa", CostType: "per_diem", Amount: decimalFrom("1200")},
		{ActivityType: "Training", Location: "Addis_Ababa", CostType: "venue", Amount: decimalFrom("5000")},
		{ActivityType: "Training", Location: "Addis_Ababa", CostType: "per_diem", Amount: decimalFrom("1250")},
	}
	result, err := uc.Execute(context.Background(), entries)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Updated)

	_, err = uc.Execute(context.Background(), []CostingEntry{{ActivityType: "Dance", Location: "Adama", CostType: "venue"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestListCostingAssumptionsUseCase_Filters(t *testing.T) {
	repo := newMockCostingRepository()
	repo.ListFunc = func(ctx context.Context, filter budget.CostingFilter) ([]*budget.CostingAssumption, error) {
		require.NotNil(t, filter.ActivityType)
		assert.Equal(t, budget.ActivityWorkshop, *filter.ActivityType)
		assert.Nil(t, filter.Location)
		return nil, nil
	}
	uc := NewListCostingAssumptionsUseCase(repo, &mockLogger{})

	items, err := uc.Execute(context.Background(), ListCostingAssumptionsQuery{ActivityType: "Workshop"})
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = uc.Execute(context.Background(), ListCostingAssumptionsQuery{Location: "Mars"})
	assert.True(t, errors.IsValidationError(err))
}
