package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

// GetWeightSummaryUseCase reports the sibling total of one scope against
// its ceiling. Totals are recomputed on every call.
type GetWeightSummaryUseCase struct {
	weights weight.Repository
	ledger  *weight.Ledger
	logger  logger.Interface
}

func NewGetWeightSummaryUseCase(weights weight.Repository, logger logger.Interface) *GetWeightSummaryUseCase {
	return &GetWeightSummaryUseCase{
		weights: weights,
		ledger:  weight.NewLedger(weights),
		logger:  logger,
	}
}

func (uc *GetWeightSummaryUseCase) Execute(ctx context.Context, scope weight.Scope) (*dto.WeightSummaryDTO, error) {
	if err := scope.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var parentWeight *decimal.Decimal
	if scope.ParentID != 0 {
		w, err := uc.weights.ParentWeight(ctx, scope)
		if err != nil {
			return nil, err
		}
		parentWeight = &w
	}

	summary, err := uc.ledger.Summary(ctx, scope)
	if err != nil {
		uc.logger.Errorw("failed to compute weight summary", "scope", scope.String(), "error", err)
		return nil, err
	}

	return dto.ToWeightSummaryDTO(summary, parentWeight), nil
}

type ValidateObjectivesTotalCommand struct {
	Principal access.Principal
}

// ValidateObjectivesTotalUseCase checks that the objectives add up to
// exactly 100. Only planners may run it.
type ValidateObjectivesTotalUseCase struct {
	authorizer access.Authorizer
	ledger     *weight.Ledger
	logger     logger.Interface
}

func NewValidateObjectivesTotalUseCase(authorizer access.Authorizer, weights weight.Repository, logger logger.Interface) *ValidateObjectivesTotalUseCase {
	return &ValidateObjectivesTotalUseCase{
		authorizer: authorizer,
		ledger:     weight.NewLedger(weights),
		logger:     logger,
	}
}

func (uc *ValidateObjectivesTotalUseCase) Execute(ctx context.Context, cmd ValidateObjectivesTotalCommand) (*dto.WeightValidationDTO, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionObjectiveValidate, 0); err != nil {
		return nil, err
	}

	summary, err := uc.ledger.Summary(ctx, weight.ObjectiveScope())
	if err != nil {
		return nil, err
	}

	result := &dto.WeightValidationDTO{IsValid: summary.IsValid, Total: summary.Total}
	if summary.IsValid {
		result.Message = "The sum of all strategic objectives weights is exactly 100%."
	} else {
		result.Message = fmt.Sprintf("The sum of all strategic objectives weights must be exactly 100%%. Current total: %s%%", summary.Total)
	}

	uc.logger.Infow("strategic objectives total validated", "total", summary.Total.String(), "is_valid", summary.IsValid)
	return result, nil
}

// ValidateActivitiesWeightUseCase checks that the activities of an
// initiative add up to exactly 65.
type ValidateActivitiesWeightUseCase struct {
	weights weight.Repository
	ledger  *weight.Ledger
	logger  logger.Interface
}

func NewValidateActivitiesWeightUseCase(weights weight.Repository, logger logger.Interface) *ValidateActivitiesWeightUseCase {
	return &ValidateActivitiesWeightUseCase{
		weights: weights,
		ledger:  weight.NewLedger(weights),
		logger:  logger,
	}
}

func (uc *ValidateActivitiesWeightUseCase) Execute(ctx context.Context, initiativeID uint) (*dto.WeightValidationDTO, error) {
	if initiativeID == 0 {
		return nil, errors.NewValidationError("Initiative ID is required")
	}

	scope := weight.ActivityScope(initiativeID)
	if _, err := uc.weights.ParentWeight(ctx, scope); err != nil {
		return nil, err
	}

	summary, err := uc.ledger.Summary(ctx, scope)
	if err != nil {
		return nil, err
	}

	result := &dto.WeightValidationDTO{IsValid: summary.IsValid, Total: summary.Total}
	if summary.IsValid {
		result.Message = "Activities weight validated successfully"
	} else {
		result.Message = fmt.Sprintf("Total weight must be %s%%. Current total: %s%%", weight.ActivityCeiling, summary.Total)
	}
	return result, nil
}
