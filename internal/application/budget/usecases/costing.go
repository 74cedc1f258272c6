package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stratplan/internal/application/budget/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/budget"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

type ListCostingAssumptionsQuery struct {
	ActivityType string
	Location     string
}

type ListCostingAssumptionsUseCase struct {
	repo   budget.CostingRepository
	logger logger.Interface
}

func NewListCostingAssumptionsUseCase(repo budget.CostingRepository, logger logger.Interface) *ListCostingAssumptionsUseCase {
	return &ListCostingAssumptionsUseCase{repo: repo, logger: logger}
}

func (uc *ListCostingAssumptionsUseCase) Execute(ctx context.Context, query ListCostingAssumptionsQuery) ([]*dto.CostingAssumptionDTO, error) {
	var filter budget.CostingFilter
	if query.ActivityType != "" {
		at := budget.ActivityType(query.ActivityType)
		if !at.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid activity type %q", query.ActivityType))
		}
		filter.ActivityType = &at
	}
	if query.Location != "" {
		loc := budget.Location(query.Location)
		if !loc.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid location %q", query.Location))
		}
		filter.Location = &loc
	}

	items, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list costing assumptions", "error", err)
		return nil, err
	}
	return dto.ToCostingAssumptionDTOs(items), nil
}

// CostingEntry is one assumption as supplied by a request or a seed file.
type CostingEntry struct {
	ActivityType string
	Location     string
	CostType     string
	Amount       decimal.Decimal
	Description  string
}

func (e CostingEntry) key() budget.CostingKey {
	return budget.CostingKey{
		ActivityType: budget.ActivityType(e.ActivityType),
		Location:     budget.Location(e.Location),
		CostType:     budget.CostType(e.CostType),
	}
}

type UpsertCostingAssumptionCommand struct {
	Principal access.Principal
	Entry     CostingEntry
}

// UpsertCostingAssumptionUseCase sets the amount for a (type, location,
// cost type) key, creating the assumption when it does not exist.
type UpsertCostingAssumptionUseCase struct {
	authorizer access.Authorizer
	txMgr      db.Transactor
	repo       budget.CostingRepository
	logger     logger.Interface
}

func NewUpsertCostingAssumptionUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	repo budget.CostingRepository,
	logger logger.Interface,
) *UpsertCostingAssumptionUseCase {
	return &UpsertCostingAssumptionUseCase{
		authorizer: authorizer,
		txMgr:      txMgr,
		repo:       repo,
		logger:     logger,
	}
}

func (uc *UpsertCostingAssumptionUseCase) Execute(ctx context.Context, cmd UpsertCostingAssumptionCommand) (*dto.CostingAssumptionDTO, error) {
	if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionCostingWrite, 0); err != nil {
		return nil, err
	}

	var saved *budget.CostingAssumption
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, _, err = upsertCosting(ctx, uc.repo, cmd.Entry)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to save costing assumption", "error", err)
		return nil, err
	}

	uc.logger.Infow("costing assumption saved", "id", saved.ID(), "user_id", cmd.Principal.UserID)
	return dto.ToCostingAssumptionDTO(saved), nil
}

// ImportCostingAssumptionsUseCase loads a batch of assumptions in one
// transaction. It backs the seed command and is not exposed over HTTP.
type ImportCostingAssumptionsUseCase struct {
	txMgr  db.Transactor
	repo   budget.CostingRepository
	logger logger.Interface
}

func NewImportCostingAssumptionsUseCase(txMgr db.Transactor, repo budget.CostingRepository, logger logger.Interface) *ImportCostingAssumptionsUseCase {
	return &ImportCostingAssumptionsUseCase{txMgr: txMgr, repo: repo, logger: logger}
}

func (uc *ImportCostingAssumptionsUseCase) Execute(ctx context.Context, entries []CostingEntry) (*dto.ImportResultDTO, error) {
	result := &dto.ImportResultDTO{}

	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, entry := range entries {
			_, created, err := upsertCosting(ctx, uc.repo, entry)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("costing import aborted", "error", err)
		return nil, err
	}

	uc.logger.Infow("costing assumptions imported", "created", result.Created, "updated", result.Updated)
	return result, nil
}

func upsertCosting(ctx context.Context, repo budget.CostingRepository, entry CostingEntry) (*budget.CostingAssumption, bool, error) {
	key := entry.key()
	if err := key.Validate(); err != nil {
		return nil, false, errors.NewValidationError(err.Error())
	}

	existing, err := repo.GetByKey(ctx, key)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		if err := existing.SetAmount(entry.Amount, entry.Description); err != nil {
			return nil, false, asValidation(err)
		}
		return existing, false, repo.Update(ctx, existing)
	}

	assumption, err := budget.NewCostingAssumption(key, entry.Amount, entry.Description)
	if err != nil {
		return nil, false, asValidation(err)
	}
	return assumption, true, repo.Create(ctx, assumption)
}

// asValidation keeps AppErrors and turns plain domain errors into
// validation errors.
func asValidation(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}
