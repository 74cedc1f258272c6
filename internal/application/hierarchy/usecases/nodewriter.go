package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"stratplan/internal/domain/access"
	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
)

// NodeWriter is shared by every node mutation: the planner guard, the
// transaction and the quota check against persisted siblings.
type NodeWriter struct {
	authorizer access.Authorizer
	txMgr      db.Transactor
	weights    weight.Repository
	ledger     *weight.Ledger
	logger     logger.Interface
}

func NewNodeWriter(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	weights weight.Repository,
	logger logger.Interface,
) *NodeWriter {
	return &NodeWriter{
		authorizer: authorizer,
		txMgr:      txMgr,
		weights:    weights,
		ledger:     weight.NewLedger(weights),
		logger:     logger,
	}
}

func (w *NodeWriter) authorize(ctx context.Context, principal access.Principal) error {
	if err := w.authorizer.Authorize(ctx, principal, access.ActionNodeWrite, 0); err != nil {
		w.logger.Warnw("node write denied", "user_id", principal.UserID, "error", err)
		return err
	}
	return nil
}

// inTx runs fn in one transaction so the sibling read, the check and the
// write commit together.
func (w *NodeWriter) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return w.txMgr.RunInTransaction(ctx, fn)
}

// admit checks candidate against the siblings of scope. Scopes without a
// parent ceiling still need their parent to exist.
func (w *NodeWriter) admit(ctx context.Context, scope weight.Scope, candidate decimal.Decimal, excludingID uint) error {
	if scope.ParentID != 0 && !scope.HasParentCeiling() {
		if _, err := w.weights.ParentWeight(ctx, scope); err != nil {
			return err
		}
	}

	alloc, err := w.ledger.ValidateQuota(ctx, scope, candidate, excludingID)
	if err != nil {
		w.logger.Warnw("weight quota rejected",
			"scope", scope.String(),
			"candidate", candidate.String(),
			"excluding_id", excludingID,
			"error", err,
		)
		return err
	}

	w.logger.Debugw("weight quota admitted",
		"scope", scope.String(),
		"new_total", alloc.NewTotal.String(),
		"ceiling", alloc.Ceiling.String(),
	)
	return nil
}

// fitChildren rejects a new parent weight that the stored children of
// childScope already exceed.
func (w *NodeWriter) fitChildren(ctx context.Context, childScope weight.Scope, newWeight decimal.Decimal) error {
	if err := w.ledger.ValidateChildren(ctx, childScope, newWeight); err != nil {
		w.logger.Warnw("parent weight below children total",
			"scope", childScope.String(),
			"new_weight", newWeight.String(),
			"error", err,
		)
		return err
	}
	return nil
}

// asValidation keeps AppErrors and turns structural domain errors into
// validation errors.
func asValidation(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}
