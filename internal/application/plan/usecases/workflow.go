package usecases

import (
	"context"

	"stratplan/internal/application/plan/dto"
	"stratplan/internal/domain/access"
	"stratplan/internal/domain/plan"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/shared/biztime"
	"stratplan/internal/shared/db"
	"stratplan/internal/shared/logger"
)

type SubmitPlanCommand struct {
	Principal access.Principal
	PlanID    uint
}

// SubmitPlanUseCase moves a draft to Submitted. Only one plan per
// (organization, objective) may be submitted or approved at a time; plans
// without an objective are not covered by that guard.
type SubmitPlanUseCase struct {
	authorizer access.Authorizer
	txMgr      db.Transactor
	planRepo   plan.PlanRepository
	logger     logger.Interface
}

func NewSubmitPlanUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	planRepo plan.PlanRepository,
	logger logger.Interface,
) *SubmitPlanUseCase {
	return &SubmitPlanUseCase{
		authorizer: authorizer,
		txMgr:      txMgr,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *SubmitPlanUseCase) Execute(ctx context.Context, cmd SubmitPlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing submit plan use case", "plan_id", cmd.PlanID, "user_id", cmd.Principal.UserID)

	var p *plan.Plan
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = uc.planRepo.GetByID(ctx, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := uc.authorizer.Authorize(ctx, cmd.Principal, access.ActionPlanSubmit, p.OrganizationID()); err != nil {
			return err
		}

		// The status check comes first; the in-memory change is dropped if
		// the duplicate guard fails.
		if err := p.Submit(biztime.NowUTC()); err != nil {
			return err
		}

		if err := ensureSoleActivePlan(ctx, uc.planRepo, p); err != nil {
			return err
		}

		return uc.planRepo.Update(ctx, p)
	})
	if err != nil {
		uc.logger.Warnw("plan submission rejected", "plan_id", cmd.PlanID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan submitted", "plan_id", p.ID(), "organization_id", p.OrganizationID())
	return dto.ToPlanDTO(p), nil
}

// ensureSoleActivePlan fails when another submitted or approved plan of the
// same organization covers p's objective.
func ensureSoleActivePlan(ctx context.Context, planRepo plan.PlanRepository, p *plan.Plan) error {
	objectiveID := p.Scope().ObjectiveID
	if objectiveID == nil || *objectiveID == 0 {
		return nil
	}
	existing, err := planRepo.FindActiveForObjective(ctx, p.OrganizationID(), *objectiveID, p.ID())
	if err != nil {
		return err
	}
	if existing != nil {
		return plan.NewDuplicateSubmissionError(p.OrganizationID(), *objectiveID, existing.ID())
	}
	return nil
}

type ReviewPlanCommand struct {
	Principal access.Principal
	PlanID    uint
	Feedback  string
}

// ReviewPlanUseCase approves or rejects a submitted plan on behalf of an
// evaluator of the plan's organization, recording an immutable review.
// The planner is notified after the commit; a failed notification does not
// undo the review.
type ReviewPlanUseCase struct {
	decision    vo.ReviewStatus
	authorizer  access.Authorizer
	txMgr       db.Transactor
	planRepo    plan.PlanRepository
	reviewRepo  plan.ReviewRepository
	memberships access.MembershipReader
	notifier    ReviewNotifier
	logger      logger.Interface
}

func NewApprovePlanUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	planRepo plan.PlanRepository,
	reviewRepo plan.ReviewRepository,
	memberships access.MembershipReader,
	notifier ReviewNotifier,
	logger logger.Interface,
) *ReviewPlanUseCase {
	return newReviewPlanUseCase(vo.ReviewApproved, authorizer, txMgr, planRepo, reviewRepo, memberships, notifier, logger)
}

func NewRejectPlanUseCase(
	authorizer access.Authorizer,
	txMgr db.Transactor,
	planRepo plan.PlanRepository,
	reviewRepo plan.ReviewRepository,
	memberships access.MembershipReader,
	notifier ReviewNotifier,
	logger logger.Interface,
) *ReviewPlanUseCase {
	return newReviewPlanUseCase(vo.ReviewRejected, authorizer, txMgr, planRepo, reviewRepo, memberships, notifier, logger)
}

func newReviewPlanUseCase(
	decision vo.ReviewStatus,
	authorizer access.Authorizer,
	txMgr db.Transactor,
	planRepo plan.PlanRepository,
	reviewRepo plan.ReviewRepository,
	memberships access.MembershipReader,
	notifier ReviewNotifier,
	logger logger.Interface,
) *ReviewPlanUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &ReviewPlanUseCase{
		decision:    decision,
		authorizer:  authorizer,
		txMgr:       txMgr,
		planRepo:    planRepo,
		reviewRepo:  reviewRepo,
		memberships: memberships,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ReviewPlanUseCase) action() access.Action {
	if uc.decision == vo.ReviewRejected {
		return access.ActionPlanReject
	}
	return access.ActionPlanApprove
}

func (uc *ReviewPlanUseCase) Execute(ctx context.Context, cmd ReviewPlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing review plan use case",
		"plan_id", cmd.PlanID,
		"decision", uc.decision.String(),
		"user_id", cmd.Principal.UserID,
	)

	var (
		p      *plan.Plan
		review *plan.Review
	)
	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		p, err = uc.planRepo.GetByID(ctx, cmd.PlanID)
		if err != nil {
			return err
		}
		if err := uc.authorizer.Authorize(ctx, cmd.Principal, uc.action(), p.OrganizationID()); err != nil {
			return err
		}

		memberships, err := uc.memberships.ListByUser(ctx, cmd.Principal.UserID)
		if err != nil {
			return err
		}
		evaluator, ok := access.FindMembership(memberships, access.RoleEvaluator, p.OrganizationID())
		if !ok {
			return access.Denied(uc.action())
		}

		now := biztime.NowUTC()
		if uc.decision == vo.ReviewRejected {
			review, err = p.Reject(evaluator.ID, cmd.Feedback, now)
		} else {
			review, err = p.Approve(evaluator.ID, cmd.Feedback, now)
		}
		if err != nil {
			return asValidation(err)
		}
		// an approved plan must not sit beside another active plan for the objective
		if uc.decision == vo.ReviewApproved {
			if err := ensureSoleActivePlan(ctx, uc.planRepo, p); err != nil {
				return err
			}
		}

		if err := uc.reviewRepo.Create(ctx, review); err != nil {
			return err
		}
		return uc.planRepo.Update(ctx, p)
	})
	if err != nil {
		uc.logger.Warnw("plan review rejected", "plan_id", cmd.PlanID, "decision", uc.decision.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("plan reviewed", "plan_id", p.ID(), "status", p.Status().String(), "review_id", review.ID())

	if err := uc.notifier.NotifyReviewed(ctx, ReviewNotification{Plan: p, Review: review}); err != nil {
		uc.logger.Warnw("failed to send review notification", "plan_id", p.ID(), "error", err)
	}

	return dto.ToPlanDTO(p), nil
}

// ReviewNotification is what the planner is told once a plan is reviewed.
type ReviewNotification struct {
	Plan   *plan.Plan
	Review *plan.Review
}

// ReviewNotifier delivers review outcomes to the plan's planner.
type ReviewNotifier interface {
	NotifyReviewed(ctx context.Context, n ReviewNotification) error
}

type noopNotifier struct{}

func (noopNotifier) NotifyReviewed(ctx context.Context, n ReviewNotification) error {
	return nil
}
