// Package plan holds the plan workflow: Draft, Submitted, then Approved or
// Rejected, with immutable review records.
package plan

import (
	"fmt"
	"strings"
	"time"

	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/shared/biztime"
	"stratplan/internal/shared/errors"
)

// Scope is the part of the strategy tree a plan covers. At least one of
// the three references is set.
type Scope struct {
	ObjectiveID  *uint
	ProgramID    *uint
	SubProgramID *uint
}

func (s Scope) Validate() error {
	if isSet(s.ObjectiveID) || isSet(s.ProgramID) || isSet(s.SubProgramID) {
		return nil
	}
	return errors.NewValidationError("At least one of strategic objective, program, or subprogram must be specified")
}

func isSet(id *uint) bool {
	return id != nil && *id != 0
}

// Details are the planner-editable fields of a plan.
type Details struct {
	Type          vo.PlanType
	ExecutiveName string
	Scope         Scope
	FiscalYear    string
	FromDate      time.Time
	ToDate        time.Time
}

func (d Details) validate() error {
	if !d.Type.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid plan type %q", d.Type))
	}
	if err := d.Scope.Validate(); err != nil {
		return err
	}
	fy := strings.TrimSpace(d.FiscalYear)
	if fy == "" || len(fy) > 10 {
		return errors.NewValidationError("fiscal year is required and must be at most 10 characters")
	}
	if !d.ToDate.After(d.FromDate) {
		return errors.NewValidationError("End date must be after start date").
			WithData("from_date", biztime.FormatDate(d.FromDate)).
			WithData("to_date", biztime.FormatDate(d.ToDate))
	}
	return nil
}

type Plan struct {
	id             uint
	organizationID uint
	plannerID      uint
	plannerName    string
	details        Details
	status         vo.PlanStatus
	submittedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPlan creates a draft. plannerName is captured from the caller's
// profile at creation and never refreshed.
func NewPlan(organizationID, plannerID uint, plannerName string, details Details) (*Plan, error) {
	if organizationID == 0 {
		return nil, errors.NewValidationError("organization is required")
	}
	if plannerID == 0 || strings.TrimSpace(plannerName) == "" {
		return nil, errors.NewValidationError("planner is required")
	}
	details.FiscalYear = strings.TrimSpace(details.FiscalYear)
	if err := details.validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Plan{
		organizationID: organizationID,
		plannerID:      plannerID,
		plannerName:    plannerName,
		details:        details,
		status:         vo.StatusDraft,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructPlan(
	id, organizationID, plannerID uint,
	plannerName string,
	details Details,
	status vo.PlanStatus,
	submittedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("plan %d has invalid status %q", id, status)
	}
	return &Plan{
		id:             id,
		organizationID: organizationID,
		plannerID:      plannerID,
		plannerName:    plannerName,
		details:        details,
		status:         status,
		submittedAt:    submittedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// UpdateDetails edits a draft.
func (p *Plan) UpdateDetails(details Details) error {
	if p.status != vo.StatusDraft {
		return newTransitionError("edited", p.status)
	}
	details.FiscalYear = strings.TrimSpace(details.FiscalYear)
	if err := details.validate(); err != nil {
		return err
	}
	p.details = details
	p.updatedAt = biztime.NowUTC()
	return nil
}

// EnsureDeletable allows deleting drafts only.
func (p *Plan) EnsureDeletable() error {
	if p.status != vo.StatusDraft {
		return newTransitionError("deleted", p.status)
	}
	return nil
}

// Submit moves a draft to Submitted and stamps submittedAt. The duplicate
// guard needs storage and is checked by the caller.
func (p *Plan) Submit(now time.Time) error {
	if !p.status.CanTransitionTo(vo.StatusSubmitted) {
		return newTransitionError("submitted", p.status)
	}
	if err := p.details.validate(); err != nil {
		return err
	}
	p.status = vo.StatusSubmitted
	submitted := now
	p.submittedAt = &submitted
	p.updatedAt = now
	return nil
}

// Approve records an approval by the evaluator membership. Feedback is optional.
func (p *Plan) Approve(evaluatorID uint, feedback string, now time.Time) (*Review, error) {
	return p.review(vo.ReviewApproved, "approved", evaluatorID, feedback, now)
}

// Reject records a rejection. Feedback is mandatory and checked first.
func (p *Plan) Reject(evaluatorID uint, feedback string, now time.Time) (*Review, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, errors.NewValidationError("Feedback is required when rejecting a plan")
	}
	return p.review(vo.ReviewRejected, "rejected", evaluatorID, feedback, now)
}

func (p *Plan) review(status vo.ReviewStatus, verb string, evaluatorID uint, feedback string, now time.Time) (*Review, error) {
	if !p.status.CanTransitionTo(status.PlanStatus()) {
		return nil, newTransitionError(verb, p.status)
	}
	review, err := NewReview(p.id, evaluatorID, status, feedback, now)
	if err != nil {
		return nil, err
	}
	p.status = status.PlanStatus()
	p.updatedAt = now
	return review, nil
}

func (p *Plan) ID() uint                   { return p.id }
func (p *Plan) OrganizationID() uint       { return p.organizationID }
func (p *Plan) PlannerID() uint            { return p.plannerID }
func (p *Plan) PlannerName() string        { return p.plannerName }
func (p *Plan) Details() Details           { return p.details }
func (p *Plan) Type() vo.PlanType          { return p.details.Type }
func (p *Plan) Scope() Scope               { return p.details.Scope }
func (p *Plan) Status() vo.PlanStatus      { return p.status }
func (p *Plan) SubmittedAt() *time.Time    { return p.submittedAt }
func (p *Plan) CreatedAt() time.Time       { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time       { return p.updatedAt }
func (p *Plan) IsOwnedBy(userID uint) bool { return p.plannerID == userID }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}
