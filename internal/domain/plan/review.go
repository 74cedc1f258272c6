package plan

import (
	"fmt"
	"time"

	vo "stratplan/internal/domain/plan/valueobjects"
)

// Review is the immutable record of an evaluator's decision.
type Review struct {
	id          uint
	planID      uint
	evaluatorID uint
	status      vo.ReviewStatus
	feedback    string
	reviewedAt  time.Time
}

// NewReview creates a review. evaluatorID is the evaluator's membership ID.
func NewReview(planID, evaluatorID uint, status vo.ReviewStatus, feedback string, reviewedAt time.Time) (*Review, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan is required")
	}
	if evaluatorID == 0 {
		return nil, fmt.Errorf("evaluator is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid review status %q", status)
	}
	return &Review{
		planID:      planID,
		evaluatorID: evaluatorID,
		status:      status,
		feedback:    feedback,
		reviewedAt:  reviewedAt,
	}, nil
}

// ReconstructReview rebuilds a stored review. evaluatorID is 0 when the
// evaluator membership has since been revoked.
func ReconstructReview(id, planID, evaluatorID uint, status vo.ReviewStatus, feedback string, reviewedAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	return &Review{
		id:          id,
		planID:      planID,
		evaluatorID: evaluatorID,
		status:      status,
		feedback:    feedback,
		reviewedAt:  reviewedAt,
	}, nil
}

func (r *Review) ID() uint                { return r.id }
func (r *Review) PlanID() uint            { return r.planID }
func (r *Review) EvaluatorID() uint       { return r.evaluatorID }
func (r *Review) Status() vo.ReviewStatus { return r.status }
func (r *Review) Feedback() string        { return r.feedback }
func (r *Review) ReviewedAt() time.Time   { return r.reviewedAt }

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}
