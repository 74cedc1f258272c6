package dto

import (
	"time"

	hierarchydto "stratplan/internal/application/hierarchy/dto"
	"stratplan/internal/domain/plan"
	"stratplan/internal/shared/biztime"
)

type PlanDTO struct {
	ID             uint       `json:"id"`
	OrganizationID uint       `json:"organization"`
	PlannerID      uint       `json:"planner"`
	PlannerName    string     `json:"planner_name"`
	Type           string     `json:"type"`
	ExecutiveName  string     `json:"executive_name"`
	ObjectiveID    *uint      `json:"strategic_objective"`
	ProgramID      *uint      `json:"program"`
	SubProgramID   *uint      `json:"subprogram"`
	FiscalYear     string     `json:"fiscal_year"`
	FromDate       string     `json:"from_date"`
	ToDate         string     `json:"to_date"`
	Status         string     `json:"status"`
	SubmittedAt    *time.Time `json:"submitted_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ReviewDTO carries the feedback both as written and rendered to
// sanitized HTML.
type ReviewDTO struct {
	ID           uint      `json:"id"`
	PlanID       uint      `json:"plan"`
	EvaluatorID  uint      `json:"evaluator"`
	Status       string    `json:"status"`
	Feedback     string    `json:"feedback"`
	FeedbackHTML string    `json:"feedback_html"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// PlanDetailDTO is a plan with the part of the strategy tree it covers and
// its review history.
type PlanDetailDTO struct {
	PlanDTO
	Objective   *hierarchydto.ObjectiveDTO            `json:"objective"`
	Initiatives []*hierarchydto.InitiativeCompleteDTO `json:"initiatives"`
	Reviews     []*ReviewDTO                          `json:"reviews"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	d := p.Details()
	return &PlanDTO{
		ID:             p.ID(),
		OrganizationID: p.OrganizationID(),
		PlannerID:      p.PlannerID(),
		PlannerName:    p.PlannerName(),
		Type:           d.Type.String(),
		ExecutiveName:  d.ExecutiveName,
		ObjectiveID:    d.Scope.ObjectiveID,
		ProgramID:      d.Scope.ProgramID,
		SubProgramID:   d.Scope.SubProgramID,
		FiscalYear:     d.FiscalYear,
		FromDate:       biztime.FormatDate(d.FromDate),
		ToDate:         biztime.FormatDate(d.ToDate),
		Status:         p.Status().String(),
		SubmittedAt:    p.SubmittedAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	out := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}

func ToReviewDTO(r *plan.Review, feedbackHTML string) *ReviewDTO {
	if r == nil {
		return nil
	}
	return &ReviewDTO{
		ID:           r.ID(),
		PlanID:       r.PlanID(),
		EvaluatorID:  r.EvaluatorID(),
		Status:       r.Status().String(),
		Feedback:     r.Feedback(),
		FeedbackHTML: feedbackHTML,
		ReviewedAt:   r.ReviewedAt(),
	}
}
