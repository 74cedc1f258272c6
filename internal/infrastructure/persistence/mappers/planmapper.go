package mappers

import (
	"time"

	"gorm.io/datatypes"

	"stratplan/internal/domain/plan"
	vo "stratplan/internal/domain/plan/valueobjects"
	"stratplan/internal/infrastructure/persistence/models"
)

// PlanMapper converts plans and their reviews.
type PlanMapper interface {
	ToModel(p *plan.Plan) *models.PlanModel
	ToDomain(model *models.PlanModel) (*plan.Plan, error)
	ReviewToModel(r *plan.Review) *models.PlanReviewModel
	ReviewToDomain(model *models.PlanReviewModel) (*plan.Review, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToModel(p *plan.Plan) *models.PlanModel {
	d := p.Details()
	return &models.PlanModel{
		ID:                   p.ID(),
		OrganizationID:       p.OrganizationID(),
		PlannerID:            p.PlannerID(),
		PlannerName:          p.PlannerName(),
		Type:                 d.Type.String(),
		ExecutiveName:        d.ExecutiveName,
		StrategicObjectiveID: d.Scope.ObjectiveID,
		ProgramID:            d.Scope.ProgramID,
		SubProgramID:         d.Scope.SubProgramID,
		FiscalYear:           d.FiscalYear,
		FromDate:             datatypes.Date(d.FromDate),
		ToDate:               datatypes.Date(d.ToDate),
		Status:               p.Status().String(),
		SubmittedAt:          p.SubmittedAt(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
}

func (m *PlanMapperImpl) ToDomain(model *models.PlanModel) (*plan.Plan, error) {
	details := plan.Details{
		Type:          vo.PlanType(model.Type),
		ExecutiveName: model.ExecutiveName,
		Scope: plan.Scope{
			ObjectiveID:  model.StrategicObjectiveID,
			ProgramID:    model.ProgramID,
			SubProgramID: model.SubProgramID,
		},
		FiscalYear: model.FiscalYear,
		FromDate:   dateOf(model.FromDate),
		ToDate:     dateOf(model.ToDate),
	}
	return plan.ReconstructPlan(
		model.ID,
		model.OrganizationID,
		model.PlannerID,
		model.PlannerName,
		details,
		vo.PlanStatus(model.Status),
		model.SubmittedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// dateOf drops the driver's location so calendar dates compare equal
// regardless of the session time zone.
func dateOf(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (m *PlanMapperImpl) ReviewToModel(r *plan.Review) *models.PlanReviewModel {
	return &models.PlanReviewModel{
		ID:          r.ID(),
		PlanID:      r.PlanID(),
		EvaluatorID: nonZero(r.EvaluatorID()),
		Status:      r.Status().String(),
		Feedback:    r.Feedback(),
		ReviewedAt:  r.ReviewedAt(),
	}
}

func (m *PlanMapperImpl) ReviewToDomain(model *models.PlanReviewModel) (*plan.Review, error) {
	return plan.ReconstructReview(
		model.ID,
		model.PlanID,
		orZero(model.EvaluatorID),
		vo.ReviewStatus(model.Status),
		model.Feedback,
		model.ReviewedAt,
	)
}
