package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratplan/internal/application/plan/usecases"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// PlanUseCases groups the use cases behind PlanHandler.
type PlanUseCases struct {
	Create      createPlanUseCase
	Update      updatePlanUseCase
	Delete      deletePlanUseCase
	Submit      submitPlanUseCase
	Approve     reviewPlanUseCase
	Reject      reviewPlanUseCase
	List        listPlansUseCase
	GetDetail   getPlanDetailUseCase
	ListReviews listReviewsUseCase
}

type PlanHandler struct {
	uc     PlanUseCases
	logger logger.Interface
}

func NewPlanHandler(uc PlanUseCases, logger logger.Interface) *PlanHandler {
	return &PlanHandler{uc: uc, logger: logger}
}

type PlanRequest struct {
	OrganizationID uint   `json:"organization"`
	Type           string `json:"type" binding:"required"`
	ExecutiveName  string `json:"executive_name" binding:"max=255"`
	ObjectiveID    *uint  `json:"strategic_objective"`
	ProgramID      *uint  `json:"program"`
	SubProgramID   *uint  `json:"subprogram"`
	FiscalYear     string `json:"fiscal_year" binding:"required,max=10"`
	FromDate       string `json:"from_date" binding:"required"`
	ToDate         string `json:"to_date" binding:"required"`
}

func (r PlanRequest) input() usecases.PlanInput {
	return usecases.PlanInput{
		Type:          r.Type,
		ExecutiveName: r.ExecutiveName,
		ObjectiveID:   r.ObjectiveID,
		ProgramID:     r.ProgramID,
		SubProgramID:  r.SubProgramID,
		FiscalYear:    r.FiscalYear,
		FromDate:      r.FromDate,
		ToDate:        r.ToDate,
	}
}

type ReviewRequest struct {
	Feedback string `json:"feedback"`
}

// List returns the plans visible to the caller, filtered by ?status= and ?organization=.
func (h *PlanHandler) List(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	orgID, ok := optionalQueryID(c, "organization")
	if !ok {
		return
	}

	result, err := h.uc.List.Execute(c.Request.Context(), usecases.ListPlansQuery{
		Principal:      principal,
		Status:         c.Query("status"),
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get returns the plan with its strategy subtree and reviews.
func (h *PlanHandler) Get(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "plan")
	if !ok {
		return
	}

	result, err := h.uc.GetDetail.Execute(c.Request.Context(), usecases.GetPlanQuery{Principal: principal, PlanID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) Create(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req PlanRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Principal:      principal,
		OrganizationID: req.OrganizationID,
		Input:          req.input(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) Update(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "plan")
	if !ok {
		return
	}
	var req PlanRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.Update.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		Principal: principal,
		PlanID:    id,
		Input:     req.input(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "plan")
	if !ok {
		return
	}
	if err := h.uc.Delete.Execute(c.Request.Context(), usecases.DeletePlanCommand{Principal: principal, PlanID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *PlanHandler) Submit(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "plan")
	if !ok {
		return
	}

	result, err := h.uc.Submit.Execute(c.Request.Context(), usecases.SubmitPlanCommand{Principal: principal, PlanID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("plan submitted", "plan_id", id, "user_id", principal.UserID)
	utils.SuccessResponse(c, http.StatusOK, "Plan submitted for review", result)
}

func (h *PlanHandler) Approve(c *gin.Context) {
	h.review(c, h.uc.Approve, "Plan approved")
}

func (h *PlanHandler) Reject(c *gin.Context) {
	h.review(c, h.uc.Reject, "Plan rejected")
}

func (h *PlanHandler) review(c *gin.Context, uc reviewPlanUseCase, message string) {
	principal, id, ok := principalAndID(c, "id", "plan")
	if !ok {
		return
	}
	var req ReviewRequest
	// feedback is optional on approval, so an empty body is accepted
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.ReviewPlanCommand{
		Principal: principal,
		PlanID:    id,
		Feedback:  req.Feedback,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ListReviews returns the reviews visible to the caller, optionally for ?plan=.
func (h *PlanHandler) ListReviews(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	planID, ok := optionalQueryID(c, "plan")
	if !ok {
		return
	}

	result, err := h.uc.ListReviews.Execute(c.Request.Context(), usecases.ListReviewsQuery{Principal: principal, PlanID: planID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
