package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stratplan/internal/application/budget/usecases"
	"stratplan/internal/domain/budget"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

type BudgetHandler struct {
	updateBudgetUC updateActivityBudgetUseCase
	getBudgetUC    getActivityBudgetUseCase
	listCostingUC  listCostingAssumptionsUseCase
	upsertCostUC   upsertCostingAssumptionUseCase
	logger         logger.Interface
}

func NewBudgetHandler(
	updateBudgetUC updateActivityBudgetUseCase,
	getBudgetUC getActivityBudgetUseCase,
	listCostingUC listCostingAssumptionsUseCase,
	upsertCostUC upsertCostingAssumptionUseCase,
	logger logger.Interface,
) *BudgetHandler {
	return &BudgetHandler{
		updateBudgetUC: updateBudgetUC,
		getBudgetUC:    getBudgetUC,
		listCostingUC:  listCostingUC,
		upsertCostUC:   upsertCostUC,
		logger:         logger,
	}
}

// UpdateBudgetRequest is a partial update: absent fields keep their value.
type UpdateBudgetRequest struct {
	BudgetCalculationType *string          `json:"budget_calculation_type" binding:"omitempty,oneof=WITH_TOOL WITHOUT_TOOL"`
	ActivityType          *string          `json:"activity_type"`
	EstimatedCostWithTool *decimal.Decimal `json:"estimated_cost_with_tool"`
	EstimatedCostNoTool   *decimal.Decimal `json:"estimated_cost_without_tool"`
	GovernmentTreasury    *decimal.Decimal `json:"government_treasury"`
	SDGFunding            *decimal.Decimal `json:"sdg_funding"`
	PartnersFunding       *decimal.Decimal `json:"partners_funding"`
	OtherFunding          *decimal.Decimal `json:"other_funding"`
	TrainingDetails       json.RawMessage  `json:"training_details"`
	MeetingDetails        json.RawMessage  `json:"meeting_workshop_details"`
	ProcurementDetails    json.RawMessage  `json:"procurement_details"`
	PrintingDetails       json.RawMessage  `json:"printing_details"`
	SupervisionDetails    json.RawMessage  `json:"supervision_details"`
}

func (r UpdateBudgetRequest) patch() budget.Patch {
	p := budget.Patch{
		EstimatedCostWithTool: r.EstimatedCostWithTool,
		EstimatedCostNoTool:   r.EstimatedCostNoTool,
		GovernmentTreasury:    r.GovernmentTreasury,
		SDGFunding:            r.SDGFunding,
		PartnersFunding:       r.PartnersFunding,
		OtherFunding:          r.OtherFunding,
		TrainingDetails:       r.TrainingDetails,
		MeetingDetails:        r.MeetingDetails,
		ProcurementDetails:    r.ProcurementDetails,
		PrintingDetails:       r.PrintingDetails,
		SupervisionDetails:    r.SupervisionDetails,
	}
	if r.BudgetCalculationType != nil {
		ct := budget.CalculationType(*r.BudgetCalculationType)
		p.CalculationType = &ct
	}
	if r.ActivityType != nil {
		at := budget.ActivityType(*r.ActivityType)
		p.ActivityType = &at
	}
	return p
}

type CostingAssumptionRequest struct {
	ActivityType string          `json:"activity_type" binding:"required"`
	Location     string          `json:"location" binding:"required"`
	CostType     string          `json:"cost_type" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, ok := pathID(c, "id", "main activity")
	if !ok {
		return
	}
	result, err := h.getBudgetUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateBudget creates the activity budget on first use, applies the patch
// and rejects funding above the estimated cost.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "main activity")
	if !ok {
		return
	}
	var req UpdateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateBudgetUC.Execute(c.Request.Context(), usecases.UpdateActivityBudgetCommand{
		Principal:  principal,
		ActivityID: id,
		Patch:      req.patch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Budget updated successfully", result)
}

// ListCostingAssumptions filters by ?activity_type= and ?location=.
func (h *BudgetHandler) ListCostingAssumptions(c *gin.Context) {
	result, err := h.listCostingUC.Execute(c.Request.Context(), usecases.ListCostingAssumptionsQuery{
		ActivityType: c.Query("activity_type"),
		Location:     c.Query("location"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BudgetHandler) UpsertCostingAssumption(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req CostingAssumptionRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.upsertCostUC.Execute(c.Request.Context(), usecases.UpsertCostingAssumptionCommand{
		Principal: principal,
		Entry: usecases.CostingEntry{
			ActivityType: req.ActivityType,
			Location:     req.Location,
			CostType:     req.CostType,
			Amount:       req.Amount,
			Description:  req.Description,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Costing assumption saved", result)
}
