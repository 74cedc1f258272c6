package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/domain/hierarchy"
	"stratplan/internal/shared/utils"
)

// InitiativeRequest names exactly one parent; on update an empty parent
// keeps the current one.
type InitiativeRequest struct {
	ObjectiveID  *uint           `json:"strategic_objective"`
	ProgramID    *uint           `json:"program"`
	SubProgramID *uint           `json:"subprogram"`
	Name         string          `json:"name" binding:"required,max=255"`
	Weight       decimal.Decimal `json:"weight"`
}

func (r InitiativeRequest) parent() usecases.InitiativeParentRef {
	return usecases.InitiativeParentRef{
		ObjectiveID:  r.ObjectiveID,
		ProgramID:    r.ProgramID,
		SubProgramID: r.SubProgramID,
	}
}

type MeasureRequest struct {
	InitiativeID uint            `json:"initiative"`
	Name         string          `json:"name" binding:"required,max=255"`
	Weight       decimal.Decimal `json:"weight"`
	Baseline     string          `json:"baseline"`
	Q1Target     decimal.Decimal `json:"q1_target"`
	Q2Target     decimal.Decimal `json:"q2_target"`
	Q3Target     decimal.Decimal `json:"q3_target"`
	Q4Target     decimal.Decimal `json:"q4_target"`
	AnnualTarget decimal.Decimal `json:"annual_target"`
}

func (r MeasureRequest) targets() hierarchy.Targets {
	return hierarchy.Targets{
		Q1:     r.Q1Target,
		Q2:     r.Q2Target,
		Q3:     r.Q3Target,
		Q4:     r.Q4Target,
		Annual: r.AnnualTarget,
	}
}

type ActivityRequest struct {
	InitiativeID   uint            `json:"initiative"`
	Name           string          `json:"name" binding:"required,max=255"`
	Weight         decimal.Decimal `json:"weight"`
	SelectedMonths []string        `json:"selected_months"`
	SelectedQtrs   []string        `json:"selected_quarters"`
}

// ListInitiatives filters by ?objective=, ?program= or ?subprogram=.
func (h *HierarchyHandler) ListInitiatives(c *gin.Context) {
	var filter hierarchy.InitiativeFilter
	var ok bool
	if filter.ObjectiveID, ok = optionalQueryID(c, "objective"); !ok {
		return
	}
	if filter.ProgramID, ok = optionalQueryID(c, "program"); !ok {
		return
	}
	if filter.SubProgramID, ok = optionalQueryID(c, "subprogram"); !ok {
		return
	}

	result, err := h.uc.Nodes.ListInitiatives(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetInitiative(c *gin.Context) {
	id, ok := pathID(c, "id", "strategic initiative")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetInitiative(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetInitiativeComplete returns the initiative with its measures and its
// activities, each activity carrying its budget.
func (h *HierarchyHandler) GetInitiativeComplete(c *gin.Context) {
	id, ok := pathID(c, "id", "strategic initiative")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetInitiativeComplete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateInitiative(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req InitiativeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateInitiative.Execute(c.Request.Context(), usecases.CreateInitiativeCommand{
		Principal: principal,
		Parent:    req.parent(),
		Name:      req.Name,
		Weight:    req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Strategic initiative created successfully")
}

func (h *HierarchyHandler) UpdateInitiative(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "strategic initiative")
	if !ok {
		return
	}
	var req InitiativeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateInitiative.Execute(c.Request.Context(), usecases.UpdateInitiativeCommand{
		Principal: principal,
		ID:        id,
		Parent:    req.parent(),
		Name:      req.Name,
		Weight:    req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Strategic initiative updated successfully", result)
}

func (h *HierarchyHandler) DeleteInitiative(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteInitiative, "strategic initiative")
}

func (h *HierarchyHandler) ListMeasures(c *gin.Context) {
	initiativeID, ok := optionalQueryID(c, "initiative")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.ListMeasures(c.Request.Context(), valueOrZero(initiativeID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetMeasure(c *gin.Context) {
	id, ok := pathID(c, "id", "performance measure")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetMeasure(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateMeasure(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req MeasureRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateMeasure.Execute(c.Request.Context(), usecases.CreateMeasureCommand{
		Principal:    principal,
		InitiativeID: req.InitiativeID,
		Name:         req.Name,
		Weight:       req.Weight,
		Baseline:     req.Baseline,
		Targets:      req.targets(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Performance measure created successfully")
}

func (h *HierarchyHandler) UpdateMeasure(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "performance measure")
	if !ok {
		return
	}
	var req MeasureRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateMeasure.Execute(c.Request.Context(), usecases.UpdateMeasureCommand{
		Principal: principal,
		ID:        id,
		Name:      req.Name,
		Weight:    req.Weight,
		Baseline:  req.Baseline,
		Targets:   req.targets(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Performance measure updated successfully", result)
}

func (h *HierarchyHandler) DeleteMeasure(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteMeasure, "performance measure")
}

func (h *HierarchyHandler) ListActivities(c *gin.Context) {
	initiativeID, ok := optionalQueryID(c, "initiative")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.ListActivities(c.Request.Context(), valueOrZero(initiativeID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetActivity(c *gin.Context) {
	id, ok := pathID(c, "id", "main activity")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetActivity(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateActivity(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req ActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateActivity.Execute(c.Request.Context(), usecases.CreateActivityCommand{
		Principal:    principal,
		InitiativeID: req.InitiativeID,
		Name:         req.Name,
		Weight:       req.Weight,
		Months:       req.SelectedMonths,
		Quarters:     req.SelectedQtrs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Main activity created successfully")
}

func (h *HierarchyHandler) UpdateActivity(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "main activity")
	if !ok {
		return
	}
	var req ActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateActivity.Execute(c.Request.Context(), usecases.UpdateActivityCommand{
		Principal: principal,
		ID:        id,
		Name:      req.Name,
		Weight:    req.Weight,
		Months:    req.SelectedMonths,
		Quarters:  req.SelectedQtrs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Main activity updated successfully", result)
}

func (h *HierarchyHandler) DeleteActivity(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteActivity, "main activity")
}
