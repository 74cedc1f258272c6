package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// HierarchyUseCases groups the write use cases of every node kind and the
// shared read side.
type HierarchyUseCases struct {
	Nodes nodeQuerier

	CreateObjective  createObjectiveUseCase
	UpdateObjective  updateObjectiveUseCase
	DeleteObjective  deleteNodeUseCase
	CreateProgram    createProgramUseCase
	UpdateProgram    updateProgramUseCase
	DeleteProgram    deleteNodeUseCase
	CreateSubProgram createSubProgramUseCase
	UpdateSubProgram updateSubProgramUseCase
	DeleteSubProgram deleteNodeUseCase
	CreateInitiative createInitiativeUseCase
	UpdateInitiative updateInitiativeUseCase
	DeleteInitiative deleteNodeUseCase
	CreateMeasure    createMeasureUseCase
	UpdateMeasure    updateMeasureUseCase
	DeleteMeasure    deleteNodeUseCase
	CreateActivity   createActivityUseCase
	UpdateActivity   updateActivityUseCase
	DeleteActivity   deleteNodeUseCase
}

type HierarchyHandler struct {
	uc     HierarchyUseCases
	logger logger.Interface
}

func NewHierarchyHandler(uc HierarchyUseCases, logger logger.Interface) *HierarchyHandler {
	return &HierarchyHandler{uc: uc, logger: logger}
}

type ObjectiveRequest struct {
	Title       string          `json:"title" binding:"required,max=255"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
}

type ProgramRequest struct {
	ObjectiveID uint            `json:"strategic_objective"`
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
}

type SubProgramRequest struct {
	ProgramID   uint            `json:"program"`
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
}

func (h *HierarchyHandler) ListObjectives(c *gin.Context) {
	result, err := h.uc.Nodes.ListObjectives(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetObjective(c *gin.Context) {
	id, ok := pathID(c, "id", "strategic objective")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetObjective(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateObjective(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req ObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateObjective.Execute(c.Request.Context(), usecases.CreateObjectiveCommand{
		Principal:   principal,
		Title:       req.Title,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Strategic objective created successfully")
}

func (h *HierarchyHandler) UpdateObjective(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "strategic objective")
	if !ok {
		return
	}
	var req ObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateObjective.Execute(c.Request.Context(), usecases.UpdateObjectiveCommand{
		Principal:   principal,
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Strategic objective updated successfully", result)
}

func (h *HierarchyHandler) DeleteObjective(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteObjective, "strategic objective")
}

// ListPrograms lists every program, or those of ?objective= when given.
func (h *HierarchyHandler) ListPrograms(c *gin.Context) {
	objectiveID, ok := optionalQueryID(c, "objective")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.ListPrograms(c.Request.Context(), valueOrZero(objectiveID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetProgram(c *gin.Context) {
	id, ok := pathID(c, "id", "program")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetProgram(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateProgram(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req ProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateProgram.Execute(c.Request.Context(), usecases.CreateProgramCommand{
		Principal:   principal,
		ObjectiveID: req.ObjectiveID,
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Program created successfully")
}

func (h *HierarchyHandler) UpdateProgram(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "program")
	if !ok {
		return
	}
	var req ProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateProgram.Execute(c.Request.Context(), usecases.UpdateProgramCommand{
		Principal:   principal,
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Program updated successfully", result)
}

func (h *HierarchyHandler) DeleteProgram(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteProgram, "program")
}

func (h *HierarchyHandler) ListSubPrograms(c *gin.Context) {
	programID, ok := optionalQueryID(c, "program")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.ListSubPrograms(c.Request.Context(), valueOrZero(programID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) GetSubProgram(c *gin.Context) {
	id, ok := pathID(c, "id", "subprogram")
	if !ok {
		return
	}
	result, err := h.uc.Nodes.GetSubProgram(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *HierarchyHandler) CreateSubProgram(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	var req SubProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.CreateSubProgram.Execute(c.Request.Context(), usecases.CreateSubProgramCommand{
		Principal:   principal,
		ProgramID:   req.ProgramID,
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Subprogram created successfully")
}

func (h *HierarchyHandler) UpdateSubProgram(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "subprogram")
	if !ok {
		return
	}
	var req SubProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.UpdateSubProgram.Execute(c.Request.Context(), usecases.UpdateSubProgramCommand{
		Principal:   principal,
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Weight:      req.Weight,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Subprogram updated successfully", result)
}

func (h *HierarchyHandler) DeleteSubProgram(c *gin.Context) {
	h.deleteNode(c, h.uc.DeleteSubProgram, "subprogram")
}

func (h *HierarchyHandler) deleteNode(c *gin.Context, uc deleteNodeUseCase, entity string) {
	principal, id, ok := principalAndID(c, "id", entity)
	if !ok {
		return
	}
	if err := uc.Execute(c.Request.Context(), usecases.DeleteNodeCommand{Principal: principal, ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.logger.Infow("node deleted", "kind", entity, "id", id, "user_id", principal.UserID)
	utils.NoContentResponse(c)
}

func valueOrZero(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
