package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratplan/internal/application/hierarchy/usecases"
	"stratplan/internal/domain/weight"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// WeightHandler serves the weight summaries of every sibling scope and the
// two explicit validation endpoints.
type WeightHandler struct {
	summaryUC            getWeightSummaryUseCase
	validateObjectivesUC validateObjectivesTotalUseCase
	validateActivitiesUC validateActivitiesWeightUseCase
	logger               logger.Interface
}

func NewWeightHandler(
	summaryUC getWeightSummaryUseCase,
	validateObjectivesUC validateObjectivesTotalUseCase,
	validateActivitiesUC validateActivitiesWeightUseCase,
	logger logger.Interface,
) *WeightHandler {
	return &WeightHandler{
		summaryUC:            summaryUC,
		validateObjectivesUC: validateObjectivesUC,
		validateActivitiesUC: validateActivitiesUC,
		logger:               logger,
	}
}

func (h *WeightHandler) ObjectiveSummary(c *gin.Context) {
	h.summary(c, weight.ObjectiveScope())
}

func (h *WeightHandler) ProgramSummary(c *gin.Context) {
	objectiveID, ok := requiredQueryID(c, "objective")
	if !ok {
		return
	}
	h.summary(c, weight.ProgramScope(objectiveID))
}

func (h *WeightHandler) SubProgramSummary(c *gin.Context) {
	programID, ok := requiredQueryID(c, "program")
	if !ok {
		return
	}
	h.summary(c, weight.SubProgramScope(programID))
}

// InitiativeSummary needs exactly one of ?objective=, ?program= or ?subprogram=.
func (h *WeightHandler) InitiativeSummary(c *gin.Context) {
	var (
		scope weight.Scope
		found int
	)
	for _, p := range []struct {
		key  string
		kind weight.Kind
	}{
		{"objective", weight.KindObjective},
		{"program", weight.KindProgram},
		{"subprogram", weight.KindSubProgram},
	} {
		id, ok := optionalQueryID(c, p.key)
		if !ok {
			return
		}
		if id != nil {
			scope = weight.InitiativeScope(p.kind, *id)
			found++
		}
	}
	if found != 1 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("exactly one of objective, program or subprogram is required"))
		return
	}
	h.summary(c, scope)
}

func (h *WeightHandler) MeasureSummary(c *gin.Context) {
	initiativeID, ok := requiredQueryID(c, "initiative")
	if !ok {
		return
	}
	h.summary(c, weight.MeasureScope(initiativeID))
}

func (h *WeightHandler) ActivitySummary(c *gin.Context) {
	initiativeID, ok := requiredQueryID(c, "initiative")
	if !ok {
		return
	}
	h.summary(c, weight.ActivityScope(initiativeID))
}

func (h *WeightHandler) summary(c *gin.Context, scope weight.Scope) {
	result, err := h.summaryUC.Execute(c.Request.Context(), scope)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateObjectivesTotal answers 400 unless the objective weights sum to exactly 100.
func (h *WeightHandler) ValidateObjectivesTotal(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}
	result, err := h.validateObjectivesUC.Execute(c.Request.Context(), usecases.ValidateObjectivesTotalCommand{Principal: principal})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !result.IsValid {
		utils.ErrorResponseWithError(c, errors.NewValidationError(result.Message).
			WithData("is_valid", false).
			WithData("total_weight", result.Total.String()))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// ValidateActivitiesWeight checks the activity weights of ?initiative=.
func (h *WeightHandler) ValidateActivitiesWeight(c *gin.Context) {
	initiativeID, ok := requiredQueryID(c, "initiative")
	if !ok {
		return
	}
	result, err := h.validateActivitiesUC.Execute(c.Request.Context(), initiativeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
