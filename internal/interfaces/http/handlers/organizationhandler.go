package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratplan/internal/application/organization/usecases"
	"stratplan/internal/domain/organization"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// OrganizationUseCases groups the use cases behind OrganizationHandler.
type OrganizationUseCases struct {
	ListHierarchy    listOrganizationHierarchyUseCase
	Get              getOrganizationUseCase
	Update           updateOrganizationUseCase
	ChangeParent     changeOrganizationParentUseCase
	ListMine         listMyOrganizationsUseCase
	AddMembership    addMembershipUseCase
	RemoveMembership removeMembershipUseCase
	ListMembers      listMembersUseCase
}

type OrganizationHandler struct {
	uc     OrganizationUseCases
	logger logger.Interface
}

func NewOrganizationHandler(uc OrganizationUseCases, logger logger.Interface) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, logger: logger}
}

type UpdateOrganizationRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Vision     *string  `json:"vision"`
	Mission    *string  `json:"mission"`
	CoreValues []string `json:"core_values" binding:"omitempty,dive,max=255"`
}

type ChangeParentRequest struct {
	ParentID *uint `json:"parent"`
}

type MembershipRequest struct {
	UserID   uint   `json:"user"`
	Username string `json:"username"`
	Role     string `json:"role" binding:"required,oneof=ADMIN PLANNER EVALUATOR"`
}

// ListHierarchy returns root organizations with their children nested.
func (h *OrganizationHandler) ListHierarchy(c *gin.Context) {
	result, err := h.uc.ListHierarchy.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "organization")
	if !ok {
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update changes the organization profile: name, vision, mission and core values.
func (h *OrganizationHandler) Update(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "organization")
	if !ok {
		return
	}

	var req UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.Update.Execute(c.Request.Context(), usecases.UpdateOrganizationCommand{
		Principal:      principal,
		OrganizationID: id,
		Profile: organization.Profile{
			Name:       req.Name,
			Vision:     req.Vision,
			Mission:    req.Mission,
			CoreValues: req.CoreValues,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("organization updated", "organization_id", id, "user_id", principal.UserID)
	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", result)
}

func (h *OrganizationHandler) ChangeParent(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "organization")
	if !ok {
		return
	}

	var req ChangeParentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.ChangeParent.Execute(c.Request.Context(), usecases.ChangeParentCommand{
		Principal:      principal,
		OrganizationID: id,
		ParentID:       req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Organization parent changed successfully", result)
}

// ListMine returns the organizations the caller belongs to with its roles there.
func (h *OrganizationHandler) ListMine(c *gin.Context) {
	principal, ok := principalOnly(c)
	if !ok {
		return
	}

	result, err := h.uc.ListMine.Execute(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "organization")
	if !ok {
		return
	}

	result, err := h.uc.ListMembers.Execute(c.Request.Context(), usecases.ListMembersQuery{
		Principal:      principal,
		OrganizationID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *OrganizationHandler) AddMember(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "organization")
	if !ok {
		return
	}

	var req MembershipRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.uc.AddMembership.Execute(c.Request.Context(), usecases.ManageMembershipCommand{
		Principal: principal,
		Target: usecases.MembershipTarget{
			UserID:         req.UserID,
			Username:       req.Username,
			OrganizationID: id,
			Role:           req.Role,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Member added successfully")
}

func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	principal, id, ok := principalAndID(c, "id", "organization")
	if !ok {
		return
	}

	var req MembershipRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.uc.RemoveMembership.Execute(c.Request.Context(), usecases.ManageMembershipCommand{
		Principal: principal,
		Target: usecases.MembershipTarget{
			UserID:         req.UserID,
			Username:       req.Username,
			OrganizationID: id,
			Role:           req.Role,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
