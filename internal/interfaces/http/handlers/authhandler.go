package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratplan/internal/application/auth/usecases"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

type AuthHandler struct {
	loginUC        loginUseCase
	checkSessionUC checkSessionUseCase
	logger         logger.Interface
}

func NewAuthHandler(loginUC loginUseCase, checkSessionUC checkSessionUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:        loginUC,
		checkSessionUC: checkSessionUC,
		logger:         logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges a username and password for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request", "error", err, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Check reports the authenticated caller and its memberships.
func (h *AuthHandler) Check(c *gin.Context) {
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkSessionUC.Execute(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// HealthCheck answers liveness checks.
func HealthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
