package handlers

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/domain/access"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/utils"
)

// bindJSON binds the body into req, writing the error response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return false
	}
	return true
}

// principalAndID resolves the caller and a numeric path parameter, writing
// the error response when either is missing.
func principalAndID(c *gin.Context, param, entity string) (access.Principal, uint, bool) {
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return access.Principal{}, 0, false
	}
	id, err := utils.ParseUintParam(c, param, entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return access.Principal{}, 0, false
	}
	return principal, id, true
}

func principalOnly(c *gin.Context) (access.Principal, bool) {
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return access.Principal{}, false
	}
	return principal, true
}

func pathID(c *gin.Context, param, entity string) (uint, bool) {
	id, err := utils.ParseUintParam(c, param, entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}

func optionalQueryID(c *gin.Context, key string) (*uint, bool) {
	id, err := utils.ParseOptionalUintQuery(c, key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return id, true
}

// requiredQueryID parses a mandatory numeric query parameter.
func requiredQueryID(c *gin.Context, key string) (uint, bool) {
	id, ok := optionalQueryID(c, key)
	if !ok {
		return 0, false
	}
	if id == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(key+" query parameter is required"))
		return 0, false
	}
	return *id, true
}
