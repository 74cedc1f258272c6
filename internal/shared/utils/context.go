package utils

import (
	"github.com/gin-gonic/gin"

	"stratplan/internal/domain/access"
	"stratplan/internal/shared/constants"
	"stratplan/internal/shared/errors"
)

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c *gin.Context, p access.Principal) {
	c.Set(constants.ContextKeyPrincipal, p)
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeyUsername, p.Username)
}

// GetPrincipalFromContext returns the caller set by the auth middleware.
func GetPrincipalFromContext(c *gin.Context) (access.Principal, error) {
	v, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return access.Principal{}, errors.NewUnauthorizedError("user not authenticated")
	}
	p, ok := v.(access.Principal)
	if !ok || p.UserID == 0 {
		return access.Principal{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return p, nil
}
