package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stratplan/internal/domain/access"
	"stratplan/internal/shared/constants"
	"stratplan/internal/shared/errors"
	"stratplan/internal/shared/logger"
	"stratplan/internal/shared/utils"
)

// TokenVerifier resolves a bearer token to the caller it was issued for.
type TokenVerifier interface {
	Principal(token string) (access.Principal, error)
}

type AuthMiddleware struct {
	tokens TokenVerifier
	logger logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		principal, err := m.tokens.Principal(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "ip", c.ClientIP())
			if !errors.IsAuthenticationError(err) {
				err = errors.NewTokenInvalidError("access token")
			}
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SetPrincipal(c, principal)
		c.Next()
	}
}
