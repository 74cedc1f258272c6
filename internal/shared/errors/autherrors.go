package errors

import (
	"fmt"
	"net/http"
)

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeRateLimited        ErrorType = "rate_limited"
)

// NewInvalidCredentialsError does not say whether the username or the
// password was wrong.
func NewInvalidCredentialsError() *AppError {
	return newAppError(ErrorTypeInvalidCredentials, http.StatusUnauthorized, "Invalid username or password", nil)
}

func NewTokenExpiredError(tokenType string) *AppError {
	return newAppError(ErrorTypeTokenExpired, http.StatusUnauthorized,
		fmt.Sprintf("%s has expired", tokenType), []string{"Please login again"})
}

func NewTokenInvalidError(tokenType string) *AppError {
	return newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized,
		fmt.Sprintf("Invalid %s", tokenType), nil)
}

func NewRateLimitedError() *AppError {
	return newAppError(ErrorTypeRateLimited, http.StatusTooManyRequests,
		"rate limit exceeded, please try again later", nil)
}

// IsAuthenticationError reports failures that should map to 401.
func IsAuthenticationError(err error) bool {
	return hasType(err, ErrorTypeInvalidCredentials) ||
		hasType(err, ErrorTypeTokenExpired) ||
		hasType(err, ErrorTypeTokenInvalid) ||
		hasType(err, ErrorTypeUnauthorized)
}
