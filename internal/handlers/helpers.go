package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/middleware"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	identity, err := middleware.CurrentUser(c)
	if err != nil {
		return 0, err
	}
	return identity.ID, nil
}

// requestBody returns the body bound by middleware.BindBody. A missing body
// means the route was registered without the validation chain.
func requestBody[T any](c *gin.Context) (*T, error) {
	body := middleware.Body[T](c)
	if body == nil {
		return nil, apperrors.ErrInvalidInput
	}
	return body, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}
