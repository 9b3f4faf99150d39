package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/validator"
)

const (
	inputErrorsKey = "inputErrors"
	bodyKey        = "body"
	paramKeyPrefix = "param:"
)

// ValidateID checks that the path parameter is a positive integer. Failures
// are collected rather than returned so HandleInputErrors can report them
// together with body errors.
func ValidateID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 32)
		if err != nil || id == 0 {
			addInputErrors(c, apperrors.FieldError{
				Field:    param,
				Location: "params",
				Message:  "must be a positive integer",
			})
			c.Next()
			return
		}
		c.Set(paramKeyPrefix+param, uint(id))
		c.Next()
	}
}

// ParamID returns the path parameter parsed by ValidateID.
func ParamID(c *gin.Context, param string) uint {
	v, _ := c.Get(paramKeyPrefix + param)
	id, _ := v.(uint)
	return id
}

// BindBody decodes and validates the JSON body into a T. The bound value is
// available to later handlers through Body; validation failures are collected
// for HandleInputErrors.
func BindBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			addInputErrors(c, validator.FieldErrors(err, "body")...)
			c.Next()
			return
		}
		c.Set(bodyKey, &body)
		c.Next()
	}
}

// Body returns the request body bound by BindBody[T], or nil.
func Body[T any](c *gin.Context) *T {
	v, ok := c.Get(bodyKey)
	if !ok {
		return nil
	}
	body, _ := v.(*T)
	return body
}

// HandleInputErrors aborts with a single INVALID_INPUT error listing every
// collected field error.
func HandleInputErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if details := InputErrors(c); len(details) > 0 {
			abortWithError(c, apperrors.WithDetails(apperrors.ErrInvalidInput, details))
			return
		}
		c.Next()
	}
}

// InputErrors returns the field errors collected so far.
func InputErrors(c *gin.Context) []apperrors.FieldError {
	v, ok := c.Get(inputErrorsKey)
	if !ok {
		return nil
	}
	details, _ := v.([]apperrors.FieldError)
	return details
}

func addInputErrors(c *gin.Context, errs ...apperrors.FieldError) {
	c.Set(inputErrorsKey, append(InputErrors(c), errs...))
}
