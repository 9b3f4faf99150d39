// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("numeric_token", validateNumericToken)
		_ = v.RegisterValidation("money", validateMoney)
	}
}

// jsonFieldName reports fields by their JSON name so error details match the payload.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// decimalValue lets numeric tags such as gt=0 operate on decimal amounts.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateMoney checks that an amount fits a decimal(12,2) column. Decimal
// fields arrive here as float64 through decimalValue; NewFromFloat recovers
// the shortest decimal representation, so 0.001 stays 0.001.
func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return models.ValidAmount(decimal.NewFromFloat(field.Float()))
	}
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return models.ValidAmount(d)
	}
	return false
}

func validateNumericToken(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FieldErrors converts a binding error into field errors for the given
// location ("body", "params"). Errors that are not validation failures,
// such as malformed JSON, become a single error on the location itself.
func FieldErrors(err error, location string) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apperrors.FieldError{
				Field:    fe.Field(),
				Location: location,
				Message:  message(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []apperrors.FieldError{{
			Field:    typeErr.Field,
			Location: location,
			Message:  fmt.Sprintf("must be a %s", typeErr.Type.String()),
		}}
	}

	return []apperrors.FieldError{{Field: location, Location: location, Message: "malformed request " + location}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "numeric_token":
		return "must contain only digits"
	case "money":
		return fmt.Sprintf("must have at most %d decimal places and %d integer digits", models.AmountScale, models.AmountIntegerDigits)
	}
	return "is invalid"
}
