package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

func newComparisonValidator(valueInClosure int64, compareFn func(argValue, closedValue int64) bool) ParamValidator {
	return func(argValue int64) bool {
		return compareFn(argValue, valueInClosure)
	}
}

// gte returns a ParamValidator that checks if the argument is greater than or equal to the value captured in the closure.
func gte(valToCompareAgainst int64) ParamValidator {
	return newComparisonValidator(valToCompareAgainst, func(argValue, closedValue int64) bool {
		return argValue >= closedValue
	})
}

// gt returns a ParamValidator that checks if the argument is greater than the value captured in the closure.
func gt(valToCompareAgainst int64) ParamValidator {
	return newComparisonValidator(valToCompareAgainst, func(argValue, closedValue int64) bool {
		return argValue > closedValue
	})
}

// anyValue accepts every value; range checks are left to the caller.
func anyValue(int64) bool { return true }

// ParseInt32 parses a required int32 query parameter without range checks.
func ParseInt32(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string) (int32, bool) {
	return parseValidate(r, w, logger, key, nil, anyValue)
}

// ParseValidateGteOr parses an optional query parameter that must be >= value, using def when absent.
func ParseValidateGteOr(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, value int64, def int32) (int32, bool) {
	return parseValidate(r, w, logger, key, &def, gte(value))
}

// ParseValidateGtOr parses an optional query parameter that must be > value, using def when absent.
func ParseValidateGtOr(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, value int64, def int32) (int32, bool) {
	return parseValidate(r, w, logger, key, &def, gt(value))
}

func parseValidate(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, def *int32, pValidator ParamValidator) (int32, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		if def != nil {
			return *def, true
		}
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Missing parameter: %s", key))
		return 0, false
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil || !pValidator(intValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return int32(intValue), true
}

// NewValidator creates a struct validator with the custom rules used by request payloads:
//   - notblank: the string must contain a non-whitespace character.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !isBlank(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}
	return v
}

// ValidationErrors converts validator errors to a field -> message map.
func ValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		out[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "failed on rule: " + fe.Tag()
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
